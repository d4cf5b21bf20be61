//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=geocoder_test
package geocoder

import (
	"context"

	"google.golang.org/grpc"
)

type client interface {
	Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
