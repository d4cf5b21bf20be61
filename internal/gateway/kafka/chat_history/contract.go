//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=chat_history_test
package chat_history

import "context"

type producer interface {
	Send(ctx context.Context, topic, key string, value []byte) error
}
