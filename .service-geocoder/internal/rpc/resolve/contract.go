package resolve

import "context"

type usecase interface {
	Resolve(ctx context.Context, address string) (lat, lon float64, err error)
}
