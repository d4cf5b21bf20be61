//go:generate mockgen -source=idle_segments.go -destination=./idle_segments_mocks_test.go -package=idle_segments_test
package idle_segments

import (
	"context"
	"time"

	"relay/pkg/logger"
)

type Service interface {
	CancelIdleSegments(ctx context.Context, before time.Time) (int, error)
}

// IdleSegments отменяет назначенные сегменты, которые курьер так и не забрал
// за ttl; маркетплейс сразу переоткрывает их.
type IdleSegments struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time
}

func NewIdleSegments(log logger.Logger, service Service, interval, ttl time.Duration) *IdleSegments {
	return &IdleSegments{
		log:      log,
		service:  service,
		interval: interval,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (t *IdleSegments) TTL() time.Duration {
	return t.interval
}

func (t *IdleSegments) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	cancelled, err := t.service.CancelIdleSegments(ctxWithTimeout, t.now().UTC().Add(-t.ttl))

	if cancelled > 0 {
		t.log.With(
			logger.NewField("cancelled_segments", cancelled),
		).Info("idle segments reopened")
	}

	return err
}

func (t *IdleSegments) Info() string {
	return "idle segments reaper"
}
