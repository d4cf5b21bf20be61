package geocoder

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
	"relay/internal/entities"
	retrierconfig "relay/pkg/retrier"
	"relay/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "geocoder"

	// ResolveMethod принимает адрес в google.protobuf.StringValue и отвечает
	// google.protobuf.Struct с числовыми полями lat и lon.
	ResolveMethod = "/geocoder.v1.GeocoderService/Resolve"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type GeocoderGateway struct {
	client  client
	retrier retrier
}

func New(client client) *GeocoderGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &GeocoderGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *GeocoderGateway) Resolve(ctx context.Context, address string) (entities.Coordinates, error) {
	req := wrapperspb.String(address)
	resp := &structpb.Struct{}

	err := g.executeWithMetrics(ctx, "Resolve", func(ctx context.Context) error {
		return g.client.Invoke(ctx, ResolveMethod, req, resp)
	})
	if err != nil {
		return entities.Coordinates{}, fmt.Errorf("gateway geocoder, resolve %q: %w", address, err)
	}

	coordinates, err := toCoordinates(resp)
	if err != nil {
		return entities.Coordinates{}, fmt.Errorf("gateway geocoder, resolve %q: %w", address, err)
	}
	return coordinates, nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func (g *GeocoderGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	grpcCode := getGRPCCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, grpcCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, grpcCode).Inc()
	}

	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
