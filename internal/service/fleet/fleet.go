package fleet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"relay/internal/entities"
	"relay/pkg/logger"
)

// Service принимает позиции курьеров от REST и Kafka.
type Service struct {
	repository Repository
	proximity  ProximityHandler
	log        serviceLogger
}

func New(repository Repository, proximity ProximityHandler, log serviceLogger) *Service {
	return &Service{
		repository: repository,
		proximity:  proximity,
		log:        log.With(logger.NewField("component", "fleet")),
	}
}

// ReportPosition сохраняет позицию (устаревшие отчёты игнорируются
// хранилищем) и проверяет близость к точкам передачи.
func (s *Service) ReportPosition(ctx context.Context, position entities.CourierPosition) (*entities.CourierPosition, error) {
	position.CourierID = strings.TrimSpace(position.CourierID)
	if position.Availability == "" {
		position.Availability = entities.CourierAvailable
	}
	if position.ReportedAt.IsZero() {
		position.ReportedAt = time.Now().UTC()
	}

	var v entities.Violations
	if position.CourierID == "" {
		v.Add("courier_id is required")
	}
	if !position.Coordinates.IsValid() {
		v.Add("coordinates are out of range")
	}
	if !position.Availability.IsValid() {
		v.Add("unknown availability %q", position.Availability)
	}
	err := v.Err()
	if err != nil {
		return nil, err
	}

	err = s.repository.SaveCourierPosition(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("save courier position: %w", err)
	}
	PositionsReportedTotal.WithLabelValues(position.Availability.String()).Inc()

	initiated, err := s.proximity.HandleProximity(ctx, position.CourierID, position.Coordinates)
	if err != nil {
		s.log.Warn("handle courier proximity",
			logger.NewField("courier_id", position.CourierID),
			logger.NewField("error", err),
		)
	}
	for _, handover := range initiated {
		s.log.Info("handover initiated by proximity",
			logger.NewField("courier_id", position.CourierID),
			logger.NewField("handover_id", handover.ID),
			logger.NewField("from_segment_id", handover.FromSegmentID),
		)
	}

	return &position, nil
}

func (s *Service) GetPosition(ctx context.Context, courierID string) (*entities.CourierPosition, error) {
	position, err := s.repository.GetCourierPosition(ctx, courierID)
	if err != nil {
		return nil, fmt.Errorf("get courier position: %w", err)
	}
	return position, nil
}
