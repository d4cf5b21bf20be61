package marketplace

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"relay/internal/entities"
	"relay/pkg/geo"
	"relay/pkg/logger"
)

type Config struct {
	// BroadcastRadiusKm радиус рассылки segment_available; 0 - всем свободным курьерам
	BroadcastRadiusKm float64
}

type Service struct {
	repository Repository
	txManager  TxManager
	publisher  Publisher
	log        serviceLogger
	cfg        Config
}

func New(
	repository Repository,
	txManager TxManager,
	publisher Publisher,
	log serviceLogger,
	cfg Config,
) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		publisher:  publisher,
		log:        log.With(logger.NewField("component", "marketplace")),
		cfg:        cfg,
	}
}

// CreateDelivery сохраняет доставку из выбранных сегментов маршрута и
// рассылает каждый открытый сегмент подходящим курьерам.
func (s *Service) CreateDelivery(ctx context.Context, draft entities.DeliveryDraft) (*entities.DeliveryView, error) {
	if draft.Urgency == "" {
		draft.Urgency = entities.DefaultUrgency
	}

	err := validateDraft(draft)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	delivery := entities.Delivery{
		ID:                  uuid.NewString(),
		ClientID:            strings.TrimSpace(draft.ClientID),
		Package:             draft.Package,
		Urgency:             draft.Urgency,
		SpecialInstructions: draft.SpecialInstructions,
		PreferredTimeSlots:  draft.PreferredTimeSlots,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	segments := make([]entities.Segment, 0, len(draft.Legs))
	for _, leg := range draft.Legs {
		segment := entities.Segment{
			ID:             uuid.NewString(),
			DeliveryID:     delivery.ID,
			Index:          leg.Index,
			Start:          leg.Start,
			End:            leg.End,
			DistanceKm:     leg.DistanceKm,
			DurationMin:    leg.DurationMin,
			EstimatedCost:  leg.EstimatedCost,
			Status:         entities.SegmentOpen,
			LastActivityAt: now,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		segments = append(segments, segment)
		delivery.SegmentIDs = append(delivery.SegmentIDs, segment.ID)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.CreateDelivery(ctx, delivery, segments)
	})
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}

	s.publisher.Join(delivery.ID, delivery.ClientID)
	s.Advertise(ctx, segments...)

	return &entities.DeliveryView{
		Delivery: delivery,
		Segments: segments,
		Status:   entities.DeriveDeliveryStatus(segments),
	}, nil
}

// GetDelivery возвращает текущее состояние доставки для повторной
// синхронизации клиента после переподключения.
func (s *Service) GetDelivery(ctx context.Context, deliveryID string) (*entities.DeliveryView, error) {
	delivery, err := s.repository.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	segments, err := s.repository.ListSegments(ctx, delivery.SegmentIDs)
	if err != nil {
		return nil, fmt.Errorf("list delivery segments: %w", err)
	}

	return &entities.DeliveryView{
		Delivery: *delivery,
		Segments: segments,
		Status:   entities.DeriveDeliveryStatus(segments),
	}, nil
}

// ListAvailable возвращает открытые сегменты. С позицией курьера - только
// в радиусе, с расстоянием до начала сегмента, ближайшие первыми.
func (s *Service) ListAvailable(
	ctx context.Context,
	position *entities.Coordinates,
	radiusKm float64,
) ([]entities.AvailableSegment, error) {
	err := validateSearch(position, radiusKm)
	if err != nil {
		return nil, err
	}

	segments, err := s.repository.ListOpenSegments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open segments: %w", err)
	}

	available := make([]entities.AvailableSegment, 0, len(segments))
	if position == nil {
		for _, segment := range segments {
			available = append(available, entities.AvailableSegment{Segment: segment})
		}
		return available, nil
	}

	if radiusKm == 0 {
		radiusKm = s.cfg.BroadcastRadiusKm
	}

	for _, segment := range segments {
		distance := position.DistanceKm(segment.Start.Coordinates)
		if radiusKm > 0 && distance > radiusKm {
			continue
		}
		available = append(available, entities.AvailableSegment{
			Segment:    segment,
			DistanceKm: &distance,
		})
	}

	slices.SortStableFunc(available, func(a, b entities.AvailableSegment) int {
		switch {
		case *a.DistanceKm < *b.DistanceKm:
			return -1
		case *a.DistanceKm > *b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	for i := range available {
		rounded := geo.Round(*available[i].DistanceKm, 2)
		available[i].DistanceKm = &rounded
	}
	return available, nil
}

// Propose сохраняет предложение курьера по открытому сегменту; повторное
// предложение того же курьера заменяет предыдущее.
func (s *Service) Propose(ctx context.Context, proposal entities.Proposal) (*entities.Proposal, error) {
	err := validateProposal(proposal)
	if err != nil {
		ProposalsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	proposal.SubmittedAt = time.Now().UTC()

	var clientID, deliveryID string
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		segment, err := s.repository.GetSegmentForUpdate(ctx, proposal.SegmentID)
		if err != nil {
			return fmt.Errorf("lock segment: %w", err)
		}

		if segment.Status != entities.SegmentOpen {
			return fmt.Errorf("segment %s is %s: %w", segment.ID, segment.Status, entities.ErrSegmentNotOpen)
		}

		delivery, err := s.repository.GetDelivery(ctx, segment.DeliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}
		clientID, deliveryID = delivery.ClientID, delivery.ID

		err = s.repository.SaveProposal(ctx, proposal)
		if err != nil {
			return fmt.Errorf("save proposal: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entities.ErrSegmentNotOpen) {
			ProposalsTotal.WithLabelValues("not_open").Inc()
		}
		return nil, err
	}

	ProposalsTotal.WithLabelValues("stored").Inc()

	s.publisher.Publish(entities.NewEvent(
		entities.EventSegmentProposal,
		entities.UserChannel(clientID),
		deliveryID,
		proposal,
	))

	return &proposal, nil
}

// AcceptProposal атомарно переводит сегмент open -> assigned за курьером,
// чьё предложение принято. Все остальные предложения по сегменту
// отклоняются; повторное принятие получает ErrSegmentAlreadyAssigned.
func (s *Service) AcceptProposal(ctx context.Context, segmentID, courierID string) (*entities.Acceptance, error) {
	if strings.TrimSpace(segmentID) == "" || strings.TrimSpace(courierID) == "" {
		return nil, entities.Violations{"segment id and courier id are required"}.Err()
	}

	var acceptance entities.Acceptance
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		segment, err := s.repository.GetSegmentForUpdate(ctx, segmentID)
		if err != nil {
			return fmt.Errorf("lock segment: %w", err)
		}

		switch segment.Status {
		case entities.SegmentOpen:
		case entities.SegmentCancelled:
			return fmt.Errorf("segment %s is cancelled: %w", segment.ID, entities.ErrSegmentNotOpen)
		default:
			return fmt.Errorf("segment %s is %s: %w", segment.ID, segment.Status, entities.ErrSegmentAlreadyAssigned)
		}

		proposal, err := s.repository.GetProposal(ctx, segmentID, courierID)
		if err != nil {
			return fmt.Errorf("courier %s: %w", courierID, err)
		}

		proposals, err := s.repository.DeleteProposals(ctx, segmentID)
		if err != nil {
			return fmt.Errorf("delete proposals: %w", err)
		}

		now := time.Now().UTC()
		segment.Status = entities.SegmentAssigned
		segment.CourierID = &proposal.CourierID
		segment.EstimatedCost = proposal.ProposedCost
		segment.DurationMin = proposal.ProposedDurationMin
		segment.LastActivityAt = now
		segment.UpdatedAt = now

		err = s.repository.SaveSegment(ctx, *segment)
		if err != nil {
			return fmt.Errorf("save segment: %w", err)
		}

		acceptance = entities.Acceptance{
			Segment:  *segment,
			Accepted: *proposal,
		}
		for _, p := range proposals {
			if p.CourierID != courierID {
				acceptance.Rejected = append(acceptance.Rejected, p)
			}
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrSegmentAlreadyAssigned):
			AcceptancesTotal.WithLabelValues("already_assigned").Inc()
		case errors.Is(err, entities.ErrSegmentNotOpen):
			AcceptancesTotal.WithLabelValues("not_open").Inc()
		case errors.Is(err, entities.ErrProposalNotFound):
			AcceptancesTotal.WithLabelValues("no_proposal").Inc()
		}
		return nil, err
	}

	AcceptancesTotal.WithLabelValues("accepted").Inc()
	s.publishAcceptance(acceptance)

	return &acceptance, nil
}

func (s *Service) publishAcceptance(acceptance entities.Acceptance) {
	segment := acceptance.Segment
	deliveryID := segment.DeliveryID

	s.publisher.Join(deliveryID, acceptance.Accepted.CourierID)

	s.publisher.Publish(entities.NewEvent(
		entities.EventSegmentAccepted, entities.DeliveryChannel(deliveryID), deliveryID, acceptance,
	))
	s.publisher.Publish(entities.NewEvent(
		entities.EventSegmentAccepted, entities.UserChannel(acceptance.Accepted.CourierID), deliveryID, acceptance,
	))
	for _, rejected := range acceptance.Rejected {
		s.publisher.Publish(entities.NewEvent(
			entities.EventSegmentAccepted, entities.UserChannel(rejected.CourierID), deliveryID, acceptance,
		))
	}

	update := entities.SegmentStatusUpdate{Segment: segment, PreviousStatus: entities.SegmentOpen}
	s.publisher.Publish(entities.NewEvent(
		entities.EventSegmentStatusUpdated, entities.DeliveryChannel(deliveryID), deliveryID, update,
	))
	s.publisher.Publish(entities.NewEvent(
		entities.EventSegmentStatusUpdated, entities.UserChannel(acceptance.Accepted.CourierID), deliveryID, update,
	))
}

// Reopen создаёт открытый сегмент на месте отменённого. Вызывается внутри
// транзакции отмены; рассылка - через Advertise после коммита.
func (s *Service) Reopen(ctx context.Context, cancelled entities.Segment) (*entities.Segment, error) {
	if cancelled.Status != entities.SegmentCancelled {
		return nil, &entities.TransitionError{
			SegmentID: cancelled.ID,
			From:      cancelled.Status,
			To:        entities.SegmentOpen,
			Reason:    "only cancelled segments are reopened",
		}
	}

	var replacement entities.Segment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		delivery, err := s.repository.GetDeliveryForUpdate(ctx, cancelled.DeliveryID)
		if err != nil {
			return fmt.Errorf("lock delivery: %w", err)
		}

		position := slices.Index(delivery.SegmentIDs, cancelled.ID)
		if position < 0 {
			return fmt.Errorf("segment %s is not current in delivery %s: %w",
				cancelled.ID, delivery.ID, entities.ErrSegmentNotFound)
		}

		now := time.Now().UTC()
		replacement = entities.Segment{
			ID:                uuid.NewString(),
			DeliveryID:        cancelled.DeliveryID,
			Index:             cancelled.Index,
			Start:             cancelled.Start,
			End:               cancelled.End,
			DistanceKm:        cancelled.DistanceKm,
			DurationMin:       cancelled.DurationMin,
			EstimatedCost:     cancelled.EstimatedCost,
			Status:            entities.SegmentOpen,
			ReplacesSegmentID: &cancelled.ID,
			LastActivityAt:    now,
			CreatedAt:         now,
			UpdatedAt:         now,
		}

		err = s.repository.CreateSegment(ctx, replacement)
		if err != nil {
			return fmt.Errorf("create replacement segment: %w", err)
		}

		_, err = s.repository.DeleteProposals(ctx, cancelled.ID)
		if err != nil {
			return fmt.Errorf("delete proposals: %w", err)
		}

		segmentIDs := slices.Clone(delivery.SegmentIDs)
		segmentIDs[position] = replacement.ID

		err = s.repository.UpdateDeliverySegments(ctx, delivery.ID, segmentIDs)
		if err != nil {
			return fmt.Errorf("update delivery segments: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reopen segment %s: %w", cancelled.ID, err)
	}

	SegmentsReopenedTotal.Inc()
	return &replacement, nil
}

// Advertise рассылает segment_available свободным курьерам в радиусе
// рассылки. Ошибки только логируются: рассылка не влияет на состояние.
func (s *Service) Advertise(ctx context.Context, segments ...entities.Segment) {
	if len(segments) == 0 {
		return
	}

	couriers, err := s.repository.ListAvailableCouriers(ctx)
	if err != nil {
		s.log.Warn("list available couriers for advertising",
			logger.NewField("error", err),
			logger.NewField("segments", len(segments)),
		)
		return
	}

	for _, segment := range segments {
		if segment.Status != entities.SegmentOpen {
			continue
		}

		for _, courier := range couriers {
			distance := courier.Coordinates.DistanceKm(segment.Start.Coordinates)
			if s.cfg.BroadcastRadiusKm > 0 && distance > s.cfg.BroadcastRadiusKm {
				continue
			}

			rounded := geo.Round(distance, 2)
			s.publisher.Publish(entities.NewEvent(
				entities.EventSegmentAvailable,
				entities.UserChannel(courier.CourierID),
				segment.DeliveryID,
				entities.AvailableSegment{Segment: segment, DistanceKm: &rounded},
			))
			SegmentsAdvertisedTotal.Inc()
		}
	}
}
