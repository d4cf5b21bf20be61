package handoff

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"relay/internal/entities"
	"relay/pkg/logger"
)

type Config struct {
	// RequireVerificationCode включает 6-значный код подтверждения передачи
	RequireVerificationCode bool
	// ProximityRadiusM радиус автоматического начала передачи; 0 - выключено
	ProximityRadiusM float64
}

// Service ведёт сегменты по жизненному циклу после назначения курьера:
// забор посылки, передача между курьерами, доставка и отмена.
type Service struct {
	repository  Repository
	txManager   TxManager
	marketplace Marketplace
	publisher   Publisher
	log         serviceLogger
	cfg         Config
}

func New(
	repository Repository,
	txManager TxManager,
	marketplace Marketplace,
	publisher Publisher,
	log serviceLogger,
	cfg Config,
) *Service {
	return &Service{
		repository:  repository,
		txManager:   txManager,
		marketplace: marketplace,
		publisher:   publisher,
		log:         log.With(logger.NewField("component", "handoff")),
		cfg:         cfg,
	}
}

// ConfirmPickup переводит сегмент assigned -> in_progress. Для не первого
// сегмента предыдущий должен быть завершён.
func (s *Service) ConfirmPickup(
	ctx context.Context,
	segmentID, courierID string,
	location *entities.Location,
) (*entities.Segment, error) {
	err := validateActor(segmentID, courierID, location)
	if err != nil {
		return nil, err
	}

	var (
		segment *entities.Segment
		box     outbox
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		box = outbox{}

		segment, err = s.repository.GetSegmentForUpdate(ctx, segmentID)
		if err != nil {
			return fmt.Errorf("lock segment: %w", err)
		}
		if !segment.IsAssignedTo(courierID) {
			return fmt.Errorf("courier %s on segment %s: %w", courierID, segmentID, entities.ErrNotParticipant)
		}
		if segment.Status != entities.SegmentAssigned {
			return &entities.TransitionError{
				SegmentID: segment.ID,
				From:      segment.Status,
				To:        entities.SegmentInProgress,
			}
		}

		if segment.Index > 0 {
			_, segments, err := s.currentSegments(ctx, segment.DeliveryID)
			if err != nil {
				return err
			}
			prev, ok := segmentAt(segments, segment.Index-1)
			if !ok || prev.Status != entities.SegmentCompleted {
				return &entities.TransitionError{
					SegmentID: segment.ID,
					From:      segment.Status,
					To:        entities.SegmentInProgress,
					Reason:    "previous segment is not completed",
				}
			}
		}

		return s.move(ctx, &box, segment, entities.SegmentInProgress, location)
	})
	if err != nil {
		return nil, fmt.Errorf("confirm pickup: %w", err)
	}

	s.flush(ctx, &box)
	return segment, nil
}

// ConfirmDelivery завершает последний сегмент доставки без передачи.
func (s *Service) ConfirmDelivery(
	ctx context.Context,
	segmentID, courierID string,
	location *entities.Location,
) (*entities.Segment, error) {
	err := validateActor(segmentID, courierID, location)
	if err != nil {
		return nil, err
	}

	var (
		segment *entities.Segment
		box     outbox
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		box = outbox{}

		segment, err = s.repository.GetSegmentForUpdate(ctx, segmentID)
		if err != nil {
			return fmt.Errorf("lock segment: %w", err)
		}
		if !segment.IsAssignedTo(courierID) {
			return fmt.Errorf("courier %s on segment %s: %w", courierID, segmentID, entities.ErrNotParticipant)
		}
		if segment.Status != entities.SegmentInProgress {
			return &entities.TransitionError{
				SegmentID: segment.ID,
				From:      segment.Status,
				To:        entities.SegmentCompleted,
			}
		}

		_, segments, err := s.currentSegments(ctx, segment.DeliveryID)
		if err != nil {
			return err
		}
		if segments[len(segments)-1].ID != segment.ID {
			return &entities.TransitionError{
				SegmentID: segment.ID,
				From:      segment.Status,
				To:        entities.SegmentCompleted,
				Reason:    "only the last segment completes without a handover",
			}
		}

		err = s.move(ctx, &box, segment, entities.SegmentCompleted, location)
		if err != nil {
			return err
		}
		return s.releaseCouriers(ctx, &box, segment.DeliveryID, segment.CourierID)
	})
	if err != nil {
		return nil, fmt.Errorf("confirm delivery: %w", err)
	}

	s.flush(ctx, &box)
	return segment, nil
}

// InitiateCoordination открывает передачу посылки от текущего сегмента
// следующему. Код подтверждения получает только клиент, остальным уходит
// копия без кода.
func (s *Service) InitiateCoordination(
	ctx context.Context,
	req entities.CoordinationRequest,
) (*entities.HandoverEvent, error) {
	err := validateCoordination(req)
	if err != nil {
		return nil, err
	}

	var (
		handover entities.HandoverEvent
		box      outbox
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		box = outbox{}

		current, next, err := s.lockPair(ctx, req.CurrentSegmentID, req.NextSegmentID)
		if err != nil {
			return err
		}
		err = sameDelivery(req.DeliveryID, current, next)
		if err != nil {
			return err
		}
		if next.Index != current.Index+1 {
			return (entities.Violations{"next_segment_id must directly follow current_segment_id"}).Err()
		}
		if !current.IsAssignedTo(req.ActorID) && !next.IsAssignedTo(req.ActorID) {
			return fmt.Errorf("user %s in handover %s -> %s: %w",
				req.ActorID, current.ID, next.ID, entities.ErrNotParticipant)
		}
		if current.Status != entities.SegmentInProgress {
			return &entities.TransitionError{
				SegmentID: current.ID,
				From:      current.Status,
				To:        entities.SegmentAwaitingHandover,
			}
		}
		if next.Status == entities.SegmentCancelled || next.Status.Rank() < entities.SegmentAssigned.Rank() {
			return &entities.TransitionError{
				SegmentID: current.ID,
				From:      current.Status,
				To:        entities.SegmentAwaitingHandover,
				Reason:    "next segment has no courier",
			}
		}

		delivery, err := s.repository.GetDelivery(ctx, current.DeliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		location := current.End
		if req.Location != nil {
			location = *req.Location
		}

		handover = entities.HandoverEvent{
			ID:            uuid.NewString(),
			DeliveryID:    current.DeliveryID,
			FromSegmentID: current.ID,
			ToSegmentID:   next.ID,
			Location:      location,
			CreatedAt:     time.Now().UTC(),
		}
		if s.cfg.RequireVerificationCode {
			code, err := newVerificationCode()
			if err != nil {
				return err
			}
			handover.VerificationCode = &code
		}

		err = s.repository.CreateHandover(ctx, handover)
		if err != nil {
			return fmt.Errorf("create handover: %w", err)
		}

		err = s.move(ctx, &box, current, entities.SegmentAwaitingHandover, &location)
		if err != nil {
			return err
		}

		box.publish(entities.EventDeliveryCoordination,
			entities.DeliveryChannel(delivery.ID), delivery.ID, handover.Redacted())
		if handover.VerificationCode != nil {
			box.publish(entities.EventDeliveryCoordination,
				entities.UserChannel(delivery.ClientID), delivery.ID, handover)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("initiate coordination: %w", err)
	}

	HandoversTotal.WithLabelValues("initiated").Inc()
	s.flush(ctx, &box)

	redacted := handover.Redacted()
	return &redacted, nil
}

// RequestHandover начинает передачу следующему сегменту доставки.
func (s *Service) RequestHandover(
	ctx context.Context,
	segmentID, actorID string,
	location *entities.Location,
) (*entities.HandoverEvent, error) {
	err := validateActor(segmentID, actorID, location)
	if err != nil {
		return nil, err
	}

	segment, err := s.repository.GetSegment(ctx, segmentID)
	if err != nil {
		return nil, fmt.Errorf("get segment: %w", err)
	}

	nextID, ok, err := s.nextSegmentID(ctx, *segment)
	if err != nil {
		return nil, fmt.Errorf("resolve next segment: %w", err)
	}
	if !ok {
		return nil, &entities.TransitionError{
			SegmentID: segment.ID,
			From:      segment.Status,
			To:        entities.SegmentAwaitingHandover,
			Reason:    "last segment has no successor",
		}
	}

	return s.InitiateCoordination(ctx, entities.CoordinationRequest{
		DeliveryID:       segment.DeliveryID,
		CurrentSegmentID: segment.ID,
		NextSegmentID:    nextID,
		ActorID:          actorID,
		Location:         location,
	})
}

// ConfirmPackageHandover фиксирует подтверждение одной из сторон. Когда
// подтвердили обе, сегмент-отправитель завершается, а получатель переходит
// в in_progress в одной транзакции.
func (s *Service) ConfirmPackageHandover(
	ctx context.Context,
	confirmation entities.HandoverConfirmation,
) (*entities.HandoverResult, error) {
	err := validateConfirmation(confirmation)
	if err != nil {
		return nil, err
	}

	var (
		result entities.HandoverResult
		box    outbox
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		box = outbox{}

		from, to, err := s.lockPair(ctx, confirmation.FromSegmentID, confirmation.ToSegmentID)
		if err != nil {
			return err
		}
		err = sameDelivery(confirmation.DeliveryID, from, to)
		if err != nil {
			return err
		}

		handover, err := s.repository.GetHandoverByFromSegment(ctx, from.ID)
		if err != nil {
			return fmt.Errorf("get handover: %w", err)
		}
		if handover.ToSegmentID != to.ID {
			return fmt.Errorf("handover %s -> %s: %w", from.ID, to.ID, entities.ErrHandoverNotFound)
		}
		if handover.IsComplete() {
			return &entities.TransitionError{
				SegmentID: from.ID,
				From:      from.Status,
				To:        entities.SegmentCompleted,
				Reason:    "handover already completed",
			}
		}

		// подтверждение одной стороны тоже требует живой пары сегментов
		if from.Status != entities.SegmentAwaitingHandover {
			return &entities.TransitionError{
				SegmentID: from.ID,
				From:      from.Status,
				To:        entities.SegmentCompleted,
				Reason:    "sender segment is not awaiting handover",
			}
		}
		if to.Status != entities.SegmentAssigned {
			return &entities.TransitionError{
				SegmentID: to.ID,
				From:      to.Status,
				To:        entities.SegmentInProgress,
				Reason:    "receiver segment is not ready for handover",
			}
		}

		sender := from.IsAssignedTo(confirmation.ConfirmerID)
		receiver := to.IsAssignedTo(confirmation.ConfirmerID)
		if !sender && !receiver {
			return fmt.Errorf("user %s in handover %s: %w",
				confirmation.ConfirmerID, handover.ID, entities.ErrNotParticipant)
		}
		if receiver && !codeMatches(handover.VerificationCode, confirmation.VerificationCode) {
			return entities.ErrVerificationCodeMismatch
		}

		handover.ConfirmedBySender = handover.ConfirmedBySender || sender
		handover.ConfirmedByReceiver = handover.ConfirmedByReceiver || receiver

		if handover.IsComplete() {
			now := time.Now().UTC()
			handover.CompletedAt = &now

			err = s.move(ctx, &box, from, entities.SegmentCompleted, &handover.Location)
			if err != nil {
				return err
			}
			err = s.move(ctx, &box, to, entities.SegmentInProgress, &handover.Location)
			if err != nil {
				return err
			}
			err = s.releaseCouriers(ctx, &box, from.DeliveryID, from.CourierID)
			if err != nil {
				return err
			}
		}

		err = s.repository.SaveHandover(ctx, *handover)
		if err != nil {
			return fmt.Errorf("save handover: %w", err)
		}

		result = entities.HandoverResult{
			Handover:    handover.Redacted(),
			FromSegment: *from,
			ToSegment:   *to,
		}
		box.publish(entities.EventPackageHandover,
			entities.DeliveryChannel(handover.DeliveryID), handover.DeliveryID, result)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("confirm package handover: %w", err)
	}

	if result.Handover.IsComplete() {
		HandoversTotal.WithLabelValues("completed").Inc()
	} else {
		HandoversTotal.WithLabelValues("confirmed").Inc()
	}
	s.flush(ctx, &box)
	return &result, nil
}

// CancelSegment отменяет самый ранний незавершённый сегмент доставки и
// открывает на его месте замену для нового курьера.
func (s *Service) CancelSegment(ctx context.Context, segmentID, actorID, reason string) (*entities.Cancellation, error) {
	var v entities.Violations
	if segmentID == "" {
		v.Add("segment_id is required")
	}
	if actorID == "" {
		v.Add("actor_id is required")
	}
	err := v.Err()
	if err != nil {
		return nil, err
	}

	return s.cancel(ctx, segmentID, actorID, reason)
}

func (s *Service) cancel(ctx context.Context, segmentID, actorID, reason string) (*entities.Cancellation, error) {
	var (
		cancellation entities.Cancellation
		initiator    string
		box          outbox
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		box = outbox{}

		segment, err := s.repository.GetSegmentForUpdate(ctx, segmentID)
		if err != nil {
			return fmt.Errorf("lock segment: %w", err)
		}

		delivery, segments, err := s.currentSegments(ctx, segment.DeliveryID)
		if err != nil {
			return err
		}

		switch {
		case actorID == "":
			initiator = "system"
		case segment.IsAssignedTo(actorID):
			initiator = "courier"
		case delivery.ClientID == actorID:
			initiator = "client"
		default:
			return fmt.Errorf("user %s on segment %s: %w", actorID, segment.ID, entities.ErrNotParticipant)
		}

		if segment.Status.IsTerminal() {
			return fmt.Errorf("segment %s is %s: %w", segment.ID, segment.Status, entities.ErrInvalidCancellation)
		}

		frontier := slices.IndexFunc(segments, func(seg entities.Segment) bool {
			return !seg.Status.IsTerminal()
		})
		if frontier < 0 || segments[frontier].ID != segment.ID {
			return fmt.Errorf("segment %s is not the earliest unfinished one: %w",
				segment.ID, entities.ErrInvalidCancellation)
		}

		next, ok := segmentAt(segments, segment.Index+1)
		if ok && next.Status.Rank() >= entities.SegmentInProgress.Rank() {
			return fmt.Errorf("next segment %s is already %s: %w",
				next.ID, next.Status, entities.ErrInvalidCancellation)
		}

		err = s.move(ctx, &box, segment, entities.SegmentCancelled, nil)
		if err != nil {
			return err
		}

		replacement, err := s.marketplace.Reopen(ctx, *segment)
		if err != nil {
			return err
		}

		err = s.releaseCouriers(ctx, &box, segment.DeliveryID, segment.CourierID)
		if err != nil {
			return err
		}

		box.statusUpdated(*replacement, entities.SegmentCancelled, nil)
		box.advertise = append(box.advertise, *replacement)

		cancellation = entities.Cancellation{
			Cancelled:   *segment,
			Replacement: *replacement,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cancel segment: %w", err)
	}

	CancellationsTotal.WithLabelValues(initiator).Inc()
	s.log.Info("segment cancelled",
		logger.NewField("segment_id", cancellation.Cancelled.ID),
		logger.NewField("replacement_id", cancellation.Replacement.ID),
		logger.NewField("initiator", initiator),
		logger.NewField("reason", reason),
	)

	s.flush(ctx, &box)
	return &cancellation, nil
}

// HandleProximity начинает передачу за курьера, который подъехал к концу
// своего сегмента ближе ProximityRadiusM.
func (s *Service) HandleProximity(
	ctx context.Context,
	courierID string,
	position entities.Coordinates,
) ([]entities.HandoverEvent, error) {
	if s.cfg.ProximityRadiusM <= 0 {
		return nil, nil
	}

	segments, err := s.repository.ListSegmentsByCourier(ctx, courierID,
		[]entities.SegmentStatus{entities.SegmentInProgress})
	if err != nil {
		return nil, fmt.Errorf("list courier segments: %w", err)
	}

	var initiated []entities.HandoverEvent
	for _, segment := range segments {
		if segment.End.Coordinates.DistanceKm(position)*1000 > s.cfg.ProximityRadiusM {
			continue
		}

		nextID, ok, err := s.nextSegmentID(ctx, segment)
		if err != nil {
			s.log.Warn("resolve next segment", logger.NewField("segment_id", segment.ID), logger.NewField("error", err))
			continue
		}
		if !ok {
			continue
		}

		handover, err := s.InitiateCoordination(ctx, entities.CoordinationRequest{
			DeliveryID:       segment.DeliveryID,
			CurrentSegmentID: segment.ID,
			NextSegmentID:    nextID,
			ActorID:          courierID,
		})
		switch {
		case errors.Is(err, entities.ErrInvalidTransition):
			continue
		case err != nil:
			s.log.Warn("initiate handover on proximity",
				logger.NewField("segment_id", segment.ID),
				logger.NewField("courier_id", courierID),
				logger.NewField("error", err),
			)
			continue
		}
		initiated = append(initiated, *handover)
	}

	return initiated, nil
}

// CancelIdleSegments отменяет назначенные сегменты без активности с before.
// Зависшие in_progress только логируются: посылка уже у курьера.
func (s *Service) CancelIdleSegments(ctx context.Context, before time.Time) (int, error) {
	idle, err := s.repository.ListSegmentsIdleSince(ctx, entities.SegmentAssigned, before)
	if err != nil {
		return 0, fmt.Errorf("list idle segments: %w", err)
	}

	var cancelled int
	for _, segment := range idle {
		_, err = s.cancel(ctx, segment.ID, "", "idle")
		switch {
		case errors.Is(err, entities.ErrInvalidCancellation), errors.Is(err, entities.ErrInvalidTransition):
			// сегмент ждёт своей очереди или уже сдвинулся
			continue
		case err != nil:
			s.log.Error("cancel idle segment", logger.NewField("segment_id", segment.ID), logger.NewField("error", err))
			continue
		}
		cancelled++
	}

	stale, err := s.repository.ListSegmentsIdleSince(ctx, entities.SegmentInProgress, before)
	if err != nil {
		return cancelled, fmt.Errorf("list stale segments: %w", err)
	}
	for _, segment := range stale {
		s.log.Warn("segment in progress without activity",
			logger.NewField("segment_id", segment.ID),
			logger.NewField("delivery_id", segment.DeliveryID),
			logger.NewField("last_activity_at", segment.LastActivityAt),
		)
	}

	return cancelled, nil
}

// move применяет переход, сохраняет сегмент и ставит событие в outbox.
func (s *Service) move(
	ctx context.Context,
	box *outbox,
	segment *entities.Segment,
	to entities.SegmentStatus,
	location *entities.Location,
) error {
	previous := segment.Status
	if !entities.CanTransition(previous, to) {
		return &entities.TransitionError{SegmentID: segment.ID, From: previous, To: to}
	}

	now := time.Now().UTC()
	segment.Status = to
	segment.LastActivityAt = now
	segment.UpdatedAt = now

	err := s.repository.SaveSegment(ctx, *segment)
	if err != nil {
		return fmt.Errorf("save segment: %w", err)
	}

	box.transitions = append(box.transitions, to)
	box.statusUpdated(*segment, previous, location)
	return nil
}

func (s *Service) currentSegments(ctx context.Context, deliveryID string) (*entities.Delivery, []entities.Segment, error) {
	delivery, err := s.repository.GetDelivery(ctx, deliveryID)
	if err != nil {
		return nil, nil, fmt.Errorf("get delivery: %w", err)
	}

	segments, err := s.repository.ListSegments(ctx, delivery.SegmentIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("list delivery segments: %w", err)
	}
	return delivery, segments, nil
}

func (s *Service) nextSegmentID(ctx context.Context, segment entities.Segment) (string, bool, error) {
	delivery, err := s.repository.GetDelivery(ctx, segment.DeliveryID)
	if err != nil {
		return "", false, err
	}

	position := slices.Index(delivery.SegmentIDs, segment.ID)
	if position < 0 || position == len(delivery.SegmentIDs)-1 {
		return "", false, nil
	}
	return delivery.SegmentIDs[position+1], true, nil
}

// lockPair блокирует два сегмента по возрастанию индекса, как и все
// многосегментные операции.
func (s *Service) lockPair(ctx context.Context, firstID, secondID string) (*entities.Segment, *entities.Segment, error) {
	first, err := s.repository.GetSegment(ctx, firstID)
	if err != nil {
		return nil, nil, fmt.Errorf("get segment %s: %w", firstID, err)
	}
	second, err := s.repository.GetSegment(ctx, secondID)
	if err != nil {
		return nil, nil, fmt.Errorf("get segment %s: %w", secondID, err)
	}

	order := []string{firstID, secondID}
	if second.Index < first.Index || (second.Index == first.Index && secondID < firstID) {
		order = []string{secondID, firstID}
	}

	locked := make(map[string]*entities.Segment, 2)
	for _, id := range order {
		segment, err := s.repository.GetSegmentForUpdate(ctx, id)
		if err != nil {
			return nil, nil, fmt.Errorf("lock segment %s: %w", id, err)
		}
		locked[id] = segment
	}
	return locked[firstID], locked[secondID], nil
}

// releaseCouriers выводит из канала доставки курьеров без незавершённых
// сегментов и закрывает канал целиком, когда доставка завершена.
func (s *Service) releaseCouriers(ctx context.Context, box *outbox, deliveryID string, courierIDs ...*string) error {
	_, segments, err := s.currentSegments(ctx, deliveryID)
	if err != nil {
		return err
	}

	if entities.DeriveDeliveryStatus(segments) == entities.DeliveryCompleted {
		box.closed = append(box.closed, deliveryID)
		return nil
	}

	for _, courierID := range courierIDs {
		if courierID == nil {
			continue
		}
		active := slices.ContainsFunc(segments, func(seg entities.Segment) bool {
			return seg.IsAssignedTo(*courierID) && !seg.Status.IsTerminal()
		})
		if !active {
			box.leaves = append(box.leaves, membership{deliveryID: deliveryID, userID: *courierID})
		}
	}
	return nil
}

func segmentAt(segments []entities.Segment, index int) (entities.Segment, bool) {
	for _, seg := range segments {
		if seg.Index == index {
			return seg, true
		}
	}
	return entities.Segment{}, false
}

func sameDelivery(deliveryID string, segments ...*entities.Segment) error {
	for _, seg := range segments {
		if seg.DeliveryID != deliveryID {
			return fmt.Errorf("segment %s in delivery %s: %w", seg.ID, deliveryID, entities.ErrSegmentNotFound)
		}
	}
	return nil
}
