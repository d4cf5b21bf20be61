//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"google.golang.org/grpc"
	geocoderGateway "relay/internal/gateway/grpc/geocoder"
	"relay/internal/gateway/kafka/chat_history"
	"relay/internal/gateway/kafka/events"
	"relay/internal/handlers/kafka-consumer/position_changed"
	"relay/internal/handlers/rest/courier_position_get"
	"relay/internal/handlers/rest/courier_position_post"
	"relay/internal/handlers/rest/delivery_chat_post"
	"relay/internal/handlers/rest/delivery_coordination_post"
	"relay/internal/handlers/rest/delivery_get"
	"relay/internal/handlers/rest/delivery_post"
	"relay/internal/handlers/rest/handover_confirm_post"
	"relay/internal/handlers/rest/route_optimize_post"
	"relay/internal/handlers/rest/segment_accept_post"
	"relay/internal/handlers/rest/segment_proposal_post"
	"relay/internal/handlers/rest/segment_status_post"
	"relay/internal/handlers/rest/segments_available_get"
	"relay/internal/handlers/tasks/idle_segments"
	"relay/internal/pkg/config"
	"relay/internal/pkg/factory/segment_duration"
	"relay/internal/pkg/factory/segment_price"
	"relay/internal/pkg/factory/status_handle"
	"relay/internal/pkg/hub"
	"relay/internal/pkg/kafka"
	chatService "relay/internal/service/chat"
	fleetService "relay/internal/service/fleet"
	handoffService "relay/internal/service/handoff"
	marketplaceService "relay/internal/service/marketplace"
	routingService "relay/internal/service/routing"
	statusService "relay/internal/service/status"
	"relay/pkg/background"
	"relay/pkg/logger"
)

// Repository объединяет требования всех сервисов к хранилищу.
// Реализуют memory.Store и postgres.Repository.
type Repository interface {
	marketplaceService.Repository
	handoffService.Repository
	chatService.Repository
	fleetService.Repository
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Storage выбранный драйвер хранилища (STORAGE_DRIVER).
type Storage struct {
	Repository Repository
	TxManager  TxManager
}

type Application struct {
	ServiceRouting     ServiceRouting
	ServiceMarketplace ServiceMarketplace
	ServiceHandoff     ServiceHandoff
	ServiceStatus      ServiceStatus
	ServiceChat        ServiceChat
	ServiceFleet       ServiceFleet
	Hub                *hub.Hub
	EventExporter      *events.Exporter // nil, если Kafka выключена
	BackgroundWorkers  *background.Worker
}

type ServiceRouting interface {
	route_optimize_post.Service
}

type ServiceMarketplace interface {
	delivery_post.Service
	delivery_get.Service
	segments_available_get.Service
	segment_proposal_post.Service
	segment_accept_post.Service
}

type ServiceHandoff interface {
	delivery_coordination_post.Service
	handover_confirm_post.Service
}

type ServiceStatus interface {
	segment_status_post.Service
}

type ServiceChat interface {
	delivery_chat_post.Service
}

type ServiceFleet interface {
	courier_position_post.Service
	courier_position_get.Service
	position_changed.Service
}

// InitializeApplication для HTTP сервиса (cmd/service).
// producer == nil, если Kafka выключена.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	storage *Storage,
	conn *grpc.ClientConn,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideHub,
		provideGeocoder,
		providePriceFactory,
		segment_duration.New,
		provideRoutingService,

		provideMarketplaceService,
		provideHandoffService,
		provideStatusHandlerFactory,
		provideStatusService,
		provideHistorySink,
		provideChatService,
		provideFleetService,
		provideEventExporter,

		provideIdleSegmentsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceRouting), new(*routingService.Service)),
		wire.Bind(new(ServiceMarketplace), new(*marketplaceService.Service)),
		wire.Bind(new(ServiceHandoff), new(*handoffService.Service)),
		wire.Bind(new(ServiceStatus), new(*statusService.Service)),
		wire.Bind(new(ServiceChat), new(*chatService.Service)),
		wire.Bind(new(ServiceFleet), new(*fleetService.Service)),

		wire.Bind(new(routingService.Geocoder), new(*geocoderGateway.GeocoderGateway)),
		wire.Bind(new(routingService.PriceFactory), new(*segment_price.SegmentPriceFactory)),
		wire.Bind(new(routingService.DurationFactory), new(*segment_duration.SegmentDurationFactory)),
		wire.Bind(new(statusService.HandlerFactory), new(*status_handle.StatusHandlerFactory)),
	)
	return &Application{}, nil
}

func provideHub(log logger.Logger, cfg *config.Config) *hub.Hub {
	return hub.New(log, cfg.Hub.SubscriberBuffer)
}

func provideGeocoder(conn *grpc.ClientConn) *geocoderGateway.GeocoderGateway {
	return geocoderGateway.New(conn)
}

// providePriceFactory: нулевые тарифы из конфига заменяются значениями по умолчанию.
func providePriceFactory(cfg *config.Config) *segment_price.SegmentPriceFactory {
	rates := segment_price.DefaultRates()
	if cfg.Pricing.DistanceRate > 0 {
		rates.DistanceRate = cfg.Pricing.DistanceRate
	}
	if cfg.Pricing.TimeRate > 0 {
		rates.TimeRate = cfg.Pricing.TimeRate
	}
	if cfg.Pricing.MinPrice > 0 {
		rates.MinPrice = cfg.Pricing.MinPrice
	}
	return segment_price.New(rates)
}

func provideRoutingService(
	geocoder routingService.Geocoder,
	priceFactory routingService.PriceFactory,
	durationFactory routingService.DurationFactory,
) *routingService.Service {
	return routingService.New(geocoder, priceFactory, durationFactory)
}

func provideMarketplaceService(
	storage *Storage,
	h *hub.Hub,
	log logger.Logger,
	cfg *config.Config,
) *marketplaceService.Service {
	return marketplaceService.New(
		storage.Repository,
		storage.TxManager,
		h,
		log,
		marketplaceService.Config{BroadcastRadiusKm: cfg.Marketplace.BroadcastRadiusKm},
	)
}

func provideHandoffService(
	storage *Storage,
	marketplace *marketplaceService.Service,
	h *hub.Hub,
	log logger.Logger,
	cfg *config.Config,
) *handoffService.Service {
	return handoffService.New(
		storage.Repository,
		storage.TxManager,
		marketplace,
		h,
		log,
		handoffService.Config{
			RequireVerificationCode: cfg.Handoff.RequireVerificationCode,
			ProximityRadiusM:        cfg.Handoff.ProximityRadiusM,
		},
	)
}

func provideStatusHandlerFactory(handoff *handoffService.Service) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(handoff)
}

func provideStatusService(storage *Storage, factory statusService.HandlerFactory) *statusService.Service {
	return statusService.New(storage.Repository, factory)
}

// provideHistorySink: без Kafka история чата не сохраняется.
func provideHistorySink(producer *kafka.Producer, cfg *config.Config) chatService.HistorySink {
	if producer == nil {
		return chatService.NopHistorySink()
	}
	return chat_history.New(producer, cfg.Kafka.ChatTopic)
}

func provideChatService(
	storage *Storage,
	h *hub.Hub,
	history chatService.HistorySink,
	log logger.Logger,
) *chatService.Service {
	return chatService.New(storage.Repository, h, history, log)
}

func provideFleetService(storage *Storage, handoff *handoffService.Service, log logger.Logger) *fleetService.Service {
	return fleetService.New(storage.Repository, handoff, log)
}

// provideEventExporter подписывает экспортёр на все события хаба.
func provideEventExporter(h *hub.Hub, producer *kafka.Producer, log logger.Logger, cfg *config.Config) *events.Exporter {
	if producer == nil {
		return nil
	}
	exporter := events.New(producer, cfg.Kafka.EventsTopic, log, events.DefaultQueueSize)
	h.AddTap(exporter)
	return exporter
}

func provideIdleSegmentsTask(
	log logger.Logger,
	handoff *handoffService.Service,
	cfg *config.Config,
) *idle_segments.IdleSegments {
	if cfg.Tasks.IdleSegmentCheckInterval <= 0 {
		return nil
	}
	return idle_segments.NewIdleSegments(log, handoff, cfg.Tasks.IdleSegmentCheckInterval, cfg.Tasks.IdleSegmentTTL)
}

func provideTaskList(idleSegmentsTask *idle_segments.IdleSegments) []background.Task {
	if idleSegmentsTask == nil {
		return nil
	}
	return []background.Task{
		idleSegmentsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
