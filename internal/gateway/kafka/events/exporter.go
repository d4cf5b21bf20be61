package events

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"relay/internal/entities"
	"relay/internal/pkg/eventcodec"
	"relay/pkg/logger"
)

const DefaultQueueSize = 1024

var (
	EventsExportedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kafka_events_exported_total",
			Help: "Total number of channel events written to Kafka",
		},
	)

	EventsExportDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_events_export_dropped_total",
			Help: "Total number of channel events not exported by reason",
		},
		[]string{"reason"},
	)
)

// Exporter пересылает события хаба во внешний notification sink. Observe не
// блокирует хаб: события копятся в очереди, которую вычитывает Run.
type Exporter struct {
	producer producer
	topic    string
	log      exporterLogger
	queue    chan entities.Event
}

func New(producer producer, topic string, log exporterLogger, queueSize int) *Exporter {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}

	return &Exporter{
		producer: producer,
		topic:    topic,
		log:      log.With(logger.NewField("component", "events-exporter"), logger.NewField("topic", topic)),
		queue:    make(chan entities.Event, queueSize),
	}
}

func (e *Exporter) Observe(event entities.Event) {
	select {
	case e.queue <- event:
	default:
		EventsExportDroppedTotal.WithLabelValues("queue_full").Inc()
	}
}

// Run блокирует до отмены ctx.
func (e *Exporter) Run(ctx context.Context) error {
	e.log.Info("events exporter started")

	for {
		select {
		case <-ctx.Done():
			e.log.Info("events exporter stopped")
			return nil
		case event := <-e.queue:
			err := e.export(ctx, event)
			if err != nil {
				EventsExportDroppedTotal.WithLabelValues("send_failed").Inc()
				e.log.Warn("export event",
					logger.NewField("event", event.Type.String()),
					logger.NewField("channel", event.ChannelID),
					logger.NewField("error", err),
				)
			}
		}
	}
}

func (e *Exporter) export(ctx context.Context, event entities.Event) error {
	data, err := eventcodec.Marshal(event)
	if err != nil {
		return err
	}

	err = e.producer.Send(ctx, e.topic, event.DeliveryID, data)
	if err != nil {
		return err
	}

	EventsExportedTotal.Inc()
	return nil
}
