package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type (
	Tasks struct {
		IdleSegmentTTL           time.Duration
		IdleSegmentCheckInterval time.Duration // 0 - задача выключена
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Storage struct {
		Driver string // memory | postgres
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Geocoder struct {
		GRPCHost string
	}

	Kafka struct {
		Enabled        bool
		Brokers        string
		PositionsTopic string
		EventsTopic    string
		ChatTopic      string
		ConsumerGroup  string
		Sarama         Sarama
		Handlers       KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PositionChanged PositionChanged
	}

	PositionChanged struct {
		ProcessTimeout time.Duration
	}

	// Pricing: нулевые значения заменяются тарифами по умолчанию
	Pricing struct {
		DistanceRate float64
		TimeRate     float64
		MinPrice     float64
	}

	Marketplace struct {
		BroadcastRadiusKm float64
	}

	Handoff struct {
		ProximityRadiusM        float64
		RequireVerificationCode bool
	}

	Hub struct {
		SubscriberBuffer int
	}

	Config struct {
		Tasks       Tasks
		Server      HTTPServer
		Storage     Storage
		Database    Database
		Geocoder    Geocoder
		Kafka       Kafka
		Pricing     Pricing
		Marketplace Marketplace
		Handoff     Handoff
		Hub         Hub
	}
)

const defaultSubscriberBuffer = 64

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	idleTTL, err := osGetEnvDuration("BACKGROUND_IDLE_SEGMENT_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	idleInterval, err := osGetEnvDuration("BACKGROUND_IDLE_SEGMENT_CHECK_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaEnabled, err := osGetBool("KAFKA_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	positionChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_POSITION_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	distanceRate, err := osGetFloat("PRICING_DISTANCE_RATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	timeRate, err := osGetFloat("PRICING_TIME_RATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minPrice, err := osGetFloat("PRICING_MIN_PRICE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	broadcastRadius, err := osGetFloat("MARKETPLACE_BROADCAST_RADIUS_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	proximityRadius, err := osGetFloat("HANDOFF_PROXIMITY_RADIUS_M")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requireCode, err := osGetBool("HANDOFF_REQUIRE_VERIFICATION_CODE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	subscriberBuffer, err := osGetInt("HUB_SUBSCRIBER_BUFFER")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if subscriberBuffer == 0 {
		subscriberBuffer = defaultSubscriberBuffer
	}

	storageDriver := os.Getenv("STORAGE_DRIVER")
	if storageDriver == "" {
		storageDriver = StorageMemory
	}

	return &Config{
		Tasks: Tasks{
			IdleSegmentTTL:           idleTTL,
			IdleSegmentCheckInterval: idleInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Storage: Storage{
			Driver: storageDriver,
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Geocoder: Geocoder{
			GRPCHost: os.Getenv("GEOCODER_GRPC_HOST"),
		},
		Kafka: Kafka{
			Enabled:        kafkaEnabled,
			Brokers:        os.Getenv("KAFKA_BROKERS"),
			PositionsTopic: os.Getenv("KAFKA_POSITIONS_TOPIC"),
			EventsTopic:    os.Getenv("KAFKA_EVENTS_TOPIC"),
			ChatTopic:      os.Getenv("KAFKA_CHAT_TOPIC"),
			ConsumerGroup:  os.Getenv("KAFKA_CONSUMER_GROUP"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PositionChanged: PositionChanged{
					ProcessTimeout: positionChangedTimeout,
				},
			},
		},
		Pricing: Pricing{
			DistanceRate: distanceRate,
			TimeRate:     timeRate,
			MinPrice:     minPrice,
		},
		Marketplace: Marketplace{
			BroadcastRadiusKm: broadcastRadius,
		},
		Handoff: Handoff{
			ProximityRadiusM:        proximityRadius,
			RequireVerificationCode: requireCode,
		},
		Hub: Hub{
			SubscriberBuffer: subscriberBuffer,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	switch cfg.Storage.Driver {
	case StorageMemory:
	case StoragePostgres:
		if err := validateDatabase(cfg.Database); err != nil {
			return err
		}
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageMemory, StoragePostgres, cfg.Storage.Driver)
	}

	if cfg.Geocoder.GRPCHost == "" {
		return errors.New("GEOCODER_GRPC_HOST is required")
	}

	if cfg.Kafka.Enabled {
		if err := validateKafka(cfg.Kafka); err != nil {
			return err
		}
	}

	if cfg.Tasks.IdleSegmentCheckInterval > 0 && cfg.Tasks.IdleSegmentTTL == time.Duration(0) {
		return errors.New("BACKGROUND_IDLE_SEGMENT_TTL is required when BACKGROUND_IDLE_SEGMENT_CHECK_INTERVAL is set")
	}

	if cfg.Pricing.DistanceRate < 0 || cfg.Pricing.TimeRate < 0 || cfg.Pricing.MinPrice < 0 {
		return errors.New("PRICING_* rates must not be negative")
	}
	if cfg.Marketplace.BroadcastRadiusKm < 0 {
		return errors.New("MARKETPLACE_BROADCAST_RADIUS_KM must not be negative")
	}
	if cfg.Handoff.ProximityRadiusM < 0 {
		return errors.New("HANDOFF_PROXIMITY_RADIUS_M must not be negative")
	}
	if cfg.Hub.SubscriberBuffer < 0 {
		return errors.New("HUB_SUBSCRIBER_BUFFER must not be negative")
	}

	return nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateKafka(k Kafka) error {
	if k.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if k.PositionsTopic == "" {
		return errors.New("KAFKA_POSITIONS_TOPIC is required")
	}
	if k.EventsTopic == "" {
		return errors.New("KAFKA_EVENTS_TOPIC is required")
	}
	if k.ChatTopic == "" {
		return errors.New("KAFKA_CHAT_TOPIC is required")
	}
	if k.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if k.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if k.Handlers.PositionChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_POSITION_CHANGED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
