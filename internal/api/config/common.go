package config

// Config 配置主体
type Config struct {
	Server                   ServerConfig             `mapstructure:"server"`
	DB                       DBConfig                 `mapstructure:"database"`
	Redis                    RedisConfig              `mapstructure:"redis"`
	Logstash                 LogstashConfig           `mapstructure:"logstash"`
	Kafka                    KafkaConfig              `mapstructure:"kafka"`
	KafkaInteractionConsumer KafkaInteractionConsumer `mapstructure:"kafka_interaction_consumer"`
	Moderation               ModerationConfig         `mapstructure:"moderation"`
	Ranking                  RankingConfig            `mapstructure:"ranking"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// LogstashConfig 日志上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}

type KafkaConfig struct {
	Brokers  []string       `mapstructure:"brokers"`
	Sasl     SaslConfig     `mapstructure:"sasl"`
	Consumer ConsumerConfig `mapstructure:"consumer"`
}

type SaslConfig struct {
	Enable   bool   `mapstructure:"enable"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type ConsumerConfig struct {
	SessionTimeout    int `mapstructure:"session_timeout"`
	HeartbeatInterval int `mapstructure:"heartbeat_interval"`
	RebalanceTimeout  int `mapstructure:"rebalance_timeout"`
	MaxProcessingTime int `mapstructure:"max_processing_time"`
}

type KafkaInteractionConsumer struct {
	Topic   string `mapstructure:"topic"`
	GroupID string `mapstructure:"group_id"`
}

// ModerationConfig 审核中心客户端配置
type ModerationConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	ApiKey    string `mapstructure:"api_key"`
	TimeoutMs int    `mapstructure:"timeout_ms"`
}

// RankingConfig 排序引擎可调参数，零值回退引擎默认值
type RankingConfig struct {
	FreshnessHalfLifeHours  float64 `mapstructure:"freshness_half_life_hours"`
	EngagementSaturation    float64 `mapstructure:"engagement_saturation"`
	CategoryBlend           float64 `mapstructure:"category_blend"`
	AuthorBlend             float64 `mapstructure:"author_blend"`
	ModerationPenaltyFactor float64 `mapstructure:"moderation_penalty_factor"`
	InterestHalfLifeDays    float64 `mapstructure:"interest_half_life_days"`
	ReinforcementStep       float64 `mapstructure:"reinforcement_step"`
	AuthorAffinityCap       int     `mapstructure:"author_affinity_cap"`
	DiversityWindow         int     `mapstructure:"diversity_window"`
	DiversityLookahead      int     `mapstructure:"diversity_lookahead"`
	ViralityReferenceHour   float64 `mapstructure:"virality_reference_hour"`
	ViralityReferenceDay    float64 `mapstructure:"virality_reference_day"`
	ViralityReferenceWeek   float64 `mapstructure:"virality_reference_week"`
	TrendingDefaultLimit    int     `mapstructure:"trending_default_limit"`

	CandidatePoolSize   int `mapstructure:"candidate_pool_size"`
	TrendingCacheTTLMin int `mapstructure:"trending_cache_ttl_min"`
	OverrideTTLDays     int `mapstructure:"override_ttl_days"`
}
