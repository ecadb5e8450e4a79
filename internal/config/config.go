package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Tables   TablesConfig   `mapstructure:"tables"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	NATS     NATSConfig     `mapstructure:"nats"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Payments PaymentsConfig `mapstructure:"payments"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type AWSConfig struct {
	Region           string `mapstructure:"region"`
	AccessKeyID      string `mapstructure:"access_key_id"`
	SecretAccessKey  string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint string `mapstructure:"dynamodb_endpoint"`
	S3Endpoint       string `mapstructure:"s3_endpoint"`
}

type TablesConfig struct {
	Estimates         string `mapstructure:"estimates"`
	Quotations        string `mapstructure:"quotations"`
	Projects          string `mapstructure:"projects"`
	Customers         string `mapstructure:"customers"`
	Freelancers       string `mapstructure:"freelancers"`
	ServiceTypes      string `mapstructure:"service_types"`
	MilestonePayments string `mapstructure:"milestone_payments"`
}

type JWTConfig struct {
	Secret string `mapstructure:"secret"`
	Issuer string `mapstructure:"issuer"`
}

type NATSConfig struct {
	URL           string `mapstructure:"url"`
	SubjectPrefix string `mapstructure:"subject_prefix"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type StorageConfig struct {
	Bucket        string        `mapstructure:"bucket"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `mapstructure:"mercadopago_access_token"`
	Mock                   bool   `mapstructure:"mock"`
	TestPayerEmail         string `mapstructure:"test_payer_email"`
	TestPayerUserID        string `mapstructure:"test_payer_user_id"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// IsDevelopment reports whether gin runs in debug mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Mode == "debug"
}

// Load reads ./config.yaml (optional) and environment variables. Environment
// variables win.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that required configuration values are set.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")

	v.SetDefault("tables.estimates", "estimates")
	v.SetDefault("tables.quotations", "quotations")
	v.SetDefault("tables.projects", "projects")
	v.SetDefault("tables.customers", "customers")
	v.SetDefault("tables.freelancers", "freelancers")
	v.SetDefault("tables.service_types", "service_types")
	v.SetDefault("tables.milestone_payments", "milestone_payments")

	v.SetDefault("jwt.issuer", "dealflow")
	v.SetDefault("nats.subject_prefix", "notifications.dealflow")
	v.SetDefault("redis.cache_ttl", 5*time.Minute)
	v.SetDefault("storage.presign_expiry", 15*time.Minute)
	v.SetDefault("log.level", "info")
}

func bindEnvVariables(v *viper.Viper) {
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "GIN_MODE")
	v.BindEnv("server.allowed_origins", "CORS_ALLOWED_ORIGINS")

	v.BindEnv("aws.region", "AWS_REGION")
	v.BindEnv("aws.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("aws.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("aws.dynamodb_endpoint", "DYNAMODB_ENDPOINT")
	v.BindEnv("aws.s3_endpoint", "S3_ENDPOINT")

	v.BindEnv("tables.estimates", "ESTIMATES_TABLE")
	v.BindEnv("tables.quotations", "QUOTATIONS_TABLE")
	v.BindEnv("tables.projects", "PROJECTS_TABLE")
	v.BindEnv("tables.customers", "CUSTOMERS_TABLE")
	v.BindEnv("tables.freelancers", "FREELANCERS_TABLE")
	v.BindEnv("tables.service_types", "SERVICE_TYPES_TABLE")
	v.BindEnv("tables.milestone_payments", "MILESTONE_PAYMENTS_TABLE")

	v.BindEnv("jwt.secret", "JWT_SECRET")
	v.BindEnv("jwt.issuer", "JWT_ISSUER")

	v.BindEnv("nats.url", "NATS_URL")
	v.BindEnv("nats.subject_prefix", "NATS_SUBJECT_PREFIX")

	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("redis.cache_ttl", "CATALOG_CACHE_TTL")

	v.BindEnv("storage.bucket", "S3_BUCKET")
	v.BindEnv("storage.presign_expiry", "S3_PRESIGN_EXPIRY")

	v.BindEnv("payments.mercadopago_access_token", "MERCADOPAGO_ACCESS_TOKEN")
	v.BindEnv("payments.mock", "PAYMENT_GATEWAY_MOCK")
	v.BindEnv("payments.test_payer_email", "MERCADOPAGO_TEST_PAYER_EMAIL")
	v.BindEnv("payments.test_payer_user_id", "MERCADOPAGO_TEST_PAYER_USER_ID")

	v.BindEnv("log.level", "LOG_LEVEL")
}
