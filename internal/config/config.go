package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `env:"ENV" env-required:"true"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer HttpServer
	Database   Database
	Limiter    Limiter
	Cache      Cache
	ESP        ESP
	Worker     Worker
}

type HttpServer struct {
	Port           string        `env:"HTTP_PORT" env-default:"3000"`
	Timeout        time.Duration `env:"HTTP_TIMEOUT" env-default:"60s" env-description:"read/write timeout, must cover GetResponse statistics fan-out"`
	IdleTimeout    time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	SwaggerEnabled bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	CORSOrigins    []string      `env:"HTTP_CORS_ORIGINS" env-default:"*" env-description:"comma separated origins, * allows any"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"10"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"10"`
	Migrate            bool          `env:"DB_MIGRATE" env-default:"true" env-description:"apply embedded schema migrations on start"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-default:"redis" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"localhost:6379" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"20" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"20" env-description:"max tcp connections pool size"`
	}
}

type ESP struct {
	MailchimpDomain    string        `env:"ESP_MAILCHIMP_DOMAIN" env-default:"api.mailchimp.com" env-description:"host suffix after the <dc>. server prefix"`
	GetResponseBaseURL string        `env:"ESP_GETRESPONSE_BASE_URL" env-default:"https://api.getresponse.com/v3"`
	RequestTimeout     time.Duration `env:"ESP_REQUEST_TIMEOUT" env-default:"30s"`
	ListsPageSize      int           `env:"ESP_LISTS_PAGE_SIZE" env-default:"1000" env-description:"lists requested in the single bulk fetch"`
	StatsConcurrency   int           `env:"ESP_STATS_CONCURRENCY" env-default:"10" env-description:"parallel GetResponse statistics calls"`
}

type Worker struct {
	Enabled     bool   `env:"WORKER_ENABLED" env-default:"false"`
	Concurrency int    `env:"WORKER_CONCURRENCY" env-default:"2"`
	VerifyCron  string `env:"WORKER_VERIFY_CRON" env-default:"@every 6h" env-description:"re-verification schedule for stored integrations"`
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return cfg
}

func Load() (*Config, error) {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
