package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string           `yaml:"env" env:"ENV" env-default:"local"`
	HttpServer HttpServerConfig `yaml:"httpServer"`
	DBConfig   DBConfig         `yaml:"db"`
	Crawler    CrawlerConfig    `yaml:"crawler"`
	Notify     NotifyConfig     `yaml:"notify"`
}

type HttpServerConfig struct {
	Address string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost"`
	Port    string        `yaml:"port" env:"HTTP_PORT" env-default:"8080"`
	Timeout time.Duration `yaml:"timeout" env-default:"5s"`
}

type DBConfig struct {
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"DB_PORT" env-default:"5432"`
	Name     string `yaml:"name" env:"DB_NAME" env-default:"postgres"`
	User     string `yaml:"user" env:"DB_USER" env-default:"user"`
	Password string `yaml:"password" env:"DB_PASSWORD" env-default:"password"`
}

// CrawlerConfig holds the politeness and fallback knobs of the extraction
// pipeline. The defaults bound worst-case work per crawl invocation.
type CrawlerConfig struct {
	MaxDetailPages    int           `yaml:"maxDetailPages" env:"CRAWLER_MAX_DETAIL_PAGES" env-default:"30"`
	InterRequestDelay time.Duration `yaml:"interRequestDelay" env:"CRAWLER_INTER_REQUEST_DELAY" env-default:"500ms"`
	RequestTimeout    time.Duration `yaml:"requestTimeout" env:"CRAWLER_REQUEST_TIMEOUT" env-default:"15s"`
	DefaultCountry    string        `yaml:"defaultCountry" env:"CRAWLER_DEFAULT_COUNTRY" env-default:"Deutschland"`
	UserAgent         string        `yaml:"userAgent" env-default:"eventsCrawler/1.0 (+local events marketplace importer)"`
	AcceptLanguage    string        `yaml:"acceptLanguage" env-default:"de-DE,de;q=0.9,en;q=0.5"`
	JobBufferSize     int           `yaml:"jobBufferSize" env:"CRAWLER_JOB_BUFFER_SIZE" env-default:"10"`
	WorkersCount      int           `yaml:"workersCount" env:"CRAWLER_WORKERS_COUNT" env-default:"1"`
	Sites             []SiteConfig  `yaml:"sites"` // crawled on startup
}

// SiteConfig describes one organizer site crawled in the background.
type SiteConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type NotifyConfig struct {
	Enabled       bool   `yaml:"enabled" env:"NOTIFY_ENABLED" env-default:"false"`
	TgbotApiToken string `yaml:"tgbot_apitoken" env:"TGBOT_APITOKEN" env-default:""`
	AdminChatID   int64  `yaml:"adminChatId" env:"NOTIFY_ADMIN_CHAT_ID" env-default:"0"`
}

// MustLoad reads the config file named by CONFIG_PATH, with environment
// variables taking precedence. Without CONFIG_PATH only the environment and
// the struct defaults are used. Exits the process on failure.
func MustLoad() *Config {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read config from environment: %s", err)
		}
		return &cfg
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config %s: %s", configPath, err)
	}

	return &cfg
}
