package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	HTTPServer HttpServer `yaml:"http_server" env-required:"true"`
	Database   Database   `yaml:"database"`
	Auth       Auth       `yaml:"auth"`
	Push       Push       `yaml:"push"`
	NATS       NATS       `yaml:"nats"`
	Feed       Feed       `yaml:"feed"`
}

type HttpServer struct {
	Address        string        `yaml:"address" env-default:"localhost:8080"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"HTTP_ALLOWED_ORIGINS" env-separator:","`
}

type Database struct {
	URL            string `yaml:"url" env:"DATABASE_URL"`
	MigrationsPath string `yaml:"migrations_path" env:"MIGRATIONS_PATH" env-default:"file://migrations"`
}

type Auth struct {
	CoachSecret  string `yaml:"coach_secret" env:"COACH_JWT_SECRET"`
	ParentSecret string `yaml:"parent_secret" env:"PARENT_JWT_SECRET"`
}

// Push configures the external push dispatch gateway.
type Push struct {
	BaseURL    string        `yaml:"base_url" env:"PUSH_BASE_URL"`
	ServiceKey string        `yaml:"service_key" env:"PUSH_SERVICE_KEY"`
	Timeout    time.Duration `yaml:"timeout" env:"PUSH_TIMEOUT" env-default:"30s"`
}

type NATS struct {
	URL           string `yaml:"url" env:"NATS_URL"`
	SubjectPrefix string `yaml:"subject_prefix" env:"NATS_SUBJECT_PREFIX" env-default:"expresshub"`
}

type Feed struct {
	ScheduleChangeWindow time.Duration `yaml:"schedule_change_window" env-default:"168h"`
}

// MustLoad panics if config can not be found.
func MustLoad() *Config {
	// .env is optional, real environment wins
	_ = godotenv.Load()

	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is required")
	}

	if _, err := os.Stat(configPath); err != nil {
		panic("config file does not exist:" + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from cmd flag or environment variable.
// flag > env > default.
// default = "".
func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "Path to the configuration file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
