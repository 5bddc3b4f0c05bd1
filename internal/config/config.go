package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// MinPort is the minimum valid port number
	MinPort = 1
	// MaxPort is the maximum valid port number
	MaxPort = 65535
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	App      AppConfig      `yaml:"app"`
	CORS     CORSConfig     `yaml:"cors"`
	Tracker  TrackerConfig  `yaml:"tracker"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"`
	Output       string `yaml:"output"`
	EnableCaller bool   `yaml:"enable_caller"`
	MaxSizeMB    int    `yaml:"max_size_mb"`
	MaxBackups   int    `yaml:"max_backups"`
	MaxAgeDays   int    `yaml:"max_age_days"`
	Compress     bool   `yaml:"compress"`
}

// AppConfig holds application metadata
type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
}

// CORSConfig lists allowed browser origins. Empty allows all.
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// TrackerConfig holds the behaviour of the tracker itself
type TrackerConfig struct {
	SeedMockData     bool          `yaml:"seed_mock_data"`
	SeedResumes      bool          `yaml:"seed_resumes"`
	LoginDelay       time.Duration `yaml:"login_delay"`
	DisplayName      string        `yaml:"display_name"`
	RecentLimit      int           `yaml:"recent_limit"`
	TimelineLimit    int           `yaml:"timeline_limit"`
	TopLocations     int           `yaml:"top_locations"`
	ActivityCapacity int           `yaml:"activity_capacity"`
}

// RabbitMQConfig holds the optional event broker settings
type RabbitMQConfig struct {
	Enabled    bool             `yaml:"enabled"`
	Host       string           `yaml:"host"`
	Port       int              `yaml:"port"`
	User       string           `yaml:"user"`
	Password   string           `yaml:"password"`
	VHost      string           `yaml:"vhost"`
	Exchange   ExchangeConfig   `yaml:"exchange"`
	Queue      QueueConfig      `yaml:"queue"`
	RoutingKey string           `yaml:"routing_key"`
	Connection ConnectionConfig `yaml:"connection"`
	Publish    PublishConfig    `yaml:"publish"`
}

// ExchangeConfig holds RabbitMQ exchange configuration
type ExchangeConfig struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Durable    bool   `yaml:"durable"`
	AutoDelete bool   `yaml:"auto_delete"`
}

// QueueConfig holds RabbitMQ queue configuration
type QueueConfig struct {
	Name    string `yaml:"name"`
	Durable bool   `yaml:"durable"`
}

// ConnectionConfig holds RabbitMQ connection settings
type ConnectionConfig struct {
	RetryAttempts int           `yaml:"retry_attempts"`
	RetryInterval time.Duration `yaml:"retry_interval"`
	Heartbeat     time.Duration `yaml:"heartbeat"`
}

// PublishConfig holds RabbitMQ publish retry settings
type PublishConfig struct {
	RetryAttempts     int           `yaml:"retry_attempts"`
	RetryInterval     time.Duration `yaml:"retry_interval"`
	BackoffMultiplier float64       `yaml:"backoff_multiplier"`
}

// Defaults returns the configuration used for any key the file leaves out
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
		App: AppConfig{
			Name:        "tracker-api",
			Environment: "development",
		},
		Tracker: TrackerConfig{
			SeedMockData:     true,
			SeedResumes:      true,
			LoginDelay:       time.Second,
			DisplayName:      "John Doe",
			RecentLimit:      5,
			TimelineLimit:    10,
			TopLocations:     5,
			ActivityCapacity: 50,
		},
	}
}

// Load reads the configuration file on top of Defaults
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Defaults()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port < MinPort || c.Server.Port > MaxPort {
		return fmt.Errorf("invalid server port: %d (must be between %d and %d)", c.Server.Port, MinPort, MaxPort)
	}

	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server shutdown_timeout must be greater than 0")
	}

	if c.Tracker.LoginDelay < 0 {
		return errors.New("tracker login_delay must not be negative")
	}

	if c.Tracker.RecentLimit < 0 || c.Tracker.TimelineLimit < 0 || c.Tracker.TopLocations < 0 {
		return errors.New("tracker view limits must not be negative")
	}

	if c.Tracker.ActivityCapacity < 0 {
		return errors.New("tracker activity_capacity must not be negative")
	}

	if c.RabbitMQ.Enabled {
		return c.RabbitMQ.validate()
	}

	return nil
}

func (c *RabbitMQConfig) validate() error {
	if c.Host == "" {
		return errors.New("rabbitmq host is required")
	}

	if c.Port < MinPort || c.Port > MaxPort {
		return fmt.Errorf("invalid rabbitmq port: %d (must be between %d and %d)", c.Port, MinPort, MaxPort)
	}

	if c.Exchange.Name == "" {
		return errors.New("rabbitmq exchange name is required")
	}

	return nil
}
