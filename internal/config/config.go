package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Worker    WorkerConfig
	Dashboard DashboardConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	MetricsCacheTTL time.Duration
	StatsCacheTTL   time.Duration
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	MaxRetries        int
}

// DashboardConfig - parámetros de comportamiento del dashboard.
// Los umbrales de riesgo y la ventana de doble clic son ajustes de
// vigilancia sin justificación técnica fija: se exponen como configuración.
type DashboardConfig struct {
	// DoubleTapWindow - ventana máxima entre dos clics sobre la misma
	// entidad para interpretarlos como drill-down.
	DoubleTapWindow time.Duration
	// RiskMediumThreshold - actividad (casos + epizootias positivas)
	// a partir de la cual el nivel de riesgo es "medium".
	RiskMediumThreshold int
	// RiskHighThreshold - actividad a partir de la cual el nivel es "high".
	RiskHighThreshold int
	// SessionTTL - tiempo de inactividad tras el cual una sesión expira.
	SessionTTL time.Duration
	// MaxSessions - límite de sesiones simultáneas.
	MaxSessions int
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			MetricsCacheTTL: time.Duration(viper.GetInt("METRICS_CACHE_TTL")) * time.Second,
			StatsCacheTTL:   time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			Enabled:           viper.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     viper.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(viper.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			MaxRetries:        viper.GetInt("WORKER_MAX_RETRIES"),
		},
		Dashboard: DashboardConfig{
			DoubleTapWindow:     time.Duration(viper.GetInt("DASHBOARD_DOUBLE_TAP_WINDOW_MS")) * time.Millisecond,
			RiskMediumThreshold: viper.GetInt("DASHBOARD_RISK_MEDIUM_THRESHOLD"),
			RiskHighThreshold:   viper.GetInt("DASHBOARD_RISK_HIGH_THRESHOLD"),
			SessionTTL:          time.Duration(viper.GetInt("DASHBOARD_SESSION_TTL")) * time.Second,
			MaxSessions:         viper.GetInt("DASHBOARD_MAX_SESSIONS"),
		},
	}

	// Set default values if not provided
	if cfg.Cache.MetricsCacheTTL == 0 {
		cfg.Cache.MetricsCacheTTL = 5 * time.Minute
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 10 * time.Minute
	}
	if cfg.Worker.ConsumerGroup == "" {
		cfg.Worker.ConsumerGroup = "surveillance-refresh-workers"
	}
	if cfg.Worker.StreamReadTimeout == 0 {
		cfg.Worker.StreamReadTimeout = 5000 * time.Millisecond
	}
	if cfg.Worker.MaxRetries == 0 {
		cfg.Worker.MaxRetries = 3
	}
	if cfg.Dashboard.DoubleTapWindow == 0 {
		cfg.Dashboard.DoubleTapWindow = 400 * time.Millisecond
	}
	if cfg.Dashboard.RiskMediumThreshold == 0 {
		cfg.Dashboard.RiskMediumThreshold = 3
	}
	if cfg.Dashboard.RiskHighThreshold == 0 {
		cfg.Dashboard.RiskHighThreshold = 7
	}
	if cfg.Dashboard.SessionTTL == 0 {
		cfg.Dashboard.SessionTTL = 30 * time.Minute
	}
	if cfg.Dashboard.MaxSessions == 0 {
		cfg.Dashboard.MaxSessions = 500
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
