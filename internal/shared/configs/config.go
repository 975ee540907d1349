package configs

// Config holds all configuration for the application.
type Config struct {
	Log          LogConfig           `mapstructure:"log" validate:"required"`
	FileStorage  FileStorageConfig   `mapstructure:"file_storage" validate:"required"`
	Platform     PlatformConfig      `mapstructure:"platform" validate:"required"`
	Lookback     LookbackConfig      `mapstructure:"lookback" validate:"required"`
	Deviation    DeviationConfig     `mapstructure:"deviation" validate:"required"`
	Cache        CacheConfig         `mapstructure:"cache"`
	History      HistoryConfig       `mapstructure:"history"`
	Tracing      TracingConfig       `mapstructure:"tracing"`
	Server       ServerConfig        `mapstructure:"server" validate:"required"`
	Report       ReportConfig        `mapstructure:"report" validate:"required"`
	Environments []EnvironmentConfig `mapstructure:"environments" validate:"required,min=1,dive"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// PlatformConfig holds settings shared by every observability platform client.
type PlatformConfig struct {
	Site              string  `mapstructure:"site" validate:"required"`
	BaseURL           string  `mapstructure:"base_url" validate:"omitempty,url"` // overrides https://api.<site>
	Timeout           int     `mapstructure:"timeout" validate:"required,min=1"` // seconds, per HTTP request
	RequestsPerSecond float64 `mapstructure:"requests_per_second" validate:"gt=0"`
	Burst             int     `mapstructure:"burst" validate:"min=1"`
	PageSize          int     `mapstructure:"page_size" validate:"min=1,max=5000"`
}

// LookbackConfig holds the baseline window.
type LookbackConfig struct {
	WeeksBack int `mapstructure:"weeks_back" validate:"min=1,max=52"`
}

// DeviationConfig holds how current values are compared to baselines.
type DeviationConfig struct {
	Mode     string  `mapstructure:"mode" validate:"required,oneof=percent log_ratio"`
	Alpha    float64 `mapstructure:"alpha" validate:"gt=0"`
	Baseline string  `mapstructure:"baseline" validate:"required,oneof=business weekend auto"`
}

// CacheConfig holds the closed-range count cache configuration.
type CacheConfig struct {
	Type     string `mapstructure:"type" validate:"oneof=none memory redis"`
	RedisURL string `mapstructure:"redis_url" validate:"required_if=Type redis"`
	TTLHours int    `mapstructure:"ttl_hours" validate:"min=0"` // 0 = no expiry
	// SettleMinutes is how long after a range closes before its count may be cached.
	SettleMinutes int `mapstructure:"settle_minutes" validate:"min=0"`
}

// HistoryConfig holds the sqlite run history configuration.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required_if=Enabled true"`
}

// TracingConfig holds the OTLP trace exporter configuration.
type TracingConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint" validate:"required_if=Enabled true"`
}

// ServerConfig holds read API server configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// ReportConfig holds report and heatmap output configuration.
type ReportConfig struct {
	OutputDir      string   `mapstructure:"output_dir" validate:"required"`
	HeatmapMetrics []string `mapstructure:"heatmap_metrics"`
}

// EnvironmentConfig describes one monitored environment.
// Credentials are read from <CredentialsPrefix>_API_KEY and <CredentialsPrefix>_APP_KEY.
type EnvironmentConfig struct {
	Name              string            `mapstructure:"name" validate:"required"`
	CredentialsPrefix string            `mapstructure:"credentials_prefix" validate:"required"`
	Site              string            `mapstructure:"site"`
	Queries           map[string]string `mapstructure:"queries" validate:"required,min=1"`
	SyntheticTests    []string          `mapstructure:"synthetic_tests"`
}

// SiteOrDefault returns the environment site, falling back to the platform default.
func (e EnvironmentConfig) SiteOrDefault(defaultSite string) string {
	if e.Site != "" {
		return e.Site
	}
	return defaultSite
}

// Environment returns the named environment, if configured.
func (c *Config) Environment(name string) (EnvironmentConfig, bool) {
	for _, env := range c.Environments {
		if env.Name == name {
			return env, true
		}
	}
	return EnvironmentConfig{}, false
}
