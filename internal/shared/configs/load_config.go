package configs

import (
	"fmt"
	"strings"

	"log-baseline/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "LOGBASELINE"

// LoadConfig reads configuration from file, applies defaults and environment
// overrides (LOGBASELINE_LOG_LEVEL, ...) and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("file_storage.root_dir", "./data")

	v.SetDefault("platform.site", "datadoghq.com")
	v.SetDefault("platform.timeout", 30)
	v.SetDefault("platform.requests_per_second", 2)
	v.SetDefault("platform.burst", 1)
	v.SetDefault("platform.page_size", 1000)

	v.SetDefault("lookback.weeks_back", 2)

	v.SetDefault("deviation.mode", "percent")
	v.SetDefault("deviation.alpha", 1.0)
	v.SetDefault("deviation.baseline", "business")

	v.SetDefault("cache.type", "none")
	v.SetDefault("cache.ttl_hours", 0)
	v.SetDefault("cache.settle_minutes", 360)

	v.SetDefault("history.enabled", false)
	v.SetDefault("history.path", "./data/history.db")

	v.SetDefault("tracing.enabled", false)

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_header_timeout", 5)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 60)

	v.SetDefault("report.output_dir", "./output")
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.Platform.PageSize" -> "platform.pagesize"
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "required_if":
		return fmt.Sprintf("%s (required when %s)", field, e.Param())
	case "min", "max", "oneof", "gt":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
