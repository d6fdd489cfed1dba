package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080"`
	// MaxUploadMB caps the size of an uploaded shipment export.
	MaxUploadMB int `mapstructure:"MAX_UPLOAD_MB" default:"50"`

	// Cache holds the result cache configuration.
	Cache CacheConfig `mapstructure:",squash"`

	// Demo holds the demo dataset generator configuration.
	Demo DemoConfig `mapstructure:",squash"`

	// Remote holds the settings for fetching exports by URL.
	Remote RemoteConfig `mapstructure:",squash"`
}

// CacheConfig holds the connection details for the analysis result cache.
type CacheConfig struct {
	// RedisURL is the Redis connection string (redis://[:password@]host[:port][/db]).
	RedisURL string `mapstructure:"REDIS_URL" required:"true"`
	// ResultTTLSeconds is how long a stored analysis report stays retrievable.
	ResultTTLSeconds int `mapstructure:"RESULT_TTL_SECONDS" default:"3600"`
}

// DemoConfig holds the synthetic dataset parameters.
type DemoConfig struct {
	// Seed makes demo datasets reproducible.
	Seed int64 `mapstructure:"DEMO_SEED" default:"42"`
	// CompleteRows is the row count of the "complete" dataset.
	CompleteRows int `mapstructure:"DEMO_COMPLETE_ROWS" default:"1000"`
	// SampleRows is the row count of the "sample" dataset.
	SampleRows int `mapstructure:"DEMO_SAMPLE_ROWS" default:"100"`
}

// RemoteConfig holds limits for downloading exports from a URL.
type RemoteConfig struct {
	// TimeoutSeconds bounds a single download.
	TimeoutSeconds int `mapstructure:"REMOTE_FETCH_TIMEOUT_SECONDS" default:"30"`
	// MaxBytes caps the downloaded body size.
	MaxBytes int64 `mapstructure:"REMOTE_MAX_BYTES" default:"52428800"`
	// AllowedHosts is a comma-separated host allowlist; empty allows any public host.
	AllowedHosts string `mapstructure:"REMOTE_ALLOWED_HOSTS"`
	// AllowPrivateNetworks lets downloads reach loopback, private and link-local addresses.
	AllowPrivateNetworks bool `mapstructure:"REMOTE_ALLOW_PRIVATE_NETWORKS" default:"false"`
}

// ResultTTL returns the cache lifetime as a duration.
func (c CacheConfig) ResultTTL() time.Duration {
	return time.Duration(c.ResultTTLSeconds) * time.Second
}

// Timeout returns the download timeout as a duration.
func (c RemoteConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Hosts splits AllowedHosts into trimmed, non-empty entries.
func (c RemoteConfig) Hosts() []string {
	var hosts []string
	for _, h := range strings.Split(c.AllowedHosts, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags iterates over the struct fields, binds env keys and sets default values in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		defaultValue := field.Tag.Get("default")

		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind env %s: %w", key, err)
		}

		if defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
