// Package config defines service configuration and its loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers .env, an optional YAML file and env vars on top.
// - Validation errors wrap ErrInvalidConfig; load failures wrap ErrLoadConfig.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`
	// DatabaseURL locates the historical results store, e.g. "sqlite:data2022.sqlite".
	DatabaseURL string `koanf:"database_url"`
	// ModelPath and ScalerPath point at the fitted artifacts.
	ModelPath  string `koanf:"model_path"`
	ScalerPath string `koanf:"scaler_path"`
	// SeasonStart and SeasonEnd bound game_date (inclusive), formatted YYYY-MM-DD.
	SeasonStart string `koanf:"season_start"`
	SeasonEnd   string `koanf:"season_end"`
	// QueryTimeoutMS bounds each aggregate query.
	QueryTimeoutMS int `koanf:"query_timeout_ms"`
	// MetricsNamespace prefixes every Prometheus metric.
	MetricsNamespace string `koanf:"metrics_namespace"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		LogFormat:        "text",
		Addr:             ":8501",
		DatabaseURL:      "sqlite:data2022.sqlite",
		ModelPath:        "artifacts/model.yaml",
		ScalerPath:       "artifacts/scaler.yaml",
		SeasonStart:      "2022-01-01",
		SeasonEnd:        "2023-01-01",
		QueryTimeoutMS:   5000,
		MetricsNamespace: "courtside",
	}
}
