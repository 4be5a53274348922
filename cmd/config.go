package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"logistics/internal/pkg/errs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort       string
	LogLevel       string
	LogFormat      string
	LabelLocale    string
	CurrencySymbol string
}

const (
	keyHTTPPort       = "HTTP_PORT"
	keyLogLevel       = "LOG_LEVEL"
	keyLogFormat      = "LOG_FORMAT"
	keyLabelLocale    = "LABEL_LOCALE"
	keyCurrencySymbol = "CURRENCY_SYMBOL"
)

// LoadConfig resolves the configuration from, in increasing priority: built-in defaults,
// the optional dotenv file at envFile and the process environment.
// A missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	v := viper.New()

	v.SetDefault(keyHTTPPort, "8080")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "json")
	v.SetDefault(keyLabelLocale, "pt-BR")
	v.SetDefault(keyCurrencySymbol, "R$")

	if envFile != "" {
		values, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read %s: %w", envFile, err)
		default:
			for key, value := range values {
				v.SetDefault(strings.ToUpper(key), value)
			}
		}
	}

	v.AutomaticEnv()

	cfg := Config{
		HTTPPort:       strings.TrimSpace(v.GetString(keyHTTPPort)),
		LogLevel:       strings.TrimSpace(v.GetString(keyLogLevel)),
		LogFormat:      strings.TrimSpace(v.GetString(keyLogFormat)),
		LabelLocale:    strings.TrimSpace(v.GetString(keyLabelLocale)),
		CurrencySymbol: strings.TrimSpace(v.GetString(keyCurrencySymbol)),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing or unsupported setting at once.
func (c Config) Validate() error {
	var errList []error

	if c.HTTPPort == "" {
		errList = append(errList, errs.NewValueIsRequiredError(keyHTTPPort))
	}
	if c.LabelLocale == "" {
		errList = append(errList, errs.NewValueIsRequiredError(keyLabelLocale))
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			keyLogFormat,
			fmt.Errorf("%q is neither json nor text", c.LogFormat),
		))
	}

	return errors.Join(errList...)
}

// SetupLogger builds the root logger writing to w with the configured level and format.
func SetupLogger(cfg Config, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.LogFormat) == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}
