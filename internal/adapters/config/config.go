package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kaw393939/qrgen/internal/domain/utils/location"
	"github.com/kaw393939/qrgen/pkg/logger"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const DefaultURL = "https://github.com/kaw393939"

// ErrUsage wraps command-line parse errors, including pflag.ErrHelp
var ErrUsage = errors.New("usage")

// Environment keys, also accepted from a .env file in the working directory
const (
	KeyDirectory = "QR_CODE_DIR"
	KeyFillColor = "FILL_COLOR"
	KeyBackColor = "BACK_COLOR"
	KeyLogoPath  = "QR_LOGO_PATH"
	KeyDebug     = "LOG_DEBUG"
	KeyLogToFile = "LOG_TO_FILE"
	KeyLogsDir   = "LOGS_DIR"
	KeyTimeZone  = "TIMEZONE"
)

type Config struct {
	URL          string
	Directory    string
	FillColor    string
	BackColor    string
	LogoPath     string
	WorkDir      string
	TimeLocation *time.Location
	Logger       logger.Config
}

// Get loads the configuration and initializes the logger
func Get(args []string) (*Config, error) {
	cfg, err := Load(args)
	if err != nil {
		return nil, err
	}

	if err = logger.Init(cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}
	return cfg, nil
}

// Load parses command-line args (without the program name) and reads the
// env overrides relative to the current working directory.
func Load(args []string) (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadIn(wd, args)
}

// LoadIn is Load with an explicit working directory.
// Process environment wins over <wd>/.env, .env over defaults.
func LoadIn(wd string, args []string) (*Config, error) {
	flags := pflag.NewFlagSet("qrgen", pflag.ContinueOnError)
	url := flags.String("url", DefaultURL, "The URL to encode in the QR code")
	if err := flags.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	v, err := newViper(wd)
	if err != nil {
		return nil, err
	}

	loc, err := location.Load(v.GetString(KeyTimeZone))
	if err != nil {
		return nil, err
	}

	return &Config{
		URL:          *url,
		Directory:    v.GetString(KeyDirectory),
		FillColor:    v.GetString(KeyFillColor),
		BackColor:    v.GetString(KeyBackColor),
		LogoPath:     v.GetString(KeyLogoPath),
		WorkDir:      wd,
		TimeLocation: loc,
		Logger: logger.Config{
			Debug:        v.GetBool(KeyDebug),
			TimeLocation: loc,
			LogToFile:    v.GetBool(KeyLogToFile),
			LogsDir:      v.GetString(KeyLogsDir),
		},
	}, nil
}

func newViper(dir string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault(KeyDirectory, "qr_codes")
	v.SetDefault(KeyFillColor, "red")
	v.SetDefault(KeyBackColor, "white")
	v.SetDefault(KeyLogoPath, "")
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogToFile, false)
	v.SetDefault(KeyLogsDir, "")
	v.SetDefault(KeyTimeZone, "Local")

	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return nil, err
	}

	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}
	return v, nil
}
