// Loads run settings from an optional YAML file and MAGIT_STATS_ environment
// variables. Command-line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sinclairtarget/magit-stats/internal/report"
)

const (
	FileName  = ".magit-stats"
	EnvPrefix = "MAGIT_STATS"

	DefaultFormat   = "html"
	DefaultTimezone = "local"
)

var (
	ErrInvalidFormat   = errors.New("invalid report format")
	ErrInvalidTimezone = errors.New("invalid timezone")
	ErrInvalidDate     = errors.New("invalid date filter")
)

type Config struct {
	Format   string    `mapstructure:"format"`
	Name     string    `mapstructure:"name"`
	Minify   bool      `mapstructure:"minify"`
	Open     bool      `mapstructure:"open"`
	Stdout   bool      `mapstructure:"stdout"`
	Timezone string    `mapstructure:"timezone"`
	Log      LogConfig `mapstructure:"log"`
}

// Which commits are read from git log.
type LogConfig struct {
	All        bool     `mapstructure:"all"`
	Mailmap    bool     `mapstructure:"mailmap"`
	Since      string   `mapstructure:"since"`
	Until      string   `mapstructure:"until"`
	Authors    []string `mapstructure:"authors"`
	NotAuthors []string `mapstructure:"not_authors"`
}

// Reads configuration. An explicit path must exist; otherwise the first
// .magit-stats.yaml found in searchDirs is used, and none at all is fine.
func Load(path string, searchDirs []string) (_ *Config, err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("error loading config: %w", err)
		}
	}()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("yaml")
		for _, dir := range searchDirs {
			if dir != "" {
				v.AddConfigPath(dir)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err = v.ReadInConfig()
	if err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		logger().Debug("no config file found", "dirs", searchDirs)
	} else {
		logger().Debug("read config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("name", "")
	v.SetDefault("minify", false)
	v.SetDefault("open", false)
	v.SetDefault("stdout", false)
	v.SetDefault("timezone", DefaultTimezone)

	v.SetDefault("log.all", false)
	v.SetDefault("log.mailmap", true)
	v.SetDefault("log.since", "")
	v.SetDefault("log.until", "")
	v.SetDefault("log.authors", []string{})
	v.SetDefault("log.not_authors", []string{})
}

func (c *Config) Validate() error {
	_, err := c.ReportFormat()
	if err != nil {
		return err
	}

	_, err = c.Location()
	if err != nil {
		return err
	}

	if strings.HasPrefix(c.Log.Since, "-") {
		return fmt.Errorf("%w: since \"%s\"", ErrInvalidDate, c.Log.Since)
	}

	if strings.HasPrefix(c.Log.Until, "-") {
		return fmt.Errorf("%w: until \"%s\"", ErrInvalidDate, c.Log.Until)
	}

	return nil
}

func (c *Config) ReportFormat() (report.Format, error) {
	f, err := report.ParseFormat(strings.ToLower(c.Format))
	if err != nil {
		return f, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}

	return f, nil
}

// Time zone commit dates are bucketed in. "local" is the zone of the machine
// running the command; anything else is an IANA zone name.
func (c *Config) Location() (*time.Location, error) {
	switch strings.ToLower(c.Timezone) {
	case "", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTimezone, err)
	}

	return loc, nil
}
