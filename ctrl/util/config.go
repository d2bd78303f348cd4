package util

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/celskeggs/spikeplot/ctrl/chart"
	"github.com/celskeggs/spikeplot/trace"
)

const EnvPrefix = "SPIKEPLOT"

// Config is the command configuration. Values come from flags, then SPIKEPLOT_* environment
// variables, then the optional config file.
type Config struct {
	Window  int    `mapstructure:"window"`
	DPI     int    `mapstructure:"dpi"`
	Viewer  string `mapstructure:"viewer"`
	Verbose bool   `mapstructure:"verbose"`
}

// AddFlags registers the configuration flags on fs.
func AddFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "configuration file (yaml, toml or json)")
	fs.Int("window", trace.DefaultWindow, "number of leading samples to plot")
	fs.Int("dpi", chart.DefaultTheme().DPI, "display resolution")
	fs.String("viewer", "", "external image viewer command; the built-in window is used when empty")
	fs.BoolP("verbose", "v", false, "log every rendering step")
}

// NewViper binds fs and the environment, and reads the config file named by the config flag.
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %v", path, err)
		}
	}
	return v, nil
}

func LoadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Window < 0 {
		return Config{}, fmt.Errorf("invalid window: %d", cfg.Window)
	}
	if cfg.DPI <= 0 {
		return Config{}, fmt.Errorf("invalid dpi: %d", cfg.DPI)
	}
	return cfg, nil
}

// Theme is the default theme adjusted by the configuration.
func (c Config) Theme() chart.Theme {
	theme := chart.DefaultTheme()
	theme.DPI = c.DPI
	return theme
}
