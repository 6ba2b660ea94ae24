package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rileylov/sortlist/reorder"
)

// defaultItems are shown when nothing else is configured.
var defaultItems = []string{"Grapefruit", "Yuzu", "Citron", "Kumquat", "Pomelo"}

type sliderConfig struct {
	Min  int `mapstructure:"min"`
	Max  int `mapstructure:"max"`
	Low  int `mapstructure:"low"`
	High int `mapstructure:"high"`
}

// Config is everything the program reads from flags, the environment and
// .sortlist.yaml.
type Config struct {
	Items        []string     `mapstructure:"items"`
	ItemsFile    string       `mapstructure:"items-file"`
	CancelPolicy string       `mapstructure:"cancel-policy"`
	ItemHeight   int          `mapstructure:"item-height"`
	Slider       sliderConfig `mapstructure:"slider"`
	LogFile      string       `mapstructure:"log-file"`
	Mouse        bool         `mapstructure:"mouse"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("cancel-policy", "commit")
	v.SetDefault("item-height", 1)
	v.SetDefault("mouse", true)
	v.SetDefault("slider.min", 1)
	v.SetDefault("slider.max", 0)
	v.SetDefault("slider.low", 0)
	v.SetDefault("slider.high", 0)
}

// loadConfig reads .sortlist.yaml from $SORTLIST_CONFIG_PATH or the
// working directory. A missing file is not an error.
func loadConfig(v *viper.Viper) (Config, error) {
	setDefaults(v)
	v.SetConfigName(".sortlist")
	v.SetEnvPrefix("SORTLIST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("SORTLIST_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if _, err := reorder.ParseCancelPolicy(cfg.CancelPolicy); err != nil {
		return Config{}, err
	}
	if cfg.ItemHeight < 1 {
		return Config{}, fmt.Errorf("item-height must be at least 1, got %d", cfg.ItemHeight)
	}
	return cfg, nil
}

// items resolves the configured titles into list items. Titles may repeat,
// so ids are positional.
func (c Config) items() ([]reorder.Item, error) {
	titles := c.Items
	if c.ItemsFile != "" {
		lines, err := readLines(c.ItemsFile)
		if err != nil {
			return nil, err
		}
		titles = append(titles, lines...)
	}
	if len(titles) == 0 {
		titles = defaultItems
	}
	out := make([]reorder.Item, len(titles))
	for i, title := range titles {
		out[i] = reorder.Item{ID: fmt.Sprintf("item-%d", i), Title: title}
	}
	return out, nil
}

// sliderRange fills unset slider bounds from the number of items.
func (c Config) sliderRange(n int) (lo, hi, low, high int) {
	lo, hi = c.Slider.Min, c.Slider.Max
	if hi <= lo {
		hi = max(n, lo+1)
	}
	low, high = c.Slider.Low, c.Slider.High
	if low == 0 {
		low = lo
	}
	if high == 0 {
		high = hi
	}
	return lo, hi, low, high
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open items file: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}
	return out, nil
}

// newLogger writes development logs to path, or discards them when path
// is empty since the terminal is taken by the UI.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
