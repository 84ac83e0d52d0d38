package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dereckquock/keepers/platforms/fantasypros"
	"github.com/dereckquock/keepers/platforms/sleeper"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// NoPreviousLeague is used in place of a previous league id for leagues in
// their first season.
const NoPreviousLeague = "none"

type Config struct {
	Port            int
	SleeperURL      string
	MarketValuesURL string
	// RedisURL selects the redis cache, when empty responses are cached in
	// memory.
	RedisURL        string
	CacheTTL        time.Duration
	WarmupFrequency time.Duration
	LogLevel        string
	LogFormat       string
	Leagues         []League
}

// League is a preset shown on the home page.
type League struct {
	Name     string `yaml:"name"`
	Current  string `yaml:"current"`
	Previous string `yaml:"previous"`
}

// Path is the league home page.
func (l League) Path() string {
	previous := l.Previous
	if previous == "" {
		previous = NoPreviousLeague
	}
	return fmt.Sprintf("/leagues/%s/%s", previous, l.Current)
}

// Load reads the configuration from the environment, after loading a .env
// file if there is one.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:            3000, // 3000 is the default
		SleeperURL:      sleeper.SleeperURL,
		MarketValuesURL: fantasypros.DraftWizardURL,
		CacheTTL:        24 * time.Hour,
		WarmupFrequency: 24 * time.Hour,
		LogLevel:        "info",
		LogFormat:       "text",
	}

	var err error
	if port := getenv("PORT"); port != "" {
		cfg.Port, err = strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("error parsing port number: %w", err)
		}
	}
	if v := getenv("SLEEPER_URL"); v != "" {
		cfg.SleeperURL = strings.TrimSuffix(v, "/")
	}
	if v := getenv("MARKET_VALUES_URL"); v != "" {
		cfg.MarketValuesURL = v
	}
	cfg.RedisURL = getenv("REDIS_URL")

	if cfg.CacheTTL, err = duration(getenv, "CACHE_TTL", cfg.CacheTTL); err != nil {
		return nil, err
	}
	if cfg.WarmupFrequency, err = duration(getenv, "WARMUP_FREQUENCY", cfg.WarmupFrequency); err != nil {
		return nil, err
	}

	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
		if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
			return nil, fmt.Errorf("LOG_FORMAT must be text or json, got '%s'", v)
		}
	}

	if path := getenv("LEAGUES_FILE"); path != "" {
		cfg.Leagues, err = LoadLeagues(path)
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func duration(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %v", key, d)
	}
	return d, nil
}

type leaguesFile struct {
	Leagues []League `yaml:"leagues"`
}

// LoadLeagues reads the league presets from a yaml file like:
//
//	leagues:
//	  - name: Main League
//	    current: "1048"
//	    previous: "917"
func LoadLeagues(path string) ([]League, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading leagues file: %w", err)
	}

	var f leaguesFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("error parsing leagues file %s: %w", path, err)
	}

	for i, l := range f.Leagues {
		if l.Current == "" {
			return nil, fmt.Errorf("league %d (%s) in %s has no current league id", i+1, l.Name, path)
		}
		if l.Name == "" {
			f.Leagues[i].Name = l.Current
		}
	}
	if len(f.Leagues) == 0 {
		return nil, errors.New("leagues file has no leagues")
	}
	return f.Leagues, nil
}
