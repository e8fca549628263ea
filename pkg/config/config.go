package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Collector struct {
		Interval         time.Duration `yaml:"interval"`          // periodic refresh, e.g. 4h
		MaxCompanies     int           `yaml:"max_companies"`     // cap on merged company list
		TrialsCompanies  int           `yaml:"trials_companies"`  // top N companies searched for trials
		WebsiteCompanies int           `yaml:"website_companies"` // top N companies probed for websites
		Comprehensive    bool          `yaml:"comprehensive"`     // lowers ETF weight threshold
		InitialRun       bool          `yaml:"initial_run"`       // collect once at startup
	} `yaml:"collector"`
	ETF struct {
		MinWeight              float64 `yaml:"min_weight"`               // default 0.1
		ComprehensiveMinWeight float64 `yaml:"comprehensive_min_weight"` // default 0.05
		A                      struct {
			Name         string `yaml:"name"`
			HoldingsURL  string `yaml:"holdings_url"`
			ScrapeURL    string `yaml:"scrape_url"` // HTML table fallback tier
			UseFallbacks bool   `yaml:"use_fallbacks"`
		} `yaml:"a"`
		B struct {
			Name        string `yaml:"name"`
			HoldingsURL string `yaml:"holdings_url"`
			FundID      string `yaml:"fund_id"`
		} `yaml:"b"`
	} `yaml:"etf"`
	FDA struct {
		BaseURL      string `yaml:"base_url"`
		LookbackDays int    `yaml:"lookback_days"`
		Limit        int    `yaml:"limit"`
	} `yaml:"fda"`
	Trials struct {
		BaseURL      string        `yaml:"base_url"`
		PerTermLimit int           `yaml:"per_term_limit"`
		MinDelay     time.Duration `yaml:"min_delay"` // politeness spacing between calls
		Workers      int           `yaml:"workers"`
		Keywords     []string      `yaml:"keywords"` // fixed domain terms searched on every run
	} `yaml:"trials"`
	Website struct {
		ProfileURL string        `yaml:"profile_url"` // finance profile page, %s = symbol
		Timeout    time.Duration `yaml:"timeout"`
		UserAgent  string        `yaml:"user_agent"`
	} `yaml:"website"`
	Sink struct {
		Enabled bool   `yaml:"enabled"`
		Dir     string `yaml:"dir"`
	} `yaml:"sink"`
	Cache struct {
		Enabled  bool          `yaml:"enabled"`
		Host     string        `yaml:"host"`
		Port     int           `yaml:"port"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db"`
		TTL      time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("COLLECT_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Collector.Interval = d
		}
	}
	if v := os.Getenv("TRIALS_KEYWORDS"); v != "" {
		c.Trials.Keywords = strings.Split(v, ",")
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		host, port, ok := strings.Cut(v, ":")
		if ok {
			if p, err := strconv.Atoi(port); err == nil {
				c.Cache.Host = host
				c.Cache.Port = p
			}
		}
	}
	if v := os.Getenv("SINK_DIR"); v != "" {
		c.Sink.Enabled = true
		c.Sink.Dir = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Collector.Interval <= 0 {
		c.Collector.Interval = 4 * time.Hour
	}
	if c.Collector.MaxCompanies <= 0 {
		c.Collector.MaxCompanies = 50
	}
	if c.Collector.TrialsCompanies <= 0 {
		c.Collector.TrialsCompanies = 10
	}
	if c.Collector.WebsiteCompanies <= 0 {
		c.Collector.WebsiteCompanies = 20
	}
	if c.ETF.MinWeight <= 0 {
		c.ETF.MinWeight = 0.1
	}
	if c.ETF.ComprehensiveMinWeight <= 0 {
		c.ETF.ComprehensiveMinWeight = 0.05
	}
	if c.FDA.LookbackDays <= 0 {
		c.FDA.LookbackDays = 180
	}
	if c.FDA.Limit <= 0 {
		c.FDA.Limit = 100
	}
	if c.Trials.PerTermLimit <= 0 {
		c.Trials.PerTermLimit = 50
	}
	if c.Trials.MinDelay <= 0 {
		c.Trials.MinDelay = time.Second
	}
	if c.Trials.Workers <= 0 {
		c.Trials.Workers = 2
	}
	if c.Website.Timeout <= 0 {
		c.Website.Timeout = 20 * time.Second
	}
	if c.Cache.TTL <= 0 {
		c.Cache.TTL = 15 * time.Minute
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port is required")
	}
	if c.ETF.A.HoldingsURL == "" {
		return fmt.Errorf("etf.a.holdings_url is required")
	}
	if c.ETF.B.HoldingsURL == "" {
		return fmt.Errorf("etf.b.holdings_url is required")
	}
	if c.FDA.BaseURL == "" {
		return fmt.Errorf("fda.base_url is required")
	}
	if c.Trials.BaseURL == "" {
		return fmt.Errorf("trials.base_url is required")
	}
	if c.Sink.Enabled && c.Sink.Dir == "" {
		return fmt.Errorf("sink.dir is required when sink.enabled")
	}
	return nil
}

// MinWeight resolves the active ETF weight threshold.
func (c *Config) MinWeight() float64 {
	if c.Collector.Comprehensive {
		return c.ETF.ComprehensiveMinWeight
	}
	return c.ETF.MinWeight
}
