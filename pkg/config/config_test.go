package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const minimalYAML = `environment: production
server:
  port: 8000
etf:
  a:
    holdings_url: https://example.com/a.json
  b:
    holdings_url: https://example.com/b.json
fda:
  base_url: https://api.fda.gov
trials:
  base_url: https://clinicaltrials.gov/api/query/study_fields
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Collector.Interval != 4*time.Hour {
		t.Fatalf("default interval: %s", cfg.Collector.Interval)
	}
	if cfg.Collector.MaxCompanies != 50 {
		t.Fatalf("default max companies: %d", cfg.Collector.MaxCompanies)
	}
	if cfg.ETF.MinWeight != 0.1 || cfg.ETF.ComprehensiveMinWeight != 0.05 {
		t.Fatalf("default thresholds: %f %f", cfg.ETF.MinWeight, cfg.ETF.ComprehensiveMinWeight)
	}
	if cfg.Trials.MinDelay != time.Second {
		t.Fatalf("default trials delay: %s", cfg.Trials.MinDelay)
	}
}

func TestLoadRejectsMissingURLs(t *testing.T) {
	bad := `environment: production
server:
  port: 8000
`
	if _, err := Load(writeConfig(t, bad)); err == nil {
		t.Fatal("expected validation error for missing feed URLs")
	}
}

func TestMinWeightComprehensiveMode(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MinWeight() != 0.1 {
		t.Fatalf("standard threshold: %f", cfg.MinWeight())
	}
	cfg.Collector.Comprehensive = true
	if cfg.MinWeight() != 0.05 {
		t.Fatalf("comprehensive threshold: %f", cfg.MinWeight())
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("COLLECT_INTERVAL", "2h")
	t.Setenv("TRIALS_KEYWORDS", "gene therapy,CAR-T")
	t.Setenv("SINK_DIR", "/tmp/biopulse-data")

	cfg, err := LoadWithEnv(writeConfig(t, minimalYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("port override: %d", cfg.Server.Port)
	}
	if cfg.Collector.Interval != 2*time.Hour {
		t.Fatalf("interval override: %s", cfg.Collector.Interval)
	}
	if len(cfg.Trials.Keywords) != 2 || cfg.Trials.Keywords[1] != "CAR-T" {
		t.Fatalf("keywords override: %v", cfg.Trials.Keywords)
	}
	if !cfg.Sink.Enabled || cfg.Sink.Dir != "/tmp/biopulse-data" {
		t.Fatalf("sink override: %+v", cfg.Sink)
	}
}
