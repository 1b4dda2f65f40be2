package config

import (
	"os"
	"path/filepath"
	"testing"
)

const minimalYAML = `environment: test
backend:
  type: clickhouse
`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadRequiresAPIKeys(t *testing.T) {
	path := writeConfigFile(t, minimalYAML)

	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error without api keys")
	}
}

func TestLoadWithEnvKeysFromEnvironmentOnly(t *testing.T) {
	path := writeConfigFile(t, minimalYAML)
	t.Setenv("ALPHAVANTAGE_API_KEY", "av-key")
	t.Setenv("NEWSAPI_API_KEY", "news-key")

	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if c.AlphaVantage.APIKey != "av-key" {
		t.Errorf("alphavantage key = %q, want av-key", c.AlphaVantage.APIKey)
	}
	if c.NewsAPI.APIKey != "news-key" {
		t.Errorf("newsapi key = %q, want news-key", c.NewsAPI.APIKey)
	}
}

func TestLoadWithEnvValidatesMergedResult(t *testing.T) {
	path := writeConfigFile(t, minimalYAML)
	t.Setenv("ALPHAVANTAGE_API_KEY", "av-key")
	t.Setenv("NEWSAPI_API_KEY", "news-key")
	t.Setenv("BACKEND", "kafka")

	// kafka backend without brokers must still fail after the overrides.
	if _, err := LoadWithEnv(path); err == nil {
		t.Fatal("expected validation error for kafka backend without brokers")
	}

	t.Setenv("KAFKA_BROKERS", "localhost:9092")
	t.Setenv("KAFKA_TOPIC", "daily-moods")
	c, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if len(c.Kafka.Brokers) != 1 || c.Kafka.Brokers[0] != "localhost:9092" {
		t.Errorf("brokers = %v, want [localhost:9092]", c.Kafka.Brokers)
	}
}
