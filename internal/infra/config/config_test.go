package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Env != "dev" || cfg.HTTPAddr != ":8080" {
		t.Fatalf("defaults: %+v", cfg)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Fatalf("brokers should default empty: %v", cfg.KafkaBrokers)
	}
	if cfg.OutboxPollInterval != 500*time.Millisecond {
		t.Fatalf("poll interval: %v", cfg.OutboxPollInterval)
	}
	want := []time.Duration{time.Second, 5 * time.Second, 30 * time.Second}
	if len(cfg.RetryBackoff) != len(want) {
		t.Fatalf("backoff: %v", cfg.RetryBackoff)
	}
	for i, d := range want {
		if cfg.RetryBackoff[i] != d {
			t.Fatalf("backoff[%d]: got %v, want %v", i, cfg.RetryBackoff[i], d)
		}
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("KAFKA_TOPIC_PREFIX", "prod.")
	t.Setenv("OUTBOX_POLL_INTERVAL", "2s")
	t.Setenv("RETRY_BACKOFF", "100ms, 1s")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Env != "prod" || cfg.HTTPAddr != ":9090" || cfg.KafkaTopicPrefix != "prod." {
		t.Fatalf("loaded: %+v", cfg)
	}
	if len(cfg.KafkaBrokers) != 2 || cfg.KafkaBrokers[1] != "k2:9092" {
		t.Fatalf("brokers: %v", cfg.KafkaBrokers)
	}
	if cfg.OutboxPollInterval != 2*time.Second {
		t.Fatalf("poll interval: %v", cfg.OutboxPollInterval)
	}
	if len(cfg.RetryBackoff) != 2 || cfg.RetryBackoff[0] != 100*time.Millisecond {
		t.Fatalf("backoff: %v", cfg.RetryBackoff)
	}
}

func TestLoad_RejectsBadDurations(t *testing.T) {
	t.Setenv("OUTBOX_POLL_INTERVAL", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad poll interval")
	}

	t.Setenv("OUTBOX_POLL_INTERVAL", "1s")
	t.Setenv("RETRY_BACKOFF", "1s,whenever")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for bad backoff component")
	}
}
