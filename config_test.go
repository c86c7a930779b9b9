package goConsole

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigIsValidWithSecret(t *testing.T) {
	cfg := defaultConfig()
	cfg.Auth.Secret = "1234"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if cfg.Queue.Capacity != 10 {
		t.Fatalf("unexpected queue capacity: %d", cfg.Queue.Capacity)
	}
	if cfg.Line.BufferSize != 256 || cfg.Line.Terminator != 0x0D || cfg.Line.Backspace != 0x7F {
		t.Fatalf("unexpected line defaults: %+v", cfg.Line)
	}
	if cfg.Response.WriteTimeout != time.Second {
		t.Fatalf("unexpected write timeout: %v", cfg.Response.WriteTimeout)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero queue", func(c *Config) { c.Queue.Capacity = 0 }, ErrInvalidQueueCapacity},
		{"negative queue", func(c *Config) { c.Queue.Capacity = -1 }, ErrInvalidQueueCapacity},
		{"tiny line buffer", func(c *Config) { c.Line.BufferSize = 1 }, ErrInvalidLineBuffer},
		{"equal control bytes", func(c *Config) { c.Line.Terminator = c.Line.Backspace }, ErrInvalidControlBytes},
		{"zero response buffer", func(c *Config) { c.Response.BufferSize = 0 }, ErrInvalidResponseBuffer},
		{"zero write timeout", func(c *Config) { c.Response.WriteTimeout = 0 }, ErrInvalidWriteTimeout},
		{"no secret", func(c *Config) { c.Auth.Secret = "" }, ErrSecretRequired},
		{"both secrets", func(c *Config) { c.Auth.SecretHash = "h" }, ErrSecretConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Auth.Secret = "1234"
			tc.mutate(&cfg)

			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestSecretHashAloneValidates(t *testing.T) {
	cfg := defaultConfig()
	cfg.Auth.SecretHash = "$argon2id$v=19$m=8192,t=1,p=1$c29tZXNhbHRzb21lc2FsdA$AAAA"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("hash-only config invalid: %v", err)
	}
}

func TestCloneConfigIsIndependent(t *testing.T) {
	cfg := defaultConfig()
	cfg.Auth.Secret = "1234"

	clone := cloneConfig(cfg)
	clone.Auth.Secret = "changed"
	clone.Queue.Capacity = 99

	if cfg.Auth.Secret != "1234" || cfg.Queue.Capacity != 10 {
		t.Fatal("clone mutation leaked into the original")
	}
}
