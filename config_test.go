package authgate

import (
	"testing"
	"time"

	"github.com/finledger/authgate/token"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
	if cfg.Token.SigningMethod != string(token.MethodEd25519) {
		t.Fatalf("expected ed25519 default, got %q", cfg.Token.SigningMethod)
	}
	if cfg.Token.TTL != 30*24*time.Hour {
		t.Fatalf("unexpected default TTL %v", cfg.Token.TTL)
	}
	if cfg.Storage.RedisPrefix != "ag" {
		t.Fatalf("unexpected default prefix %q", cfg.Storage.RedisPrefix)
	}
	if !cfg.Audit.Enabled || cfg.Audit.BufferSize != 256 {
		t.Fatal("unexpected audit defaults")
	}
}

func TestDefaultConfigGeneratesFreshKeys(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	if len(a.Token.PrivateKey) == 0 || len(a.Token.PublicKey) == 0 {
		t.Fatal("expected generated keypair")
	}
	if string(a.Token.PrivateKey) == string(b.Token.PrivateKey) {
		t.Fatal("expected distinct keypairs per call")
	}
}

func TestConfigValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero TTL", func(c *Config) { c.Token.TTL = 0 }},
		{"negative TTL", func(c *Config) { c.Token.TTL = -time.Hour }},
		{"unknown method", func(c *Config) { c.Token.SigningMethod = "rs256" }},
		{"ed25519 missing keys", func(c *Config) {
			c.Token.PrivateKey = nil
			c.Token.PublicKey = nil
		}},
		{"hs256 missing secret", func(c *Config) {
			c.Token.SigningMethod = string(token.MethodHS256)
			c.Token.PrivateKey = nil
		}},
		{"audit buffer zero", func(c *Config) { c.Audit.BufferSize = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCloneConfigDetachesKeyMaterial(t *testing.T) {
	cfg := DefaultConfig()
	clone := cloneConfig(cfg)
	clone.Token.PrivateKey[0] ^= 0xff
	if cfg.Token.PrivateKey[0] == clone.Token.PrivateKey[0] {
		t.Fatal("expected clone to own its key slice")
	}
}
