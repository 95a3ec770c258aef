package authgate

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"time"

	"github.com/finledger/authgate/token"
)

// Config defines the engine configuration tree.
//
// Config instances are intended to be configured during initialization and then treated as immutable.
type Config struct {
	Token   TokenConfig
	Storage StorageConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

/*
====================================
TOKEN CONFIG
====================================
*/

// TokenConfig controls the persisted session token: lifetime, signing
// material, and parser leeway.
type TokenConfig struct {
	TTL           time.Duration
	SigningMethod string // "ed25519" (default), "hs256" optional
	PrivateKey    []byte
	PublicKey     []byte
	Issuer        string
	Leeway        time.Duration
}

/*
====================================
STORAGE CONFIG
====================================
*/

// StorageConfig controls the persistence bridge key layout.
type StorageConfig struct {
	RedisPrefix string
}

/*
====================================
AUDIT CONFIG
====================================
*/

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

/*
====================================
METRICS CONFIG
====================================
*/

// MetricsConfig enables the in-process counter table.
type MetricsConfig struct {
	Enabled bool
}

func defaultConfig() Config {
	return Config{
		Token: TokenConfig{
			TTL:           30 * 24 * time.Hour,
			SigningMethod: string(token.MethodEd25519),
			Issuer:        "authgate",
			Leeway:        30 * time.Second,
		},
		Storage: StorageConfig{
			RedisPrefix: "ag",
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// DefaultConfig returns the baseline preset with a freshly generated
// ed25519 keypair. Intended for tests and single-process deployments;
// production callers supply their own key material so restore survives
// a process restart.
func DefaultConfig() Config {
	cfg := defaultConfig()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err == nil {
		cfg.Token.PrivateKey = priv
		cfg.Token.PublicKey = pub
	}
	return cfg
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if c.Token.TTL <= 0 {
		return errors.New("token TTL must be positive")
	}
	switch token.SigningMethod(c.Token.SigningMethod) {
	case token.MethodEd25519:
		if len(c.Token.PrivateKey) == 0 || len(c.Token.PublicKey) == 0 {
			return errors.New("ed25519 requires private and public key")
		}
	case token.MethodHS256:
		if len(c.Token.PrivateKey) == 0 {
			return errors.New("hs256 requires private key")
		}
	default:
		return errors.New("unsupported signing method")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("audit buffer size must be positive when audit is enabled")
	}
	return nil
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Token.PrivateKey = append([]byte(nil), cfg.Token.PrivateKey...)
	out.Token.PublicKey = append([]byte(nil), cfg.Token.PublicKey...)
	return out
}
