package token

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"
	"time"
)

func hs256Config() Config {
	return Config{
		TTL:           time.Hour,
		SigningMethod: MethodHS256,
		PrivateKey:    []byte("unit-test-signing-secret"),
		Issuer:        "authgate-test",
	}
}

func ed25519Config(t *testing.T) Config {
	t.Helper()

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateKey failed: %v", err)
	}
	return Config{
		TTL:           time.Hour,
		SigningMethod: MethodEd25519,
		PrivateKey:    priv,
		PublicKey:     pub,
		Issuer:        "authgate-test",
	}
}

func sampleClaims() Claims {
	return Claims{
		UID:       "u1",
		Email:     "a@b.com",
		Name:      "Ada",
		Role:      "VIEWER",
		Mask:      0b100001,
		TwoFactor: true,
		LoginIP:   "203.0.113.7",
	}
}

func TestIssueParseRoundTripHS256(t *testing.T) {
	m, err := NewManager(hs256Config())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	tok, err := m.Issue(sampleClaims())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	parsed, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.UID != "u1" || parsed.Role != "VIEWER" || parsed.Mask != 0b100001 {
		t.Fatalf("claims mismatch: %+v", parsed)
	}
	if !parsed.TwoFactor || parsed.LoginIP != "203.0.113.7" {
		t.Fatalf("claims mismatch: %+v", parsed)
	}
	if parsed.ID == "" {
		t.Fatal("expected a generated jti")
	}
	if parsed.IssuedAt == nil || parsed.ExpiresAt == nil {
		t.Fatal("expected registered time claims")
	}
}

func TestIssueParseRoundTripEd25519(t *testing.T) {
	m, err := NewManager(ed25519Config(t))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	tok, err := m.Issue(sampleClaims())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := m.Parse(tok); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
}

func TestParseRejectsForeignSignature(t *testing.T) {
	issuer, err := NewManager(ed25519Config(t))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	verifier, err := NewManager(ed25519Config(t))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	tok, err := issuer.Issue(sampleClaims())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := verifier.Parse(tok); err == nil {
		t.Fatal("expected foreign signature to be rejected")
	}
}

func TestParseRejectsAlgorithmConfusion(t *testing.T) {
	hs, err := NewManager(hs256Config())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	ed, err := NewManager(ed25519Config(t))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	tok, err := hs.Issue(sampleClaims())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := ed.Parse(tok); err == nil {
		t.Fatal("expected hs256 token to be rejected by ed25519 manager")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := hs256Config()
	cfg.TTL = time.Nanosecond

	m, err := NewManager(cfg)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	tok, err := m.Issue(sampleClaims())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := m.Parse(tok); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	m, err := NewManager(hs256Config())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	if _, err := m.Parse("not-a-token"); err == nil {
		t.Fatal("expected garbage to be rejected")
	}
}

func TestNewManagerValidatesConfig(t *testing.T) {
	bad := hs256Config()
	bad.TTL = 0
	if _, err := NewManager(bad); err == nil {
		t.Fatal("expected zero TTL to be rejected")
	}

	bad = hs256Config()
	bad.PrivateKey = nil
	if _, err := NewManager(bad); err == nil {
		t.Fatal("expected missing hs256 key to be rejected")
	}

	bad = ed25519Config(t)
	bad.PublicKey = []byte("short")
	if _, err := NewManager(bad); err == nil {
		t.Fatal("expected malformed ed25519 public key to be rejected")
	}

	bad = hs256Config()
	bad.SigningMethod = "rot13"
	if _, err := NewManager(bad); err == nil {
		t.Fatal("expected unsupported method to be rejected")
	}
}
