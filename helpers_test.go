package authgate

import (
	"context"
	"sync"
	"testing"

	"github.com/finledger/authgate/permission"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// fakeGateway is a scriptable CredentialGateway for engine tests.
// When block is non-nil, calls park until the channel is closed, which
// lets tests observe the in-flight guard.
type fakeGateway struct {
	mu        sync.Mutex
	principal Principal
	loginErr  error
	verifyErr error
	block     chan struct{}

	loginCalls  int
	verifyCalls int
}

func (g *fakeGateway) Login(ctx context.Context, email, password string) (Principal, error) {
	g.mu.Lock()
	g.loginCalls++
	block := g.block
	loginErr := g.loginErr
	principal := g.principal
	g.mu.Unlock()

	if block != nil {
		<-block
	}
	if loginErr != nil {
		return Principal{}, loginErr
	}
	return principal, nil
}

func (g *fakeGateway) VerifyTwoFactor(ctx context.Context, code string) error {
	g.mu.Lock()
	g.verifyCalls++
	block := g.block
	verifyErr := g.verifyErr
	g.mu.Unlock()

	if block != nil {
		<-block
	}
	return verifyErr
}

func viewerPrincipal() Principal {
	return Principal{
		ID:          "u1",
		Email:       "a@b.com",
		DisplayName: "Ada",
		Role:        permission.RoleViewer,
		Permissions: permission.Grants(permission.RoleViewer),
	}
}

func adminPrincipal() Principal {
	return Principal{
		ID:          "u2",
		Email:       "root@b.com",
		DisplayName: "Root",
		Role:        permission.RoleAdmin,
		Permissions: permission.Grants(permission.RoleAdmin),
	}
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Token.SigningMethod = "hs256"
	cfg.Token.PrivateKey = []byte("unit-test-signing-secret")
	return cfg
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run failed: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, client
}

func newTestEngine(t *testing.T, gw CredentialGateway) (*Engine, *redis.Client, func()) {
	t.Helper()

	mr, rdb := newTestRedis(t)

	engine, err := New().
		WithConfig(testConfig()).
		WithRedis(rdb).
		WithGateway(gw).
		Build()
	if err != nil {
		mr.Close()
		t.Fatalf("Build failed: %v", err)
	}

	return engine, rdb, func() {
		engine.Close()
		_ = rdb.Close()
		mr.Close()
	}
}

// bootedEngine builds an engine and runs the initial restore so tests
// start from ANONYMOUS.
func bootedEngine(t *testing.T, gw CredentialGateway) (*Engine, *redis.Client, func()) {
	t.Helper()

	engine, rdb, done := newTestEngine(t, gw)

	snap, err := engine.Boot(context.Background())
	if err != nil {
		done()
		t.Fatalf("Boot failed: %v", err)
	}
	if snap.Status != StatusAnonymous {
		done()
		t.Fatalf("expected ANONYMOUS after empty boot, got %s", snap.Status)
	}

	return engine, rdb, done
}

func tokenKey() string {
	return "ag:token"
}

func tokenExists(t *testing.T, rdb *redis.Client) bool {
	t.Helper()
	n, err := rdb.Exists(context.Background(), tokenKey()).Result()
	if err != nil {
		t.Fatalf("redis exists failed: %v", err)
	}
	return n == 1
}
