package authgate

import (
	"errors"

	"github.com/finledger/authgate/session"
	"github.com/finledger/authgate/token"
	"github.com/redis/go-redis/v9"
)

// Builder assembles an [Engine]. Construction is allocation-only until
// [Builder.Build]; a Builder is single-use.
type Builder struct {
	config Config
	redis  *redis.Client

	gateway   CredentialGateway
	auditSink AuditSink

	built bool
}

// New returns a Builder carrying the baseline configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the configuration wholesale.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis supplies the durable storage client used by the
// persistence bridge.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithGateway supplies the external credential gateway.
func (b *Builder) WithGateway(gw CredentialGateway) *Builder {
	b.gateway = gw
	return b
}

// WithAuditSink supplies the audit event consumer. Nil falls back to
// [NoOpSink] when audit is enabled.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles the in-process counter table.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration and wires the engine. The returned
// engine starts in UNINITIALIZED; callers run [Engine.Boot] next.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}
	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	if b.redis == nil {
		return nil, errors.New("redis client required")
	}
	if b.gateway == nil {
		return nil, errors.New("credential gateway required")
	}

	tokens, err := token.NewManager(token.Config{
		TTL:           b.config.Token.TTL,
		SigningMethod: token.SigningMethod(b.config.Token.SigningMethod),
		PrivateKey:    b.config.Token.PrivateKey,
		PublicKey:     b.config.Token.PublicKey,
		Issuer:        b.config.Token.Issuer,
		Leeway:        b.config.Token.Leeway,
	})
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		config:  b.config,
		gateway: b.gateway,
		bridge:  session.NewStore(b.redis, b.config.Storage.RedisPrefix),
		tokens:  tokens,
		audit:   newAuditDispatcher(b.config.Audit, b.auditSink),
		session: Session{Status: StatusUninitialized},
	}
	if b.config.Metrics.Enabled {
		engine.metrics = NewMetrics()
	}

	b.built = true
	return engine, nil
}
