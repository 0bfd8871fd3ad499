package adapter

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/leapstack-labs/edudash/pkg/core"
)

// DefaultConnectTimeout bounds how long Acquire waits for the store.
const DefaultConnectTimeout = 10 * time.Second

// Provider hands out one fresh connection per unit of work.
// Connections are never pooled or shared across interactions; every
// successful Acquire must be paired with Release.
type Provider struct {
	cfg            Config
	connectTimeout time.Duration
	logger         *slog.Logger
	open           atomic.Int64
}

// ProviderOption configures a Provider.
type ProviderOption func(*Provider)

// WithConnectTimeout overrides DefaultConnectTimeout. Zero keeps the default.
func WithConnectTimeout(d time.Duration) ProviderOption {
	return func(p *Provider) {
		if d > 0 {
			p.connectTimeout = d
		}
	}
}

// WithLogger sets the logger used by the provider and the adapters it creates.
func WithLogger(logger *slog.Logger) ProviderOption {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider creates a provider for the given store configuration.
func NewProvider(cfg Config, opts ...ProviderOption) *Provider {
	p := &Provider{
		cfg:            cfg,
		connectTimeout: DefaultConnectTimeout,
		logger:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Acquire opens a new connection to the configured store. There is no retry;
// any failure is reported as a *core.ConnectionError carrying the driver
// message.
func (p *Provider) Acquire(ctx context.Context) (Adapter, error) {
	addr := p.cfg.Address()

	a, err := NewAdapter(p.cfg, p.logger)
	if err != nil {
		return nil, &core.ConnectionError{Store: addr, Err: err}
	}

	connectCtx, cancel := context.WithTimeout(ctx, p.connectTimeout)
	defer cancel()

	start := time.Now()
	if err := a.Connect(connectCtx, p.cfg); err != nil {
		_ = a.Close()
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(connectCtx.Err(), context.DeadlineExceeded) {
			err = &core.TimeoutError{Operation: "connect", Timeout: p.connectTimeout, Err: err}
		}
		p.logger.Error("store connection failed", slog.String("store", addr), slog.Any("error", err))
		return nil, &core.ConnectionError{Store: addr, Err: err}
	}

	n := p.open.Add(1)
	p.logger.Debug("store connection acquired",
		slog.String("store", addr),
		slog.Duration("took", time.Since(start)),
		slog.Int64("open", n))
	return a, nil
}

// Release closes a connection obtained from Acquire. Close failures are
// logged and swallowed; they never abort the interaction.
func (p *Provider) Release(a Adapter) {
	if a == nil {
		return
	}
	n := p.open.Add(-1)
	if err := a.Close(); err != nil {
		p.logger.Warn("failed to close store connection", slog.String("store", p.cfg.Address()), slog.Any("error", err))
		return
	}
	p.logger.Debug("store connection released", slog.Int64("open", n))
}

// Open returns the number of connections currently held by callers.
func (p *Provider) Open() int64 {
	return p.open.Load()
}

// Address returns the credential-free store address.
func (p *Provider) Address() string {
	return p.cfg.Address()
}

// Type returns the configured store type.
func (p *Provider) Type() string {
	return p.cfg.Type
}

// Connector is the part of Provider used by components that run statements.
type Connector interface {
	Acquire(ctx context.Context) (Adapter, error)
	Release(a Adapter)
}

var _ Connector = (*Provider)(nil)
