package adapter

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/leapstack-labs/edudash/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdapter records Connect/Close calls without touching a real store.
type fakeAdapter struct {
	connectErr error
	closeErr   error
	block      bool
	closed     *atomic.Int32
}

func (f *fakeAdapter) Connect(ctx context.Context, _ Config) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.connectErr
}

func (f *fakeAdapter) Close() error {
	f.closed.Add(1)
	return f.closeErr
}

func (f *fakeAdapter) Exec(context.Context, string, ...any) error { return nil }

func (f *fakeAdapter) Query(context.Context, string, ...any) (*Rows, error) { return nil, nil }

func (f *fakeAdapter) DB() *sql.DB { return nil }

func (f *fakeAdapter) Dialect() *Dialect { return &Dialect{Name: "fake"} }

func registerFake(t *testing.T, name string, proto fakeAdapter) *atomic.Int32 {
	t.Helper()
	closed := &atomic.Int32{}
	Register(name, func(_ *slog.Logger) Adapter {
		a := proto
		a.closed = closed
		return &a
	})
	return closed
}

func TestProvider_AcquireRelease(t *testing.T) {
	closed := registerFake(t, "fake_ok", fakeAdapter{})
	p := NewProvider(Config{Type: "fake_ok", Database: "Global_literacy"})

	a1, err := p.Acquire(context.Background())
	require.NoError(t, err)
	a2, err := p.Acquire(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, a1, a2, "each acquire should yield a fresh connection")
	assert.Equal(t, int64(2), p.Open())

	p.Release(a1)
	p.Release(a2)
	assert.Equal(t, int64(0), p.Open())
	assert.Equal(t, int32(2), closed.Load())
}

func TestProvider_ReleaseNil(t *testing.T) {
	p := NewProvider(Config{Type: "fake_ok"})
	p.Release(nil)
	assert.Equal(t, int64(0), p.Open())
}

func TestProvider_ReleaseSwallowsCloseError(t *testing.T) {
	closed := registerFake(t, "fake_close_err", fakeAdapter{closeErr: errors.New("broken pipe")})
	p := NewProvider(Config{Type: "fake_close_err"})

	a, err := p.Acquire(context.Background())
	require.NoError(t, err)

	assert.NotPanics(t, func() { p.Release(a) })
	assert.Equal(t, int64(0), p.Open())
	assert.Equal(t, int32(1), closed.Load())
}

func TestProvider_AcquireFailure(t *testing.T) {
	closed := registerFake(t, "fake_refused", fakeAdapter{connectErr: errors.New("connection refused")})
	p := NewProvider(Config{Type: "fake_refused", Host: "localhost", Port: 3306, Database: "Global_literacy"})

	a, err := p.Acquire(context.Background())
	require.Error(t, err)
	assert.Nil(t, a)

	var connErr *core.ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, "fake_refused://localhost:3306/Global_literacy", connErr.Store)
	assert.Contains(t, err.Error(), "database connection failed")
	assert.Contains(t, err.Error(), "connection refused")

	assert.Equal(t, int64(0), p.Open())
	assert.Equal(t, int32(1), closed.Load(), "failed adapter should be closed")
}

func TestProvider_AcquireUnknownType(t *testing.T) {
	p := NewProvider(Config{Type: "not_a_store"})

	_, err := p.Acquire(context.Background())
	require.Error(t, err)

	var connErr *core.ConnectionError
	require.ErrorAs(t, err, &connErr)
	var unknown *UnknownAdapterError
	assert.ErrorAs(t, err, &unknown)
}

func TestProvider_AcquireTimeout(t *testing.T) {
	registerFake(t, "fake_slow", fakeAdapter{block: true})
	p := NewProvider(Config{Type: "fake_slow"}, WithConnectTimeout(20*time.Millisecond))

	_, err := p.Acquire(context.Background())
	require.Error(t, err)

	var timeout *core.TimeoutError
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, "connect", timeout.Operation)
	assert.Equal(t, 20*time.Millisecond, timeout.Timeout)
	assert.Equal(t, int64(0), p.Open())
}

func TestProvider_Accessors(t *testing.T) {
	p := NewProvider(Config{Type: "sqlite", Path: "/tmp/edu.db"}, WithConnectTimeout(0), WithLogger(nil))
	assert.Equal(t, "sqlite", p.Type())
	assert.Equal(t, "sqlite:/tmp/edu.db", p.Address())
	assert.Equal(t, DefaultConnectTimeout, p.connectTimeout)
}
