// Package features provides shared test utilities for UI feature tests.
package features

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/edudash/internal/catalog"
	"github.com/leapstack-labs/edudash/internal/executor"
	"github.com/leapstack-labs/edudash/internal/gallery"
	"github.com/leapstack-labs/edudash/internal/profile"
	"github.com/leapstack-labs/edudash/internal/testutil"
	"github.com/leapstack-labs/edudash/internal/testutil/teststore"
	"github.com/leapstack-labs/edudash/internal/ui/notifier"
	"github.com/leapstack-labs/edudash/pkg/adapter"
)

// TestFixture holds all dependencies needed for UI handler tests.
type TestFixture struct {
	Store        *teststore.Store
	Provider     *adapter.Provider
	Executor     *executor.Executor
	Reporter     *profile.Reporter
	Gallery      *gallery.Gallery
	Notifier     *notifier.Notifier
	SessionStore *sessions.CookieStore
	AssetsDir    string
}

// SetupTestFixture creates a seeded SQLite store and every component the
// handlers need. The gallery directory starts empty; use AddAsset to place
// images in it.
func SetupTestFixture(t *testing.T) *TestFixture {
	t.Helper()
	return setup(t, teststore.NewSeeded(t))
}

// SetupEmptyFixture is SetupTestFixture over a migrated store with no rows.
func SetupEmptyFixture(t *testing.T) *TestFixture {
	t.Helper()
	return setup(t, teststore.New(t))
}

// SetupUnreachableFixture points every component at a store that cannot be
// opened, so every Acquire fails.
func SetupUnreachableFixture(t *testing.T) *TestFixture {
	t.Helper()

	cfg := adapter.Config{Type: "sqlite", Path: filepath.Join(t.TempDir(), "missing", "nested", "x.db")}
	store := &teststore.Store{Config: cfg, Provider: adapter.NewProvider(cfg)}
	return setup(t, store)
}

func setup(t *testing.T, store *teststore.Store) *TestFixture {
	t.Helper()

	logger := testutil.NewTestLogger(t)
	assets := t.TempDir()

	return &TestFixture{
		Store:        store,
		Provider:     store.Provider,
		Executor:     executor.New(catalog.Default(), store.Provider, executor.WithLogger(logger)),
		Reporter:     profile.New(store.Provider, profile.WithLogger(logger)),
		Gallery:      gallery.New(assets),
		Notifier:     notifier.New(),
		SessionStore: sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!")),
		AssetsDir:    assets,
	}
}

// AddAsset writes a placeholder image into the gallery directory.
func (f *TestFixture) AddAsset(t *testing.T, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(f.AssetsDir, name), []byte("\x89PNG\r\n\x1a\n"), 0600))
}

// AssertNoLeaks fails the test when a connection is still held.
func (f *TestFixture) AssertNoLeaks(t *testing.T) {
	t.Helper()
	require.Equal(t, int64(0), f.Provider.Open(), "connections left open")
}

// SignalsRequest builds a datastar request carrying signals as a JSON body.
func SignalsRequest(method, target, signals string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(signals))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("datastar-request", "true")
	return req
}

// WithCookies copies the cookies set on rec onto req.
func WithCookies(req *http.Request, rec *httptest.ResponseRecorder) *http.Request {
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// StreamFor runs handler for a long-lived SSE request until timeout and
// returns what it wrote. trigger runs once the handler has had time to
// subscribe.
func StreamFor(handler http.HandlerFunc, target string, timeout time.Duration, trigger func()) string {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, target, nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler(rec, req)
		close(done)
	}()

	if trigger != nil {
		time.Sleep(50 * time.Millisecond)
		trigger()
	}
	<-done
	return rec.Body.String()
}
