package queries

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/edudash/internal/ui/features"
	"github.com/leapstack-labs/edudash/internal/ui/notifier"
)

const topFive = "1. Top 5 Adult Literacy Countries (2020)"

func setupTestHandlers(t *testing.T, fixture *features.TestFixture) *Handlers {
	t.Helper()
	return NewHandlers(fixture.Executor, fixture.SessionStore, fixture.Notifier, nil, true)
}

func TestQueryPage(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	h := setupTestHandlers(t, fixture)

	req := httptest.NewRequest(http.MethodGet, "/queries", nil)
	rec := httptest.NewRecorder()

	h.QueryPage(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	for _, want := range []string{
		"<!doctype html>",
		"<title>Query Runner - Education Dashboard</title>",
		"data-bind:label",
		"@post('/api/queries/run')",
		`id="query-results"`,
		"13. Youth Literacy Male vs Female Gap (GDP &gt; 30000, 2020)",
	} {
		assert.Contains(t, body, want, "response should contain %q", want)
	}
	assert.Equal(t, 13, strings.Count(body, "<option"), "one option per catalog entry")
	assert.Contains(t, body, `value="`+topFive+`" selected`, "first label preselected")
	fixture.AssertNoLeaks(t)
}

func TestRunSSE(t *testing.T) {
	tests := []struct {
		name     string
		fixture  func(t *testing.T) *features.TestFixture
		label    string
		wantBody []string
	}{
		{
			name:    "rows",
			fixture: features.SetupTestFixture,
			label:   topFive,
			wantBody: []string{
				"event: datastar-patch-elements",
				`id="query-results"`,
				"Query executed successfully (",
				"<th>country</th>",
			},
		},
		{
			name:     "empty result",
			fixture:  features.SetupEmptyFixture,
			label:    topFive,
			wantBody: []string{"No data found."},
		},
		{
			name:     "unknown label",
			fixture:  features.SetupTestFixture,
			label:    "14. Not a query",
			wantBody: []string{"notice-error", "unknown query"},
		},
		{
			name:     "unreachable store",
			fixture:  features.SetupUnreachableFixture,
			label:    topFive,
			wantBody: []string{"notice-error", "Database connection failed: "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture := tt.fixture(t)
			h := setupTestHandlers(t, fixture)

			req := features.SignalsRequest(http.MethodPost, "/api/queries/run", `{"label":"`+tt.label+`"}`)
			rec := httptest.NewRecorder()

			h.RunSSE(rec, req)

			body := rec.Body.String()
			for _, want := range tt.wantBody {
				assert.Contains(t, body, want)
			}
			fixture.AssertNoLeaks(t)
		})
	}
}

func TestRunSSE_BadSignals(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	h := setupTestHandlers(t, fixture)

	req := features.SignalsRequest(http.MethodPost, "/api/queries/run", `{"label":`)
	rec := httptest.NewRecorder()

	h.RunSSE(rec, req)

	assert.Contains(t, rec.Body.String(), "Failed to read signals")
}

func TestRunSSE_RemembersLabel(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	h := setupTestHandlers(t, fixture)

	const label = "9. Global Average Schooling Years per Year"
	run := httptest.NewRecorder()
	h.RunSSE(run, features.SignalsRequest(http.MethodPost, "/api/queries/run", `{"label":"`+label+`"}`))
	require.NotEmpty(t, run.Result().Cookies())

	rec := httptest.NewRecorder()
	h.QueryPage(rec, features.WithCookies(httptest.NewRequest(http.MethodGet, "/queries", nil), run))

	body := rec.Body.String()
	assert.Contains(t, body, `value="`+label+`" selected`)
	assert.NotContains(t, body, `value="`+topFive+`" selected`)
}

func TestRunSSE_PingsStatus(t *testing.T) {
	fixture := features.SetupTestFixture(t)
	h := setupTestHandlers(t, fixture)

	updates := fixture.Notifier.Subscribe(notifier.TopicStatus)
	defer fixture.Notifier.Unsubscribe(notifier.TopicStatus, updates)

	h.RunSSE(httptest.NewRecorder(), features.SignalsRequest(http.MethodPost, "/api/queries/run", `{"label":"`+topFive+`"}`))

	select {
	case <-updates:
	default:
		t.Fatal("expected a status ping after a run")
	}
}
