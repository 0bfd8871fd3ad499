package gallery

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/edudash/internal/ui/features"
	"github.com/leapstack-labs/edudash/internal/ui/notifier"
)

func setupRouter(t *testing.T) (*chi.Mux, *Handlers, *features.TestFixture) {
	t.Helper()

	fixture := features.SetupTestFixture(t)
	r := chi.NewRouter()
	if err := SetupRoutes(r, fixture.Gallery, fixture.Notifier, false); err != nil {
		t.Fatal(err)
	}
	return r, NewHandlers(fixture.Gallery, fixture.Notifier, false), fixture
}

func TestGalleryPage(t *testing.T) {
	tests := []struct {
		name        string
		assets      []string
		wantImages  int
		wantMissing int
	}{
		{name: "all missing", wantImages: 0, wantMissing: 8},
		{
			name:        "some present",
			assets:      []string{"Youth_Literacy_Rate.png", "literacy_by_income_group.png"},
			wantImages:  2,
			wantMissing: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, fixture := setupRouter(t)
			for _, a := range tt.assets {
				fixture.AddAsset(t, a)
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gallery", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Equal(t, 8, strings.Count(body, "<figure"))
			assert.Equal(t, tt.wantImages, strings.Count(body, "<img"))
			assert.Equal(t, tt.wantMissing, strings.Count(body, "File not found: "))
			assert.Contains(t, body, "@get('/gallery/updates')")
			assert.Contains(t, body, "Top 7 Countries with Largest Youth Literacy Gender Gap")
		})
	}
}

func TestGalleryPage_Order(t *testing.T) {
	r, _, _ := setupRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/gallery", nil))

	body := rec.Body.String()
	first := strings.Index(body, "Literacy Growth Rate Distribution")
	last := strings.Index(body, "Top 7 Countries with Largest Youth Literacy Gender Gap")
	assert.Greater(t, first, 0)
	assert.Greater(t, last, first)
}

func TestAsset(t *testing.T) {
	r, _, fixture := setupRouter(t)
	fixture.AddAsset(t, "Youth_Literacy_Rate.png")

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"catalogued and present", "/gallery/assets/Youth_Literacy_Rate.png", http.StatusOK},
		{"catalogued but missing", "/gallery/assets/literacy_by_income_group.png", http.StatusNotFound},
		{"not catalogued", "/gallery/assets/secret.png", http.StatusNotFound},
		{"traversal", "/gallery/assets/..%2Fedudash.yaml", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGalleryUpdates_SendsGridOnBroadcast(t *testing.T) {
	_, h, fixture := setupRouter(t)

	body := features.StreamFor(h.GalleryUpdates, "/gallery/updates", 300*time.Millisecond, func() {
		fixture.AddAsset(t, "Youth_Literacy_Rate.png")
		fixture.Notifier.Broadcast(notifier.TopicGallery)
	})

	assert.Equal(t, 1, strings.Count(body, "event:"), "one patch per broadcast")
	assert.Contains(t, body, `id="gallery-grid"`)
	assert.Contains(t, body, `src="/gallery/assets/Youth_Literacy_Rate.png"`)
	assert.Equal(t, 0, fixture.Notifier.Listeners(notifier.TopicGallery), "stream should unsubscribe on exit")
}

func TestGalleryUpdates_IgnoresOtherTopics(t *testing.T) {
	_, h, fixture := setupRouter(t)

	body := features.StreamFor(h.GalleryUpdates, "/gallery/updates", 200*time.Millisecond, func() {
		fixture.Notifier.Broadcast(notifier.TopicStatus)
	})

	assert.NotContains(t, body, "event:")
}
