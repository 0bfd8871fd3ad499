package common

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRememberRecall(t *testing.T) {
	store := sessions.NewCookieStore([]byte("test-secret-key-32-bytes-long!!"))

	req := httptest.NewRequest(http.MethodPost, "/api/queries/run", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, Remember(store, rec, req, KeyLabel, "3. Average Adult Literacy per Continent"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	next := httptest.NewRequest(http.MethodGet, "/queries", nil)
	for _, c := range cookies {
		next.AddCookie(c)
	}
	assert.Equal(t, "3. Average Adult Literacy per Continent", Recall(store, next, KeyLabel))
	assert.Empty(t, Recall(store, next, KeyCountry))
}

func TestRecall_NoStore(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, Recall(nil, req, KeyLabel))
	assert.NoError(t, Remember(nil, httptest.NewRecorder(), req, KeyLabel, "x"))
}
