package common

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// SessionName is the cookie holding the user's last selections.
const SessionName = "edudash"

// Session keys.
const (
	KeyLabel   = "label"
	KeyCountry = "country"
)

// Recall returns a remembered value, or "" when none is stored.
func Recall(store sessions.Store, r *http.Request, key string) string {
	if store == nil {
		return ""
	}
	sess, err := store.Get(r, SessionName)
	if err != nil {
		return ""
	}
	v, _ := sess.Values[key].(string)
	return v
}

// Remember stores value under key. It must run before the response body is
// written, so SSE handlers call it before creating the event stream.
func Remember(store sessions.Store, w http.ResponseWriter, r *http.Request, key, value string) error {
	if store == nil {
		return nil
	}
	sess, err := store.Get(r, SessionName)
	if err != nil && sess == nil {
		return err
	}
	sess.Values[key] = value
	return sess.Save(r, w)
}
