package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"storefront/internal/api/middleware"
	"storefront/internal/session"
)

const testSID = "test-session"

// stubRenderer records what would have been rendered instead of producing
// HTML, so tests can assert on view names and data.
type stubRenderer struct {
	views []string
	data  []any
}

func (s *stubRenderer) Render(_ http.ResponseWriter, name string, data any) error {
	s.views = append(s.views, name)
	s.data = append(s.data, data)

	return nil
}

func (s *stubRenderer) lastView() string {
	if len(s.views) == 0 {
		return ""
	}

	return s.views[len(s.views)-1]
}

func (s *stubRenderer) lastData() map[string]any {
	if len(s.data) == 0 {
		return nil
	}

	if m, ok := s.data[len(s.data)-1].(map[string]any); ok {
		return m
	}

	return nil
}

// brokenStore fails every operation, standing in for an unreachable session
// backend.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (*session.State, error) {
	return nil, errors.New("session backend down")
}

func (brokenStore) Save(context.Context, string, *session.State) error {
	return errors.New("session backend down")
}

// serve runs the handler behind the session middleware with a fixed session
// id cookie, matching how requests arrive in production.
func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()

	req.AddCookie(&http.Cookie{Name: "sid", Value: testSID})
	middleware.Session("sid")(h).ServeHTTP(rec, req)

	return rec
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}
