package facades

import (
	"context"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fallbackRe = regexp.MustCompile(`^user_[0-9a-z]{9}$`)

func TestSenderIPFacade_Resolve_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ip":"203.0.113.7"}`))
	}))
	defer srv.Close()

	f := NewSenderIPFacadeWithClient(srv.Client(), srv.URL)

	identity := f.Resolve(context.Background())
	assert.Equal(t, "203.0.113.7", identity)
}

func TestSenderIPFacade_Resolve_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{not json`))
			},
		},
		{
			name: "empty ip",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"ip":""}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			f := NewSenderIPFacadeWithClient(srv.Client(), srv.URL)

			identity := f.Resolve(context.Background())
			assert.Regexp(t, fallbackRe, identity)
		})
	}
}

func TestSenderIPFacade_Resolve_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"ip":"203.0.113.7"}`))
	}))
	defer srv.Close()

	f := NewSenderIPFacadeWithClient(&http.Client{Timeout: 10 * time.Millisecond}, srv.URL)

	identity := f.Resolve(context.Background())
	assert.Regexp(t, fallbackRe, identity)
}

func TestSenderIPFacade_Resolve_FallbackNotCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewSenderIPFacadeWithClient(srv.Client(), srv.URL)

	first := f.Resolve(context.Background())
	second := f.Resolve(context.Background())
	assert.Regexp(t, fallbackRe, first)
	assert.Regexp(t, fallbackRe, second)
	// each failed lookup yields a fresh identity
	assert.NotEqual(t, first, second)
}
