package shortener

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const longURL = "https://maps.google.com/?q=30.0444,31.2357"

func TestShortenSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, longURL, r.URL.Query().Get("url"))
		_, _ = w.Write([]byte("https://tiny.one/abc\n"))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	assert.Equal(t, "https://tiny.one/abc", c.Shorten(context.Background(), longURL))
}

func TestShortenFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	assert.Equal(t, longURL, c.Shorten(context.Background(), longURL))
}

func TestShortenFallsBackOnGarbageBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>maintenance</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	assert.Equal(t, longURL, c.Shorten(context.Background(), longURL))
}

func TestShortenFallsBackOnTimeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-done
	}))
	defer func() {
		close(done)
		srv.Close()
	}()

	c := New(srv.URL, 50*time.Millisecond)
	start := time.Now()
	got := c.Shorten(context.Background(), longURL)
	assert.Equal(t, longURL, got)
	assert.Less(t, time.Since(start), time.Second, "wait must be bounded")
}

func TestShortenFallsBackOnUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, time.Second)
	assert.Equal(t, longURL, c.Shorten(context.Background(), longURL))
}

func TestShortenHonorsContextDeadline(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-done
	}))
	defer func() {
		close(done)
		srv.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := New(srv.URL, 10*time.Second)
	require.Equal(t, longURL, c.Shorten(ctx, longURL))
}
