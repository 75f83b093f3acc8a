// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/MKhiriev/movie-catalog/internal/config"
	"github.com/MKhiriev/movie-catalog/internal/logger"
	"github.com/MKhiriev/movie-catalog/internal/service"
	"github.com/MKhiriev/movie-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTraceID(t *testing.T) {
	h := newTestHandler(t, nil)

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = w.Header().Get(traceIDHeader)
		assert.NotNil(t, logger.FromRequest(r))
	})

	t.Run("propagates caller id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(traceIDHeader))
		assert.Equal(t, "abc-123", seen)
	})

	t.Run("generates one", func(t *testing.T) {
		rec := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, rec.Header().Get(traceIDHeader), 36)
	})
}

func TestWithTraceID_LoggerCarriesTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandler(t, nil)
	h.logger = &logger.Logger{Logger: logger.NewLogger("test").Output(&buf)}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(traceIDHeader, "trace-1")

	h.withTraceID(next).ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "trace-1", entry[logger.TraceIDField])
}

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusTeapot)
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte("hello"))

	assert.Equal(t, http.StatusTeapot, rw.status)
	assert.Equal(t, 5, rw.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Same(t, rec, rw.Unwrap())
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder()}

	_, _ = rw.Write([]byte("{}"))

	assert.Equal(t, http.StatusOK, rw.status)
}

func TestWithGZip(t *testing.T) {
	payload := strings.Repeat(`{"title":"Inception"}`, 50)
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, payload)
	}))

	t.Run("compresses when accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
		zr, err := gzip.NewReader(rec.Body)
		require.NoError(t, err)
		body, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, payload, string(body))
	})

	t.Run("plain when not accepted", func(t *testing.T) {
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies", nil))

		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Equal(t, payload, rec.Body.String())
	})

	t.Run("no content is left alone", func(t *testing.T) {
		noContent := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		req := httptest.NewRequest(http.MethodDelete, "/movies/1", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rec := httptest.NewRecorder()

		noContent.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get("Content-Encoding"))
		assert.Zero(t, rec.Body.Len())
	})
}

func TestWithRateLimit(t *testing.T) {
	h := NewHandler(&service.Services{
		AuthService: &fakeAuthService{
			validateUserFn: func(_ context.Context, _, _ string) (models.User, bool, error) {
				return models.User{}, false, nil
			},
		},
	}, fakePinger{}, config.Server{AuthRateLimitRPM: 2}, logger.Nop())
	router := h.Init()

	login := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
		req.RemoteAddr = remoteAddr
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusUnauthorized, login("10.0.0.1:5000").Code)
	assert.Equal(t, http.StatusUnauthorized, login("10.0.0.1:5001").Code)

	limited := login("10.0.0.1:5002")
	require.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "60", limited.Header().Get("Retry-After"))
	assert.Equal(t, "Too many requests", decodeError(t, limited).Message)

	assert.Equal(t, http.StatusUnauthorized, login("10.0.0.2:5000").Code, "other clients keep their budget")

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.RemoteAddr = "10.0.0.1:5003"
	rec := httptest.NewRecorder()
	h.services.MovieService = &fakeMovieService{
		listFn: func(context.Context) ([]models.Movie, error) { return []models.Movie{}, nil },
	}
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "catalog routes are not limited")
}

func TestClientIP(t *testing.T) {
	trusted := []netip.Prefix{
		netip.MustParsePrefix("10.0.0.0/8"),
		netip.MustParsePrefix("127.0.0.1/32"),
	}

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"untrusted peer ignores forwarded for", map[string]string{"X-Forwarded-For": "1.1.1.1"}, "9.9.9.9:1", "9.9.9.9"},
		{"untrusted peer ignores real ip", map[string]string{"X-Real-IP": "3.3.3.3"}, "9.9.9.9:1", "9.9.9.9"},
		{"trusted peer forwarded for", map[string]string{"X-Forwarded-For": "1.1.1.1"}, "10.0.0.5:1", "1.1.1.1"},
		{"rightmost untrusted hop wins", map[string]string{"X-Forwarded-For": "6.6.6.6, 2.2.2.2, 10.0.0.7"}, "10.0.0.5:1", "2.2.2.2"},
		{"all hops trusted", map[string]string{"X-Forwarded-For": "10.1.1.1, 10.0.0.7"}, "127.0.0.1:1", "10.1.1.1"},
		{"malformed forwarded for falls back to peer", map[string]string{"X-Forwarded-For": "garbage"}, "10.0.0.5:1", "10.0.0.5"},
		{"trusted peer real ip", map[string]string{"X-Real-IP": "3.3.3.3"}, "10.0.0.5:1", "3.3.3.3"},
		{"remote addr", nil, "9.9.9.9:1234", "9.9.9.9"},
		{"remote addr without port", nil, "9.9.9.9", "9.9.9.9"},
		{"empty remote addr", nil, "", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, clientIP(req, trusted))
		})
	}
}

func TestClientIP_NoTrustedProxies(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "127.0.0.1:4000"
	req.Header.Set("X-Forwarded-For", "1.1.1.1")
	req.Header.Set("X-Real-IP", "3.3.3.3")

	assert.Equal(t, "127.0.0.1", clientIP(req, nil))
}

func TestWithRateLimit_RotatingForwardedFor(t *testing.T) {
	newRouter := func(trustedProxies []string) http.Handler {
		h := NewHandler(&service.Services{
			AuthService: &fakeAuthService{
				validateUserFn: func(_ context.Context, _, _ string) (models.User, bool, error) {
					return models.User{}, false, nil
				},
			},
		}, fakePinger{}, config.Server{AuthRateLimitRPM: 2, TrustedProxies: trustedProxies}, logger.Nop())
		return h.Init()
	}

	login := func(router http.Handler, forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.com","password":"x"}`))
		req.RemoteAddr = "10.0.0.1:1234"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("direct client cannot spoof its address", func(t *testing.T) {
		router := newRouter(nil)

		allowed := 0
		for i := 0; i < 50; i++ {
			if login(router, fmt.Sprintf("1.2.3.%d", i)) != http.StatusTooManyRequests {
				allowed++
			}
		}
		assert.Equal(t, 2, allowed)
	})

	t.Run("trusted proxy forwards distinct clients", func(t *testing.T) {
		router := newRouter([]string{"10.0.0.0/8"})

		assert.Equal(t, http.StatusUnauthorized, login(router, "1.2.3.4"))
		assert.Equal(t, http.StatusUnauthorized, login(router, "1.2.3.4"))
		assert.Equal(t, http.StatusTooManyRequests, login(router, "1.2.3.4"))
		assert.Equal(t, http.StatusUnauthorized, login(router, "1.2.3.5"))
	})

	t.Run("spoofed hop before the proxy is ignored", func(t *testing.T) {
		router := newRouter([]string{"10.0.0.0/8"})

		allowed := 0
		for i := 0; i < 10; i++ {
			if login(router, fmt.Sprintf("1.2.3.%d, 5.5.5.5", i)) != http.StatusTooManyRequests {
				allowed++
			}
		}
		assert.Equal(t, 2, allowed)
	})
}

func TestRouteNotFound(t *testing.T) {
	h := newTestHandler(t, nil)

	tests := []struct {
		method, target, wantMessage string
	}{
		{http.MethodGet, "/nope", "Cannot GET /nope"},
		{http.MethodPut, "/movies/1", "Cannot PUT /movies/1"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMessage, func(t *testing.T) {
			rec := serve(t, h, tt.method, tt.target, "", "")

			require.Equal(t, http.StatusNotFound, rec.Code)
			resp := decodeError(t, rec)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, "Not Found", resp.Error)
		})
	}
}

func TestWithCORS_Preflight(t *testing.T) {
	h := NewHandler(&service.Services{}, fakePinger{}, config.Server{CORSOrigins: []string{"https://catalog.example"}}, logger.Nop())

	req := httptest.NewRequest(http.MethodOptions, "/movies", nil)
	req.Header.Set("Origin", "https://catalog.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "https://catalog.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestHealth(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		h := newTestHandler(t, nil)

		rec := serve(t, h, http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("database down", func(t *testing.T) {
		h := newTestHandler(t, nil)
		h.db = fakePinger{err: errors.New("dial tcp: connection refused")}

		rec := serve(t, h, http.MethodGet, "/health", "", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"status":"unavailable"}`, rec.Body.String())
	})
}
