// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/movie-catalog/internal/app"
	"golang.org/x/time/rate"
)

const (
	defaultAuthRateLimitRPM = 20
	// limiters unused for this long are dropped once the table grows large.
	limiterIdleTTL  = 10 * time.Minute
	limiterGCThresh = 1000
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// ipRateLimiter keeps one token bucket per client IP.
type ipRateLimiter struct {
	rpm     int
	mu      sync.Mutex
	clients map[string]*clientLimiter
}

func newIPRateLimiter(rpm int) *ipRateLimiter {
	if rpm <= 0 {
		rpm = defaultAuthRateLimitRPM
	}
	return &ipRateLimiter{
		rpm:     rpm,
		clients: map[string]*clientLimiter{},
	}
}

func (l *ipRateLimiter) allow(clientIP string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	client, ok := l.clients[clientIP]
	if !ok {
		client = &clientLimiter{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.rpm)), l.rpm),
		}
		l.clients[clientIP] = client
	}
	client.lastSeen = now
	l.gcLocked(now)

	return client.limiter.AllowN(now, 1)
}

func (l *ipRateLimiter) gcLocked(now time.Time) {
	if len(l.clients) < limiterGCThresh {
		return
	}

	cutoff := now.Add(-limiterIdleTTL)
	for ip, client := range l.clients {
		if client.lastSeen.Before(cutoff) {
			delete(l.clients, ip)
		}
	}
}

// withRateLimit caps requests per minute per client IP. Credential
// endpoints are the target: it slows down password guessing.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	limiter := newIPRateLimiter(h.authRateLimitRPM)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.allow(clientIP(r, h.trustedProxies)) {
				w.Header().Set("Retry-After", "60")
				resp := newErrorResponse(http.StatusTooManyRequests, app.MsgTooManyRequests)
				writeErrorResponse(w, r, resp, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP identifies the caller for rate limiting. Forwarding headers
// are honoured only when the TCP peer is a trusted proxy; X-Forwarded-For
// is then walked right to left and the first untrusted hop wins.
func clientIP(r *http.Request, trusted []netip.Prefix) string {
	peer := peerIP(r.RemoteAddr)
	addr, err := netip.ParseAddr(peer)
	if err != nil || !isTrustedProxy(addr, trusted) {
		return peer
	}

	if forwarded := r.Header.Values("X-Forwarded-For"); len(forwarded) > 0 {
		hops := strings.Split(strings.Join(forwarded, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop, err := netip.ParseAddr(strings.TrimSpace(hops[i]))
			if err != nil {
				break
			}
			if !isTrustedProxy(hop, trusted) || i == 0 {
				return hop.Unmap().String()
			}
		}
	}

	if realIP, err := netip.ParseAddr(strings.TrimSpace(r.Header.Get("X-Real-IP"))); err == nil {
		return realIP.Unmap().String()
	}

	return peer
}

func peerIP(remoteAddr string) string {
	remoteAddr = strings.TrimSpace(remoteAddr)
	host, _, err := net.SplitHostPort(remoteAddr)
	if err == nil && host != "" {
		return host
	}

	if remoteAddr == "" {
		return "unknown"
	}
	return remoteAddr
}

func isTrustedProxy(addr netip.Addr, trusted []netip.Prefix) bool {
	addr = addr.Unmap()
	for _, prefix := range trusted {
		if prefix.Contains(addr) {
			return true
		}
	}
	return false
}
