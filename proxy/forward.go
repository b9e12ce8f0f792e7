package proxy

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/iw2rmb/headeredit"
)

const sforcePrefix = "Sforce-"

// hopHeaders are connection-scoped and never forwarded in either direction.
var hopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

func (s *Server) handleProxy(w http.ResponseWriter, r *http.Request) {
	// Preflights carrying Access-Control-Request-Method are answered by the
	// CORS middleware; anything else using OPTIONS gets an empty 200.
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	target := r.Header.Get(s.cfg.EndpointHeader)
	if !s.pattern.MatchString(target) {
		s.logger.Warn("endpoint not allowed", zap.String("endpoint", target))
		msg := fmt.Sprintf("Proxying endpoint is not allowed. `%s` header must be a valid Salesforce domain: %s",
			strings.ToLower(s.cfg.EndpointHeader), target)
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	n := s.inflight.Add(1)
	defer s.inflight.Add(-1)
	s.logger.Debug("forwarding",
		zap.String("method", r.Method),
		zap.String("url", target),
		zap.Int64("inflight", n),
	)

	out, err := http.NewRequestWithContext(r.Context(), r.Method, target, r.Body)
	if err != nil {
		s.logger.Warn("build upstream request", zap.String("url", target), zap.Error(err))
		http.Error(w, fmt.Sprintf("invalid endpoint: %v", err), http.StatusBadRequest)
		return
	}
	out.ContentLength = r.ContentLength
	s.copyRequestHeaders(out.Header, r.Header)
	if out.Header.Get("User-Agent") == "" {
		out.Header.Set("User-Agent", headeredit.UserAgent("headeredit-proxy"))
	}

	resp, err := s.client.Do(out)
	if err != nil {
		s.logger.Error("upstream request failed", zap.String("url", target), zap.Error(err))
		http.Error(w, fmt.Sprintf("upstream request failed: %v", err), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	copyResponseHeaders(w.Header(), resp.Header)
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		s.logger.Warn("copy upstream response", zap.String("url", target), zap.Error(err))
	}
}

// copyRequestHeaders copies whitelisted and Sforce-* headers. X-Authorization
// replaces Authorization, for clients that cannot set the latter.
func (s *Server) copyRequestHeaders(dst, src http.Header) {
	for k, vv := range src {
		ck := http.CanonicalHeaderKey(k)
		if _, ok := s.forward[ck]; !ok && !strings.HasPrefix(ck, sforcePrefix) {
			continue
		}
		for _, v := range vv {
			dst.Add(ck, v)
		}
	}
	if v := src.Get("X-Authorization"); v != "" {
		dst.Set("Authorization", v)
	}
	for _, h := range hopHeaders {
		dst.Del(h)
	}
}

// copyResponseHeaders copies upstream headers except hop-by-hop ones and
// CORS headers, which belong to the proxy's own policy.
func copyResponseHeaders(dst, src http.Header) {
	for k, vv := range src {
		if isHopHeader(k) || strings.HasPrefix(http.CanonicalHeaderKey(k), "Access-Control-") {
			continue
		}
		for _, v := range vv {
			dst.Add(k, v)
		}
	}
}

func isHopHeader(k string) bool {
	ck := http.CanonicalHeaderKey(k)
	for _, h := range hopHeaders {
		if ck == h {
			return true
		}
	}
	return false
}
