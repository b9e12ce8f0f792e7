package proxy

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/iw2rmb/headeredit"
)

type echo struct {
	Method string      `json:"method"`
	Path   string      `json:"path"`
	Header http.Header `json:"header"`
	Body   string      `json:"body"`
}

func newUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("SForce-Limit-Info", "api-usage=1/15000")
		w.Header().Set("Access-Control-Allow-Origin", "https://upstream.example")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(echo{Method: r.Method, Path: r.URL.Path, Header: r.Header, Body: string(body)})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestServer(t *testing.T, upstreamURL string) *Server {
	t.Helper()
	cfg := DefaultConfig()
	cfg.EndpointPattern = "^" + regexp.QuoteMeta(upstreamURL) + "/"
	s, err := New(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	return s
}

func doRequest(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeEcho(t *testing.T, rec *httptest.ResponseRecorder) echo {
	t.Helper()
	var got echo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestProxy_ForwardsWhitelistedHeaders(t *testing.T) {
	upstream := newUpstream(t)
	s := newTestServer(t, upstream.URL)

	req := httptest.NewRequest(http.MethodPost, "/proxy/services/data", strings.NewReader(`{"a":1}`))
	req.Header.Set(DefaultEndpointHeader, upstream.URL+"/services/data/v60.0/sobjects")
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Sforce-Query-Options", "batchSize=200")
	req.Header.Set("X-Custom", "dropped")
	req.Header.Set("Connection", "keep-alive")

	rec := doRequest(s, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	got := decodeEcho(t, rec)
	require.Equal(t, http.MethodPost, got.Method)
	require.Equal(t, "/services/data/v60.0/sobjects", got.Path)
	require.JSONEq(t, `{"a":1}`, got.Body)
	require.Equal(t, "Bearer token", got.Header.Get("Authorization"))
	require.Equal(t, "application/json", got.Header.Get("Content-Type"))
	require.Equal(t, "batchSize=200", got.Header.Get("Sforce-Query-Options"))
	require.Empty(t, got.Header.Get("X-Custom"))
	require.Empty(t, got.Header.Get(DefaultEndpointHeader))
	require.Equal(t, headeredit.UserAgent("headeredit-proxy"), got.Header.Get("User-Agent"))
}

func TestProxy_MapsXAuthorization(t *testing.T) {
	upstream := newUpstream(t)
	s := newTestServer(t, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/proxy", nil)
	req.Header.Set(DefaultEndpointHeader, upstream.URL+"/services/oauth2/userinfo")
	req.Header.Set("Authorization", "Basic ignored")
	req.Header.Set("X-Authorization", "Bearer mapped")

	rec := doRequest(s, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, []string{"Bearer mapped"}, decodeEcho(t, rec).Header.Values("Authorization"))
}

func TestProxy_CopiesUpstreamResponse(t *testing.T) {
	upstream := newUpstream(t)
	s := newTestServer(t, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/proxy/x", nil)
	req.Header.Set(DefaultEndpointHeader, upstream.URL+"/x")
	req.Header.Set("Origin", "http://localhost:3000")

	rec := doRequest(s, req)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "api-usage=1/15000", rec.Header().Get("SForce-Limit-Info"))
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	// The proxy's CORS policy wins over the upstream's.
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.True(t, strings.EqualFold("SForce-Limit-Info", rec.Header().Get("Access-Control-Expose-Headers")))
}

func TestProxy_RejectsEndpoints(t *testing.T) {
	upstream := newUpstream(t)
	s := newTestServer(t, upstream.URL)

	for _, endpoint := range []string{"", "https://example.com/", "file:///etc/passwd"} {
		t.Run(endpoint, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/proxy", nil)
			if endpoint != "" {
				req.Header.Set(DefaultEndpointHeader, endpoint)
			}
			rec := doRequest(s, req)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, rec.Body.String(), "Proxying endpoint is not allowed")
			require.Contains(t, rec.Body.String(), "salesforceproxy-endpoint")
		})
	}
}

func TestDefaultEndpointPattern(t *testing.T) {
	re := regexp.MustCompile(DefaultEndpointPattern)
	for endpoint, want := range map[string]bool{
		"https://na1.salesforce.com/services/data":           true,
		"https://acme.my.salesforce.com/services/oauth2/token": true,
		"https://acme--dev.sandbox.my.force.com/":              true,
		"https://x.cloudforce.com/":                            true,
		"https://x.database.com/":                              true,
		"http://na1.salesforce.com/":                           false,
		"https://salesforce.com.evil.io/":                      false,
		"https://na1.salesforce.com":                           false,
	} {
		require.Equal(t, want, re.MatchString(endpoint), endpoint)
	}
}

func TestProxy_PlainOptions(t *testing.T) {
	s := newTestServer(t, "http://127.0.0.1:1")

	rec := doRequest(s, httptest.NewRequest(http.MethodOptions, "/proxy/anything", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestProxy_Preflight(t *testing.T) {
	s := newTestServer(t, "http://127.0.0.1:1")

	req := httptest.NewRequest(http.MethodOptions, "/proxy/services", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	req.Header.Set("Access-Control-Request-Headers", "authorization,salesforceproxy-endpoint")

	rec := doRequest(s, req)
	require.Less(t, rec.Code, 300)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, http.MethodPatch, rec.Header().Get("Access-Control-Allow-Methods"))
	require.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
}

func TestProxy_UpstreamFailureIsBadGateway(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	s := newTestServer(t, deadURL)
	req := httptest.NewRequest(http.MethodGet, "/proxy", nil)
	req.Header.Set(DefaultEndpointHeader, deadURL+"/services")

	rec := doRequest(s, req)
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), "upstream request failed")
}

func TestProxy_NotFoundAndMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, "http://127.0.0.1:1")

	rec := doRequest(s, httptest.NewRequest(http.MethodGet, "/other", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Not Found\n", rec.Body.String())

	rec = doRequest(s, httptest.NewRequest("BREW", "/proxy", nil))
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, "Method Not Allowed\n", rec.Body.String())
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EndpointPattern = "("
	_, err := New(cfg, nil)
	require.ErrorContains(t, err, "invalid proxy config")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	upstream := newUpstream(t)
	s := newTestServer(t, upstream.URL)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, "http://"+ln.Addr().String()+"/proxy/ping", nil)
	require.NoError(t, err)
	req.Header.Set(DefaultEndpointHeader, upstream.URL+"/ping")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	cancel()
	require.NoError(t, <-done)
}

func TestRun_BindFailure(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	cfg := DefaultConfig()
	cfg.Port = ln.Addr().(*net.TCPAddr).Port
	s, err := New(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	err = s.Run(t.Context())
	require.ErrorContains(t, err, "listen on :"+strconv.Itoa(cfg.Port))
}
