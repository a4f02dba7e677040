package esp

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// rewriteTransport sends every request to target while recording the host the client asked for.
type rewriteTransport struct {
	target *url.URL

	mu    sync.Mutex
	hosts []string
}

func newRewriteTransport(t *testing.T, srv *httptest.Server) *rewriteTransport {
	t.Helper()
	target, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return &rewriteTransport{target: target}
}

func (rt *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	rt.mu.Lock()
	rt.hosts = append(rt.hosts, req.URL.Host)
	rt.mu.Unlock()

	out := req.Clone(req.Context())
	out.URL.Scheme = rt.target.Scheme
	out.URL.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(out)
}

func (rt *rewriteTransport) requestedHosts() []string {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return append([]string(nil), rt.hosts...)
}

func closedServerURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	u := srv.URL
	srv.Close()
	return u
}
