package api

import (
	"context"
	"io"
	"net/url"
	"sync"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/bogdanfinn/tls-client/bandwidth"

	"github.com/diogo/quoteweb/internal/models"
)

// MockResponseBody is a ReadCloser that simulates reading response data
type MockResponseBody struct {
	data []byte
	pos  int
}

// NewMockResponseBody creates a new MockResponseBody with the given data
func NewMockResponseBody(data []byte) *MockResponseBody {
	return &MockResponseBody{data: data, pos: 0}
}

// Read implements the io.Reader interface
func (m *MockResponseBody) Read(p []byte) (n int, err error) {
	if m.pos >= len(m.data) {
		return 0, io.EOF
	}
	n = copy(p, m.data[m.pos:])
	m.pos += n
	return n, nil
}

// Close implements the io.Closer interface
func (m *MockResponseBody) Close() error {
	return nil
}

// mockRoute is the canned reply for one URL
type mockRoute struct {
	status int
	body   []byte
	err    error
}

// MockHttpClient is a mock implementation of tls_client.HttpClient for testing.
// Replies are routed by request URL; unknown URLs return 404.
type MockHttpClient struct {
	mu       sync.Mutex
	routes   map[string]mockRoute
	calls    map[string]int
	lastReq  *fhttp.Request
	blocking bool
}

// NewMockHttpClient creates an empty MockHttpClient
func NewMockHttpClient() *MockHttpClient {
	return &MockHttpClient{
		routes: make(map[string]mockRoute),
		calls:  make(map[string]int),
	}
}

// Respond registers a response for rawURL
func (m *MockHttpClient) Respond(rawURL string, status int, body string) *MockHttpClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[rawURL] = mockRoute{status: status, body: []byte(body)}
	return m
}

// Fail registers a transport error for rawURL
func (m *MockHttpClient) Fail(rawURL string, err error) *MockHttpClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[rawURL] = mockRoute{err: err}
	return m
}

// Block makes Do wait for the request context to end
func (m *MockHttpClient) Block() *MockHttpClient {
	m.blocking = true
	return m
}

// Calls returns how many requests were made to rawURL
func (m *MockHttpClient) Calls(rawURL string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[rawURL]
}

// LastRequest returns the most recent request
func (m *MockHttpClient) LastRequest() *fhttp.Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastReq
}

// GetCookies implements the tls_client.HttpClient interface
func (m *MockHttpClient) GetCookies(u *url.URL) []*fhttp.Cookie {
	return nil
}

// SetCookies implements the tls_client.HttpClient interface
func (m *MockHttpClient) SetCookies(u *url.URL, cookies []*fhttp.Cookie) {}

// SetCookieJar implements the tls_client.HttpClient interface
func (m *MockHttpClient) SetCookieJar(jar fhttp.CookieJar) {}

// GetCookieJar implements the tls_client.HttpClient interface
func (m *MockHttpClient) GetCookieJar() fhttp.CookieJar {
	return nil
}

// SetProxy implements the tls_client.HttpClient interface
func (m *MockHttpClient) SetProxy(proxyUrl string) error {
	return nil
}

// GetProxy implements the tls_client.HttpClient interface
func (m *MockHttpClient) GetProxy() string {
	return ""
}

// SetFollowRedirect implements the tls_client.HttpClient interface
func (m *MockHttpClient) SetFollowRedirect(followRedirect bool) {}

// GetFollowRedirect implements the tls_client.HttpClient interface
func (m *MockHttpClient) GetFollowRedirect() bool {
	return false
}

// CloseIdleConnections implements the tls_client.HttpClient interface
func (m *MockHttpClient) CloseIdleConnections() {}

// Do implements the tls_client.HttpClient interface
func (m *MockHttpClient) Do(req *fhttp.Request) (*fhttp.Response, error) {
	key := req.URL.String()

	m.mu.Lock()
	m.calls[key]++
	m.lastReq = req
	route, ok := m.routes[key]
	m.mu.Unlock()

	if m.blocking {
		<-req.Context().Done()
		return nil, req.Context().Err()
	}

	if !ok {
		route = mockRoute{status: 404, body: []byte("not found")}
	}
	if route.err != nil {
		return nil, route.err
	}

	return &fhttp.Response{
		StatusCode: route.status,
		Body:       NewMockResponseBody(route.body),
		Header:     make(fhttp.Header),
	}, nil
}

// Get implements the tls_client.HttpClient interface
func (m *MockHttpClient) Get(rawURL string) (*fhttp.Response, error) {
	req, err := fhttp.NewRequest(fhttp.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return m.Do(req)
}

// Head implements the tls_client.HttpClient interface
func (m *MockHttpClient) Head(rawURL string) (*fhttp.Response, error) {
	return m.Get(rawURL)
}

// Post implements the tls_client.HttpClient interface
func (m *MockHttpClient) Post(rawURL, contentType string, body io.Reader) (*fhttp.Response, error) {
	return m.Get(rawURL)
}

// GetBandwidthTracker implements the tls_client.HttpClient interface
func (m *MockHttpClient) GetBandwidthTracker() bandwidth.BandwidthTracker {
	return nil
}

// newMockClient wraps mock in a Client
func newMockClient(mock *MockHttpClient) *Client {
	client, err := NewClient(WithHTTPClient(mock))
	if err != nil {
		panic(err)
	}
	return client
}

// stubSource is a Source with a fixed reply and a call counter
type stubSource struct {
	name  string
	quote models.Quote
	err   error
	calls int
	panic bool
	// onFetch runs before the reply, e.g. to cancel the caller's context
	onFetch func()
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) (models.Quote, error) {
	s.calls++
	if s.onFetch != nil {
		s.onFetch()
	}
	if s.panic {
		panic("boom")
	}
	return s.quote, s.err
}
