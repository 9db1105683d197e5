package network

import (
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/proxy"
)

// ClientFactory creates HTTP clients for outbound calls, optionally
// routed through a SOCKS5 or HTTP proxy.
type ClientFactory struct {
	proxyURL       string
	testHTTPClient *http.Client // For testing only
}

// NewClientFactory creates a new client factory. proxyURL may be empty.
func NewClientFactory(proxyURL string) *ClientFactory {
	return &ClientFactory{proxyURL: proxyURL}
}

// NewClientFactoryForTest creates a client factory that always returns
// the given http.Client. This is only for use in tests.
func NewClientFactoryForTest(client *http.Client) *ClientFactory {
	return &ClientFactory{testHTTPClient: client}
}

// NewHTTPClient creates a standard http.Client honoring the proxy
// configuration.
func (f *ClientFactory) NewHTTPClient(timeout time.Duration) *http.Client {
	if f.testHTTPClient != nil {
		return f.testHTTPClient
	}

	client := &http.Client{Timeout: timeout}
	if f.proxyURL != "" {
		if transport := newTransportWithProxy(f.proxyURL); transport != nil {
			client.Transport = transport
		}
	}
	return client
}

func newTransportWithProxy(proxyURL string) http.RoundTripper {
	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil
	}

	switch u.Scheme {
	case "socks5", "socks5h":
		auth := socks5Auth(u)
		dialer, err := proxy.SOCKS5("tcp", u.Host, auth, proxy.Direct)
		if err != nil {
			return nil
		}
		return &http.Transport{
			Dial: dialer.Dial,
		}
	case "http", "https":
		return &http.Transport{
			Proxy: http.ProxyURL(u),
		}
	default:
		return nil
	}
}

func socks5Auth(u *url.URL) *proxy.Auth {
	if u.User == nil {
		return nil
	}
	password, _ := u.User.Password()
	return &proxy.Auth{
		User:     u.User.Username(),
		Password: password,
	}
}
