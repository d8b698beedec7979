package netkit

import (
	"net/http"
	"net/url"
	"time"
)

// TransportConfig tunes the underlying HTTP transport engine.
type TransportConfig struct {
	Timeout       time.Duration
	KATimeout     time.Duration
	ProxyURL      string
	ProxyUsername string
	ProxyPassword string
	Headers       map[string]string
}

// HTTPDoer is the seam to the external transport engine. Anything that can
// perform an HTTP round trip satisfies it, including test doubles.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type transportClient struct {
	client *http.Client
	cfg    TransportConfig
}

func newTransport(cfg TransportConfig) *transportClient {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.KATimeout == 0 {
		cfg.KATimeout = 60 * time.Second
	}
	transport := &http.Transport{
		IdleConnTimeout:     cfg.KATimeout,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		DisableCompression:  true,
		MaxConnsPerHost:     0,
	}
	if cfg.ProxyURL != "" {
		proxyURL, err := url.Parse(cfg.ProxyURL)
		if err == nil {
			if cfg.ProxyUsername != "" {
				if cfg.ProxyPassword != "" {
					proxyURL.User = url.UserPassword(cfg.ProxyUsername, cfg.ProxyPassword)
				} else {
					proxyURL.User = url.User(cfg.ProxyUsername)
				}
			}
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}
	return &transportClient{
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		cfg: cfg,
	}
}

func (t *transportClient) Do(req *http.Request) (*http.Response, error) {
	for k, v := range t.cfg.Headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	return t.client.Do(req)
}
