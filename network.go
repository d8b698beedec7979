// Package netkit is an HTTP client facade: single-request execution with
// pluggable response sinks, fixed-delay retry, pluggable asynchronous
// dispatch, and a segmented download engine that fetches a resource as
// concurrent byte-range requests reassembled into one ordered output.
package netkit

import (
	"github.com/tanq16/netkit/config"
	"github.com/tanq16/netkit/executor"
	"github.com/tanq16/netkit/logger"
)

// Network is the facade instance. Collaborators default from the
// process-wide config and factories; any of them can be injected per
// instance through Options.
type Network struct {
	cfg    *config.NetConfig
	log    logger.Logger
	exec   executor.Executor
	client HTTPDoer
}

// Option customizes a Network at construction.
type Option func(*Network)

// WithNetConfig uses cfg instead of the shared process configuration.
func WithNetConfig(cfg *config.NetConfig) Option {
	return func(n *Network) { n.cfg = cfg }
}

// WithLogger injects a logger, bypassing the process-wide factory.
func WithLogger(l logger.Logger) Option {
	return func(n *Network) { n.log = l }
}

// WithExecutor injects an executor, bypassing the process-wide factory.
func WithExecutor(e executor.Executor) Option {
	return func(n *Network) { n.exec = e }
}

// WithClient injects the transport engine, e.g. a test double.
func WithClient(c HTTPDoer) Option {
	return func(n *Network) { n.client = c }
}

// WithTransport builds the transport engine from cfg.
func WithTransport(cfg TransportConfig) Option {
	return func(n *Network) { n.client = newTransport(cfg) }
}

// New constructs a facade. Collaborators not supplied through options come
// from config.Global() and the logger/executor factories; the transport is
// built with the configured proxy.
func New(opts ...Option) *Network {
	n := &Network{}
	for _, opt := range opts {
		opt(n)
	}
	if n.cfg == nil {
		n.cfg = config.Global()
	}
	if n.log == nil {
		n.log = logger.New()
	}
	if n.exec == nil {
		n.exec = executor.New()
	}
	if n.client == nil {
		n.client = newTransport(TransportConfig{ProxyURL: n.cfg.Proxy()})
	}
	return n
}
