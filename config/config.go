// Package config holds the process-wide network configuration: user agent,
// proxy, protocol and the ordered host candidate list. A single shared
// instance backs the library defaults; callers may also construct private
// NetConfig values for isolated facades.
package config

import "sync"

// DefaultUserAgent is used when no user agent has been configured.
const DefaultUserAgent = "netkit/1.0 (+https://github.com/tanq16/netkit)"

// DefaultProtocol is the scheme prefix applied by Initialize(nil).
const DefaultProtocol = "https://"

// NetConfig is a concurrency-safe holder for process network settings.
// Setters are chainable. The "available host" is always the first entry of
// the host list; no rotation or failover is performed beyond that.
type NetConfig struct {
	mu        sync.RWMutex
	userAgent string
	proxy     string
	protocol  string
	hosts     []string
}

func (c *NetConfig) UserAgent() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userAgent
}

func (c *NetConfig) Proxy() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.proxy
}

func (c *NetConfig) Protocol() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.protocol
}

// AvailableHost returns the first host of the candidate list, or "" when the
// list is empty.
func (c *NetConfig) AvailableHost() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.hosts) > 0 {
		return c.hosts[0]
	}
	return ""
}

func (c *NetConfig) SetUserAgent(ua string) *NetConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userAgent = ua
	return c
}

func (c *NetConfig) SetProxy(proxy string) *NetConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.proxy = proxy
	return c
}

func (c *NetConfig) SetProtocol(protocol string) *NetConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.protocol = protocol
	return c
}

func (c *NetConfig) SetHosts(hosts []string) *NetConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hosts = append([]string(nil), hosts...)
	return c
}

func (c *NetConfig) PushHost(host string) *NetConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hosts = append(c.hosts, host)
	return c
}

func (c *NetConfig) ClearHosts() *NetConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hosts = nil
	return c
}

// Clear resets every field to its zero value.
func (c *NetConfig) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userAgent = ""
	c.proxy = ""
	c.protocol = ""
	c.hosts = nil
}

// BuildURL concatenates protocol, host and path for this config's current
// protocol and available host.
func (c *NetConfig) BuildURL(path string) string {
	return BuildURL(path, c.AvailableHost(), c.Protocol())
}

var global = &NetConfig{}

// Global returns the shared process-wide configuration.
func Global() *NetConfig {
	return global
}

// Initialize applies fn to the global configuration. A nil fn installs the
// library defaults instead.
func Initialize(fn func(*NetConfig)) {
	if fn != nil {
		fn(global)
		return
	}
	global.SetProtocol(DefaultProtocol).SetUserAgent(DefaultUserAgent)
}

// BuildURL is a literal concatenation of protocol, host and path. No slash
// de-duplication or normalization is performed.
func BuildURL(path, host, protocol string) string {
	return protocol + host + path
}
