package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetConfigSettersAndGetters(t *testing.T) {
	cfg := &NetConfig{}

	cfg.SetUserAgent("TestAgent/1.0").
		SetProxy("http://proxy.example.com:8080").
		SetProtocol("https://")

	assert.Equal(t, "TestAgent/1.0", cfg.UserAgent())
	assert.Equal(t, "http://proxy.example.com:8080", cfg.Proxy())
	assert.Equal(t, "https://", cfg.Protocol())
}

func TestAvailableHostIsFirstEntry(t *testing.T) {
	cfg := &NetConfig{}

	assert.Empty(t, cfg.AvailableHost())

	cfg.PushHost("host1.example.com")
	cfg.PushHost("host2.example.com")
	assert.Equal(t, "host1.example.com", cfg.AvailableHost())

	cfg.SetHosts([]string{"api1.test.com", "api2.test.com", "api3.test.com"})
	assert.Equal(t, "api1.test.com", cfg.AvailableHost())

	cfg.ClearHosts()
	assert.Empty(t, cfg.AvailableHost())
}

func TestClearResetsEverything(t *testing.T) {
	cfg := &NetConfig{}
	cfg.SetUserAgent("TestAgent/1.0").
		SetProxy("http://proxy.test.com:8080").
		SetProtocol("http://").
		PushHost("test.example.com")

	cfg.Clear()

	assert.Empty(t, cfg.UserAgent())
	assert.Empty(t, cfg.Proxy())
	assert.Empty(t, cfg.Protocol())
	assert.Empty(t, cfg.AvailableHost())
}

func TestBuildURL(t *testing.T) {
	assert.Equal(t, "https://api.example.com/users/123",
		BuildURL("/users/123", "api.example.com", "https://"))
	assert.Equal(t, "http://custom.example.com/data",
		BuildURL("/data", "custom.example.com", "http://"))
}

func TestNetConfigBuildURL(t *testing.T) {
	cfg := &NetConfig{}
	cfg.SetProtocol("https://").SetHosts([]string{"api.example.com"})

	assert.Equal(t, "https://api.example.com/users/123", cfg.BuildURL("/users/123"))
}

func TestInitializeDefaults(t *testing.T) {
	Global().Clear()
	defer Global().Clear()

	Initialize(nil)

	assert.Equal(t, DefaultUserAgent, Global().UserAgent())
	assert.Equal(t, DefaultProtocol, Global().Protocol())
}

func TestInitializeCustom(t *testing.T) {
	Global().Clear()
	defer Global().Clear()

	Initialize(func(c *NetConfig) {
		c.SetUserAgent("CustomApp/2.0").
			SetProxy("http://custom.proxy.com:3128").
			SetProtocol("http://").
			SetHosts([]string{"custom.api.com"})
	})

	assert.Equal(t, "CustomApp/2.0", Global().UserAgent())
	assert.Equal(t, "http://custom.proxy.com:3128", Global().Proxy())
	assert.Equal(t, "http://", Global().Protocol())
	assert.Equal(t, "custom.api.com", Global().AvailableHost())
}
