package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tanq16/netkit"
	"github.com/tanq16/netkit/config"
	"github.com/tanq16/netkit/logger"
	"github.com/tanq16/netkit/output"
	"gopkg.in/yaml.v3"
)

var (
	timeout       time.Duration
	kaTimeout     time.Duration
	userAgent     string
	proxyURL      string
	proxyUsername string
	proxyPassword string
	headers       []string
	configFile    string
	debug         bool
)

var NetkitVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "netkit",
	Short:   "Netkit is an HTTP client and multi-connection download tool",
	Version: NetkitVersion,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.InitLogger(debug)
		config.Initialize(nil)
		if configFile != "" {
			if err := loadNetSettings(configFile); err != nil {
				output.PrintError(fmt.Sprintf("Error loading config file: %v", err))
				os.Exit(1)
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", 3*time.Minute, "Connection timeout (eg. 5s, 10m)")
	rootCmd.PersistentFlags().DurationVarP(&kaTimeout, "keep-alive-timeout", "k", 90*time.Second, "Keep-alive timeout for client (eg. 10s, 1m, 80s)")
	rootCmd.PersistentFlags().StringVarP(&userAgent, "user-agent", "a", "", "User agent (defaults to the netkit agent)")
	rootCmd.PersistentFlags().StringVarP(&proxyURL, "proxy", "p", "", "HTTP/HTTPS proxy URL (e.g., proxy.example.com:8080)")
	rootCmd.PersistentFlags().StringVar(&proxyUsername, "proxy-username", "", "Proxy username (if not provided in proxy URL)")
	rootCmd.PersistentFlags().StringVar(&proxyPassword, "proxy-password", "", "Proxy password (if not provided in proxy URL)")
	rootCmd.PersistentFlags().StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers (like 'Authorization: Basic dXNlcjpwYXNz'); can be specified multiple times")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to YAML file with net settings (user agent, proxy, protocol, hosts)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newGetCmd())
	rootCmd.AddCommand(newHeadCmd())
	rootCmd.AddCommand(newDownloadCmd())
	rootCmd.AddCommand(newBatchCmd())
}

type netSettings struct {
	UserAgent string   `yaml:"user_agent,omitempty"`
	Proxy     string   `yaml:"proxy,omitempty"`
	Protocol  string   `yaml:"protocol,omitempty"`
	Hosts     []string `yaml:"hosts,omitempty"`
}

// loadNetSettings applies a YAML settings file to the process config.
func loadNetSettings(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var s netSettings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return err
	}
	config.Initialize(func(c *config.NetConfig) {
		if s.UserAgent != "" {
			c.SetUserAgent(s.UserAgent)
		}
		if s.Proxy != "" {
			c.SetProxy(s.Proxy)
		}
		if s.Protocol != "" {
			c.SetProtocol(s.Protocol)
		}
		if len(s.Hosts) > 0 {
			c.SetHosts(s.Hosts)
		}
	})
	return nil
}

// newFacade builds a Network wired with the transport options from the
// persistent flags. The proxy flag wins over the config file.
func newFacade() *netkit.Network {
	proxy := proxyURL
	if proxy == "" {
		proxy = config.Global().Proxy()
	}
	return netkit.New(netkit.WithTransport(netkit.TransportConfig{
		Timeout:       timeout,
		KATimeout:     kaTimeout,
		ProxyURL:      proxy,
		ProxyUsername: proxyUsername,
		ProxyPassword: proxyPassword,
	}))
}

func baseRequest(url string) netkit.RequestConfig {
	return netkit.RequestConfig{
		URL:       url,
		RawHeader: strings.Join(headers, "\n"),
		UserAgent: userAgent,
	}
}
