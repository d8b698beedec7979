package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tanq16/netkit"
	"github.com/tanq16/netkit/output"
)

func newGetCmd() *cobra.Command {
	var method string
	var body string
	var retries int
	var retryDelay time.Duration

	cmd := &cobra.Command{
		Use:   "get [URL]",
		Short: "Perform an HTTP request and print the response body",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			n := newFacade()
			req := baseRequest(args[0])
			req.Method = netkit.Method(strings.ToUpper(method))
			if body != "" {
				req.Body = []byte(body)
			}
			cfg := netkit.NewRetryConfig(req)
			if retries > 0 {
				cfg.MaxRetries = retries
			}
			if retryDelay > 0 {
				cfg.RetryDelay = retryDelay
			}
			res := netkit.ExecuteWithRetry(n, cfg, netkit.NewStringSink())
			if res.HasError {
				output.PrintError(res.ErrorMessage)
				if res.DetailedError != "" {
					output.PrintDetail(res.DetailedError)
				}
				os.Exit(1)
			}
			if !res.IsSuccess() {
				output.PrintWarning(fmt.Sprintf("Request finished with status %d", res.StatusCode))
			}
			fmt.Print(res.Content.String())
		},
	}

	cmd.Flags().StringVarP(&method, "method", "X", "GET", "HTTP method")
	cmd.Flags().StringVarP(&body, "data", "d", "", "Request body")
	cmd.Flags().IntVarP(&retries, "retries", "r", 0, "Total attempt budget (default 3)")
	cmd.Flags().DurationVar(&retryDelay, "retry-delay", 0, "Delay between attempts (default 150ms)")
	return cmd
}
