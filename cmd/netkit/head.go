package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tanq16/netkit"
	"github.com/tanq16/netkit/output"
)

func newHeadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "head [URL]",
		Short: "Perform a HEAD request and print the response headers",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			n := newFacade()
			req := baseRequest(args[0])
			req.Method = netkit.Head
			res := netkit.Execute(n, req, netkit.NewStringSink())
			if res.HasError {
				output.PrintError(res.ErrorMessage)
				if res.DetailedError != "" {
					output.PrintDetail(res.DetailedError)
				}
				os.Exit(1)
			}
			output.PrintHeader(fmt.Sprintf("%s (status %d)", args[0], res.StatusCode))
			for _, line := range strings.Split(strings.TrimRight(res.RawHeaders, "\n"), "\n") {
				output.PrintDetail(line)
			}
		},
	}
	return cmd
}
