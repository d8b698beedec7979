package main

import (
	"fmt"
	u "net/url"
	"os"
	"path"

	"github.com/spf13/cobra"
	"github.com/tanq16/netkit"
	"github.com/tanq16/netkit/output"
)

func newDownloadCmd() *cobra.Command {
	var outputPath string
	var connections int
	var chunkSize int64

	cmd := &cobra.Command{
		Use:   "download [URL] [--output OUTPUT_PATH]",
		Short: "Download a file over multiple connections",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			url := args[0]
			n := newFacade()
			cfg := netkit.NewMultiDownloadConfig(baseRequest(url))
			if chunkSize > 0 {
				cfg.Approach = netkit.ApproachSize
				cfg.SegmentParam = chunkSize
			} else if connections > 0 {
				cfg.Approach = netkit.ApproachThread
				cfg.SegmentParam = int64(connections)
			}
			if outputPath == "" {
				outputPath = inferOutputPath(url)
			}
			sink, err := netkit.NewFileSink(outputPath)
			if err != nil {
				output.PrintError(fmt.Sprintf("Error creating output file: %v", err))
				os.Exit(1)
			}
			defer sink.Close()
			if total, ok := n.ContentSize(url); ok {
				cfg.Progress = func(current int64) {
					fmt.Printf("\r%s", output.ProgressBar(current, total, 30))
				}
			}
			res := netkit.MultiDownload(n, cfg, sink)
			if cfg.Progress != nil {
				fmt.Println()
			}
			if res.HasError {
				output.PrintError(res.ErrorMessage)
				if res.DetailedError != "" {
					output.PrintDetail(res.DetailedError)
				}
				os.Exit(1)
			}
			output.PrintSuccess(fmt.Sprintf("Saved %s (%d bytes)", sink.Name(), sink.Len()))
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (inferred from the URL if not provided)")
	cmd.Flags().IntVarP(&connections, "connections", "c", 0, "Number of connections for the download")
	cmd.Flags().Int64Var(&chunkSize, "chunk-size", 0, "Fixed segment size in bytes (overrides --connections)")
	return cmd
}

func inferOutputPath(rawURL string) string {
	parsed, err := u.Parse(rawURL)
	if err != nil {
		return "download"
	}
	name := path.Base(parsed.Path)
	if name == "" || name == "." || name == "/" {
		return "download"
	}
	return name
}
