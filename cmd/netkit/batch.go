package main

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/spf13/cobra"
	"github.com/tanq16/netkit"
	"github.com/tanq16/netkit/output"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type batchEntry struct {
	URL         string `yaml:"url"`
	OutputPath  string `yaml:"output,omitempty"`
	Connections int    `yaml:"connections,omitempty"`
}

type batchFile struct {
	Downloads []batchEntry `yaml:"downloads"`
}

func newBatchCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch [YAML_FILE] [OPTIONS]",
		Short: "Process multiple downloads from a YAML file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				output.PrintError(fmt.Sprintf("Error reading YAML file: %v", err))
				os.Exit(1)
			}
			var batch batchFile
			if err := yaml.Unmarshal(data, &batch); err != nil {
				output.PrintError(fmt.Sprintf("Error parsing YAML file: %v", err))
				os.Exit(1)
			}
			entries := make([]batchEntry, 0, len(batch.Downloads))
			for _, entry := range batch.Downloads {
				if entry.URL == "" {
					output.PrintWarning("Empty url found in downloads section, skipping...")
					continue
				}
				entries = append(entries, entry)
			}
			if len(entries) == 0 {
				output.PrintError("No valid jobs found in the batch file")
				os.Exit(1)
			}
			n := newFacade()
			var failures atomic.Int32
			var g errgroup.Group
			g.SetLimit(workers)
			for _, entry := range entries {
				entry := entry
				g.Go(func() error {
					if err := runBatchEntry(n, entry); err != nil {
						failures.Add(1)
						output.PrintError(fmt.Sprintf("%s: %v", entry.URL, err))
						return nil
					}
					output.PrintSuccess(entry.URL)
					return nil
				})
			}
			g.Wait()
			if failures.Load() > 0 {
				output.PrintError(fmt.Sprintf("Encountered %d failed download(s)", failures.Load()))
				os.Exit(1)
			}
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 2, "Number of downloads to run in parallel")
	return cmd
}

func runBatchEntry(n *netkit.Network, entry batchEntry) error {
	cfg := netkit.NewMultiDownloadConfig(baseRequest(entry.URL))
	if entry.Connections > 0 {
		cfg.Approach = netkit.ApproachThread
		cfg.SegmentParam = int64(entry.Connections)
	}
	outputPath := entry.OutputPath
	if outputPath == "" {
		outputPath = inferOutputPath(entry.URL)
	}
	sink, err := netkit.NewFileSink(outputPath)
	if err != nil {
		return fmt.Errorf("error creating output file: %v", err)
	}
	defer sink.Close()
	res := netkit.MultiDownload(n, cfg, sink)
	if res.HasError {
		return fmt.Errorf("%s", res.ErrorMessage)
	}
	return nil
}
