package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vmount/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "vmount",
		Short: "Mount, hydrate and unmount components against an in-memory host tree",
		Long: `vmount exercises the component mount runtime from the command line.

It renders a demo counter component to hydratable markup, hydrates
markup back into a host document and reports what the runtime did:

  • Server-rendered markup wrapped in <!--[--> and <!--]--> markers
  • Hydration with mismatch recovery
  • Reference-counted delegated event listeners
  • Prometheus metrics for mounts, unmounts and mismatches`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to vmount.json or vmount.yaml")

	rootCmd.AddCommand(
		renderCmd(&configPath),
		hydrateCmd(&configPath),
		versionCmd(),
	)
	return rootCmd
}

// success prints a success message.
func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
