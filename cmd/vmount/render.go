package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vmount/pkg/mount"
	"github.com/vango-dev/vmount/pkg/render"
)

type renderOptions struct {
	start  int
	page   bool
	pretty bool
	output string
}

func renderCmd(configPath *string) *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print hydratable markup for the demo counter",
		Long: `Render the demo counter component to HTML wrapped in hydration markers.

The output can be fed back to "vmount hydrate --file". Indented output
(--pretty) adds whitespace text between nodes and is for reading only:
hydrating it reports a mismatch.

Examples:
  vmount render
  vmount render --start=5 --page -o counter.html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, *configPath, opts)
		},
	}

	cmd.Flags().IntVar(&opts.start, "start", 0, "Initial counter value")
	cmd.Flags().BoolVar(&opts.page, "page", false, "Wrap the markup in a complete HTML document")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "Indent the markup for reading (indented markup cannot be hydrated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}

func runRender(cmd *cobra.Command, configPath string, opts renderOptions) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	logger := newLogger(cfg, cmd.ErrOrStderr())
	mopts := runtimeOptions(cfg, logger, prometheus.NewRegistry())

	container, err := render.Markup(counter, mount.Props{"start": opts.start}, mopts...)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	r := render.NewRenderer(render.RendererConfig{Pretty: opts.pretty})
	if opts.page {
		return r.RenderPage(w, render.PageData{
			Body:  container,
			Title: "vmount counter",
		})
	}

	if err := r.RenderChildren(w, container); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}
