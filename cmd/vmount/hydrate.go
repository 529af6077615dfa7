package main

import (
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/vango-dev/vmount/pkg/host"
	"github.com/vango-dev/vmount/pkg/hydration"
	"github.com/vango-dev/vmount/pkg/mount"
	"github.com/vango-dev/vmount/pkg/render"
)

type hydrateOptions struct {
	start     int
	file      string
	corrupt   bool
	noRecover bool
	clicks    int
	metrics   bool
}

func hydrateCmd(configPath *string) *cobra.Command {
	var opts hydrateOptions

	cmd := &cobra.Command{
		Use:   "hydrate",
		Short: "Hydrate markup with the demo counter and report listener bookkeeping",
		Long: `Hydrate server-rendered markup with the demo counter component.

The markup comes from --file or is rendered on the spot. After hydrating,
the command clicks the increment button, unmounts the instance and prints
the delegated listener counts at each step.

Examples:
  vmount hydrate
  vmount hydrate --corrupt
  vmount hydrate --corrupt --no-recover
  vmount hydrate --file=counter.html --clicks=3 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHydrate(cmd, *configPath, opts)
		},
	}

	cmd.Flags().IntVar(&opts.start, "start", 0, "Initial counter value")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "HTML file to hydrate (default: render the counter)")
	cmd.Flags().BoolVar(&opts.corrupt, "corrupt", false, "Insert an unexpected node before the end marker")
	cmd.Flags().BoolVar(&opts.noRecover, "no-recover", false, "Fail instead of re-mounting on a mismatch")
	cmd.Flags().IntVar(&opts.clicks, "clicks", 1, "Number of clicks to dispatch on the increment button")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "Print Prometheus metrics (also enabled by metrics.enabled)")

	return cmd
}

func runHydrate(cmd *cobra.Command, configPath string, opts hydrateOptions) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	logger := newLogger(cfg, cmd.ErrOrStderr())
	reg := prometheus.NewRegistry()
	props := mount.Props{"start": opts.start}

	doc, body, err := loadMarkup(opts, props)
	if err != nil {
		return err
	}
	if opts.corrupt {
		if !corrupt(doc, body) {
			warn(out, "no end marker found, nothing to corrupt")
		}
	}

	rt := mount.New(doc, runtimeOptions(cfg, logger, reg)...)
	mopts := mount.Options{
		Target: body,
		Props:  props,
		Events: mount.Events{
			"change": func(detail any) { info(out, "change: %v", detail) },
		},
	}
	if opts.noRecover {
		mopts.Recover = mount.Bool(false)
	}
	if cfg.Hydration.Intro {
		mopts.Intro = mount.Bool(true)
	}

	inst, err := rt.HydrateContext(cmd.Context(), counter, mopts)
	if err != nil {
		return err
	}
	success(out, "hydrated instance %d", inst.ID())
	printListeners(out, rt)

	inc := findAction(body, "inc")
	for i := 0; i < opts.clicks && inc != nil; i++ {
		doc.Dispatch(inc, "click", nil)
	}
	info(out, "count: %d", inst.Get("count").(func() int)())

	rt.Unmount(inst)
	success(out, "unmounted instance %d", inst.ID())
	printListeners(out, rt)

	if opts.metrics || cfg.Metrics.Enabled {
		return writeMetrics(out, reg)
	}
	return nil
}

// loadMarkup returns a document whose body holds the markup to hydrate.
func loadMarkup(opts hydrateOptions, props mount.Props) (*host.Document, *host.Node, error) {
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, nil, fmt.Errorf("open markup: %w", err)
		}
		defer f.Close()

		doc := host.NewDocument()
		body, err := render.ParseDocument(f, doc)
		if err != nil {
			return nil, nil, err
		}
		return doc, body, nil
	}

	container, err := render.Markup(counter, props)
	if err != nil {
		return nil, nil, err
	}
	doc, body := newDocument()
	doc.ImportChildren(body, container)
	return doc, body, nil
}

// corrupt inserts an unexpected element before the first END marker in body.
func corrupt(doc *host.Document, body *host.Node) bool {
	for n := body.FirstChild(); n != nil; n = n.NextSibling() {
		if hydration.IsEnd(n) {
			p := doc.CreateElement("p")
			doc.AppendChild(p, doc.CreateText("unexpected"))
			doc.InsertBefore(n, p)
			return true
		}
	}
	return false
}

func printListeners(w io.Writer, rt *mount.Runtime) {
	events := rt.Events()
	info(w, "handles: %d", events.Handles())
	for _, name := range events.Known() {
		info(w, "listeners[%s]: %d", name, events.Count(name))
	}
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
