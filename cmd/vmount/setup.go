package main

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/vango-dev/vmount/internal/config"
	"github.com/vango-dev/vmount/pkg/host"
	"github.com/vango-dev/vmount/pkg/mount"
)

// loadConfig reads the file named by path, or vmount.json/vmount.yaml in
// the working directory, falling back to defaults when neither exists.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if config.Exists(".") {
		return config.Load(".")
	}
	return config.New(), nil
}

// newLogger builds the slog logger described by cfg. Logs go to w.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// runtimeOptions maps cfg onto mount runtime options.
func runtimeOptions(cfg *config.Config, logger *slog.Logger, reg *prometheus.Registry) []mount.Option {
	opts := []mount.Option{
		mount.WithLogger(logger),
		mount.WithDiagnostics(cfg.Dev),
		mount.WithRecover(cfg.Recover()),
		mount.WithRegistry(reg),
		mount.WithMetricsNamespace(cfg.Metrics.Namespace),
	}
	if cfg.Tracing.Enabled {
		opts = append(opts, mount.WithTracer(otel.Tracer(cfg.Tracing.TracerName)))
	} else {
		opts = append(opts, mount.WithTracer(noop.NewTracerProvider().Tracer(cfg.Tracing.TracerName)))
	}
	return opts
}

// newDocument returns a document with an empty <body> under its root.
func newDocument() (*host.Document, *host.Node) {
	doc := host.NewDocument()
	body := doc.CreateElement("body")
	doc.AppendChild(doc.Root(), body)
	return doc, body
}
