package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/agenthands/sketchont/internal/config"
	"github.com/agenthands/sketchont/internal/core"
	"github.com/agenthands/sketchont/internal/diagram"
	"github.com/agenthands/sketchont/internal/driver"
	"github.com/agenthands/sketchont/internal/logger"
)

var errDiagnostics = errors.New("diagram has diagnostics")

type resolveOptions struct {
	mode       string
	configPath string
	strict     bool
	publish    bool
	format     string
}

func resolveCmd() *cobra.Command {
	var opts resolveOptions

	cmd := &cobra.Command{
		Use:   "resolve <diagram-file>",
		Short: "Resolve a diagram model file",
		Long: `Resolve reads a diagram model file (JSON or YAML), runs the resolution
pipeline and prints the resolved model. Diagnostics are printed to stderr.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", string(core.ModeOWL), "Diagram convention (owl, rdf)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Config file path (TOML)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit with an error when diagnostics are reported")
	cmd.Flags().BoolVar(&opts.publish, "publish", false, "Write the resolved model to Memgraph")
	cmd.Flags().StringVarP(&opts.format, "output", "o", "json", "Output format (json, yaml, none)")
	return cmd
}

func runResolve(ctx context.Context, stdout, stderr io.Writer, path string, opts resolveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	_ = godotenv.Load()

	mode, err := core.ParseMode(opts.mode)
	if err != nil {
		return err
	}
	cfg, err := config.LoadFromEnv(opts.configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	d, err := diagram.Load(path)
	if err != nil {
		return err
	}

	engine := core.NewEngine(core.OptionsFrom(cfg.Resolution), log, nil)
	res, err := engine.Resolve(ctx, d, mode)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	if err := writeResult(stdout, res, opts.format); err != nil {
		return err
	}
	for _, check := range res.Errors.Checks() {
		for _, entry := range res.Errors.Get(check) {
			fmt.Fprintf(stderr, "%s: %s\n", check, entry)
		}
	}

	if opts.publish {
		if cfg.Memgraph.URI == "" {
			return errors.New("--publish needs memgraph.uri or MEMGRAPH_URI")
		}
		gd, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, log)
		if err != nil {
			return err
		}
		defer gd.Close(ctx)
		engine.Driver = gd
		if err := engine.Publish(ctx, res); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "published as graph %s\n", res.RunID)
	}

	if opts.strict && !res.Errors.Empty() {
		return fmt.Errorf("%w: %d reported", errDiagnostics, res.Errors.Len())
	}
	return nil
}

func writeResult(w io.Writer, res *core.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		// Round trip through JSON so YAML output uses the same field names.
		data, err := json.Marshal(res)
		if err != nil {
			return err
		}
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return err
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(doc)
	case "none":
		return nil
	}
	return fmt.Errorf("unknown output format '%s'", format)
}
