// Package cli implements the planforge command-line interface.
//
// This package provides commands for generating floor plans from natural
// language descriptions, rendering saved layout payloads, serving the
// pipeline over HTTP, and managing the generation cache. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - generate: Turn a description into a rendered floor plan
//   - render: Render a saved layout payload without calling the model
//   - serve: Expose the pipeline as an HTTP API
//   - cache: Manage the generation response cache
//   - models: Pick the text-generation model interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/buildinfo"
	"github.com/matzehuels/planforge/pkg/cache"
	"github.com/matzehuels/planforge/pkg/config"
	"github.com/matzehuels/planforge/pkg/integrations/gemini"
	"github.com/matzehuels/planforge/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "planforge"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Planforge turns descriptions into floor plan drawings",
		Long:         `Planforge is a CLI tool that asks a text-generation model for a structured building layout and renders it as a scaled, color-coded floor plan.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.modelsCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig builds the effective configuration for a command run.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newRunner creates a pipeline runner for CLI use. When withGenerator is
// false the runner renders payloads only and never needs an API key.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config, model string, noCache, withGenerator bool) (*pipeline.Runner, error) {
	var gen pipeline.Generator
	if withGenerator {
		key, err := cfg.RequireAPIKey()
		if err != nil {
			return nil, err
		}
		if model == "" {
			model = cfg.Model
		}
		client, err := gemini.NewClient(ctx, key, model)
		if err != nil {
			return nil, err
		}
		gen = client
	}

	var store cache.Cache
	if noCache {
		store = cache.NewNullCache()
	} else {
		var err error
		store, err = cfg.NewCache(ctx)
		if err != nil {
			return nil, err
		}
	}

	return pipeline.NewRunner(gen, store, nil, c.Logger), nil
}

// parseList splits a comma-separated flag value, dropping empty items.
func parseList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
