package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output    string // output file path (or base path for multiple outputs)
	model     string // text-generation model override
	vizTypes  string // comma-separated visualization types
	formats   string // comma-separated output formats
	detailed  bool   // annotate adjacency nodes with room sizes
	thumbnail bool   // also write a thumbnail PNG
	payload   string // path to save the raw layout payload
	refresh   bool   // bypass the generation cache
	noCache   bool   // disable caching entirely
}

// generateCommand creates the generate command: description in, drawing out.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate a floor plan from a description",
		Long: `Generate asks the configured text-generation model for a structured
building layout matching the description, validates it, and renders it
to the requested formats.

The API key is read from GEMINI_API_KEY or the config file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, strings.Join(args, " "), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.model, "model", "m", "", "text-generation model (default from config)")
	cmd.Flags().StringVarP(&opts.vizTypes, "type", "t", "", "visualization type(s): floor (default), adjacency (comma-separated)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png (default), svg, json, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show room sizes in adjacency diagrams")
	cmd.Flags().BoolVar(&opts.thumbnail, "thumbnail", false, "also write a thumbnail PNG")
	cmd.Flags().StringVar(&opts.payload, "save-payload", "", "save the raw layout payload to a file")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the generation cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching entirely")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, description string, opts *generateOpts) error {
	ctx := cmd.Context()

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg, opts.model, opts.noCache, true)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Generating floor plan...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Description: description,
		VizTypes:    parseList(opts.vizTypes),
		Formats:     parseList(opts.formats),
		Detailed:    opts.detailed,
		Thumbnail:   opts.thumbnail,
		Refresh:     opts.refresh,
		Logger:      c.Logger,
	})
	if err != nil {
		spinner.Stop()
		if spinner.Cancelled() {
			return ctx.Err()
		}
		return err
	}
	spinner.Stop()
	prog.done("Generated floor plan")

	printSuccess("Floor plan for %q", description)
	printStats(result.Stats.RoomCount, result.Stats.DrawnCount, result.Stats.SkippedCount, result.CacheInfo.GenerateHit)
	for _, warning := range result.Report.Warnings() {
		printWarning("%s", warning)
	}

	if opts.payload != "" {
		if err := writeFile(opts.payload, []byte(result.Payload)); err != nil {
			return err
		}
		printFile(opts.payload)
	}

	paths, err := writeArtifacts(basePath(opts.output, "floorplan"), result.Artifacts)
	if err != nil {
		return err
	}
	for _, path := range paths {
		printFile(path)
	}

	if opts.payload != "" {
		printNewline()
		printNextStep("Re-render without the model", appName+" render "+opts.payload)
	}

	return nil
}
