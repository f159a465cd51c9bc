package cli

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/planforge/pkg/errors"
	"github.com/matzehuels/planforge/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path (or base path for multiple outputs)
	vizTypes  string // comma-separated visualization types
	formats   string // comma-separated output formats
	detailed  bool   // annotate adjacency nodes with room sizes
	thumbnail bool   // also write a thumbnail PNG
}

// renderCommand creates the render command for saved layout payloads.
// It never calls the text-generation model and needs no API key.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <payload-file>",
		Short: "Render a saved layout payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.vizTypes, "type", "t", "", "visualization type(s): floor (default), adjacency (comma-separated)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): png (default), svg, json, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show room sizes in adjacency diagrams")
	cmd.Flags().BoolVar(&opts.thumbnail, "thumbnail", false, "also write a thumbnail PNG")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	payload, err := os.ReadFile(input)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "read payload file %s", input)
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg, "", true, false)
	if err != nil {
		return err
	}
	defer runner.Close()

	result, err := runner.Execute(ctx, pipeline.Options{
		Payload:   string(payload),
		VizTypes:  parseList(opts.vizTypes),
		Formats:   parseList(opts.formats),
		Detailed:  opts.detailed,
		Thumbnail: opts.thumbnail,
		Logger:    c.Logger,
	})
	if err != nil {
		return err
	}

	printStats(result.Stats.RoomCount, result.Stats.DrawnCount, result.Stats.SkippedCount, false)
	for _, warning := range result.Report.Warnings() {
		printWarning("%s", warning)
	}

	paths, err := writeArtifacts(basePath(opts.output, strings.TrimSuffix(input, filepath.Ext(input))), result.Artifacts)
	if err != nil {
		return err
	}
	for _, path := range paths {
		printFile(path)
	}

	return nil
}

// knownExtensions are output extensions stripped when deriving a base path.
var knownExtensions = map[string]bool{
	".png": true, ".svg": true, ".json": true, ".dot": true,
}

// basePath derives the base output path. If output is empty the fallback
// is used; a known format extension on output is stripped so the format
// loop can append its own.
func basePath(output, fallback string) string {
	if output == "" {
		return fallback
	}
	if ext := filepath.Ext(output); knownExtensions[ext] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifacts writes pipeline artifacts to files and returns the paths.
// A single artifact lands at base.<ext>; several artifacts are spread over
// base_<viz>.<ext> so they never overwrite each other.
func writeArtifacts(base string, artifacts map[string][]byte) ([]string, error) {
	names := slices.Sorted(maps.Keys(artifacts))

	var paths []string
	for _, name := range names {
		var path string
		if len(names) == 1 {
			path = base + filepath.Ext(name)
		} else {
			viz, rest, _ := strings.Cut(name, ".")
			path = fmt.Sprintf("%s_%s.%s", base, viz, rest)
		}
		if err := writeFile(path, artifacts[name]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
