package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/migudevelop/openapi-mock-generator/internal/logger"
	"github.com/migudevelop/openapi-mock-generator/pkg/config"
	"github.com/spf13/cobra"
)

// flags override values from the config file and the environment when set.
type flags struct {
	config    string
	input     string
	output    string
	count     int
	seed      int64
	format    string
	port      int
	noColor   bool
	logFormat string
}

// Log formats accepted by --log-format.
const (
	logFormatConsole = "console"
	logFormatText    = "text"
	logFormatJSON    = "json"
)

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "mockgen",
		Short: "Generate mock data from OpenAPI schemas",
		Long: `Generate mock records for every schema found in the components section
of the OpenAPI documents in a folder.

Fields named like <schema>Id are filled with the id of a generated
record of that schema, so mocks reference each other.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "Path to the configuration file")
	pf.StringVarP(&f.input, "input", "i", "", "Folder with OpenAPI documents")
	pf.StringVarP(&f.output, "output", "o", "", "Folder the mock files are written to")
	pf.IntVarP(&f.count, "count", "n", config.DefaultCount, "Records generated per schema")
	pf.Int64Var(&f.seed, "seed", 0, "Seed for reproducible output, 0 means random")
	pf.StringVarP(&f.format, "format", "f", config.DefaultFormat, "Output format: json or yaml")
	pf.IntVarP(&f.port, "port", "p", config.DefaultPort, "Port for the mock server")
	pf.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	pf.StringVar(&f.logFormat, "log-format", logFormatConsole, "Log format: console, text or json")

	cmd.AddCommand(newGenerateCmd(f))
	cmd.AddCommand(newServeCmd(f))
	cmd.AddCommand(newFakesCmd())

	// running without a subcommand generates
	cmd.RunE = newGenerateCmd(f).RunE

	return cmd
}

// logger builds the sink for --log-format. text and json go through log/slog.
func (f *flags) logger(w io.Writer) (logger.Sink, error) {
	switch f.logFormat {
	case "", logFormatConsole:
		var opts []logger.ConsoleOption
		if f.noColor || color.NoColor {
			opts = append(opts, logger.WithoutColor())
		}
		return logger.NewConsole(w, opts...), nil
	case logFormatText:
		return logger.NewSlog(slog.New(slog.NewTextHandler(w, nil))), nil
	case logFormatJSON:
		return logger.NewSlog(slog.New(slog.NewJSONHandler(w, nil))), nil
	}
	return nil, fmt.Errorf("unknown log format %q", f.logFormat)
}

// load reads .env, the config file and the environment, then applies the flags that were set.
func (f *flags) load(cmd *cobra.Command, sink logger.Sink) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(f.config, sink)
	if err != nil {
		sink.Error(fmt.Sprintf("Error loading configuration: %v", err))
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("input") {
		cfg.OpenAPIFilesPath = f.input
	}
	if changed("output") {
		cfg.OutputSchemasPath = f.output
	}
	if changed("count") {
		cfg.Count = f.count
	}
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("format") {
		cfg.Format = f.format
	}
	if changed("port") {
		cfg.Port = f.port
	}

	cfg.EnsureConfigValues()
	if err := cfg.Validate(); err != nil {
		sink.Error(fmt.Sprintf("Error loading configuration: %v", err))
		return nil, err
	}

	return cfg, nil
}
