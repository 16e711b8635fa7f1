package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/san-kum/sparkline/internal/config"
	"github.com/san-kum/sparkline/internal/extract"
	"github.com/san-kum/sparkline/internal/logger"
	"github.com/san-kum/sparkline/internal/output"
	"github.com/san-kum/sparkline/internal/spark"
	"github.com/san-kum/sparkline/internal/version"
)

const renderFailure = "could not convert input data to valid sparkline"

var (
	errNoInput = errors.New("no input data")
	errRender  = errors.New(renderFailure)
)

type options struct {
	dots       bool
	mode       string
	min        float64
	max        float64
	configFile string
	preset     string
	encoding   string
	file       string
	jsonOut    bool
	verbose    bool
	minValues  int
}

// execute runs the command line against the given streams and returns the
// process exit code.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(stdin)
	root.SetArgs(protectNegatives(root, args))
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		switch {
		case errors.Is(err, errRender):
			fmt.Fprintln(stderr, renderFailure)
		case errors.Is(err, errNoInput):
		default:
			fmt.Fprintf(stderr, "error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "sparkline [data...]",
		Short: "draw a sparkline from numbers in text",
		Long: "Reads numbers from the command line arguments, a file or stdin and\n" +
			"prints a sparkline. Any delimiter is accepted; at least two values\n" +
			"are required.",
		Args:          cobra.ArbitraryArgs,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSparkline(cmd, args, opts, stdin)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	flags := rootCmd.Flags()
	flags.BoolVar(&opts.dots, "dots", false, "use dense braille dots instead of bars")
	flags.StringVar(&opts.mode, "mode", config.DefaultMode, "render mode (bars, dots)")
	flags.Float64Var(&opts.min, "min", 0, "fixed bottom of the range (bars)")
	flags.Float64Var(&opts.max, "max", 0, "fixed top of the range (bars)")
	flags.StringVar(&opts.configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&opts.preset, "preset", "", "use preset configuration")
	flags.StringVar(&opts.encoding, "encoding", config.DefaultEncoding,
		"output encoding ("+strings.Join(output.Encodings(), ", ")+")")
	flags.StringVarP(&opts.file, "file", "f", "", "read data from file (- for stdin)")
	flags.BoolVar(&opts.jsonOut, "json", false, "print a JSON report instead of the line")
	flags.BoolVar(&opts.verbose, "verbose", false, "log diagnostics to stderr")
	flags.IntVar(&opts.minValues, "min-values", config.DefaultMinValues, "fewest values accepted")

	var savePath string
	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list available presets, or save one as a config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if savePath != "" {
				if len(args) == 0 {
					return fmt.Errorf("--save needs a preset name (available: %v)", config.ListPresets())
				}
				return savePreset(args[0], savePath, out)
			}

			names := config.ListPresets()
			if len(args) > 0 {
				if config.GetPreset(args[0]) == nil {
					return fmt.Errorf("%w: %s", config.ErrUnknownPreset, args[0])
				}
				names = args
			}
			for _, name := range names {
				fmt.Fprintf(out, "  %-8s %s\n", name, describe(config.GetPreset(name)))
			}
			return nil
		},
	}
	presetsCmd.Flags().StringVar(&savePath, "save", "", "write the named preset to a config file (yaml)")

	rootCmd.AddCommand(presetsCmd)
	return rootCmd
}

func runSparkline(cmd *cobra.Command, args []string, opts *options, stdin io.Reader) error {
	log := logger.New(opts.verbose, cmd.ErrOrStderr())
	defer func() { _ = log.Sync() }()

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	text, source, err := readInput(args, opts.file, stdin)
	if errors.Is(err, errNoInput) {
		_ = cmd.Help()
		return err
	}
	if err != nil {
		return err
	}

	series := extract.Extract(text)
	mode := cfg.RenderMode()
	renderOpts := cfg.Options()
	log.Debug("extracted input",
		zap.String("source", source),
		zap.Int("values", len(series)),
		zap.Stringer("mode", mode),
		zap.String("encoding", cfg.Encoding),
	)
	if mode == spark.ModeDots && spark.Ranged(renderOpts...) {
		log.Warn("range is ignored in dots mode")
	}

	if len(series) < cfg.Threshold() {
		log.Debug("too few values", zap.Int("values", len(series)), zap.Int("need", cfg.Threshold()))
		return fmt.Errorf("%w: %d values", errRender, len(series))
	}

	line, err := spark.RenderSeries(series, mode, renderOpts...)
	if err != nil {
		log.Debug("render failed", zap.Error(err))
		return fmt.Errorf("%w: %v", errRender, err)
	}

	if opts.jsonOut {
		lo, hi, err := reportRange(series, mode, renderOpts)
		if err != nil {
			return fmt.Errorf("%w: %v", errRender, err)
		}
		log.Debug("resolved range", zap.Float64("min", lo), zap.Float64("max", hi))
		return output.NewReport(mode, series, lo, hi, line).Write(cmd.OutOrStdout())
	}

	w, err := output.NewWriter(cmd.OutOrStdout(), cfg.Encoding)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}
	return w.Close()
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Resolve(opts.preset, opts.configFile)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = opts.mode
	}
	if flags.Changed("dots") {
		cfg.Mode = spark.ModeBars.String()
		if opts.dots {
			cfg.Mode = spark.ModeDots.String()
		}
	}
	if flags.Changed("min") {
		cfg.Range.Min = config.Float(opts.min)
	}
	if flags.Changed("max") {
		cfg.Range.Max = config.Float(opts.max)
	}
	if flags.Changed("encoding") {
		cfg.Encoding = opts.encoding
	}
	if flags.Changed("min-values") {
		cfg.MinValues = opts.minValues
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readInput picks the data source: arguments, then --file, then stdin.
// An interactive stdin with no other source is errNoInput.
func readInput(args []string, file string, stdin io.Reader) (string, string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), "args", nil
	}

	if file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", file, err
		}
		return string(data), file, nil
	}

	if f, ok := stdin.(*os.File); ok && file == "" && term.IsTerminal(int(f.Fd())) {
		return "", "stdin", errNoInput
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", "stdin", err
	}
	return string(data), "stdin", nil
}

func reportRange(series []float64, mode spark.Mode, opts []spark.Option) (float64, float64, error) {
	if mode == spark.ModeDots {
		return spark.ResolveRange(series)
	}
	return spark.ResolveRange(series, opts...)
}

// protectNegatives moves data that looks like a flag behind a "--" so it
// reaches the command as data. That covers negative numbers such as "-5"
// anywhere, and any other dash-prefixed word that follows the first data
// argument and is not a known flag. Subcommand invocations pass through
// untouched.
func protectNegatives(cmd *cobra.Command, args []string) []string {
	cmd.InitDefaultHelpCmd()
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()

	var flagArgs, data []string
	moved := false
	seenData := false

	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			data = append(data, args[i+1:]...)
			i = len(args)
		case isNegativeNumber(a):
			moved = true
			seenData = true
			data = append(data, a)
		case strings.HasPrefix(a, "-") && len(a) > 1:
			if seenData && !isKnownFlag(cmd, a) {
				moved = true
				data = append(data, a)
				continue
			}
			flagArgs = append(flagArgs, a)
			if takesValue(cmd, a) && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		default:
			if !seenData && isSubcommand(cmd, a) {
				return args
			}
			seenData = true
			data = append(data, a)
		}
	}

	if !moved {
		return args
	}
	return append(append(flagArgs, "--"), data...)
}

func isSubcommand(cmd *cobra.Command, name string) bool {
	for _, sub := range cmd.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return true
		}
	}
	return false
}

// isKnownFlag reports whether a names a flag of cmd, in long ("--dots",
// "--min=3") or shorthand ("-f") form.
func isKnownFlag(cmd *cobra.Command, a string) bool {
	flags := cmd.Flags()
	if strings.HasPrefix(a, "--") {
		name, _, _ := strings.Cut(a[2:], "=")
		return flags.Lookup(name) != nil
	}
	return flags.ShorthandLookup(a[1:2]) != nil
}

func isNegativeNumber(a string) bool {
	if len(a) < 2 || a[0] != '-' {
		return false
	}
	c := a[1]
	return ('0' <= c && c <= '9') || c == '.'
}

// takesValue reports whether a flag argument without "=" consumes the next
// argument as its value.
func takesValue(cmd *cobra.Command, a string) bool {
	if strings.Contains(a, "=") {
		return false
	}
	flags := cmd.Flags()
	var name string
	if strings.HasPrefix(a, "--") {
		name = a[2:]
		if f := flags.Lookup(name); f != nil {
			return f.NoOptDefVal == ""
		}
		return false
	}
	short := a[len(a)-1:]
	if f := flags.ShorthandLookup(short); f != nil {
		return f.NoOptDefVal == "" && len(a) == 2
	}
	return false
}

// savePreset writes the preset layered over the defaults, so the file is
// usable on its own with --config.
func savePreset(name, path string, out io.Writer) error {
	cfg, err := config.Resolve(name, "")
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(out, "saved preset %s to %s\n", name, path)
	return nil
}

func describe(cfg *config.Config) string {
	var parts []string
	if cfg.Mode != "" {
		parts = append(parts, "mode="+cfg.Mode)
	}
	if cfg.Range.Min != nil || cfg.Range.Max != nil {
		parts = append(parts, "range="+bound(cfg.Range.Min)+".."+bound(cfg.Range.Max))
	}
	if cfg.Encoding != "" {
		parts = append(parts, "encoding="+cfg.Encoding)
	}
	return strings.Join(parts, " ")
}

func bound(v *float64) string {
	if v == nil {
		return "auto"
	}
	return fmt.Sprintf("%g", *v)
}
