package commands

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/declower/aggregate"
	"github.com/teranos/declower/config"
	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/ir"
	"github.com/teranos/declower/ir/codec"
	"github.com/teranos/declower/logger"
	"github.com/teranos/declower/lowering"
	"github.com/teranos/declower/lowering/thistype"
	"github.com/teranos/declower/passes"
)

type lowerOptions struct {
	input           string
	output          string
	inputFormat     string
	outputFormat    string
	configPath      string
	passes          []string
	workers         int
	flatten         bool
	failOnCollision bool
	assignUIDs      bool
}

func newLowerCmd() *cobra.Command {
	opts := &lowerOptions{}
	cmd := &cobra.Command{
		Use:   "lower",
		Short: "Run the lowering pipeline over a declaration tree",
		Long: `Read a declaration tree, run the configured passes in order and write the
lowered tree.

Input and output default to stdin and stdout. The format follows the file
extension unless --format / --output-format is given.

Examples:
  declower lower -i tree.yaml
  declower lower -i tree.yaml -o lowered.json
  declower lower -p escape-identifiers,lower-this-type --workers 4 < tree.yaml
  declower lower -i tree.yaml --flatten --fail-on-collision`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLower(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", "Input tree file (- for stdin)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "Output file (- for stdout)")
	cmd.Flags().StringVar(&opts.inputFormat, "format", "", "Input format: yaml, json (default: from extension)")
	cmd.Flags().StringVar(&opts.outputFormat, "output-format", "", "Output format: yaml, json (default: from extension)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Config file (default: search for declower.toml)")
	cmd.Flags().StringSliceVarP(&opts.passes, "passes", "p", nil, "Passes to run, in order (default: from config)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "Declaration workers per module (default: from config)")
	cmd.Flags().BoolVar(&opts.flatten, "flatten", false, "Flatten the lowered tree into a module list")
	cmd.Flags().BoolVar(&opts.failOnCollision, "fail-on-collision", false, "Fail when escaped identifiers collide")
	cmd.Flags().BoolVar(&opts.assignUIDs, "assign-uids", false, "Generate uids for declarations that lack one instead of failing")
	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

func runLower(cmd *cobra.Command, opts *lowerOptions) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("passes") {
		cfg.Pipeline.Passes = opts.passes
	}
	if flags.Changed("workers") {
		cfg.Pipeline.Workers = opts.workers
	}
	if flags.Changed("flatten") {
		cfg.Pipeline.Flatten = opts.flatten
	}
	if flags.Changed("fail-on-collision") {
		cfg.Escape.FailOnCollision = opts.failOnCollision
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := applyLogConfig(cmd, cfg); err != nil {
		return err
	}
	verbosity, _ := cmd.Flags().GetCount("verbose")
	cfg.Log.Verbosity = max(verbosity, cfg.Log.Verbosity)

	inFormat, err := resolveFormat(opts.inputFormat, opts.input)
	if err != nil {
		return err
	}
	outFormat, err := resolveFormat(opts.outputFormat, opts.output)
	if err != nil {
		return err
	}

	var decodeOpts []codec.DecodeOption
	if opts.assignUIDs {
		decodeOpts = append(decodeOpts, codec.GenerateMissingUIDs())
	}
	root, err := readTree(cmd.InOrStdin(), opts.input, inFormat, decodeOpts...)
	if err != nil {
		return err
	}

	pipeline, err := passes.Pipeline(cfg)
	if err != nil {
		return err
	}

	log := logger.ComponentLogger("cli")
	start := time.Now()
	lowered, err := lowering.NewPipeline(pipeline...).WithVerbosity(cfg.Log.Verbosity).Lower(root)
	if err != nil {
		return err
	}
	if left := thistype.Remaining(lowered); left > 0 {
		log.Warnw("Self-type placeholders remain after lowering",
			logger.FieldCount, left,
			logger.FieldPasses, cfg.Pipeline.Passes)
	}
	log.Infow("Lowered declaration tree",
		logger.FieldFile, opts.input,
		logger.FieldPasses, cfg.Pipeline.Passes,
		logger.FieldWorkers, cfg.Pipeline.Workers,
		logger.FieldCount, aggregate.CountDeclarations(lowered),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return writeTree(cmd.OutOrStdout(), opts.output, outFormat, lowered, cfg.Pipeline.Flatten)
}

func resolveFormat(explicit, path string) (codec.Format, error) {
	if explicit != "" {
		return codec.ParseFormat(explicit)
	}
	if path == "-" {
		return codec.FormatYAML, nil
	}
	return codec.FormatForPath(path), nil
}

func readTree(stdin io.Reader, path string, format codec.Format, opts ...codec.DecodeOption) (*ir.Module, error) {
	if path == "-" {
		root, err := codec.DecodeModule(stdin, format, opts...)
		return root, errors.Wrap(err, "read stdin")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	root, err := codec.DecodeModule(f, format, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return root, nil
}

func writeTree(stdout io.Writer, path string, format codec.Format, root *ir.Module, flatten bool) (err error) {
	w := stdout
	if path != "-" {
		f, createErr := os.Create(path)
		if createErr != nil {
			return errors.Wrapf(createErr, "create %s", path)
		}
		defer func() {
			if closeErr := f.Close(); err == nil && closeErr != nil {
				err = errors.Wrapf(closeErr, "close %s", path)
			}
		}()
		w = f
	}
	if flatten {
		return codec.EncodeModules(w, aggregate.Flatten(root), format)
	}
	return codec.EncodeModule(w, root, format)
}
