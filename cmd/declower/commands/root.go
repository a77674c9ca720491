// Package commands implements the declower command line.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/teranos/declower/config"
	"github.com/teranos/declower/errors"
	"github.com/teranos/declower/logger"
)

// NewRootCmd builds the declower command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "declower",
		Short: "Lower declaration trees for code generation",
		Long: `declower - run lowering passes over declaration trees.

A front end translates foreign type declarations into a declaration tree
(YAML or JSON). declower rewrites that tree into a form a code generator can
print: reserved identifiers are quoted, self-types are replaced with concrete
references and nested modules can be flattened.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (DECLOWER_* prefix)
3. Project config (nearest declower.toml)
4. User config (~/.declower.toml)
5. Default values

Examples:
  declower lower -i tree.yaml                   # Run the default pipeline
  declower lower -i tree.json --flatten         # Flatten into a module list
  declower lower -i tree.yaml -p lower-this-type
  declower passes                               # List available passes
  declower config show --format toml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			jsonLogs, _ := cmd.Flags().GetBool("log-json")
			if err := logger.Initialize(jsonLogs, verbosity); err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			logger.Debugw("Logger initialized", logger.FieldVerbosity, logger.LevelName(verbosity))
			return nil
		},
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv per-node trace, -vvvv tree dumps)")
	root.PersistentFlags().Bool("log-json", false, "Write logs to stderr as JSON")

	root.AddCommand(newLowerCmd())
	root.AddCommand(newPassesCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// applyLogConfig raises logging to the configured level when the config
// asks for more than the flags did.
func applyLogConfig(cmd *cobra.Command, cfg *config.Config) error {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	jsonLogs, _ := cmd.Flags().GetBool("log-json")
	if cfg.Log.Verbosity <= verbosity && (!cfg.Log.JSON || jsonLogs) {
		return nil
	}
	level := max(verbosity, cfg.Log.Verbosity)
	if err := logger.Initialize(jsonLogs || cfg.Log.JSON, level); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}
	logger.Debugw("Logger raised by config", logger.FieldVerbosity, logger.LevelName(level))
	return nil
}
