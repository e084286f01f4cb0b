// Package cli wires the generator into a cobra command tree:
//
//	vk-helpers-generator            regenerate all regions (same as "generate")
//	vk-helpers-generator check      fail if any region is out of date
//	vk-helpers-generator list       print the entry tables and their guard blocks
//	vk-helpers-generator watch      regenerate whenever the table or config file changes
package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"vk-helpers-generator/internal/config"
	"vk-helpers-generator/internal/driver"
	"vk-helpers-generator/internal/logger"
	"vk-helpers-generator/internal/table"
)

// app is the state shared by all commands of one invocation.
type app struct {
	configFile string
	cfg        *config.Config
	tables     *table.Set
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "vk-helpers-generator",
		Short: "Regenerate the generated regions of vk_helpers.{h,c}",
		Long: `Regenerate the sentinel-delimited regions of vk_helpers.h and vk_helpers.c
from the built-in Vulkan entry tables.

Each table entry is a function name plus optional preprocessor conditions.
Consecutive entries with the same condition share one #if/#endif block.
Only the lines between a region's sentinel comments are rewritten.

Examples:
  vk-helpers-generator                       # rewrite regions under the current directory
  vk-helpers-generator --root ../monado      # point at a checkout
  vk-helpers-generator check                 # exit non-zero if regeneration would change anything
  vk-helpers-generator list device           # show the device table grouped by guard
  vk-helpers-generator --tables tables.yaml  # replace built-in tables from YAML`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "Config file (toml, yaml or json)")
	flags.String("root", ".", "Repository root the target paths are relative to")
	flags.String("header", "", "Path of vk_helpers.h (default from config)")
	flags.String("impl", "", "Path of vk_helpers.c (default from config)")
	flags.String("tables", "", "YAML file overriding built-in entry tables")
	flags.Bool("extensions", false, "Also generate the extension flag region in the header")
	flags.Bool("json", false, "Log as JSON")
	flags.BoolP("verbose", "v", false, "Log every patched region")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newCheckCmd(a),
		newListCmd(a),
		newWatchCmd(a),
	)

	return rootCmd
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"root":       "root",
	"header":     "header",
	"impl":       "impl",
	"tables":     "tables",
	"extensions": "extensions",
	"json":       "log.json",
	"verbose":    "log.verbose",
}

// load reads configuration, initializes logging and resolves the tables.
func (a *app) load(cmd *cobra.Command) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return err
	}

	if err := bindFlags(v, cmd); err != nil {
		return err
	}

	cfg, err := config.LoadWithViper(v)
	if err != nil {
		return err
	}

	if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Verbose); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	a.cfg = cfg

	return a.reloadTables()
}

// bindFlags lets explicitly set flags override config file and env values.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "binding flag --%s", name)
		}
	}

	return nil
}

func (a *app) reloadTables() error {
	path := a.cfg.TablesPath()
	if path == "" {
		a.tables = table.NewSet(nil)
		return nil
	}

	f, err := table.LoadFile(path)
	if err != nil {
		return err
	}

	a.tables = table.NewSet(f)
	logger.Logger.Debugw("loaded table overrides", "path", path, "tables", a.tables.Overridden())

	return nil
}

func (a *app) jobs() ([]driver.Job, error) {
	return driver.JobsFromConfig(a.cfg, a.tables)
}

func (a *app) driver() *driver.Driver {
	return driver.New(driver.WithLogger(logger.Logger))
}
