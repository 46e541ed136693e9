// Package cli implements the advent command-line interface.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/catalog"
	"github.com/mesh-intelligence/advent/internal/input"
	"github.com/mesh-intelligence/advent/internal/logging"
	"github.com/mesh-intelligence/advent/internal/paths"
	"github.com/mesh-intelligence/advent/internal/puzzle"
	"github.com/mesh-intelligence/advent/internal/sqlite"
	"github.com/mesh-intelligence/advent/pkg/types"
)

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	inputDir  string
	demo      bool
	verbose   bool
	jsonMode  bool
}

// app is the state shared by the commands of one invocation.
type app struct {
	flags    rootFlags
	config   *viper.Viper
	logger   *zap.Logger
	registry *puzzle.Registry
}

// NewRootCmd creates the top-level "advent" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{registry: catalog.New(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "advent",
		Short: "Run the daily puzzle solutions",
		Long: `advent runs the daily puzzle solutions for the 2022 and 2023 seasons.

Each day reads <input-dir>/<year>/day<NN>/input.txt, or demo-input.txt when
--demo is given or DEMO_MODE=1 is set in the environment or in ./.env.
Runs are recorded in a local ledger together with the accepted answers.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&a.flags.dataDir, "data-dir", "", "ledger data directory (default: $(CWD)/.advent)")
	pf.StringVar(&a.flags.inputDir, "input-dir", "", "puzzle input root (default: $(CWD)/inputs)")
	pf.BoolVar(&a.flags.demo, "demo", false, "read the demo fixtures instead of the real input")
	pf.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")

	root.AddCommand(
		newInitCmd(a),
		newListCmd(a),
		newRunCmd(a),
		newHistoryCmd(a),
		newAnswerCmd(a),
		newVersionCmd(),
	)
	return root
}

// setup builds the logger and loads config.yaml before any subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if stderr := cmd.ErrOrStderr(); stderr == os.Stderr {
		logger, err := logging.New(a.flags.verbose)
		if err != nil {
			return err
		}
		a.logger = logger
	} else {
		a.logger = logging.NewWriter(stderr, a.flags.verbose)
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	a.config, err = loadConfig(configDir)
	if err != nil {
		return sysError("%w", err)
	}
	a.logger.Debug("configuration loaded", zap.String("config_dir", configDir))
	return nil
}

func (a *app) configDir() (string, error) {
	return paths.ResolveConfigDir(a.flags.configDir)
}

func (a *app) dataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.config.GetString(cfgKeyDataDir))
}

func (a *app) inputDir() (string, error) {
	return paths.ResolveInputDir(a.flags.inputDir, a.config.GetString(cfgKeyInputDir))
}

// demo reports whether demo fixtures are read: --demo, or DEMO_MODE=1.
func (a *app) demo() bool {
	return a.flags.demo || input.DemoMode()
}

// attachLedger opens the ledger. The caller must Detach it.
func (a *app) attachLedger() (*sqlite.Backend, error) {
	dataDir, err := a.dataDir()
	if err != nil {
		return nil, sysError("resolve data dir: %w", err)
	}
	cfg := types.Config{Backend: a.config.GetString(cfgKeyBackend), DataDir: dataDir}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, sysError("attach ledger: %w", err)
	}
	a.logger.Debug("ledger attached", zap.String("data_dir", dataDir))
	return backend, nil
}

// printJSON writes v indented to w.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "advent: %v\n", err)
		return exitCode(err)
	}
	return exitSuccess
}
