package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/advent/pkg/types"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration, ledger and input directories",
		Long: `init writes config.yaml into the configuration directory if it does not
exist yet, creates the ledger files in the data directory and creates the
puzzle input root.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInit(cmd)
		},
	}
}

func (a *app) runInit(cmd *cobra.Command) error {
	configDir, err := a.configDir()
	if err != nil {
		return sysError("resolve config dir: %w", err)
	}
	dataDir, err := a.dataDir()
	if err != nil {
		return sysError("resolve data dir: %w", err)
	}
	inputDir, err := a.inputDir()
	if err != nil {
		return sysError("resolve input dir: %w", err)
	}

	configPath := filepath.Join(configDir, configFileExt)
	created, err := writeConfigIfMissing(configPath, configFile{
		Backend:  types.BackendSQLite,
		DataDir:  dataDir,
		InputDir: inputDir,
	})
	if err != nil {
		return sysError("write config: %w", err)
	}
	if created {
		// Pick up the values just written.
		if a.config, err = loadConfig(configDir); err != nil {
			return sysError("%w", err)
		}
	}

	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		return sysError("create input dir: %w", err)
	}

	ledger, err := a.attachLedger()
	if err != nil {
		return err
	}
	if err := ledger.Detach(); err != nil {
		return sysError("finalize ledger: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "config: %s\n", configPath)
	fmt.Fprintf(out, "data:   %s\n", dataDir)
	fmt.Fprintf(out, "inputs: %s\n", inputDir)
	fmt.Fprintln(out, "advent initialized successfully")
	return nil
}
