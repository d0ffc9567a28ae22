// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the root command, configuration loading and the version
// command for the typemap CLI.

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/typemap/internal/config"
	"github.com/toeirei/typemap/internal/db"
	"github.com/toeirei/typemap/internal/i18n"
	"github.com/toeirei/typemap/internal/logging"
)

var appConfig config.Config

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	configPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, config.Defaults(), configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := logging.SetLevel(appConfig.Log.Level); err != nil {
		logging.Warnf("%v", err)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logging.SetDebug(true)
		db.SetDebug(true)
	}

	i18n.Init(appConfig.Language)
	logging.Debugf("config: database.type=%s language=%s", appConfig.Database.Type, appConfig.Language)
	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid silently running on defaults.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// NewRootCmd creates and configures a new root cobra command.
// Every call returns a fresh command tree, so tests can run it in isolation.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "typemap",
		Short: "typemap inspects and exercises SQL/Go basic type bindings.",
		Long: `typemap lists the registered basic types, describes how each binds
and extracts values, renders the DDL a type needs per dialect, and writes a
value through a type to a real database and back.`,
		SilenceUsage:      true,
		PersistentPreRunE: setupDefaultServices,
	}
	cmd.Version = readBuildVersion(nil).String()

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Message language ("en", "de")`)
	cmd.PersistentFlags().String("database.type", "sqlite", "Database type (sqlite, postgres, mysql, oracle, hana)")
	cmd.PersistentFlags().String("database.dsn", "", "Database connection string (DSN)")

	cmd.AddCommand(
		newTypesCmd(),
		newDescribeCmd(),
		newDDLCmd(),
		newRoundTripCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return cmd
}
