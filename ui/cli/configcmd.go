// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/typemap/internal/config"
	"github.com/toeirei/typemap/internal/i18n"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or persist the effective configuration",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeYAML(cmd.OutOrStdout(), appConfig)
		},
	}

	write := &cobra.Command{
		Use:   "write",
		Short: "Write the effective configuration to typemap.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			system, _ := cmd.Flags().GetBool("system")
			if err := config.WriteConfigFile(&appConfig, system); err != nil {
				return err
			}
			path, err := config.GetConfigPath(system)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.written", path))
			return nil
		},
	}
	write.Flags().Bool("system", false, "Write the system-wide file instead of the user file")

	cmd.AddCommand(show, write)
	return cmd
}
