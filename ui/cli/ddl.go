// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/typemap/core/dialect"
	"github.com/toeirei/typemap/internal/db"
)

func newDDLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ddl <type> [<type>...]",
		Short: "Render the table DDL a set of types needs",
		Long: `Renders CREATE TABLE for a table with one column per type. Without
--dialect, the statement is rendered for every supported dialect.

Example:
  typemap ddl materialized_nclob --dialect oracle`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tableName, _ := cmd.Flags().GetString("table")
			tbl := &db.Table{Name: tableName}
			for _, name := range args {
				t, err := lookupType(name)
				if err != nil {
					return err
				}
				tbl.Columns = append(tbl.Columns, db.Column{Name: t.Name(), Type: t})
			}

			d, err := lookupDialect(cmd)
			if err != nil {
				return err
			}
			dialects := []*dialect.Dialect{d}
			if d == nil {
				dialects = dialects[:0]
				for _, n := range dialect.Names() {
					nd, _ := dialect.Lookup(n)
					dialects = append(dialects, nd)
				}
			}

			out := cmd.OutOrStdout()
			for _, d := range dialects {
				stmt, err := renderDDL(d, tbl)
				if err != nil {
					return err
				}
				if len(dialects) > 1 {
					fmt.Fprintf(out, "-- %s\n", d.Name())
				}
				fmt.Fprintf(out, "%s;\n", stmt)
			}
			return nil
		},
	}
	cmd.Flags().String("dialect", "", "Dialect to render for (default: all)")
	cmd.Flags().String("table", "typemap_values", "Table name")
	return cmd
}

func renderDDL(d *dialect.Dialect, tbl *db.Table) (string, error) {
	return db.CreateTableSQL(d, dialectOptions(d), tbl)
}
