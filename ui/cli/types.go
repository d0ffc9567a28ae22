// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/toeirei/typemap/core/basictype"
	"github.com/toeirei/typemap/core/dialect"
	"github.com/toeirei/typemap/internal/i18n"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// typeInfo is the describe view of a basic type, optionally resolved for a dialect.
type typeInfo struct {
	Name            string   `yaml:"name"`
	Keys            []string `yaml:"keys"`
	SQLDescriptor   string   `yaml:"sql_descriptor"`
	SQLType         string   `yaml:"sql_type"`
	SQLTypeCode     int      `yaml:"sql_type_code"`
	Nationalized    bool     `yaml:"nationalized"`
	Lob             bool     `yaml:"lob"`
	ValueDescriptor string   `yaml:"value_descriptor"`
	GoType          string   `yaml:"go_type"`
	Dialect         string   `yaml:"dialect,omitempty"`
	ColumnType      string   `yaml:"column_type,omitempty"`
	StreamBinding   *bool    `yaml:"stream_binding,omitempty"`
}

func describeType(t basictype.Type, d *dialect.Dialect) (typeInfo, error) {
	sd := t.SQLDescriptor()
	info := typeInfo{
		Name:            t.Name(),
		Keys:            t.RegistrationKeys(),
		ValueDescriptor: t.ValueDescriptorName(),
		GoType:          t.GoType().String(),
	}
	if d != nil {
		opts := dialectOptions(d)
		sd = t.SQLDescriptorFor(opts)
		col, err := d.ColumnType(sd.SQLType())
		if err != nil {
			return info, err
		}
		stream := opts.UseStreamForLobBinding()
		info.Dialect = d.Name()
		info.ColumnType = col
		info.StreamBinding = &stream
	}
	info.SQLDescriptor = sd.Name()
	info.SQLType = sd.SQLType().String()
	info.SQLTypeCode = int(sd.SQLType())
	info.Nationalized = sd.SQLType().IsNationalized()
	info.Lob = sd.SQLType().IsLob()
	return info, nil
}

// dialectOptions applies the configured LOB stream binding to d.
func dialectOptions(d *dialect.Dialect) basictype.Options {
	if appConfig.Lob.StreamBinding != nil {
		return d.WithStreamBinding(*appConfig.Lob.StreamBinding)
	}
	return d
}

func lookupType(name string) (basictype.Type, error) {
	t, ok := basictype.Global().Lookup(name)
	if !ok {
		return nil, errors.New(i18n.T("cli.error_unknown_type", name))
	}
	return t, nil
}

func lookupDialect(cmd *cobra.Command) (*dialect.Dialect, error) {
	name, _ := cmd.Flags().GetString("dialect")
	if name == "" {
		return nil, nil
	}
	return dialect.Lookup(name)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderTypes(out io.Writer, types []basictype.Type, format string) error {
	headers := []string{
		i18n.T("types.header_name"),
		i18n.T("types.header_sql"),
		i18n.T("types.header_value"),
		i18n.T("types.header_keys"),
	}
	rows := make([][]string, 0, len(types))
	for _, t := range types {
		rows = append(rows, []string{
			t.Name(),
			t.SQLDescriptor().SQLType().String(),
			t.ValueDescriptorName(),
			strings.Join(t.RegistrationKeys(), ", "),
		})
	}

	if format == "" {
		format = "plain"
		if isTerminal(out) {
			format = "table"
		}
	}
	switch format {
	case "table":
		tbl := table.New().
			Border(lipgloss.RoundedBorder()).
			Headers(headers...).
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return headerStyle
				}
				return cellStyle
			})
		_, err := fmt.Fprintln(out, tbl.String())
		return err
	case "plain":
		for _, r := range rows {
			if _, err := fmt.Fprintln(out, strings.Join(r, "\t")); err != nil {
				return err
			}
		}
		return nil
	case "yaml":
		infos := make([]typeInfo, 0, len(types))
		for _, t := range types {
			info, err := describeType(t, nil)
			if err != nil {
				return err
			}
			infos = append(infos, info)
		}
		return writeYAML(out, infos)
	default:
		return errors.New(i18n.T("cli.error_unknown_format", format))
	}
}

func writeYAML(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func newTypesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "List registered basic types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("output")
			return renderTypes(cmd.OutOrStdout(), basictype.Global().Types(), format)
		},
	}
	cmd.Flags().StringP("output", "o", "", `Output format: "table", "plain" or "yaml" (default: table on a terminal)`)
	return cmd
}

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe <type>",
		Short: "Show how a basic type binds and extracts values",
		Long: `Shows the SQL and value descriptors of a type. With --dialect, the SQL
descriptor is the one the dialect actually uses, together with its column type.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lookupType(args[0])
			if err != nil {
				return err
			}
			d, err := lookupDialect(cmd)
			if err != nil {
				return err
			}
			info, err := describeType(t, d)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			format, _ := cmd.Flags().GetString("output")
			switch format {
			case "yaml":
				return writeYAML(out, info)
			case "", "text":
				fmt.Fprintf(out, "%s: %s\n", i18n.T("describe.name"), info.Name)
				fmt.Fprintf(out, "%s: %s\n", i18n.T("describe.keys"), strings.Join(info.Keys, ", "))
				fmt.Fprintf(out, "%s: %s (%s, %d)\n", i18n.T("describe.sql"), info.SQLDescriptor, info.SQLType, info.SQLTypeCode)
				fmt.Fprintf(out, "%s: %s (%s)\n", i18n.T("describe.value"), info.ValueDescriptor, info.GoType)
				if info.Dialect != "" {
					fmt.Fprintf(out, "%s: %s (%s)\n", i18n.T("describe.column"), info.ColumnType, info.Dialect)
					fmt.Fprintf(out, "%s: %t\n", i18n.T("describe.stream"), *info.StreamBinding)
				}
				return nil
			default:
				return errors.New(i18n.T("cli.error_unknown_format", format))
			}
		},
	}
	cmd.Flags().StringP("output", "o", "text", `Output format: "text" or "yaml"`)
	cmd.Flags().String("dialect", "", "Resolve the type for this dialect")
	return cmd
}
