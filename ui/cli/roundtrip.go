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
	"unicode/utf8"

	"github.com/klauspost/compress/zstd"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/toeirei/typemap/internal/db"
	"github.com/toeirei/typemap/internal/i18n"
	"github.com/toeirei/typemap/internal/logging"
)

// readValueFile reads a value from disk, decompressing files ending in .zst.
func readValueFile(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("could not open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var r io.Reader = file
	if strings.HasSuffix(filename, ".zst") {
		zr, err := zstd.NewReader(file)
		if err != nil {
			return "", fmt.Errorf("could not create zstd reader: %w", err)
		}
		defer zr.Close()
		r = zr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", filename, err)
	}
	return string(data), nil
}

func newRoundTripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roundtrip <type>",
		Short: "Write a value through a type to the database and read it back",
		Long: `Creates a scratch table for the type, inserts the value, loads it back and
compares both with the type's equality. The database comes from the
configuration or the --database.type and --database.dsn flags.

Examples:
  typemap roundtrip materialized_nclob --value "Grüße"
  typemap roundtrip materialized_nclob --value-file novel.txt.zst --database.type oracle --database.dsn oracle://...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := lookupType(args[0])
			if err != nil {
				return err
			}

			var value any
			flags := cmd.Flags()
			null, _ := flags.GetBool("null")
			file, _ := flags.GetString("value-file")
			switch {
			case null:
			case file != "":
				s, err := readValueFile(file)
				if err != nil {
					return err
				}
				if value, err = t.FromStringAny(s); err != nil {
					return err
				}
			case flags.Changed("value"):
				s, _ := flags.GetString("value")
				if value, err = t.FromStringAny(s); err != nil {
					return err
				}
			default:
				return errors.New(i18n.T("roundtrip.error_value_required"))
			}

			reg := prometheus.NewRegistry()
			opts := []db.StoreOption{db.WithMetrics(db.NewMetrics(reg))}
			if appConfig.Lob.StreamBinding != nil {
				opts = append(opts, db.WithStreamBinding(*appConfig.Lob.StreamBinding))
			}
			store, err := db.Open(appConfig.Database.Type, appConfig.Database.Dsn, opts...)
			if err != nil {
				return errors.New(i18n.T("config.error_init_db", err))
			}
			defer func() { _ = store.Close() }()

			got, err := db.RoundTrip(cmd.Context(), store, t, value)
			if err != nil {
				return err
			}
			logging.Debugf("round trip read back %s", t.ToLoggableStringAny(got))

			out := cmd.OutOrStdout()
			if got == nil {
				fmt.Fprintln(out, i18n.T("roundtrip.success_null", t.Name(), store.Dialect().Name()))
			} else {
				fmt.Fprintln(out, i18n.T("roundtrip.success", t.Name(), store.Dialect().Name(),
					utf8.RuneCountInString(t.ToLoggableStringAny(got))))
			}

			if showMetrics, _ := flags.GetBool("metrics"); showMetrics {
				return writeMetrics(out, reg)
			}
			return nil
		},
	}
	cmd.Flags().String("value", "", "Value to write")
	cmd.Flags().String("value-file", "", "Read the value from a file (.zst files are decompressed)")
	cmd.Flags().Bool("null", false, "Write SQL NULL")
	cmd.Flags().Bool("metrics", false, "Print conversion counters after the round trip")
	cmd.MarkFlagsMutuallyExclusive("value", "value-file", "null")
	return cmd
}

func writeMetrics(out io.Writer, reg *prometheus.Registry) error {
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(out, expfmt.FmtText)
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
