// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

const modulePath = "github.com/toeirei/typemap"

// driverModules are reported by `typemap version`, one per dialect.
var driverModules = []string{
	"modernc.org/sqlite",
	"github.com/jackc/pgx/v5",
	"github.com/go-sql-driver/mysql",
	"github.com/sijms/go-ora/v2",
	"github.com/SAP/go-hdb",
}

type driverVersion struct {
	Path    string
	Version string
}

// buildVersion describes the running binary.
type buildVersion struct {
	Version string
	Commit  string
	Date    string
	Dirty   bool
	Drivers []driverVersion
}

// readBuildVersion starts from the linker variables and refines them with
// info, or with the runtime's build info when info is nil.
func readBuildVersion(info *debug.BuildInfo) buildVersion {
	bv := buildVersion{Version: version, Commit: gitCommit, Date: buildDate}
	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}
	if info != nil {
		bv.applyModules(info)
		bv.applyVCS(info.Settings)
	}
	if bv.Version == "dev" && gitCommit != "dev" && gitCommit != "" {
		bv.Version = gitCommit
	}
	return bv
}

func (bv *buildVersion) applyModules(info *debug.BuildInfo) {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		bv.Version = v
	}
	for _, dep := range info.Deps {
		if dep.Replace != nil {
			dep = &debug.Module{Path: dep.Path, Version: dep.Replace.Version}
		}
		if dep.Version == "" {
			continue
		}
		// go run and some test binaries list this module as a dependency only.
		if dep.Path == modulePath && (bv.Version == "dev" || bv.Version == "(devel)") {
			bv.Version = dep.Version
		}
		for _, p := range driverModules {
			if dep.Path == p {
				bv.Drivers = append(bv.Drivers, driverVersion{Path: dep.Path, Version: dep.Version})
			}
		}
	}
}

func (bv *buildVersion) applyVCS(settings []debug.BuildSetting) {
	for _, s := range settings {
		if s.Value == "" {
			continue
		}
		switch s.Key {
		case "vcs.revision":
			bv.Commit = s.Value
		case "vcs.time":
			bv.Date = s.Value
		case "vcs.modified":
			bv.Dirty = s.Value == "true"
		}
	}
}

func (bv buildVersion) commit() string {
	if bv.Dirty {
		return bv.Commit + "-dirty"
	}
	return bv.Commit
}

// String is the one-line form used by --version.
func (bv buildVersion) String() string {
	out := bv.Version
	if bv.Commit != "" && bv.Commit != "dev" {
		out += " (" + bv.commit() + ")"
	}
	if bv.Date != "" {
		out += " built: " + bv.Date
	}
	return out
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and database driver versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			bv := readBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", bv.Version)
			fmt.Fprintf(out, "commit: %s\n", bv.commit())
			if bv.Date != "" {
				fmt.Fprintf(out, "built: %s\n", bv.Date)
			}
			for _, d := range bv.Drivers {
				fmt.Fprintf(out, "driver: %s %s\n", d.Path, d.Version)
			}
		},
	}
}
