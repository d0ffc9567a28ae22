// Copyright (c) 2026 ToeiRei
// Typemap - SQL/Go basic type bindings
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks that every message ID passed to i18n.T exists in the
// primary locale and that every other locale translates the same IDs.
package main

import (
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

const primaryLocale = "active.en.yaml"

// Location is where a message ID is used.
type Location struct {
	Filepath string
	Line     int
}

// Report is the outcome of one lint run.
type Report struct {
	Used map[string][]Location
	// Undefined IDs are used in code but absent from the primary locale.
	Undefined []string
	// Orphaned IDs are in the primary locale but never used.
	Orphaned []string
	// Missing maps a locale file to the IDs it lacks.
	Missing map[string][]string
}

// Failed reports whether the run found errors. Orphans are only warnings.
func (r *Report) Failed() bool {
	return len(r.Undefined) > 0 || len(r.Missing) > 0
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

func main() {
	root := flag.String("root", ".", "module root to scan")
	locales := flag.String("locales", "internal/i18n/locales", "locale directory")
	flag.Parse()

	r, err := lint(*root, *locales)
	if err != nil {
		fmt.Println(errStyle.Render("i18n-linter: " + err.Error()))
		os.Exit(1)
	}
	fmt.Printf("%d message IDs used in source code.\n", len(r.Used))
	for _, id := range r.Undefined {
		loc := r.Used[id][0]
		fmt.Println(errStyle.Render(fmt.Sprintf("undefined: %s (%s:%d)", id, loc.Filepath, loc.Line)))
	}
	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		for _, id := range r.Missing[f] {
			fmt.Println(errStyle.Render(fmt.Sprintf("missing in %s: %s", f, id)))
		}
	}
	for _, id := range r.Orphaned {
		fmt.Println(warnStyle.Render("orphaned: " + id))
	}
	if r.Failed() {
		os.Exit(1)
	}
	fmt.Println(okStyle.Render("translation files are consistent"))
}

func lint(root, localesDir string) (*Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return nil, err
	}
	primary, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		return nil, fmt.Errorf("primary locale: %w", err)
	}
	r := &Report{Used: used, Missing: map[string][]string{}}
	for id := range used {
		if _, ok := primary[id]; !ok {
			r.Undefined = append(r.Undefined, id)
		}
	}
	for id := range primary {
		if _, ok := used[id]; !ok {
			r.Orphaned = append(r.Orphaned, id)
		}
	}
	sort.Strings(r.Undefined)
	sort.Strings(r.Orphaned)

	others, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	for _, file := range others {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		var missing []string
		for id := range primary {
			if _, ok := keys[id]; !ok {
				missing = append(missing, id)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			r.Missing[filepath.Base(file)] = missing
		}
	}
	return r, nil
}

// findUsedKeys parses every non-test Go file under root and collects the
// literal first argument of i18n.T calls. The tools directory is skipped.
func findUsedKeys(root string) (map[string][]Location, error) {
	keys := make(map[string][]Location)
	fset := token.NewFileSet()
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		file, err := parser.ParseFile(fset, path, nil, 0)
		if err != nil {
			return err
		}
		ast.Inspect(file, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok || len(call.Args) == 0 || !isI18nT(call.Fun) {
				return true
			}
			lit, ok := call.Args[0].(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				return true
			}
			id, err := strconv.Unquote(lit.Value)
			if err != nil {
				return true
			}
			pos := fset.Position(lit.Pos())
			keys[id] = append(keys[id], Location{Filepath: path, Line: pos.Line})
			return true
		})
		return nil
	})
	return keys, err
}

func isI18nT(fun ast.Expr) bool {
	sel, ok := fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "T" {
		return false
	}
	pkg, ok := sel.X.(*ast.Ident)
	return ok && pkg.Name == "i18n"
}

// loadKeysFromLocale reads a YAML locale and returns its message IDs,
// flattening nested maps with dots the way go-i18n does.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}
	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	m, ok := node.(map[string]any)
	if !ok {
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
		return
	}
	for k, v := range m {
		next := k
		if prefix != "" {
			next = prefix + "." + k
		}
		flattenYAML(next, v, keys)
	}
}
