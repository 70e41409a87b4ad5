//go:build ignore

// If you are AI: This script enforces file headers and doc comments on exported declarations.
// Usage: go run scripts/check_comments.go <directory>

package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const header = "// If you are AI:"

var skipDirs = map[string]bool{"vendor": true, "testdata": true, "_examples": true, ".git": true}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	var failures []string
	err := filepath.WalkDir(os.Args[1], func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}
		found, err := checkFile(path)
		if err != nil {
			return err
		}
		failures = append(failures, found...)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	if len(failures) > 0 {
		fmt.Fprintf(os.Stderr, "Comment violations:\n")
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "  %s\n", f)
		}
		os.Exit(1)
	}
}

// checkFile reports a missing header on any file, and missing doc comments on
// exported top-level functions and types outside tests. Methods are exempt.
func checkFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []string
	if !strings.Contains(string(data), header) {
		out = append(out, fmt.Sprintf("%s: missing %q header", path, header))
	}
	if strings.HasSuffix(path, "_test.go") {
		return out, nil
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, path, data, parser.ParseComments)
	if err != nil {
		return append(out, fmt.Sprintf("%s: %v", path, err)), nil
	}
	missing := func(pos token.Pos, kind, name string) {
		out = append(out, fmt.Sprintf("%s:%d: %s %s missing comment", path, fset.Position(pos).Line, kind, name))
	}
	for _, decl := range f.Decls {
		switch decl := decl.(type) {
		case *ast.FuncDecl:
			if decl.Recv == nil && decl.Name.IsExported() && decl.Doc == nil {
				missing(decl.Pos(), "function", decl.Name.Name)
			}
		case *ast.GenDecl:
			if decl.Tok != token.TYPE {
				continue
			}
			for _, spec := range decl.Specs {
				ts := spec.(*ast.TypeSpec)
				if ts.Name.IsExported() && decl.Doc == nil && ts.Doc == nil {
					missing(ts.Pos(), "type", ts.Name.Name)
				}
			}
		}
	}
	return out, nil
}
