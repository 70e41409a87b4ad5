//go:build ignore

// If you are AI: This script enforces a per-file line limit on Go sources.
// Usage: go run scripts/check_lines.go [-max N] <directory>

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// skipDirs are never walked.
var skipDirs = map[string]bool{"vendor": true, "testdata": true, "_examples": true, ".git": true}

func main() {
	maxLines := flag.Int("max", 300, "maximum lines per file")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-max N] <directory>\n", os.Args[0])
		os.Exit(1)
	}

	var failures []string
	err := filepath.WalkDir(flag.Arg(0), func(path string, d fs.DirEntry, err error) error {
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

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if n := strings.Count(string(data), "\n"); n > *maxLines {
			failures = append(failures, fmt.Sprintf("%s: %d lines (max %d)", path, n, *maxLines))
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	if len(failures) > 0 {
		sort.Strings(failures)
		fmt.Fprintf(os.Stderr, "Files exceeding %d lines:\n", *maxLines)
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "  %s\n", f)
		}
		os.Exit(1)
	}
}
