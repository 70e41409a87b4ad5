// If you are AI: This file finds .sol save files on disk.
// Search order: configured dir, legacy soledit.ini dir, then well-known Flash Player roots.

package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/ini.v1"

	"soledit/internal/logging"
)

// Ext is the save file extension.
const Ext = ".sol"

// DefaultINI is the legacy settings file consulted for a save directory.
const DefaultINI = "soledit.ini"

// ErrNotFound means no save file matched.
var ErrNotFound = errors.New("locator: no save file found")

// Options configures a Locator.
type Options struct {
	Dir     string         // Configured save directory, searched first
	INIPath string         // Legacy ini file with dir= in the default section
	Roots   []string       // Replaces the well-known roots when set
	Logger  logging.Logger // Optional
}

// Locator resolves save names to paths.
type Locator struct {
	dir     string
	iniPath string
	roots   []string
	log     logging.Logger
}

// New creates a Locator.
func New(opts Options) *Locator {
	if opts.INIPath == "" {
		opts.INIPath = DefaultINI
	}
	if opts.Roots == nil {
		opts.Roots = WellKnownRoots()
	}
	return &Locator{
		dir:     opts.Dir,
		iniPath: opts.INIPath,
		roots:   opts.Roots,
		log:     logging.OrNop(opts.Logger),
	}
}

// WellKnownRoots lists the #SharedObjects directories of common Flash Player installs.
func WellKnownRoots() []string {
	pepper := filepath.Join("Pepper Data", "Shockwave Flash", "WritableRoot", "#SharedObjects")
	return []string{
		filepath.Join(xdg.Home, ".macromedia", "Flash_Player", "#SharedObjects"),
		filepath.Join(xdg.ConfigHome, "google-chrome", "Default", pepper),
		filepath.Join(xdg.ConfigHome, "chromium", "Default", pepper),
		filepath.Join(xdg.Home, "Library", "Preferences", "Macromedia", "Flash Player", "#SharedObjects"),
		filepath.Join(xdg.Home, "AppData", "Roaming", "Macromedia", "Flash Player", "#SharedObjects"),
	}
}

// LegacyDir reads dir= from the default section of an ini file.
// A missing file yields an empty string and no error.
func LegacyDir(path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	cfg, err := ini.Load(path)
	if err != nil {
		return "", fmt.Errorf("load %s: %w", path, err)
	}
	// Default section is represented as empty string
	return cfg.Section("").Key("dir").String(), nil
}

// Roots returns the directories searched, in order, without duplicates.
func (l *Locator) Roots() []string {
	var out []string
	seen := make(map[string]bool)
	add := func(dir string) {
		if dir == "" {
			return
		}
		dir = filepath.Clean(dir)
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}

	add(l.dir)
	legacy, err := LegacyDir(l.iniPath)
	if err != nil {
		l.log.Warn("ignoring legacy ini", logging.Fields{"path": l.iniPath, "err": err})
	}
	add(legacy)
	for _, r := range l.roots {
		add(r)
	}
	return out
}

// Resolve turns a name or path into one save path.
// Existing paths are returned as-is; bare names are searched with Find.
func (l *Locator) Resolve(name string) (string, error) {
	if name != "" {
		if info, err := os.Stat(name); err == nil && !info.IsDir() {
			return name, nil
		}
		if strings.ContainsRune(name, filepath.Separator) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
	}
	matches, err := l.Find(name)
	if err != nil {
		return "", err
	}
	if len(matches) > 1 {
		l.log.Info("several saves match, using the first", logging.Fields{"name": name, "matches": len(matches)})
	}
	return matches[0], nil
}

// Find walks every root and returns the paths whose base name matches name.
// Results keep root order and are sorted within each root.
// The .sol extension is optional; an empty name matches every save.
func (l *Locator) Find(name string) ([]string, error) {
	if name != "" && !strings.EqualFold(filepath.Ext(name), Ext) {
		name += Ext
	}

	var matches []string
	for _, root := range l.Roots() {
		found, err := walk(root, name)
		if err != nil {
			l.log.Debug("skipping root", logging.Fields{"root": root, "err": err})
			continue
		}
		sort.Strings(found)
		matches = append(matches, found...)
	}
	if len(matches) == 0 {
		if name == "" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return matches, nil
}

func walk(root, name string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, err
	}
	var out []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped
			if d != nil && d.IsDir() && path != root {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		base := d.Name()
		if name == "" {
			if strings.EqualFold(filepath.Ext(base), Ext) {
				out = append(out, path)
			}
			return nil
		}
		if strings.EqualFold(base, name) {
			out = append(out, path)
		}
		return nil
	})
	return out, err
}
