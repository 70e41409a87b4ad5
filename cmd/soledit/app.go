// If you are AI: This file implements command dispatch and the subcommands that work on any save file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"soledit/internal/config"
	"soledit/internal/core/protocol/amf0"
	"soledit/internal/core/protocol/sol"
	"soledit/internal/export"
	"soledit/internal/game/jy3"
	"soledit/internal/locator"
	"soledit/internal/logging"
	"soledit/internal/store"
)

// errPartial means the save decoded only partially, so writing it back would lose data.
var errPartial = errors.New("save file is only partially readable, refusing to modify it")

var (
	keyCol  = color.New(color.FgHiCyan).SprintFunc()
	okCol   = color.New(color.FgHiGreen).SprintFunc()
	warnCol = color.New(color.FgHiYellow).SprintFunc()
	errCol  = color.New(color.FgHiRed).SprintFunc()
)

type app struct {
	cfg   *config.Config
	log   logging.Logger
	out   io.Writer
	store *store.Store
	loc   *locator.Locator
}

// execute dispatches one parsed subcommand.
func (a *app) execute(cmd any) error {
	switch c := cmd.(type) {
	case *getCmd:
		return a.get(c)
	case *setCmd:
		return a.set(c)
	case *unsetCmd:
		return a.unset(c)
	case *dumpCmd:
		return a.dump()
	case *exportCmd:
		return a.export(c)
	case *backupCmd:
		return a.backup()
	case *restoreCmd:
		return a.restore()
	case *skillsCmd:
		return a.skills()
	case *maxSkillsCmd:
		return a.maxSkills(c)
	case *meridiansCmd:
		return a.meridians()
	case *factionCmd:
		return a.faction(c)
	case *itemsCmd:
		return a.items()
	case *addItemCmd:
		return a.addItem(c)
	case *attrsCmd:
		return a.attrs()
	case *findCmd:
		return a.find(c)
	case *watchCmd:
		return a.watch()
	case *serveCmd:
		return a.serve()
	default:
		return fmt.Errorf("unknown command %T", cmd)
	}
}

// savePath resolves the configured save to an absolute path.
func (a *app) savePath() (string, error) {
	path, err := a.loc.Resolve(a.cfg.Save.File)
	if err != nil {
		return "", err
	}
	return filepath.Abs(path)
}

// open loads the save. Partially decoded files are returned for reading
// but refused when the caller intends to write them back.
func (a *app) open(mutating bool) (string, *sol.File, error) {
	path, err := a.savePath()
	if err != nil {
		return "", nil, err
	}
	f, err := a.store.Load(path)
	switch {
	case err == nil:
		return path, f, nil
	case f != nil && !mutating:
		// The store has already logged the decode error
		return path, f, nil
	case f != nil:
		return "", nil, fmt.Errorf("%w: %v", errPartial, err)
	default:
		return "", nil, err
	}
}

// mutate loads the save, applies fn and saves the result.
func (a *app) mutate(fn func(doc *amf0.Document) error) error {
	path, f, err := a.open(true)
	if err != nil {
		return err
	}
	if err := fn(f.Body); err != nil {
		return err
	}
	if err := a.store.Save(path, f); err != nil {
		return err
	}
	a.log.Info("saved", logging.Fields{"path": path})
	return nil
}

func (a *app) get(c *getCmd) error {
	_, f, err := a.open(false)
	if err != nil {
		return err
	}
	v, err := jy3.GetPath(f.Body, c.Path)
	if err != nil {
		return err
	}
	if obj, ok := v.AsObject(); ok {
		out, err := export.JSON{Indent: "  "}.Marshal(obj)
		if err != nil {
			return err
		}
		_, err = a.out.Write(out)
		return err
	}
	fmt.Fprintln(a.out, v.String())
	return nil
}

func (a *app) set(c *setCmd) error {
	v, err := jy3.ParseValue(c.Value, c.Type)
	if err != nil {
		return err
	}
	return a.mutate(func(doc *amf0.Document) error {
		prev, existed, err := jy3.SetPath(doc, c.Path, v)
		if err != nil {
			return err
		}
		old := "(new)"
		if existed {
			old = prev.String()
		}
		fmt.Fprintf(a.out, "%s: %s -> %s\n", keyCol(c.Path), old, okCol(v.String()))
		return nil
	})
}

func (a *app) unset(c *unsetCmd) error {
	return a.mutate(func(doc *amf0.Document) error {
		if err := jy3.UnsetPath(doc, c.Path); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "%s removed\n", keyCol(c.Path))
		return nil
	})
}

func (a *app) dump() error {
	path, f, err := a.open(false)
	if err != nil {
		return err
	}
	if f.Framed {
		fmt.Fprintf(a.out, "%s %s (%s)\n", keyCol("save"), f.Name, path)
	}
	t := newTable("KEY", "KIND", "VALUE")
	f.Body.Range(func(k string, v amf0.Value) bool {
		t.add(k, v.Kind().String(), v.String())
		return true
	})
	return t.write(a.out)
}

func (a *app) export(c *exportCmd) error {
	codec, err := export.ByName(c.Format)
	if err != nil {
		return err
	}
	_, f, err := a.open(false)
	if err != nil {
		return err
	}
	data, err := codec.Marshal(f.Body)
	if err != nil {
		return fmt.Errorf("export %s: %w", codec.Name(), err)
	}
	if c.Out == "" {
		_, err = a.out.Write(data)
		return err
	}
	if err := os.WriteFile(c.Out, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "wrote %s (%d bytes)\n", okCol(c.Out), len(data))
	return nil
}

func (a *app) backup() error {
	path, err := a.savePath()
	if err != nil {
		return err
	}
	dst, err := a.store.Backup(path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "backed up to %s\n", okCol(dst))
	return nil
}

func (a *app) restore() error {
	path, err := a.savePath()
	if err != nil {
		return err
	}
	if err := a.store.Restore(path); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "restored %s\n", okCol(path))
	return nil
}

func (a *app) find(c *findCmd) error {
	matches, err := a.loc.Find(c.Name)
	if err != nil {
		return err
	}
	for _, m := range matches {
		fmt.Fprintln(a.out, m)
	}
	return nil
}
