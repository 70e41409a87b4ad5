// If you are AI: This file implements loading and saving of SOL files on disk.
// Writes are atomic: temp file in the same directory, fsync, rename over the original.

package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"soledit/internal/core/protocol/amf0"
	"soledit/internal/core/protocol/sol"
	"soledit/internal/logging"
)

var (
	// ErrNotExist means the save file does not exist.
	ErrNotExist = errors.New("store: save file does not exist")
	// ErrNoBackup means there is no backup to restore.
	ErrNoBackup = errors.New("store: no backup found")
)

// Options configures a Store.
type Options struct {
	BackupSuffix string         // Appended to the save path; defaults to ".bak"
	KeepBackup   bool           // Back up the previous file on every Save
	Logger       logging.Logger // Optional
}

// Store reads and writes save files.
type Store struct {
	suffix string
	backup bool
	log    logging.Logger
}

// New creates a Store.
func New(opts Options) *Store {
	if opts.BackupSuffix == "" {
		opts.BackupSuffix = ".bak"
	}
	return &Store{
		suffix: opts.BackupSuffix,
		backup: opts.KeepBackup,
		log:    logging.OrNop(opts.Logger),
	}
}

// BackupPath returns where the backup of path is kept.
func (s *Store) BackupPath(path string) string {
	return path + s.suffix
}

// Load reads and parses a save file.
// A truncated file yields the decoded prefix together with an error wrapping
// amf0.ErrTruncatedInput; callers must not write such a file back blindly.
func (s *Store) Load(path string) (*sol.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return nil, fmt.Errorf("read save: %w", err)
	}

	f, err := sol.Parse(data)
	if err != nil {
		if f != nil && errors.Is(err, amf0.ErrTruncatedInput) {
			s.log.Warn("save file is truncated, keeping decoded prefix", logging.Fields{
				"path": path,
				"keys": f.Body.Len(),
				"err":  err,
			})
			return f, fmt.Errorf("parse %s: %w", path, err)
		}
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	s.log.Debug("save loaded", logging.Fields{"path": path, "keys": f.Body.Len(), "framed": f.Framed})
	return f, nil
}

// Save encodes f and atomically replaces path.
// Nothing touches the disk when encoding fails.
func (s *Store) Save(path string, f *sol.File) error {
	data, err := f.Bytes()
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
		if s.backup {
			if _, err := s.Backup(path); err != nil {
				return err
			}
		}
	}

	if err := writeAtomic(path, data, mode); err != nil {
		return err
	}
	s.log.Info("save written", logging.Fields{"path": path, "bytes": len(data)})
	return nil
}

// Backup copies path to its backup location, preserving the file mode.
func (s *Store) Backup(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotExist, path)
		}
		return "", fmt.Errorf("open save: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("stat save: %w", err)
	}

	dst := s.BackupPath(path)
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return "", fmt.Errorf("copy backup: %w", err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return "", fmt.Errorf("sync backup: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("close backup: %w", err)
	}

	s.log.Info("backup written", logging.Fields{"path": dst})
	return dst, nil
}

// Restore moves the backup of path back into place.
func (s *Store) Restore(path string) error {
	bak := s.BackupPath(path)
	if _, err := os.Stat(bak); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNoBackup, bak)
		}
		return fmt.Errorf("stat backup: %w", err)
	}
	if err := os.Rename(bak, path); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}
	s.log.Info("backup restored", logging.Fields{"path": path})
	return nil
}

func writeAtomic(path string, data []byte, mode fs.FileMode) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		return fail(fmt.Errorf("write temp file: %w", err))
	}
	if err := tmp.Sync(); err != nil {
		return fail(fmt.Errorf("sync temp file: %w", err))
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail(fmt.Errorf("chmod temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace save: %w", err)
	}
	return nil
}
