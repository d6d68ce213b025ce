package walt

import (
	"fmt"
	"os"
	"path/filepath"
)

// output is a fully encoded file waiting to be written.
type output struct {
	path string
	data []byte
}

// writeAll writes every output to a temporary file next to its destination
// and renames them into place only once all temporary files are written.
// Destinations are checked before anything is renamed. Files that a failed
// run already replaced are restored from backups, so on error the
// destinations look as they did before the call.
func writeAll(outputs []output) error {
	for _, o := range outputs {
		if err := checkDestination(o.path); err != nil {
			return err
		}
	}

	temps := make([]string, 0, len(outputs))
	cleanup := func() {
		for _, t := range temps {
			os.Remove(t)
		}
	}

	for _, o := range outputs {
		tmp, err := writeTemp(o)
		if err != nil {
			cleanup()
			return err
		}
		temps = append(temps, tmp)
	}

	var committed []replaced
	for i, o := range outputs {
		r, err := replace(temps[i], o.path)
		if err != nil {
			cleanup()
			rollback(committed)
			return fmt.Errorf("failed to write %s: %w", o.path, err)
		}
		committed = append(committed, r)
	}

	for _, r := range committed {
		if r.backup != "" {
			os.Remove(r.backup)
		}
	}
	return nil
}

// replaced records a destination moved into place and the backup of the
// file it replaced, if there was one.
type replaced struct {
	path   string
	backup string
}

// replace renames tmp onto path, moving any existing file at path to a
// backup in the same directory first.
func replace(tmp, path string) (replaced, error) {
	r := replaced{path: path}

	if _, err := os.Lstat(path); err == nil {
		bak, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.bak")
		if err != nil {
			return r, err
		}
		bak.Close()
		if err := os.Rename(path, bak.Name()); err != nil {
			os.Remove(bak.Name())
			return r, err
		}
		r.backup = bak.Name()
	} else if !os.IsNotExist(err) {
		return r, err
	}

	if err := os.Rename(tmp, path); err != nil {
		if r.backup != "" {
			os.Rename(r.backup, path)
		}
		return r, err
	}
	return r, nil
}

// rollback undoes committed replacements, newest first.
func rollback(committed []replaced) {
	for i := len(committed) - 1; i >= 0; i-- {
		r := committed[i]
		if r.backup != "" {
			os.Rename(r.backup, r.path)
		} else {
			os.Remove(r.path)
		}
	}
}

// checkDestination rejects paths that a rename could not replace.
func checkDestination(path string) error {
	fi, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if fi.IsDir() {
		return fmt.Errorf("failed to write %s: destination is a directory", path)
	}
	return nil
}

func writeTemp(o output) (string, error) {
	f, err := os.CreateTemp(filepath.Dir(o.path), "."+filepath.Base(o.path)+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to write %s: %w", o.path, err)
	}
	name := f.Name()

	if _, err := f.Write(o.data); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("failed to write %s: %w", o.path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to write %s: %w", o.path, err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to write %s: %w", o.path, err)
	}
	return name, nil
}
