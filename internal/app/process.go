package app

import (
	"fmt"
	"os"
	"path/filepath"

	"chartfix/internal/chart"
	"chartfix/internal/textio"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// processFile runs the whole pipeline for one file: decode by trial,
// strip accidental outer quotes, normalize candidate strings, and write
// back in the original encoding only if something changed. Reports
// whether the file was rewritten.
func (a *App) processFile(path string) (bool, error) {
	raw, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return false, fmt.Errorf("read: %w", err)
	}
	text, enc, err := textio.Decode(raw)
	if err != nil {
		return false, fmt.Errorf("decode: %w", err)
	}

	unquoted, trimmed := chart.TrimOuterQuotes(text)
	fixed, normalized := chart.Normalize(unquoted)
	if !trimmed && !normalized {
		return false, nil
	}

	final := fixed
	if normalized && a.cfg.Pretty && gjson.Valid(final) {
		final = string(pretty.Pretty([]byte(final)))
	}

	if a.cfg.Backup {
		if err := a.backup(path, raw); err != nil {
			return false, fmt.Errorf("backup: %w", err)
		}
	}

	data, err := textio.Encode(final, enc)
	if err != nil {
		return false, fmt.Errorf("encode: %w", err)
	}
	if err := a.writeAtomic(path, data); err != nil {
		return false, fmt.Errorf("write: %w", err)
	}
	return true, nil
}

// backup keeps a sibling copy of the pre-modification bytes. An
// existing backup is never overwritten: the first copy is the one that
// still holds the untouched original.
func (a *App) backup(path string, data []byte) error {
	bak := path + BackupSuffix
	if _, err := a.fs.Stat(bak); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	return afero.WriteFile(a.fs, bak, data, 0644)
}

// writeAtomic stages the rewrite in a temp file next to the target and
// renames it into place, so a failed write leaves the original intact.
func (a *App) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(a.fs, dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		a.fs.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		a.fs.Remove(tmpName)
		return err
	}
	if err := a.fs.Rename(tmpName, path); err != nil {
		a.fs.Remove(tmpName)
		return err
	}
	return nil
}
