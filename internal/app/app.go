package app

import (
	"strings"

	"chartfix/internal/config"

	"github.com/spf13/afero"
)

// MatchExt is the file extension the scanner looks for, compared
// case-insensitively.
const MatchExt = ".json"

// BackupSuffix is appended to a file name for the pre-modification copy.
const BackupSuffix = ".bak"

type App struct {
	cfg *config.Config
	fs  afero.Fs
}

// Stats counts per-file outcomes across one run. Fields are updated
// atomically by the workers.
type Stats struct {
	Examined int64
	Modified int64
	Errors   int64
}

func New(cfg *config.Config) (*App, error) {
	return &App{cfg: cfg, fs: afero.NewOsFs()}, nil
}

func matchesExt(name string) bool {
	return len(name) >= len(MatchExt) &&
		strings.EqualFold(name[len(name)-len(MatchExt):], MatchExt)
}
