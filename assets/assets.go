package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"

	"github.com/automoto/dotjump/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

const levelsDir = "levels"

type LevelLoader struct {
	fsys fs.FS
	dir  string
}

// NewLevelLoader returns a loader over the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS, dir: levelsDir}
}

// NewLevelLoaderFS returns a loader over an arbitrary file system, e.g.
// os.DirFS for levels passed on the command line.
func NewLevelLoaderFS(fsys fs.FS, dir string) *LevelLoader {
	return &LevelLoader{fsys: fsys, dir: dir}
}

// Names lists the level files the loader can see, sorted.
func (l *LevelLoader) Names() ([]string, error) {
	var names []string
	for _, pattern := range []string{"*.txt", "*.tmx"} {
		matches, err := fs.Glob(l.fsys, path.Join(l.dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", pattern, err)
		}
		for _, m := range matches {
			names = append(names, path.Base(m))
		}
	}
	sort.Strings(names)
	return names, nil
}

// LoadLevel parses the named level.
func (l *LevelLoader) LoadLevel(name string) (*leveldata.Level, error) {
	level, err := leveldata.Load(l.fsys, path.Join(l.dir, name))
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded level %s: %d platforms", name, len(level.Platforms))
	return level, nil
}

// LoadLevelArg loads a level named on the command line. An existing file path
// is read from disk; anything else is looked up among the embedded levels.
func LoadLevelArg(arg string) (*leveldata.Level, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		dir, name := filepath.Split(arg)
		if dir == "" {
			dir = "."
		}
		return NewLevelLoaderFS(os.DirFS(dir), ".").LoadLevel(name)
	}
	return NewLevelLoader().LoadLevel(arg)
}
