package gitconfig

import (
	"os"
	"path/filepath"

	"github.com/dl/pathwalk/internal/fsread"
	"github.com/dl/pathwalk/internal/pathutil"
)

const maxIncludeDepth = 10

// Load reads and parses path, following any include.path entries relative
// to the directory containing the including file, up to maxIncludeDepth
// levels deep.
func Load(path string) (*Config, error) {
	return load(path, 0)
}

func load(path string, depth int) (*Config, error) {
	if depth > maxIncludeDepth {
		return nil, ErrTooManyIncludeRecursions
	}

	data, release, err := fsread.ReadFile(path)
	if err != nil {
		return nil, &ParseError{File: path, Err: ErrCannotReadFile}
	}
	defer release()

	cfg, err := Parse(string(data))
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.File = path
		}
		return nil, err
	}

	dir := filepath.Dir(path)
	for _, s := range cfg.Sections {
		if s.Name != "include" {
			continue
		}
		for _, e := range s.Entries {
			if e.Key != "path" {
				continue
			}
			incPath := pathutil.ExpandTilde(e.Value)
			if !filepath.IsAbs(incPath) {
				incPath = filepath.Join(dir, incPath)
			}
			if _, err := os.Stat(incPath); err != nil {
				continue
			}
			incCfg, err := load(incPath, depth+1)
			if err != nil {
				return nil, err
			}
			cfg.Sections = append(cfg.Sections, incCfg.Sections...)
		}
	}

	return cfg, nil
}
