// Package walker performs depth-first, gitignore-aware directory
// traversal. It is single-threaded and synchronous: callers needing
// parallelism should run multiple walkers over disjoint roots.
package walker

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/dl/pathwalk/internal/gitconfig"
	"github.com/dl/pathwalk/internal/ignore"
	"github.com/dl/pathwalk/internal/pathutil"
	"github.com/dl/pathwalk/internal/reposcan"
)

// Attrs describes the attributes of a visited entry.
type Attrs struct {
	IsDir     bool
	IsHidden  bool
	IsSymlink bool
}

// Handler receives callbacks for each directory and file the walk visits.
// Returning false from either callback requests early termination.
type Handler interface {
	File(path string, attrs Attrs) (bool, error)
	Directory(path string, attrs Attrs) (bool, error)
}

// Base is embeddable by handlers that only care about files: it supplies
// a Directory callback that always continues the walk.
type Base struct{}

// Directory always returns true, continuing the descent.
func (Base) Directory(path string, attrs Attrs) (bool, error) {
	return true, nil
}

// CollectingHandler accumulates every visited file and directory path, in
// the order the walk visits them.
type CollectingHandler struct {
	Files []string
	Dirs  []string
}

func (h *CollectingHandler) File(path string, attrs Attrs) (bool, error) {
	h.Files = append(h.Files, path)
	return true, nil
}

func (h *CollectingHandler) Directory(path string, attrs Attrs) (bool, error) {
	h.Dirs = append(h.Dirs, path)
	return true, nil
}

// WalkError reports the path being processed when a fatal error occurred.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return "walk " + e.Path + ": " + e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// ErrHandlerFailed is the sentinel wrapped in a WalkError raised by a
// handler callback's own returned error.
var ErrHandlerFailed = errors.New("handler returned an error")

// Options configures a walk.
type Options struct {
	// IncludePatterns allow-lists entries by glob. If empty, every entry
	// is a candidate.
	IncludePatterns []string
	// ExcludeHidden skips dotfile-convention entries unless a negated
	// pattern in an active ignore file returns Allow for them; a match on
	// an include pattern does not lift the hidden policy.
	ExcludeHidden bool
	// RespectIgnoreFiles honours ancestor, local, repo-info, and global
	// ignore files.
	RespectIgnoreFiles bool
	// FollowLinks traverses through symbolic links instead of skipping
	// them.
	FollowLinks bool
	// MaxDepth bounds descent; the start directory is depth 0. -1 means
	// unbounded.
	MaxDepth int
	// Logger receives diagnostic messages about skipped ignore artefacts.
	// A nil Logger disables logging.
	Logger *log.Logger
}

// DefaultOptions returns the walker's conventional defaults.
func DefaultOptions() Options {
	return Options{
		ExcludeHidden:      true,
		RespectIgnoreFiles: true,
		FollowLinks:        false,
		MaxDepth:           -1,
	}
}

// Validate reports a configuration error, if any.
func (o Options) Validate() error {
	if o.MaxDepth < -1 {
		return fmt.Errorf("walker: invalid max depth: %d", o.MaxDepth)
	}
	for _, p := range o.IncludePatterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("walker: empty include pattern")
		}
	}
	return nil
}

func (o Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger.Debug(fmt.Sprintf(format, args...))
	}
}

// frame is one directory's context on the walk's implicit stack.
type frame struct {
	ignores  []*ignore.Set
	workTree bool
}

type walker struct {
	opts          Options
	handler       Handler
	include       *ignore.Set
	caseSensitive bool
}

// Walk traverses the tree rooted at start, invoking handler's callbacks in
// depth-first, not-sorted order.
func Walk(start string, opts Options, handler Handler) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	w := &walker{opts: opts, handler: handler, caseSensitive: true}
	start = filepath.Clean(start)

	if opts.RespectIgnoreFiles {
		if ignoreCase, err := globalIgnoreCase(); err == nil {
			w.caseSensitive = !ignoreCase
		}
	}

	if len(opts.IncludePatterns) > 0 {
		inc, err := ignore.FromLines(start, opts.IncludePatterns, w.caseSensitive)
		if err != nil {
			return &WalkError{Path: start, Err: err}
		}
		w.include = inc
	}

	top := frame{}
	if opts.RespectIgnoreFiles {
		ignores, workTree, err := w.scanAncestors(start)
		if err != nil {
			return &WalkError{Path: start, Err: err}
		}
		top.ignores = ignores
		top.workTree = workTree
	}

	_, err := w.visitDir(start, 0, top)
	return err
}

// globalIgnoreCase reads core.ignoreCase from the user-wide git config, if
// one is found. A missing or unparseable config yields false, nil — case
// sensitivity defaults on.
func globalIgnoreCase() (bool, error) {
	path, ok := reposcan.FindGlobalConfigFile()
	if !ok {
		return false, nil
	}
	cfg, err := gitconfig.Load(path)
	if err != nil {
		return false, nil
	}
	b, found, err := cfg.Bool("core", "", "ignoreCase")
	if err != nil || !found {
		return false, nil
	}
	return b, nil
}

// scanAncestors walks upward from start's parent, collecting each
// ancestor's local ignore file, stopping and marking workTree=true once it
// finds a repository marker (also collecting that ancestor's repo-info
// exclude file). A global ignore file, if core.excludesFile names one, is
// always appended regardless of workTree.
func (w *walker) scanAncestors(start string) ([]*ignore.Set, bool, error) {
	var sets []*ignore.Set
	workTree := false

	dir := filepath.Dir(start)
	for {
		if path, ok := reposcan.LocalIgnoreFile(dir); ok {
			s, err := ignore.FromFile(dir, path, w.caseSensitive)
			if err != nil {
				return nil, false, err
			}
			sets = append(sets, s)
		}
		if reposcan.ContainsRepoMarker(dir) {
			workTree = true
			if path, ok := reposcan.RepoExcludeFile(dir); ok {
				s, err := ignore.FromFile(dir, path, w.caseSensitive)
				if err != nil {
					return nil, false, err
				}
				sets = append(sets, s)
			}
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	globalSet, err := w.loadGlobalExcludes()
	if err != nil {
		return nil, false, err
	}
	if globalSet != nil {
		sets = append(sets, globalSet)
	}

	return sets, workTree, nil
}

func (w *walker) loadGlobalExcludes() (*ignore.Set, error) {
	path, ok := reposcan.FindGlobalConfigFile()
	if !ok {
		return nil, nil
	}
	cfg, err := gitconfig.Load(path)
	if err != nil {
		w.opts.logf("walker: skipping unreadable global config %s: %v", path, err)
		return nil, nil
	}
	excludesFile, found := cfg.Get("core", "", "excludesFile")
	if !found || excludesFile == "" {
		return nil, nil
	}
	excludesFile = pathutil.ExpandTilde(excludesFile)
	set, err := ignore.FromFile(filepath.Dir(excludesFile), excludesFile, w.caseSensitive)
	if err != nil {
		w.opts.logf("walker: skipping unreadable global excludes %s: %v", excludesFile, err)
		return nil, nil
	}
	return set, nil
}
