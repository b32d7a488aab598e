package walker

import (
	"fmt"
	"strings"

	"github.com/dl/pathwalk/internal/direntry"
	"github.com/dl/pathwalk/internal/ignore"
	"github.com/dl/pathwalk/internal/reposcan"
)

// verdict is the outcome of the precedence chain for one entry.
type verdict int

const (
	verdictProceed verdict = iota
	verdictSkip
	verdictTerminate
)

// visitDir implements the pre-visit protocol and child iteration for
// directory path at the given depth, inheriting parent's frame.
func (w *walker) visitDir(path string, depth int, parent frame) (bool, error) {
	isHidden := depth > 0 && isHiddenName(baseName(path))
	attrs := Attrs{IsDir: true, IsHidden: isHidden}

	f := parent
	if w.opts.RespectIgnoreFiles && (parent.workTree || reposcan.ContainsRepoMarker(path)) {
		ignores, workTree, err := w.pushDirContext(path, parent)
		if err != nil {
			return false, &WalkError{Path: path, Err: err}
		}
		f = frame{ignores: ignores, workTree: workTree}
	}

	// The start directory (depth 0) is always in scope: include patterns
	// and ignore verdicts govern descendants, not the traversal root
	// itself, which would otherwise be excluded whenever its own bare
	// name happened not to match an include glob.
	if depth > 0 {
		if v, _ := w.classify(path, true, attrs, f); v == verdictSkip {
			return true, nil
		}
	}

	cont, err := w.handler.Directory(path, attrs)
	if err != nil {
		return false, &WalkError{Path: path, Err: fmt.Errorf("%w: %w", ErrHandlerFailed, err)}
	}
	if !cont {
		return false, nil
	}

	if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
		// Children would sit one level deeper than the bound allows.
		return true, nil
	}

	return w.iterateChildren(path, depth, f)
}

// pushDirContext builds the context frame for directory path: its own
// local ignore file (if any) pushed onto the parent's, and — if path
// itself carries a repository marker — its repo-info exclude file, with
// work_tree latched true.
func (w *walker) pushDirContext(path string, parent frame) ([]*ignore.Set, bool, error) {
	ignores := parent.ignores
	workTree := parent.workTree

	if localPath, ok := reposcan.LocalIgnoreFile(path); ok {
		s, err := ignore.FromFile(path, localPath, w.caseSensitive)
		if err != nil {
			return nil, false, err
		}
		ignores = append(append([]*ignore.Set(nil), ignores...), s)
	}
	if reposcan.ContainsRepoMarker(path) {
		workTree = true
		if excludePath, ok := reposcan.RepoExcludeFile(path); ok {
			s, err := ignore.FromFile(path, excludePath, w.caseSensitive)
			if err != nil {
				return nil, false, err
			}
			ignores = append(append([]*ignore.Set(nil), ignores...), s)
		}
	}
	return ignores, workTree, nil
}

// iterateChildren opens path and visits each entry depth-first, in the
// order the directory stream yields them.
func (w *walker) iterateChildren(path string, depth int, f frame) (bool, error) {
	r, err := direntry.Open(path)
	if err != nil {
		return false, &WalkError{Path: path, Err: err}
	}
	defer r.Close()

	for {
		entry, ok, err := r.Next()
		if err != nil {
			return false, &WalkError{Path: path, Err: err}
		}
		if !ok {
			return true, nil
		}

		childPath := direntry.JoinPath(path, entry.Name)
		cont, err := w.visitEntry(childPath, entry, depth, f)
		if err != nil {
			return false, err
		}
		if !cont {
			return false, nil
		}
	}
}

// visitEntry dispatches one directory entry to visitDir or visitFile,
// resolving DT_UNKNOWN and symlinks via stat as needed.
func (w *walker) visitEntry(childPath string, entry direntry.Entry, depth int, f frame) (bool, error) {
	switch entry.Type {
	case direntry.TypeDir:
		return w.visitDir(childPath, depth+1, f)
	case direntry.TypeReg:
		return w.visitFile(childPath, Attrs{IsHidden: isHiddenName(entry.Name)}, f)
	case direntry.TypeLink:
		if !w.opts.FollowLinks {
			return true, nil
		}
		isDir, isReg, statErr := statKind(childPath)
		if statErr != nil {
			return true, nil // broken symlink: silently skipped
		}
		attrs := Attrs{IsHidden: isHiddenName(entry.Name), IsSymlink: true}
		if isDir {
			return w.visitDir(childPath, depth+1, f)
		}
		if isReg {
			return w.visitFile(childPath, attrs, f)
		}
		return true, nil
	case direntry.TypeUnknown:
		isDir, isReg, statErr := statKind(childPath)
		if statErr != nil {
			return false, &WalkError{Path: childPath, Err: statErr}
		}
		if isDir {
			return w.visitDir(childPath, depth+1, f)
		}
		if isReg {
			return w.visitFile(childPath, Attrs{IsHidden: isHiddenName(entry.Name)}, f)
		}
		return true, nil
	default:
		return true, nil
	}
}

// visitFile implements the file-visit protocol.
func (w *walker) visitFile(path string, attrs Attrs, f frame) (bool, error) {
	v, _ := w.classify(path, false, attrs, f)
	if v == verdictSkip {
		return true, nil
	}

	cont, err := w.handler.File(path, attrs)
	if err != nil {
		return false, &WalkError{Path: path, Err: fmt.Errorf("%w: %w", ErrHandlerFailed, err)}
	}
	return cont, nil
}

// classify runs the precedence chain described for directories and files
// alike: include matcher, then ignore verdict (only while in a work
// tree), then hidden-file policy. allowed reports whether an Allow
// verdict from the ignore chain overrode the hidden policy.
//
// The include matcher only prunes files, not directories: a bare-name
// pattern like "*.go" compiles to "**/*.go", which never matches an
// intermediate directory's own basename, so pruning directories by the
// same test would stop recursion before it ever reaches a matching file.
// Directories are always allowed to proceed; the file check downstream
// is what actually enforces the allow-list.
func (w *walker) classify(path string, isDir bool, attrs Attrs, f frame) (verdict, bool) {
	if w.include != nil && !isDir {
		v := w.include.Match(path, isDir)
		if v != ignore.Ignore {
			return verdictSkip, false
		}
	}

	allowed := false
	if f.workTree {
		for _, s := range f.ignores {
			switch s.Match(path, isDir) {
			case ignore.Ignore:
				return verdictSkip, false
			case ignore.Allow:
				allowed = true
			}
		}
	}

	if attrs.IsHidden && w.opts.ExcludeHidden && !allowed {
		return verdictSkip, false
	}

	return verdictProceed, allowed
}

func baseName(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return path
	}
	return path[i+1:]
}

func isHiddenName(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
