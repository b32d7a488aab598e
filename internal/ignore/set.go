package ignore

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/dl/pathwalk/internal/fsread"
	"github.com/dl/pathwalk/internal/pathutil"
)

// Result is the verdict an ignore set returns for a path.
type Result int

const (
	// None means no pattern in the set said anything about the path.
	None Result = iota
	// Ignore means the path should be excluded.
	Ignore
	// Allow means a negated pattern explicitly re-included the path.
	Allow
)

func (r Result) String() string {
	switch r {
	case Ignore:
		return "Ignore"
	case Allow:
		return "Allow"
	default:
		return "None"
	}
}

// Set holds the compiled patterns from one ignore file (or explicit list),
// rooted at a directory. Patterns are stored in reverse of their source
// order so a linear scan finds the *last* matching line first, honouring
// "last match wins".
type Set struct {
	Root     string
	Patterns []Pattern
}

// FromFile reads path line by line, compiling each into a Pattern (skipping
// comments and blank lines), and returns a Set rooted at root. The read
// itself goes through internal/fsread's pooled unix.Pread path rather than
// os.Open/bufio, matching the teacher's preference for raw syscalls over
// the os.File abstraction; a missing or unreadable file is the caller's
// concern to have ruled out beforehand (reposcan only returns paths it has
// already stat'd as present), so any error here is a genuine read failure.
func FromFile(root, path string, caseSensitive bool) (*Set, error) {
	data, release, err := fsread.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCannotReadFile, path, err)
	}
	defer release()

	var patterns []Pattern
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p, err := CompilePattern(scanner.Text(), caseSensitive)
		if err != nil {
			if ce, ok := err.(*CompileError); ok {
				ce.File = path
				return nil, ce
			}
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		if p == nil {
			continue
		}
		patterns = append(patterns, *p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCannotReadFile, path, err)
	}

	reverse(patterns)
	return &Set{Root: root, Patterns: patterns}, nil
}

// FromLines compiles an explicit list of pattern lines (e.g. the caller's
// include patterns, or a global excludes file already read into memory),
// skipping comments and blanks, and returns a Set rooted at root.
func FromLines(root string, lines []string, caseSensitive bool) (*Set, error) {
	var patterns []Pattern
	for _, line := range lines {
		p, err := CompilePattern(line, caseSensitive)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		patterns = append(patterns, *p)
	}
	reverse(patterns)
	return &Set{Root: root, Patterns: patterns}, nil
}

func reverse(p []Pattern) {
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
}

// Match decides the verdict for path (isDir indicates whether path names a
// directory), per §4.5.
func (s *Set) Match(path string, isDir bool) Result {
	if len(s.Patterns) == 0 {
		return None
	}

	prepared := s.prepare(path)

	for _, p := range s.Patterns {
		if !p.Glob.Match(prepared) {
			continue
		}
		if p.DirOnly && !isDir {
			continue
		}
		if p.Negated {
			return Allow
		}
		return Ignore
	}
	return None
}

// prepare strips a leading "./" from both the set's root and the argument
// path, then removes the root as a segment-aligned prefix, yielding the
// string actually fed to the glob matcher.
func (s *Set) prepare(path string) string {
	root := pathutil.StripDotSlash(s.Root)
	p := pathutil.StripDotSlash(path)
	p = pathutil.ToSlash(p)
	root = pathutil.ToSlash(root)
	if root != "" && root != "." {
		p = pathutil.RemovePrefix(root, p)
	}
	return strings.TrimPrefix(p, "/")
}
