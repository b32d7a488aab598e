// Package reposcan locates the ignore-relevant artefacts around a
// directory: a repository marker, the repo-info exclude file, a directory's
// own ignore file, and the user-wide global config file.
package reposcan

import (
	"os"
	"path/filepath"

	"github.com/dl/pathwalk/internal/pathutil"
)

// ContainsRepoMarker reports whether dir/.git exists as a directory.
func ContainsRepoMarker(dir string) bool {
	fi, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil && fi.IsDir()
}

// RepoExcludeFile returns dir/.git/info/exclude if it is a readable file,
// and ok=false otherwise.
func RepoExcludeFile(dir string) (path string, ok bool) {
	return readableFile(filepath.Join(dir, ".git", "info", "exclude"))
}

// LocalIgnoreFile returns dir/.gitignore if it is a readable file, and
// ok=false otherwise.
func LocalIgnoreFile(dir string) (path string, ok bool) {
	return readableFile(filepath.Join(dir, ".gitignore"))
}

func readableFile(path string) (string, bool) {
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return "", false
	}
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	f.Close()
	return path, true
}

// FindGlobalConfigFile returns the first readable of, in order:
// $HOME/.gitconfig; $XDG_CONFIG_HOME/git/config if XDG_CONFIG_HOME is set
// and non-empty; else $HOME/.config/git/config.
func FindGlobalConfigFile() (string, bool) {
	home, _ := os.UserHomeDir()
	if home != "" {
		if p, ok := readableFile(filepath.Join(home, ".gitconfig")); ok {
			return p, true
		}
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		if p, ok := readableFile(filepath.Join(xdg, "git", "config")); ok {
			return p, true
		}
		return "", false
	}

	if home != "" {
		if p, ok := readableFile(filepath.Join(home, ".config", "git", "config")); ok {
			return p, true
		}
	}
	return "", false
}

// ExpandTilde replaces a leading "~/" with the user's home directory.
func ExpandTilde(s string) string {
	return pathutil.ExpandTilde(s)
}
