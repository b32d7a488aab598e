package cli

import "fmt"

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// TypeFilter restricts which entry kinds the façade prints; the walker
// itself always visits both, since directories must be descended into
// regardless of what the caller wants printed.
type TypeFilter int

const (
	TypeAll TypeFilter = iota
	TypeFiles
	TypeDirs
)

// Config holds all configuration for one pathwalk invocation.
type Config struct {
	Paths          []string
	Patterns       []string
	Hidden         bool
	NoIgnore       bool
	FollowSymlinks bool
	MaxDepth       int // -1 means unbounded, matching walker.Options.MaxDepth
	JSONOutput     bool
	Color          ColorMode
	Type           TypeFilter
	Quiet          bool // exit-code only, no output written
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if len(c.Paths) == 0 {
		return fmt.Errorf("no start path specified")
	}
	if c.MaxDepth < -1 {
		return fmt.Errorf("invalid max depth: %d", c.MaxDepth)
	}
	for _, p := range c.Patterns {
		if p == "" {
			return fmt.Errorf("empty include pattern")
		}
	}
	return nil
}
