package cli

import (
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/dl/pathwalk/internal/output"
	"github.com/dl/pathwalk/internal/walker"
)

// Run executes the walk described by cfg, writing matches to stdout.
// Returns an exit code: 0 = at least one match, 1 = no match, 2 = error.
func Run(cfg Config) int {
	log := newLogger()

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "err", err)
		return 2
	}

	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		useColor = output.StdoutIsTerminal(os.Stdout.Fd())
	}

	var formatter output.Formatter
	if cfg.JSONOutput {
		formatter = output.NewJSONFormatter()
	} else {
		styles := output.NoStyles()
		if useColor {
			styles = output.NewStyles()
		}
		formatter = output.NewTextFormatter(styles, useColor)
	}

	opts := walker.Options{
		IncludePatterns:    cfg.Patterns,
		ExcludeHidden:      !cfg.Hidden,
		RespectIgnoreFiles: !cfg.NoIgnore,
		FollowLinks:        cfg.FollowSymlinks,
		MaxDepth:           cfg.MaxDepth,
		Logger:             log,
	}

	h := &facadeHandler{
		cfg:       cfg,
		formatter: formatter,
		w:         output.NewWriter(),
	}

	for _, path := range cfg.Paths {
		if err := walker.Walk(path, opts, h); err != nil {
			log.Error("walk failed", "path", path, "err", err)
			return 2
		}
	}

	if h.matched {
		return 0
	}
	return 1
}

// facadeHandler adapts the walker's per-entry callbacks to the façade's
// output formatting and type filtering, writing each matched path as soon
// as it is visited rather than buffering the whole tree — the library's
// Handler contract is exactly a streaming sink, so the CLI need not
// collect anything beyond the "did we match at all" exit-code bit.
type facadeHandler struct {
	cfg       Config
	formatter output.Formatter
	w         *output.Writer
	matched   bool
}

func (h *facadeHandler) File(path string, attrs walker.Attrs) (bool, error) {
	if h.cfg.Type == TypeDirs {
		return true, nil
	}
	h.emit(path, output.File)
	return true, nil
}

func (h *facadeHandler) Directory(path string, attrs walker.Attrs) (bool, error) {
	if h.cfg.Type != TypeDirs && h.cfg.Type != TypeAll {
		return true, nil
	}
	// Include patterns filter files only (the walker descends and reports
	// every directory), so the default listing leaves directories out, and
	// does not count them as matches, when patterns are given.
	if h.cfg.Type == TypeAll && len(h.cfg.Patterns) > 0 {
		return true, nil
	}
	h.emit(path, output.Dir)
	return true, nil
}

func (h *facadeHandler) emit(path string, kind output.Kind) {
	h.matched = true
	if h.cfg.Quiet {
		return
	}
	buf := h.formatter.Format(nil, output.Result{Path: path, Kind: kind})
	h.w.Write(buf)
}

func newLogger() *charmlog.Logger {
	return charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
		Prefix:          "pathwalk",
	})
}
