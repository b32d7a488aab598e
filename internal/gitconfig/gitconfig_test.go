package gitconfig

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseSectionsAndEntries(t *testing.T) {
	text := "[core]\n\tignoreCase = true\n\texcludesFile = ~/.gitignore_global\n"
	cfg, err := Parse(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := cfg.Get("core", "", "ignorecase")
	if !ok || v != "true" {
		t.Fatalf("ignorecase = %q, %v", v, ok)
	}
	v, ok = cfg.Get("CORE", "", "EXCLUDESFILE")
	if !ok || v != "~/.gitignore_global" {
		t.Fatalf("excludesFile = %q, %v", v, ok)
	}
}

func TestParseQuotedSubsection(t *testing.T) {
	text := `[remote "origin"]
	url = https://example.com/repo.git
`
	cfg, err := Parse(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := cfg.Get("remote", "origin", "url")
	if !ok || v != "https://example.com/repo.git" {
		t.Fatalf("url = %q, %v", v, ok)
	}
}

func TestParseBooleanImplicitTrue(t *testing.T) {
	cfg, err := Parse("[core]\n\tbare\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, ok, err := cfg.Bool("core", "", "bare")
	if err != nil || !ok || !b {
		t.Fatalf("bare = %v, %v, %v", b, ok, err)
	}
}

func TestParseBooleanVariants(t *testing.T) {
	cases := map[string]bool{"true": true, "yes": true, "on": true, "1": true,
		"false": false, "no": false, "off": false, "0": false}
	for raw, want := range cases {
		cfg, err := Parse("[a]\n\tb = " + raw + "\n")
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		got, ok, err := cfg.Bool("a", "", "b")
		if err != nil || !ok || got != want {
			t.Errorf("Bool(%q) = %v, %v, %v; want %v", raw, got, ok, err, want)
		}
	}
}

func TestParseBooleanInvalid(t *testing.T) {
	cfg, err := Parse("[a]\n\tb = maybe\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, err = cfg.Bool("a", "", "b")
	if !errors.Is(err, ErrInvalidBoolean) {
		t.Fatalf("err = %v, want ErrInvalidBoolean", err)
	}
}

func TestParseQuotedValueEscapes(t *testing.T) {
	cfg, err := Parse(`[a]
	b = "line\nbreak\ttab"
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := cfg.Get("a", "", "b")
	if v != "line\nbreak\ttab" {
		t.Fatalf("b = %q", v)
	}
}

func TestParseLineContinuation(t *testing.T) {
	cfg, err := Parse("[a]\n\tb = one\\\ntwo\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := cfg.Get("a", "", "b")
	if v != "onetwo" {
		t.Fatalf("b = %q, want onetwo", v)
	}
}

func TestParseCommentAfterValue(t *testing.T) {
	cfg, err := Parse("[a]\n\tb = hello ; trailing comment\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := cfg.Get("a", "", "b")
	if v != "hello" {
		t.Fatalf("b = %q, want %q", v, "hello")
	}
}

func TestParseLastValueWins(t *testing.T) {
	cfg, err := Parse("[a]\n\tb = first\n\tb = second\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := cfg.Get("a", "", "b")
	if v != "second" {
		t.Fatalf("b = %q, want second", v)
	}
}

func TestParseUnterminatedSectionFails(t *testing.T) {
	_, err := Parse("[core\n\tbare = true\n")
	if !errors.Is(err, ErrBadGroupHeader) && !errors.Is(err, ErrUnexpectedEOF) && !errors.Is(err, ErrBadSectionName) {
		t.Fatalf("err = %v", err)
	}
}

func TestParseNewlineInQuotesFails(t *testing.T) {
	_, err := Parse("[remote \"a\nb\"]\n")
	if !errors.Is(err, ErrNewlineInQuotes) {
		t.Fatalf("err = %v, want ErrNewlineInQuotes", err)
	}
}

func TestParseEntryOutsideSectionFails(t *testing.T) {
	_, err := Parse("bare = true\n")
	if !errors.Is(err, ErrBadEntryName) {
		t.Fatalf("err = %v, want ErrBadEntryName", err)
	}
}

func TestLoadFollowsInclude(t *testing.T) {
	dir := t.TempDir()
	included := filepath.Join(dir, "included.gitconfig")
	if err := os.WriteFile(included, []byte("[user]\n\tname = Included\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	main := filepath.Join(dir, "config")
	if err := os.WriteFile(main, []byte("[include]\n\tpath = included.gitconfig\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(main)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := cfg.Get("user", "", "name")
	if !ok || v != "Included" {
		t.Fatalf("name = %q, %v", v, ok)
	}
}

func TestLoadMissingFileReturnsCannotReadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrCannotReadFile) {
		t.Fatalf("err = %v, want ErrCannotReadFile", err)
	}
}
