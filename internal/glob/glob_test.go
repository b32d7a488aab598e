package glob

import "testing"

func mustCompile(t *testing.T, pattern string, caseSensitive bool) *Matcher {
	t.Helper()
	toks, err := Parse(pattern)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	m, err := Compile(pattern, toks, caseSensitive)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", pattern, err)
	}
	return m
}

func TestRecursivePrefixCollapse(t *testing.T) {
	for _, p := range []string{"**/foo", "**/**/foo", "**/**/**/foo"} {
		toks, err := Parse(p)
		if err != nil {
			t.Fatalf("Parse(%q): %v", p, err)
		}
		if len(toks) != 4 || toks[0].Kind != RecursivePrefix {
			t.Fatalf("Parse(%q) = %+v, want single RecursivePrefix then the 3 literals of foo", p, toks)
		}
	}
}

func TestRecursiveSuffixCollapse(t *testing.T) {
	for _, p := range []string{"foo/**", "foo/**/**", "foo/**/**/**"} {
		toks, err := Parse(p)
		if err != nil {
			t.Fatalf("Parse(%q): %v", p, err)
		}
		last := toks[len(toks)-1]
		if last.Kind != RecursiveSuffix {
			t.Fatalf("Parse(%q) last token = %+v, want RecursiveSuffix", p, last)
		}
	}
}

func TestRecursiveMiddleCollapse(t *testing.T) {
	toks, err := Parse("a/**/b")
	if err != nil {
		t.Fatal(err)
	}
	want := []Kind{Literal, RecursiveMiddle, Literal}
	if len(toks) != len(want) {
		t.Fatalf("Parse(a/**/b) = %+v, want 3 tokens", toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d kind = %v, want %v", i, toks[i].Kind, k)
		}
	}
}

func TestLiteralFastPath(t *testing.T) {
	m := mustCompile(t, "file2d.cpp", true)
	if !m.IsLiteral() {
		t.Fatal("expected literal matcher for purely-literal case-sensitive pattern")
	}
	if !m.Match("file2d.cpp") {
		t.Fatal("literal matcher should match identical string")
	}
	if m.Match("FILE2D.cpp") {
		t.Fatal("literal matcher should be case-sensitive")
	}
}

func TestLiteralCaseInsensitiveUsesRegex(t *testing.T) {
	m := mustCompile(t, "file2d.cpp", false)
	if m.IsLiteral() {
		t.Fatal("case-insensitive pattern should not take the literal fast path")
	}
	if !m.Match("FILE2D.CPP") {
		t.Fatal("case-insensitive regex matcher should ignore case")
	}
}

func TestCharClassAmbiguity(t *testing.T) {
	cases := []struct {
		pattern string
		want    []Range
		negated bool
	}{
		{"[]-z]", []Range{{']', 'z'}}, false},
		{"[]]", []Range{{']', ']'}}, false},
		{"[-]", []Range{{'-', '-'}}, false},
	}
	for _, c := range cases {
		toks, err := Parse(c.pattern)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.pattern, err)
		}
		if len(toks) != 1 || toks[0].Kind != CharClass {
			t.Fatalf("Parse(%q) = %+v, want single CharClass token", c.pattern, toks)
		}
		got := toks[0].Ranges
		if len(got) != len(c.want) {
			t.Fatalf("Parse(%q) ranges = %+v, want %+v", c.pattern, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("Parse(%q) range %d = %+v, want %+v", c.pattern, i, got[i], c.want[i])
			}
		}
	}
}

func TestCharClassInvalidRange(t *testing.T) {
	_, err := Parse("[z-a]")
	if err == nil {
		t.Fatal("expected error for inverted range [z-a]")
	}
}

func TestCharClassNotClosed(t *testing.T) {
	_, err := Parse("[abc")
	if err == nil {
		t.Fatal("expected error for unclosed character class")
	}
}

func TestIncompleteEscape(t *testing.T) {
	_, err := Parse(`foo\`)
	if err == nil {
		t.Fatal("expected error for trailing backslash")
	}
}

func TestExtensionUnion(t *testing.T) {
	java := mustCompile(t, "*.java", true)
	cpp := mustCompile(t, "*.cpp", true)

	for _, name := range []string{"Main.java", "lib.cpp"} {
		if !java.Match(name) && !cpp.Match(name) {
			t.Fatalf("expected %q to match one of *.java / *.cpp", name)
		}
	}
	if java.Match("dir2d") || cpp.Match("dir2d") {
		t.Fatal("plain directory name should not match either extension glob")
	}
}

func TestAnyAndZeroOrMoreRespectSeparators(t *testing.T) {
	any := mustCompile(t, "?oo", true)
	if any.Match("/oo") {
		t.Fatal("Any should not match a path separator")
	}
	if !any.Match("foo") {
		t.Fatal("Any should match a single non-separator rune")
	}

	star := mustCompile(t, "foo*bar", true)
	if star.Match("foo/bar") {
		t.Fatal("ZeroOrMore should not cross a path separator")
	}
	if !star.Match("fooXYZbar") {
		t.Fatal("ZeroOrMore should match intervening non-separator runes")
	}
}
