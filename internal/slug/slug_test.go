package slug

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"quotes and punctuation", "  'My Title!!'  ", "my-title"},
		{"curly quotes", "“Curly Title”", "curly-title"},
		{"cjk", "我美好的第一篇文章", "我美好的第一篇文章"},
		{"mixed latin cjk", "Go 语言 Tips", "go-语言-tips"},
		{"accented latin", "Café", "café"},
		{"accented latin with punctuation", "Résumé Tips!", "résumé-tips"},
		{"punctuation collapses", "C++ & Rust!", "c-rust"},
		{"underscore kept", "snake_case title", "snake_case-title"},
		{"whitespace run", "a \t\n b", "a-b"},
		{"surrounding hyphens", "--hello--", "hello"},
		{"empty", "", ""},
		{"only punctuation", "!!! ???", ""},
		{"tabs only", " \t ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Make(tc.title); got != tc.want {
				t.Fatalf("Make(%q) = %q, want %q", tc.title, got, tc.want)
			}
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	titles := []string{
		"Hello World",
		"  'My Title!!'  ",
		"Go 语言 Tips",
		"--a--b--",
		strings.Repeat("word ", 40),
	}
	for _, title := range titles {
		once := Make(title)
		if twice := Make(once); twice != once {
			t.Fatalf("Make not idempotent for %q: %q -> %q", title, once, twice)
		}
	}
}

func TestMakeLengthCap(t *testing.T) {
	long := strings.Repeat("a", 200)
	if got := Make(long); len([]rune(got)) != MaxLen {
		t.Fatalf("expected %d runes, got %d", MaxLen, len([]rune(got)))
	}
	// cap is measured in code points, not bytes
	cjk := strings.Repeat("字", 200)
	if got := Make(cjk); len([]rune(got)) != MaxLen {
		t.Fatalf("expected %d runes for CJK input, got %d", MaxLen, len([]rune(got)))
	}
}

func TestMakeOutputAlphabet(t *testing.T) {
	titles := []string{
		"Hello, World!",
		"  'Quoted -- Title'  ",
		"文章 with spaces 和 symbols @#$",
		strings.Repeat("x-", 100),
	}
	for _, title := range titles {
		got := Make(title)
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Fatalf("Make(%q) = %q has a leading or trailing hyphen", title, got)
		}
		if strings.Contains(got, "--") {
			t.Fatalf("Make(%q) = %q contains consecutive hyphens", title, got)
		}
		for _, r := range got {
			if !allowed(r) {
				t.Fatalf("Make(%q) = %q contains disallowed rune %q", title, got, r)
			}
		}
	}
}
