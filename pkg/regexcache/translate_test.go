package regexcache

import "testing"

func TestConvert(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		pattern  string
		expected string
	}{
		{"plain text", "abc", "abc"},
		{"digit class", `\d`, "[0-9]"},
		{"non-digit class", `\D`, "[^0-9]"},
		{"word class", `\w`, "[A-Za-z0-9_]"},
		{"non-word class", `\W`, "[^A-Za-z0-9_]"},
		{"whitespace class", `\s`, whitespaceClass},
		{"non-whitespace class", `\S`, nonWhitespaceClass},
		{"escaped backslash is literal", `\\d`, `\\d`},
		{"other escapes pass through", `\n\+`, `\n\+`},
		{"control group uppercase", `\cJ`, "\n"},
		{"control group lowercase", `\ca`, "\x01"},
		{"control group z", `\cZ`, "\x1a"},
		{"trailing backslash kept malformed", `\`, `\`},
		{"word shorthand inside class", `[\w\-\.\+]`, `[A-Za-z0-9_\-\.\+]`},
		{"digit shorthand inside class", `[\d]`, `[0-9]`},
		{"whitespace shorthand inside class", `[x\s]`, `[x` + spaceChars + `]`},
		{"negated shorthand inside class passes through", `[\D]`, `[\D]`},
		{"escaped bracket does not open a class", `\[\w`, `\[[A-Za-z0-9_]`},
		{"class closes and shorthand expands again", `[\w]\w`, `[A-Za-z0-9_][A-Za-z0-9_]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Convert(tt.pattern); got != tt.expected {
				t.Fatalf("Convert(%q) = %q, expected %q", tt.pattern, got, tt.expected)
			}
		})
	}
}

func TestConvert_Deterministic(t *testing.T) {
	t.Parallel()
	pattern := `^\cA[\w\-\.\+]+\s\\w$`
	first := Convert(pattern)
	for i := 0; i < 10; i++ {
		if got := Convert(pattern); got != first {
			t.Fatalf("Convert is not deterministic: %q vs %q", got, first)
		}
	}
}

func TestCompile_MatchBehavior(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pattern  string
		text     string
		matching bool
	}{
		{`^[\w\-\.\+]+$`, "CC-BY-4.0", true},
		{`^[\w\-\.\+]+$`, "CC-BY-!", false},
		{`^\W+$`, "1_0", false},
		{`\\w`, `\w`, true},
		{"^f", "foo", true},
		{"^f", "b", false},
		{`^\s$`, " ", true},
		{`^\s$`, "\u2003", true},
		{`^\s$`, "x", false},
		{`^\S$`, "x", true},
		{`^\S$`, " ", false},
	}
	cache := New(DefaultCapacity)
	for _, tt := range tests {
		re, err := cache.Compile(tt.pattern)
		if err != nil {
			t.Fatalf("Compile(%q) error: %v", tt.pattern, err)
		}
		matched, err := re.MatchString(tt.text)
		if err != nil {
			t.Fatalf("MatchString(%q, %q) error: %v", tt.pattern, tt.text, err)
		}
		if matched != tt.matching {
			t.Fatalf("MatchString(%q, %q) = %v, expected %v", tt.pattern, tt.text, matched, tt.matching)
		}
	}
}

func TestCompile_InvalidEscapeSequences(t *testing.T) {
	t.Parallel()
	cache := New(DefaultCapacity)
	for _, pattern := range []string{`\`, `\d\`, `[`} {
		if _, err := cache.Compile(pattern); err == nil {
			t.Fatalf("Compile(%q) expected an error", pattern)
		}
	}
}
