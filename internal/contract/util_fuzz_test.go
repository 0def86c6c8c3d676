package contract

import (
	"testing"
	"unicode/utf8"
)

// FuzzTruncateSubject fuzzes the subject truncation with random strings and widths.
func FuzzTruncateSubject(f *testing.F) {
	seeds := []struct {
		subject string
		width   int
	}{
		{"Fix flaky login test", 50},
		{"", 50},
		{"héllo wörld with runes beyond ascii", 10},
		{"short", 0},
		{"exactly-fifty-characters-padded-to-check-boundary!", 50},
		{"日本語のコミットメッセージをここに書く", 5},
	}
	for _, seed := range seeds {
		f.Add(seed.subject, seed.width)
	}

	f.Fuzz(func(t *testing.T, subject string, width int) {
		if width < 0 {
			t.Skip("negative widths are not produced by callers")
		}
		got := TruncateSubject(subject, width)
		if utf8.RuneCountInString(got) > utf8.RuneCountInString(subject) {
			t.Errorf("truncation grew the subject: %q -> %q", subject, got)
		}
		if utf8.RuneCountInString(subject) > width && utf8.RuneCountInString(got) != width {
			t.Errorf("truncation of %q to %d runes yielded %d runes", subject, width, utf8.RuneCountInString(got))
		}
		if !utf8.ValidString(got) && utf8.ValidString(subject) {
			t.Errorf("truncation broke UTF-8 validity for %q", subject)
		}
	})
}

// FuzzParseBoolString fuzzes the boolean parser to ensure it never panics
// and only accepts the documented spellings.
func FuzzParseBoolString(f *testing.F) {
	for _, seed := range []string{"yes", "no", "TRUE", "False", "1", "0", "", "maybe", "✓"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		val, err := ParseBoolString(s)
		if err != nil && val {
			t.Errorf("ParseBoolString(%q) returned true alongside an error", s)
		}
	})
}
