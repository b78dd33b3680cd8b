package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures Make.
type Option func(*config)

type config struct {
	maxLength int
	separator string
}

// MaxLength truncates the slug to n runes. Zero means no limit.
func MaxLength(n int) Option {
	if n < 0 {
		panic("slug: max length must not be negative")
	}
	return func(c *config) { c.maxLength = n }
}

// Separator replaces the default "-" between words.
func Separator(s string) Option {
	if s == "" {
		panic("slug: separator must not be empty")
	}
	return func(c *config) { c.separator = s }
}

// letters without a canonical decomposition into an ASCII base.
var expansions = map[rune]string{
	'ß': "ss", 'æ': "ae", 'œ': "oe", 'ø': "o", 'đ': "d", 'ł': "l", 'þ': "th",
}

// Make lowercases s, strips diacritics and joins runs of ASCII letters and
// digits with the separator. Anything else becomes a single separator.
func Make(s string, opts ...Option) string {
	cfg := &config{separator: "-"}
	for _, opt := range opts {
		opt(cfg)
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}

	var words []string
	var w strings.Builder
	flush := func() {
		if w.Len() > 0 {
			words = append(words, w.String())
			w.Reset()
		}
	}
	for _, r := range folded {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			w.WriteRune(r)
		case expansions[r] != "":
			w.WriteString(expansions[r])
		default:
			flush()
		}
	}
	flush()

	out := strings.Join(words, cfg.separator)
	if cfg.maxLength > 0 {
		if r := []rune(out); len(r) > cfg.maxLength {
			out = strings.TrimSuffix(string(r[:cfg.maxLength]), cfg.separator)
		}
	}
	return out
}
