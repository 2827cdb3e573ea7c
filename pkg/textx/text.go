package textx

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"toolbox/pkg/formula"
	"toolbox/pkg/serrors"
)

// MaxPatternLength bounds user supplied regular expressions.
const MaxPatternLength = 1024

// DefaultMask replaces censored characters when no mask is given.
const DefaultMask = '*'

// Censor masks every whole-word, case-insensitive occurrence of words in text.
// Word boundaries are Unicode aware: letters, digits and '_' of any script
// continue a word, so "café" does not match inside "cafés". Each masked
// character is replaced by mask, so the length of the text is preserved.
// Blank entries in words are ignored.
func Censor(text string, words []string, mask rune) (string, error) {
	if mask == 0 {
		mask = DefaultMask
	}

	alternatives := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w != "" {
			alternatives = append(alternatives, regexp.QuoteMeta(w))
		}
	}
	if len(alternatives) == 0 {
		return text, nil
	}

	re, err := CompilePattern(`(?i)(?:` + strings.Join(alternatives, "|") + `)`)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	pos := 0
	for pos < len(text) {
		loc := re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if !wordBoundary(text, start) || !wordBoundary(text, end) {
			// retry from the next rune so overlapping candidates are seen
			_, size := utf8.DecodeRuneInString(text[start:])
			b.WriteString(text[pos : start+size])
			pos = start + size

			continue
		}
		b.WriteString(text[pos:start])
		b.WriteString(strings.Repeat(string(mask), utf8.RuneCountInString(text[start:end])))
		pos = end
	}
	b.WriteString(text[pos:])

	return b.String(), nil
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// wordBoundary reports whether i separates a word rune from a non-word rune
// (or from the start or end of s) on at least one side.
func wordBoundary(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}

	return before != after
}

// QuoteStyle selects the quotation marks used by Quote.
type QuoteStyle string

// Supported quote styles.
const (
	QuoteDouble     QuoteStyle = "double"
	QuoteSingle     QuoteStyle = "single"
	QuoteCurly      QuoteStyle = "curly"
	QuoteGuillemets QuoteStyle = "guillemets"
	QuoteBlock      QuoteStyle = "block"
)

var quoteMarks = map[QuoteStyle][2]string{ //nolint: gochecknoglobals
	QuoteDouble:     {`"`, `"`},
	QuoteSingle:     {"'", "'"},
	QuoteCurly:      {"“", "”"},
	QuoteGuillemets: {"«", "»"},
}

// Quote wraps text in the marks of style. The block style prefixes every line
// with "> " instead.
func Quote(text string, style QuoteStyle) (string, error) {
	if style == QuoteBlock {
		lines := strings.Split(text, "\n")
		for i, l := range lines {
			lines[i] = "> " + l
		}

		return strings.Join(lines, "\n"), nil
	}

	marks, ok := quoteMarks[style]
	if !ok {
		return "", serrors.With(formula.ErrInvalidInput, "unknown quote style %q", style)
	}

	return marks[0] + text + marks[1], nil
}

// CompilePattern compiles an untrusted regular expression. Syntax errors are
// reported as formula.ErrInvalidInput rather than panicking.
func CompilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, serrors.With(formula.ErrInvalidInput, "pattern must not be empty")
	}
	if len(pattern) > MaxPatternLength {
		return nil, serrors.With(formula.ErrInvalidInput, "pattern is longer than %d bytes", MaxPatternLength)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, serrors.Wrap(formula.ErrInvalidInput, err, "invalid pattern")
	}

	return re, nil
}

// Highlight surrounds every match of pattern in text with openTag and
// closeTag. Patterns that match the empty string are rejected.
func Highlight(text, pattern, openTag, closeTag string) (string, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return "", err
	}
	if re.MatchString("") {
		return "", serrors.With(formula.ErrInvalidInput, "pattern must not match the empty string")
	}

	return re.ReplaceAllStringFunc(text, func(m string) string {
		return openTag + m + closeTag
	}), nil
}

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	ipv4Pattern  = regexp.MustCompile(`\b(?:(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\.){3}(?:25[0-5]|2[0-4]\d|1\d\d|[1-9]?\d)\b`)
	phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{6,}\d`)
)

// Anonymization placeholders.
const (
	EmailPlaceholder = "[email]"
	IPPlaceholder    = "[ip]"
	PhonePlaceholder = "[phone]"
)

// Anonymize replaces e-mail addresses, IPv4 addresses and phone numbers in
// text with placeholders.
func Anonymize(text string) string {
	text = emailPattern.ReplaceAllString(text, EmailPlaceholder)
	text = ipv4Pattern.ReplaceAllString(text, IPPlaceholder)

	return phonePattern.ReplaceAllString(text, PhonePlaceholder)
}
