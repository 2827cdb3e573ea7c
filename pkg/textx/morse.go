package textx

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"toolbox/pkg/formula"
	"toolbox/pkg/serrors"
)

//go:embed data/morse.yaml
var morseYAML []byte

const (
	morseLetterSep = " "
	morseWordSep   = " / "
)

type morseTable struct {
	encode map[rune]string
	decode map[string]rune
}

var morse = sync.OnceValues(func() (morseTable, error) { //nolint: gochecknoglobals
	var raw struct {
		Letters map[string]string `yaml:"letters"`
	}
	if err := yaml.Unmarshal(morseYAML, &raw); err != nil {
		return morseTable{}, fmt.Errorf("could not decode morse table: %w", err)
	}

	t := morseTable{
		encode: make(map[rune]string, len(raw.Letters)),
		decode: make(map[string]rune, len(raw.Letters)),
	}
	for k, code := range raw.Letters {
		r := []rune(k)
		if len(r) != 1 {
			return morseTable{}, fmt.Errorf("invalid morse table key %q", k)
		}
		t.encode[r[0]] = code
		t.decode[code] = r[0]
	}

	return t, nil
})

// MorseEncode translates text into morse code. Letters are separated by a
// space and words by " / ". Letters are case-insensitive.
func MorseEncode(text string) (string, error) {
	table, err := morse()
	if err != nil {
		return "", err
	}

	words := strings.Fields(strings.ToUpper(text))
	if len(words) == 0 {
		return "", serrors.With(formula.ErrInvalidInput, "text must not be empty")
	}

	encoded := make([]string, 0, len(words))
	for _, word := range words {
		letters := make([]string, 0, len(word))
		for _, r := range word {
			code, ok := table.encode[r]
			if !ok {
				return "", serrors.With(formula.ErrInvalidInput, "character %q has no morse representation", r)
			}
			letters = append(letters, code)
		}
		encoded = append(encoded, strings.Join(letters, morseLetterSep))
	}

	return strings.Join(encoded, morseWordSep), nil
}

// MorseDecode is the inverse of MorseEncode. The result is upper case.
func MorseDecode(code string) (string, error) {
	table, err := morse()
	if err != nil {
		return "", err
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return "", serrors.With(formula.ErrInvalidInput, "morse code must not be empty")
	}

	var sb strings.Builder
	for i, word := range strings.Split(code, "/") {
		if i > 0 {
			sb.WriteByte(' ')
		}
		letters := strings.Fields(word)
		if len(letters) == 0 {
			return "", serrors.With(formula.ErrInvalidInput, "empty word in morse code")
		}
		for _, l := range letters {
			r, ok := table.decode[l]
			if !ok {
				return "", serrors.With(formula.ErrInvalidInput, "unknown morse sequence %q", l)
			}
			sb.WriteRune(r)
		}
	}

	return sb.String(), nil
}
