package formula

import (
	_ "embed"
	"fmt"
	"sync"
	"unicode"

	"github.com/BurntSushi/toml"

	"toolbox/pkg/serrors"
)

//go:embed data/atomic_weights.toml
var atomicWeightsTOML string

// atomicWeights decodes the embedded table once; the map is never mutated afterwards.
var atomicWeights = sync.OnceValues(func() (map[string]float64, error) { //nolint: gochecknoglobals
	var table struct {
		Weights map[string]float64 `toml:"weights"`
	}
	if _, err := toml.Decode(atomicWeightsTOML, &table); err != nil {
		return nil, fmt.Errorf("could not decode atomic weights: %w", err)
	}

	return table.Weights, nil
})

// AtomicWeight returns the standard atomic weight (g/mol) of an element symbol.
func AtomicWeight(symbol string) (float64, error) {
	weights, err := atomicWeights()
	if err != nil {
		return 0, err
	}
	w, ok := weights[symbol]
	if !ok {
		return 0, invalid("unknown element %q", symbol)
	}

	return w, nil
}

// Molarity returns the concentration in mol/L.
func Molarity(moles, liters float64) (float64, error) {
	if err := finiteArgs(num{"moles", moles}, num{"volume", liters}); err != nil {
		return 0, err
	}
	if liters == 0 {
		return 0, serrors.With(ErrDivisionByZero, "solution volume must not be zero")
	}
	if moles < 0 || liters < 0 {
		return 0, invalid("moles and volume must not be negative")
	}

	return moles / liters, nil
}

// MolarMass computes the molar mass (g/mol) of a chemical formula such as
// "H2O", "C6H12O6" or "Ca(OH)2". Parentheses and brackets may be nested.
func MolarMass(formula string) (float64, error) {
	if formula == "" {
		return 0, invalid("formula must not be empty")
	}

	p := formulaParser{src: []rune(formula)}
	mass, err := p.group(0)
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.src) {
		return 0, invalid("unexpected %q at position %d in formula", p.src[p.pos], p.pos)
	}

	return mass, nil
}

type formulaParser struct {
	src []rune
	pos int
}

func (p *formulaParser) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}

	return p.src[p.pos]
}

// maxFormulaCount bounds a single multiplier in a chemical formula.
const maxFormulaCount = 1_000_000

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// count reads an optional ASCII multiplier, defaulting to 1. Zero and counts
// above maxFormulaCount are rejected.
func (p *formulaParser) count() (int, error) {
	start := p.pos
	n := 0
	for isASCIIDigit(p.peek()) {
		n = n*10 + int(p.peek()-'0')
		if n > maxFormulaCount {
			return 0, invalid("count at position %d exceeds %d", start, maxFormulaCount)
		}
		p.pos++
	}
	switch {
	case p.pos == start:
		return 1, nil
	case n == 0:
		return 0, invalid("count at position %d must not be zero", start)
	}

	return n, nil
}

// group sums the masses up to the matching closing bracket (or the end when
// closing is 0).
func (p *formulaParser) group(closing rune) (float64, error) {
	var total float64
	for {
		c := p.peek()
		switch {
		case c == 0 || c == ')' || c == ']':
			if c != closing {
				if c == 0 {
					return 0, invalid("unbalanced brackets in formula")
				}

				return 0, invalid("unexpected %q at position %d in formula", c, p.pos)
			}

			return total, nil
		case c == '(' || c == '[':
			p.pos++
			match := ')'
			if c == '[' {
				match = ']'
			}
			inner, err := p.group(match)
			if err != nil {
				return 0, err
			}
			p.pos++ // closing bracket
			n, err := p.count()
			if err != nil {
				return 0, err
			}
			total += inner * float64(n)
		case unicode.IsUpper(c):
			start := p.pos
			p.pos++
			for unicode.IsLower(p.peek()) {
				p.pos++
			}
			w, err := AtomicWeight(string(p.src[start:p.pos]))
			if err != nil {
				return 0, err
			}
			n, err := p.count()
			if err != nil {
				return 0, err
			}
			total += w * float64(n)
		default:
			return 0, invalid("unexpected %q at position %d in formula", c, p.pos)
		}
	}
}
