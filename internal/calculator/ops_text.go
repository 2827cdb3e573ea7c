package calculator

import (
	"context"
	"unicode/utf8"

	"github.com/go-faster/jx"

	"toolbox/pkg/formula"
	"toolbox/pkg/serrors"
	"toolbox/pkg/textx"
)

func registerText(r *Registry) {
	r.Register(textOp("morse-encode", "Encodes text as international morse code.", textx.MorseEncode,
		"text"))
	r.Register(textOp("morse-decode", "Decodes morse code (letters split by spaces, words by /).",
		textx.MorseDecode, "code"))
	r.Register(textOp("anonymize", "Replaces e-mail addresses, IP addresses and phone numbers.",
		func(s string) (string, error) { return textx.Anonymize(s), nil }, "text"))

	r.Register(Operation{
		Name:    "censor",
		Group:   GroupText,
		Summary: "Masks whole-word, case-insensitive occurrences of the given words.",
		Params: []Param{
			required("text", "string"),
			required("words", "string[]"),
			optional("mask", "string"),
		},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			text, err := args.String("text")
			if err != nil {
				return err
			}
			words, err := args.Strings("words")
			if err != nil {
				return err
			}
			mask, err := args.OptString("mask", string(textx.DefaultMask))
			if err != nil {
				return err
			}
			if utf8.RuneCountInString(mask) != 1 {
				return serrors.With(formula.ErrInvalidInput, "mask must be a single character")
			}
			m, _ := utf8.DecodeRuneInString(mask)

			v, err := textx.Censor(text, words, m)
			if err != nil {
				return err //nolint: wrapcheck
			}
			writeString(e, v)

			return nil
		},
	})

	r.Register(Operation{
		Name:      "quote",
		Group:     GroupText,
		Summary:   "Wraps text in quotation marks of the given style.",
		Params:    []Param{required("text", "string"), optional("style", "string")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			text, err := args.String("text")
			if err != nil {
				return err
			}
			style, err := args.OptString("style", string(textx.QuoteDouble))
			if err != nil {
				return err
			}
			v, err := textx.Quote(text, textx.QuoteStyle(style))
			if err != nil {
				return err //nolint: wrapcheck
			}
			writeString(e, v)

			return nil
		},
	})

	r.Register(Operation{
		Name:    "highlight",
		Group:   GroupText,
		Summary: "Wraps every match of a regular expression in open/close markers.",
		Params: []Param{
			required("text", "string"),
			required("pattern", "string"),
			optional("open", "string"),
			optional("close", "string"),
		},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			text, err := args.String("text")
			if err != nil {
				return err
			}
			pattern, err := args.String("pattern")
			if err != nil {
				return err
			}
			openTag, err := args.OptString("open", "<mark>")
			if err != nil {
				return err
			}
			closeTag, err := args.OptString("close", "</mark>")
			if err != nil {
				return err
			}
			v, err := textx.Highlight(text, pattern, openTag, closeTag)
			if err != nil {
				return err //nolint: wrapcheck
			}
			writeString(e, v)

			return nil
		},
	})

	r.Register(Operation{
		Name:      "number-words",
		Group:     GroupText,
		Summary:   "Spells an integer out in English words.",
		Params:    []Param{required("n", "integer")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			n, err := args.Int("n")
			if err != nil {
				return err
			}
			writeString(e, textx.NumberToWords(n))

			return nil
		},
	})
}

// textOp builds an operation mapping one required string argument to a string.
func textOp(name, summary string, fn func(string) (string, error), param string) Operation {
	return Operation{
		Name:      name,
		Group:     GroupText,
		Summary:   summary,
		Params:    []Param{required(param, "string")},
		Cacheable: true,
		Eval: func(_ context.Context, args Args, e *jx.Encoder) error {
			s, err := args.String(param)
			if err != nil {
				return err
			}
			v, err := fn(s)
			if err != nil {
				return err
			}
			writeString(e, v)

			return nil
		},
	}
}
