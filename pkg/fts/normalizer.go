package fts

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizerName is the class name of the Unicode normalizer.
const NormalizerName = "normalizer"

// DefaultNormalizerID lowercases, strips diacritics and recomposes.
const DefaultNormalizerID = "Any-Lower; NFKD; [: Nonspacing Mark :] Remove; NFC"

var normalizerClass = &Class{
	Name: NormalizerName,
	Supports: func(lang *Language) bool {
		return lang == nil || lang.Name != ""
	},
	New: newNormalizer,
}

// normalizerSteps maps the supported transliterator ids to transformers.
var normalizerSteps = map[string]func() transform.Transformer{
	"any-lower": func() transform.Transformer { return cases.Lower(language.Und) },
	"lower":     func() transform.Transformer { return cases.Lower(language.Und) },
	"nfc":       func() transform.Transformer { return norm.NFC },
	"nfd":       func() transform.Transformer { return norm.NFD },
	"nfkc":      func() transform.Transformer { return norm.NFKC },
	"nfkd":      func() transform.Transformer { return norm.NFKD },
	"[:nonspacingmark:]remove": func() transform.Transformer {
		return runes.Remove(runes.In(unicode.Mn))
	},
}

type normalizer struct {
	steps []func() transform.Transformer
}

func newNormalizer(_ *Language, settings map[string]string) (Filter, error) {
	id := DefaultNormalizerID
	for k, v := range settings {
		if k != "id" {
			return nil, fmt.Errorf("unknown setting: %s", k)
		}
		id = v
	}

	n := &normalizer{}
	for _, step := range strings.Split(id, ";") {
		key := strings.ToLower(strings.Join(strings.Fields(step), ""))
		if key == "" {
			continue
		}
		mk, ok := normalizerSteps[key]
		if !ok {
			return nil, fmt.Errorf("unsupported transliterator id %q in %q", strings.TrimSpace(step), id)
		}
		n.steps = append(n.steps, mk)
	}
	return n, nil
}

// Filter runs the token through a fresh chain; transformers are stateful.
func (n *normalizer) Filter(token string) (string, bool, error) {
	ts := make([]transform.Transformer, len(n.steps))
	for i, mk := range n.steps {
		ts[i] = mk()
	}
	out, _, err := transform.String(transform.Chain(ts...), token)
	if err != nil {
		return "", false, fmt.Errorf("normalize %q: %w", token, err)
	}
	return out, true, nil
}

func (n *normalizer) Close() error { return nil }
