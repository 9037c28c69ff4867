package gemini

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/gita"
)

type verseWire struct {
	Sanskrit        *string `json:"sanskrit"`
	Transliteration *string `json:"transliteration"`
	Translation     *string `json:"translation"`
	Meaning         *string `json:"meaning"`
}

type resultWire struct {
	Chapter     *float64 `json:"chapter"`
	Verse       *float64 `json:"verse"`
	Sanskrit    *string  `json:"sanskrit"`
	Translation *string  `json:"translation"`
}

func decodeVerse(body string) (gita.ResolvedVerse, error) {
	var w verseWire
	if err := json.Unmarshal([]byte(body), &w); err != nil {
		return gita.ResolvedVerse{}, &gita.FormatError{Body: body, Err: err}
	}
	for name, field := range map[string]*string{
		"sanskrit":        w.Sanskrit,
		"transliteration": w.Transliteration,
		"translation":     w.Translation,
		"meaning":         w.Meaning,
	} {
		if field == nil {
			return gita.ResolvedVerse{}, &gita.FormatError{Body: body, Err: fmt.Errorf("missing field %q", name)}
		}
	}
	return gita.ResolvedVerse{
		Sanskrit:        *w.Sanskrit,
		Transliteration: *w.Transliteration,
		Translation:     *w.Translation,
		Meaning:         *w.Meaning,
	}, nil
}

func decodeResults(body string) ([]gita.SearchResult, error) {
	var wires []resultWire
	if err := json.Unmarshal([]byte(body), &wires); err != nil {
		return nil, &gita.FormatError{Body: body, Err: err}
	}

	results := make([]gita.SearchResult, 0, len(wires))
	for i, w := range wires {
		if w.Sanskrit == nil || w.Translation == nil {
			return nil, &gita.FormatError{Body: body, Err: fmt.Errorf("result %d: missing text field", i)}
		}
		chapter, err := wholeNumber(w.Chapter)
		if err != nil {
			return nil, &gita.FormatError{Body: body, Err: fmt.Errorf("result %d chapter: %w", i, err)}
		}
		verse, err := wholeNumber(w.Verse)
		if err != nil {
			return nil, &gita.FormatError{Body: body, Err: fmt.Errorf("result %d verse: %w", i, err)}
		}
		results = append(results, gita.SearchResult{
			Chapter:     chapter,
			Verse:       verse,
			Sanskrit:    *w.Sanskrit,
			Translation: *w.Translation,
		})
	}
	return results, nil
}

func wholeNumber(f *float64) (int, error) {
	if f == nil {
		return 0, fmt.Errorf("missing")
	}
	if *f != math.Trunc(*f) || *f < 1 || *f > math.MaxInt32 {
		return 0, fmt.Errorf("%v is not a positive whole number", *f)
	}
	return int(*f), nil
}
