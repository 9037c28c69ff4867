package verse

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/gita"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/override"
)

// Search returns override matches for query followed by generator results that
// are not already listed. A generator result for a verse held locally carries
// the local sanskrit and translation instead of the generated text.
//
// If the generator fails the whole search fails; stored matches are not
// returned on their own.
func (s *Service) Search(ctx context.Context, query string, lang gita.Language) ([]gita.SearchResult, error) {
	var (
		entries []override.Entry
		remote  []gita.SearchResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		entries = s.store.ListAll(gctx)
		return nil
	})
	g.Go(func() error {
		var err error
		remote, err = s.generator.SearchVerses(gctx, query, lang)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stored := matchEntries(entries, query, lang)
	results := make([]gita.SearchResult, 0, len(stored)+len(remote))
	results = append(results, stored...)

	listed := make(map[string]struct{}, len(stored))
	for _, r := range stored {
		listed[r.ID().Key()] = struct{}{}
	}
	overrides := make(map[string]gita.VerseRecord, len(entries))
	for _, e := range entries {
		overrides[e.Key()] = e.Content
	}

	for _, r := range remote {
		key := r.ID().Key()
		if _, ok := listed[key]; ok {
			continue
		}
		if rec, ok := overrides[key]; ok {
			r.Sanskrit, r.Translation = rec.Sanskrit, rec.Translations.In(lang)
		} else if rec, ok := gita.Bundled(r.ID()); ok {
			r.Sanskrit, r.Translation = rec.Sanskrit, rec.Translations.In(lang)
		}
		results = append(results, r)
	}
	return results, nil
}

// matchEntries keeps entries whose sanskrit, translation or meaning in lang
// contains query, ignoring case. Order is preserved.
func matchEntries(entries []override.Entry, query string, lang gita.Language) []gita.SearchResult {
	needle := strings.ToLower(query)
	var out []gita.SearchResult
	for _, e := range entries {
		rec := e.Content
		translation := rec.Translations.In(lang)
		if !strings.Contains(strings.ToLower(rec.Sanskrit), needle) &&
			!strings.Contains(strings.ToLower(translation), needle) &&
			!strings.Contains(strings.ToLower(rec.Meanings.In(lang)), needle) {
			continue
		}
		out = append(out, gita.SearchResult{
			Chapter:     e.Chapter,
			Verse:       e.Verse,
			Sanskrit:    rec.Sanskrit,
			Translation: translation,
		})
	}
	return out
}
