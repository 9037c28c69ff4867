// Package verse answers reader requests: it resolves single verses, merges
// search results and relays chat turns to the generator.
package verse

import (
	"context"

	"go.uber.org/zap"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/gita"
)

// Source names where a resolved verse came from.
type Source string

const (
	SourceOverride  Source = "override"
	SourceBundled   Source = "bundled"
	SourceGenerator Source = "generator"
)

// localSource is a synchronous lookup consulted before the generator.
type localSource struct {
	source Source
	lookup func(ctx context.Context, id gita.VerseID) (gita.VerseRecord, bool)
}

type Service struct {
	store     OverrideStore
	generator Generator
	logger    *zap.Logger
	local     []localSource
}

// NewService creates a service. Local sources are tried in precedence order:
// overrides, then the bundled set.
func NewService(store OverrideStore, generator Generator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{store: store, generator: generator, logger: logger}
	s.local = []localSource{
		{source: SourceOverride, lookup: store.Get},
		{source: SourceBundled, lookup: func(_ context.Context, id gita.VerseID) (gita.VerseRecord, bool) {
			return gita.Bundled(id)
		}},
	}
	return s
}

// Resolve returns the verse for id in lang from the first source that has it.
// The generator is called only when no local source does, and its errors are
// returned unchanged.
func (s *Service) Resolve(ctx context.Context, id gita.VerseID, lang gita.Language) (gita.ResolvedVerse, Source, error) {
	for _, src := range s.local {
		if rec, ok := src.lookup(ctx, id); ok {
			return rec.Project(lang), src.source, nil
		}
	}

	v, err := s.generator.GenerateVerse(ctx, id, lang)
	if err != nil {
		s.logger.Debug("verse generation failed", zap.Stringer("verse", id), zap.Error(err))
		return gita.ResolvedVerse{}, SourceGenerator, err
	}
	return v, SourceGenerator, nil
}

// Chat passes one conversation turn to the generator.
func (s *Service) Chat(ctx context.Context, history []gita.ChatMessage, message string, lang gita.Language) (string, error) {
	return s.generator.Chat(ctx, history, message, lang)
}
