package verse

import (
	"context"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/gita"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/override"
)

//go:generate mockgen -source=ports.go -destination=mock_ports_test.go -package=verse

// OverrideStore is the read side of the persistent override store.
type OverrideStore interface {
	Get(ctx context.Context, id gita.VerseID) (gita.VerseRecord, bool)
	ListAll(ctx context.Context) []override.Entry
}

// Generator produces content the local sources do not have.
type Generator interface {
	GenerateVerse(ctx context.Context, id gita.VerseID, lang gita.Language) (gita.ResolvedVerse, error)
	SearchVerses(ctx context.Context, query string, lang gita.Language) ([]gita.SearchResult, error)
	Chat(ctx context.Context, history []gita.ChatMessage, message string, lang gita.Language) (string, error)
}
