package verse

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/gita"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/override"
)

func record(sanskrit, en, hi string) gita.VerseRecord {
	return gita.VerseRecord{
		Sanskrit:        sanskrit,
		Transliteration: "translit",
		Translations:    gita.Bilingual{En: en, Hi: hi},
		Meanings:        gita.Bilingual{En: "meaning " + en, Hi: "अर्थ " + hi},
	}
}

func newTestService(t *testing.T) (*Service, *override.Store, *MockGenerator) {
	ctrl := gomock.NewController(t)
	gen := NewMockGenerator(ctrl)
	store := override.NewStore(override.NewMemoryBackend(), nil)
	return NewService(store, gen, nil), store, gen
}

func TestResolve_OverridePrecedence(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()
	id := gita.VerseID{Chapter: 1, Verse: 1}
	require.NoError(t, store.Upsert(ctx, id, record("s", "X", "एक्स")))

	got, source, err := svc.Resolve(ctx, id, gita.English)

	require.NoError(t, err)
	assert.Equal(t, "X", got.Translation)
	assert.Equal(t, SourceOverride, source)
}

func TestResolve_BundledFallback(t *testing.T) {
	svc, _, _ := newTestService(t)

	got, source, err := svc.Resolve(context.Background(), gita.VerseID{Chapter: 2, Verse: 47}, gita.Hindi)

	require.NoError(t, err)
	assert.Equal(t, SourceBundled, source)
	assert.Contains(t, got.Translation, "तुम्हें अपना निर्धारित कर्तव्य करने का अधिकार है")
	bundled, _ := gita.Bundled(gita.VerseID{Chapter: 2, Verse: 47})
	assert.Equal(t, bundled.Translations.Hi, got.Translation)
	assert.Equal(t, bundled.Meanings.Hi, got.Meaning)
}

func TestResolve_Generator(t *testing.T) {
	id := gita.VerseID{Chapter: 5, Verse: 10}

	t.Run("success calls generator once", func(t *testing.T) {
		svc, _, gen := newTestService(t)
		want := gita.ResolvedVerse{Sanskrit: "s", Transliteration: "t", Translation: "tr", Meaning: "m"}
		gen.EXPECT().GenerateVerse(gomock.Any(), id, gita.Hindi).Return(want, nil).Times(1)

		got, source, err := svc.Resolve(context.Background(), id, gita.Hindi)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, SourceGenerator, source)
	})

	t.Run("empty provider response", func(t *testing.T) {
		svc, _, gen := newTestService(t)
		gen.EXPECT().GenerateVerse(gomock.Any(), id, gita.English).Return(gita.ResolvedVerse{}, gita.ErrEmptyGeneration)

		_, _, err := svc.Resolve(context.Background(), id, gita.English)

		assert.ErrorIs(t, err, gita.ErrEmptyGeneration)
	})

	t.Run("errors pass through unchanged", func(t *testing.T) {
		svc, _, gen := newTestService(t)
		transport := &gita.TransportError{Op: "verse", Err: errors.New("dial tcp: timeout")}
		gen.EXPECT().GenerateVerse(gomock.Any(), id, gita.English).Return(gita.ResolvedVerse{}, transport)

		_, _, err := svc.Resolve(context.Background(), id, gita.English)

		assert.Same(t, transport, err)
	})
}

func TestResolve_DoesNotWriteBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockOverrideStore(ctrl)
	gen := NewMockGenerator(ctrl)
	svc := NewService(store, gen, nil)
	id := gita.VerseID{Chapter: 9, Verse: 22}

	store.EXPECT().Get(gomock.Any(), id).Return(gita.VerseRecord{}, false).Times(2)
	gen.EXPECT().GenerateVerse(gomock.Any(), id, gita.English).Return(gita.ResolvedVerse{Translation: "a"}, nil).Times(2)

	for i := 0; i < 2; i++ {
		_, source, err := svc.Resolve(context.Background(), id, gita.English)
		require.NoError(t, err)
		assert.Equal(t, SourceGenerator, source)
	}
}

func TestSearch_Merge(t *testing.T) {
	svc, store, gen := newTestService(t)
	ctx := context.Background()
	require.NoError(t, store.Upsert(ctx, gita.VerseID{Chapter: 3, Verse: 1}, record("s31", "Why engage me in karma?", "कर्म")))

	gen.EXPECT().SearchVerses(gomock.Any(), "karma", gita.English).Return([]gita.SearchResult{
		{Chapter: 3, Verse: 1, Sanskrit: "remote", Translation: "remote"},
		{Chapter: 18, Verse: 1, Sanskrit: "s181", Translation: "t181"},
	}, nil)

	got, err := svc.Search(ctx, "karma", gita.English)

	require.NoError(t, err)
	assert.Equal(t, []gita.SearchResult{
		{Chapter: 3, Verse: 1, Sanskrit: "s31", Translation: "Why engage me in karma?"},
		{Chapter: 18, Verse: 1, Sanskrit: "s181", Translation: "t181"},
	}, got)
}

func TestSearch_Substitution(t *testing.T) {
	svc, store, gen := newTestService(t)
	ctx := context.Background()
	// Stored but not matching the query.
	require.NoError(t, store.Upsert(ctx, gita.VerseID{Chapter: 7, Verse: 19}, record("s719", "many births", "अनेक जन्म")))

	gen.EXPECT().SearchVerses(gomock.Any(), "duty", gita.Hindi).Return([]gita.SearchResult{
		{Chapter: 2, Verse: 47, Sanskrit: "raw", Translation: "raw"},
		{Chapter: 7, Verse: 19, Sanskrit: "raw", Translation: "raw"},
		{Chapter: 4, Verse: 7, Sanskrit: "g47", Translation: "t47"},
	}, nil)

	got, err := svc.Search(ctx, "duty", gita.Hindi)

	require.NoError(t, err)
	require.Len(t, got, 3)
	bundled, _ := gita.Bundled(gita.VerseID{Chapter: 2, Verse: 47})
	assert.Equal(t, gita.SearchResult{Chapter: 2, Verse: 47, Sanskrit: bundled.Sanskrit, Translation: bundled.Translations.Hi}, got[0])
	assert.Equal(t, gita.SearchResult{Chapter: 7, Verse: 19, Sanskrit: "s719", Translation: "अनेक जन्म"}, got[1])
	assert.Equal(t, gita.SearchResult{Chapter: 4, Verse: 7, Sanskrit: "g47", Translation: "t47"}, got[2])
}

func TestSearch_StoredMatching(t *testing.T) {
	svc, store, gen := newTestService(t)
	ctx := context.Background()
	require.NoError(t, store.Upsert(ctx, gita.VerseID{Chapter: 6, Verse: 5}, record("उद्धरेदात्मनात्मानं", "Elevate yourself", "स्वयं को ऊपर उठाओ")))
	require.NoError(t, store.Upsert(ctx, gita.VerseID{Chapter: 4, Verse: 7}, record("यदा यदा हि", "Whenever righteousness declines", "जब जब धर्म की हानि")))
	require.NoError(t, store.Upsert(ctx, gita.VerseID{Chapter: 2, Verse: 20}, record("न जायते", "The soul is never born", "आत्मा")))

	gen.EXPECT().SearchVerses(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	t.Run("case insensitive translation", func(t *testing.T) {
		got, err := svc.Search(ctx, "ELEVATE", gita.English)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 6, got[0].Chapter)
	})

	t.Run("sanskrit", func(t *testing.T) {
		got, err := svc.Search(ctx, "यदा", gita.English)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Whenever righteousness declines", got[0].Translation)
	})

	t.Run("meaning in requested language only", func(t *testing.T) {
		got, err := svc.Search(ctx, "meaning", gita.English)
		require.NoError(t, err)
		assert.Len(t, got, 3)
		assert.Equal(t, []int{6, 4, 2}, []int{got[0].Chapter, got[1].Chapter, got[2].Chapter}, "store order is kept")

		got, err = svc.Search(ctx, "meaning", gita.Hindi)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSearch_GeneratorFailureFailsWholeSearch(t *testing.T) {
	svc, store, gen := newTestService(t)
	ctx := context.Background()
	require.NoError(t, store.Upsert(ctx, gita.VerseID{Chapter: 3, Verse: 1}, record("s", "karma", "कर्म")))

	formatErr := &gita.FormatError{Body: "{", Err: errors.New("unexpected EOF")}
	gen.EXPECT().SearchVerses(gomock.Any(), "karma", gita.English).Return(nil, formatErr)

	got, err := svc.Search(ctx, "karma", gita.English)

	assert.Nil(t, got)
	var fe *gita.FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestChat(t *testing.T) {
	svc, _, gen := newTestService(t)
	history := []gita.ChatMessage{{Role: gita.RoleUser, Text: "hi"}, {Role: gita.RoleModel, Text: "hello"}}
	gen.EXPECT().Chat(gomock.Any(), history, "what is dharma?", gita.Hindi).Return("धर्म कर्तव्य है", nil)

	got, err := svc.Chat(context.Background(), history, "what is dharma?", gita.Hindi)

	require.NoError(t, err)
	assert.Equal(t, "धर्म कर्तव्य है", got)
}
