package gita

import (
	"fmt"
	"strconv"
	"strings"
)

// Language selects which half of a bilingual record is served.
type Language string

const (
	English Language = "en"
	Hindi   Language = "hi"
)

// ParseLanguage accepts "en" or "hi". An empty string means English.
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case "", English:
		return English, nil
	case Hindi:
		return Hindi, nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

// Name is the language name used in generator prompts.
func (l Language) Name() string {
	if l == Hindi {
		return "Hindi"
	}
	return "English"
}

// VerseID identifies a verse. Ranges are not checked here; see Chapter.
type VerseID struct {
	Chapter int `json:"chapter"`
	Verse   int `json:"verse"`
}

// Key returns the "<chapter>-<verse>" form used in the persisted layout.
func (id VerseID) Key() string {
	return strconv.Itoa(id.Chapter) + "-" + strconv.Itoa(id.Verse)
}

func (id VerseID) String() string {
	return id.Key()
}

// ParseKey is the inverse of VerseID.Key.
func ParseKey(key string) (VerseID, error) {
	c, v, ok := strings.Cut(key, "-")
	if !ok {
		return VerseID{}, fmt.Errorf("invalid verse key %q", key)
	}
	chapter, err := strconv.Atoi(c)
	if err != nil {
		return VerseID{}, fmt.Errorf("invalid verse key %q: %w", key, err)
	}
	verse, err := strconv.Atoi(v)
	if err != nil {
		return VerseID{}, fmt.Errorf("invalid verse key %q: %w", key, err)
	}
	return VerseID{Chapter: chapter, Verse: verse}, nil
}

// Bilingual holds the English and Hindi form of one text.
type Bilingual struct {
	En string `json:"en" validate:"required"`
	Hi string `json:"hi" validate:"required"`
}

// In returns the text for lang.
func (b Bilingual) In(lang Language) string {
	if lang == Hindi {
		return b.Hi
	}
	return b.En
}

// VerseRecord is the bilingual form kept in the bundled set and the override store.
type VerseRecord struct {
	Sanskrit        string    `json:"sanskrit" validate:"required"`
	Transliteration string    `json:"transliteration" validate:"required"`
	Translations    Bilingual `json:"translations"`
	Meanings        Bilingual `json:"meanings"`
}

// Project reduces the record to a single language.
func (r VerseRecord) Project(lang Language) ResolvedVerse {
	return ResolvedVerse{
		Sanskrit:        r.Sanskrit,
		Transliteration: r.Transliteration,
		Translation:     r.Translations.In(lang),
		Meaning:         r.Meanings.In(lang),
	}
}

// ResolvedVerse is a verse in one language, as returned to readers.
type ResolvedVerse struct {
	Sanskrit        string `json:"sanskrit"`
	Transliteration string `json:"transliteration"`
	Translation     string `json:"translation"`
	Meaning         string `json:"meaning"`
}

// SearchResult is the partial, language-projected view used in search listings.
type SearchResult struct {
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
	Sanskrit    string `json:"sanskrit"`
	Translation string `json:"translation"`
}

// ID returns the identifier of the result.
func (s SearchResult) ID() VerseID {
	return VerseID{Chapter: s.Chapter, Verse: s.Verse}
}

// Role is the author of a chat turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ChatMessage is one turn of an assistant conversation.
type ChatMessage struct {
	Role Role   `json:"role" validate:"required,oneof=user model"`
	Text string `json:"text" validate:"required"`
}
