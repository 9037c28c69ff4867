package gita

import (
	"fmt"
	"net/url"
	"strconv"
)

// ParseDeepLink reads the chapter and verse query parameters. ok is false unless
// both are present and positive integers, in which case the landing view is used.
func ParseDeepLink(q url.Values) (VerseID, bool) {
	chapter, err := strconv.Atoi(q.Get("chapter"))
	if err != nil || chapter < 1 {
		return VerseID{}, false
	}
	verse, err := strconv.Atoi(q.Get("verse"))
	if err != nil || verse < 1 {
		return VerseID{}, false
	}
	return VerseID{Chapter: chapter, Verse: verse}, true
}

// ShareURL builds origin + path of base with ?chapter=<c>&verse=<v>. Any query or
// fragment already on base is dropped.
func ShareURL(base string, id VerseID) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("base url %q must be absolute", base)
	}
	u.RawQuery = "chapter=" + strconv.Itoa(id.Chapter) + "&verse=" + strconv.Itoa(id.Verse)
	u.Fragment = ""
	return u.String(), nil
}
