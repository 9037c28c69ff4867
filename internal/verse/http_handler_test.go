package verse

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/gita"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/metrics"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/override"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   struct {
		Code string `json:"code"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return env
}

func newTestHandler(t *testing.T) (*HTTPHandler, *override.Store, *MockGenerator, *metrics.Collector) {
	ctrl := gomock.NewController(t)
	gen := NewMockGenerator(ctrl)
	store := override.NewStore(override.NewMemoryBackend(), nil)
	m := metrics.NewCollector("test")
	h := NewHTTPHandler(NewService(store, gen, nil), NewSequencer(), m, "https://gita.example.com/read")
	return h, store, gen, m
}

func verseRequest(chapter, verse, query string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/v1/verses/"+chapter+"/"+verse+query, nil)
	r.SetPathValue("chapter", chapter)
	r.SetPathValue("verse", verse)
	return r
}

func TestHTTPHandler_Verse(t *testing.T) {
	t.Run("bundled", func(t *testing.T) {
		h, _, _, m := newTestHandler(t)
		w := httptest.NewRecorder()

		h.Verse(w, verseRequest("2", "47", "?lang=hi"))

		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		var v gita.ResolvedVerse
		require.NoError(t, json.Unmarshal(env.Data, &v))
		assert.True(t, strings.HasPrefix(v.Translation, "तुम्हें अपना निर्धारित कर्तव्य करने का अधिकार है"))
		assert.Equal(t, "bundled", env.Meta["source"])
		assert.Equal(t, float64(1), testutil.ToFloat64(m.VersesResolved.WithLabelValues("bundled")))
	})

	t.Run("invalid language", func(t *testing.T) {
		h, _, _, _ := newTestHandler(t)
		w := httptest.NewRecorder()
		h.Verse(w, verseRequest("2", "47", "?lang=fr"))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_LANGUAGE", decode(t, w).Error.Code)
	})

	t.Run("out of range", func(t *testing.T) {
		h, _, _, _ := newTestHandler(t)
		w := httptest.NewRecorder()
		h.Verse(w, verseRequest("1", "48", ""))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_VERSE", decode(t, w).Error.Code)
	})

	errorCases := []struct {
		name string
		err  error
		code string
	}{
		{"empty", gita.ErrEmptyGeneration, "GENERATION_EMPTY"},
		{"format", &gita.FormatError{Body: "x", Err: errors.New("bad")}, "GENERATION_FORMAT"},
		{"transport", &gita.TransportError{Op: "verse", Err: errors.New("refused")}, "GENERATION_UNAVAILABLE"},
	}
	for _, tc := range errorCases {
		t.Run("generator "+tc.name, func(t *testing.T) {
			h, _, gen, _ := newTestHandler(t)
			gen.EXPECT().GenerateVerse(gomock.Any(), gita.VerseID{Chapter: 5, Verse: 10}, gita.English).Return(gita.ResolvedVerse{}, tc.err)
			w := httptest.NewRecorder()

			h.Verse(w, verseRequest("5", "10", ""))

			assert.Equal(t, http.StatusBadGateway, w.Code)
			assert.Equal(t, tc.code, decode(t, w).Error.Code)
		})
	}
}

func TestHTTPHandler_VerseSuperseded(t *testing.T) {
	h, _, gen, m := newTestHandler(t)
	started := make(chan struct{})
	gen.EXPECT().GenerateVerse(gomock.Any(), gita.VerseID{Chapter: 5, Verse: 10}, gita.English).
		DoAndReturn(func(ctx context.Context, _ gita.VerseID, _ gita.Language) (gita.ResolvedVerse, error) {
			close(started)
			<-ctx.Done()
			return gita.ResolvedVerse{}, &gita.TransportError{Op: "verse", Err: ctx.Err()}
		})

	done := make(chan *httptest.ResponseRecorder)
	go func() {
		w := httptest.NewRecorder()
		r := verseRequest("5", "10", "")
		r.Header.Set(ClientIDHeader, "reader-1")
		h.Verse(w, r)
		done <- w
	}()
	<-started

	w := httptest.NewRecorder()
	r := verseRequest("2", "47", "")
	r.Header.Set(ClientIDHeader, "reader-1")
	h.Verse(w, r)
	assert.Equal(t, http.StatusOK, w.Code)

	stale := <-done
	assert.Equal(t, http.StatusConflict, stale.Code)
	assert.Equal(t, "SUPERSEDED", decode(t, stale).Error.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SupersededRequests))
}

func TestHTTPHandler_Search(t *testing.T) {
	t.Run("merged", func(t *testing.T) {
		h, store, gen, _ := newTestHandler(t)
		require.NoError(t, store.Upsert(context.Background(), gita.VerseID{Chapter: 3, Verse: 1}, record("s", "karma yoga", "कर्म")))
		gen.EXPECT().SearchVerses(gomock.Any(), "karma", gita.English).Return([]gita.SearchResult{
			{Chapter: 3, Verse: 1}, {Chapter: 18, Verse: 1, Sanskrit: "a", Translation: "b"},
		}, nil)
		w := httptest.NewRecorder()

		h.Search(w, httptest.NewRequest(http.MethodGet, "/v1/search?q=karma", nil))

		require.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		var results []gita.SearchResult
		require.NoError(t, json.Unmarshal(env.Data, &results))
		require.Len(t, results, 2)
		assert.Equal(t, "karma yoga", results[0].Translation)
		assert.Equal(t, 18, results[1].Chapter)
		assert.Equal(t, float64(2), env.Meta["total"])
	})

	t.Run("no results is an empty list", func(t *testing.T) {
		h, _, gen, _ := newTestHandler(t)
		gen.EXPECT().SearchVerses(gomock.Any(), "zzz", gita.English).Return(nil, nil)
		w := httptest.NewRecorder()

		h.Search(w, httptest.NewRequest(http.MethodGet, "/v1/search?q=zzz", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, string(decode(t, w).Data))
	})

	t.Run("empty query", func(t *testing.T) {
		h, _, _, _ := newTestHandler(t)
		w := httptest.NewRecorder()
		h.Search(w, httptest.NewRequest(http.MethodGet, "/v1/search?q=%20", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("generator failure", func(t *testing.T) {
		h, _, gen, _ := newTestHandler(t)
		gen.EXPECT().SearchVerses(gomock.Any(), "karma", gita.English).Return(nil, &gita.TransportError{Op: "search", Err: errors.New("503")})
		w := httptest.NewRecorder()

		h.Search(w, httptest.NewRequest(http.MethodGet, "/v1/search?q=karma", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "GENERATION_UNAVAILABLE", decode(t, w).Error.Code)
	})
}

func TestHTTPHandler_Chat(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		h, _, gen, _ := newTestHandler(t)
		history := []gita.ChatMessage{{Role: gita.RoleUser, Text: "a"}, {Role: gita.RoleModel, Text: "b"}}
		gen.EXPECT().Chat(gomock.Any(), history, "why act?", gita.Hindi).Return("कर्म करो", nil)
		body := `{"history":[{"role":"user","text":"a"},{"role":"model","text":"b"}],"message":"why act?","lang":"hi"}`
		w := httptest.NewRecorder()

		h.Chat(w, httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, w.Code)
		var msg gita.ChatMessage
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &msg))
		assert.Equal(t, gita.ChatMessage{Role: gita.RoleModel, Text: "कर्म करो"}, msg)
	})

	t.Run("invalid role", func(t *testing.T) {
		h, _, _, _ := newTestHandler(t)
		body := `{"history":[{"role":"system","text":"a"}],"message":"x"}`
		w := httptest.NewRecorder()
		h.Chat(w, httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decode(t, w).Error.Code)
	})

	t.Run("blank message", func(t *testing.T) {
		h, _, _, _ := newTestHandler(t)
		w := httptest.NewRecorder()
		h.Chat(w, httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"message":"  "}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty answer", func(t *testing.T) {
		h, _, gen, _ := newTestHandler(t)
		gen.EXPECT().Chat(gomock.Any(), gomock.Any(), "x", gita.English).Return("", gita.ErrEmptyGeneration)
		w := httptest.NewRecorder()
		h.Chat(w, httptest.NewRequest(http.MethodPost, "/v1/chat", strings.NewReader(`{"message":"x"}`)))
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "GENERATION_EMPTY", decode(t, w).Error.Code)
	})
}

func TestHTTPHandler_Chapters(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Chapters(w, httptest.NewRequest(http.MethodGet, "/v1/chapters", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(18), decode(t, w).Meta["total"])

	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/chapters/2", nil)
	r.SetPathValue("chapter", "2")
	h.Chapter(w, r)
	require.Equal(t, http.StatusOK, w.Code)
	var ch gita.Chapter
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &ch))
	assert.Equal(t, 72, ch.Verses)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodGet, "/v1/chapters/19", nil)
	r.SetPathValue("chapter", "19")
	h.Chapter(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHTTPHandler_Share(t *testing.T) {
	h, _, _, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	h.Share(w, httptest.NewRequest(http.MethodGet, "/v1/share?chapter=2&verse=47", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"https://gita.example.com/read?chapter=2&verse=47"}`, string(decode(t, w).Data))

	w = httptest.NewRecorder()
	h.Share(w, httptest.NewRequest(http.MethodGet, "/v1/share?chapter=2", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.Share(w, httptest.NewRequest(http.MethodGet, "/v1/share?chapter=2&verse=73", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
