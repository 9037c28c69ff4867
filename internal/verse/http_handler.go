package verse

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/gita"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/httpx"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/metrics"
)

// ClientIDHeader opts a caller into request sequencing.
const ClientIDHeader = "X-Client-Id"

type HTTPHandler struct {
	service      *Service
	sequencer    *Sequencer
	metrics      *metrics.Collector
	shareBaseURL string
}

func NewHTTPHandler(service *Service, sequencer *Sequencer, m *metrics.Collector, shareBaseURL string) *HTTPHandler {
	return &HTTPHandler{service: service, sequencer: sequencer, metrics: m, shareBaseURL: shareBaseURL}
}

type chatRequest struct {
	History []gita.ChatMessage `json:"history" validate:"dive"`
	Message string             `json:"message" validate:"notblank"`
	Lang    string             `json:"lang" validate:"language"`
}

// Verse handles GET /v1/verses/{chapter}/{verse}
func (h *HTTPHandler) Verse(w http.ResponseWriter, r *http.Request) {
	id, err := gita.ParseVerseID(r.PathValue("chapter"), r.PathValue("verse"))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_VERSE", err.Error(), nil)
		return
	}
	lang, ok := languageFromQuery(w, r)
	if !ok {
		return
	}

	ctx, ticket := h.sequencer.Begin(r.Context(), slot(r, "verse"))
	defer ticket.Done()

	v, source, err := h.service.Resolve(ctx, id, lang)
	if h.superseded(w, r, ticket) {
		return
	}
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}
	h.metrics.VersesResolved.WithLabelValues(string(source)).Inc()
	httpx.JSONSuccessWithRequest(r, w, v, map[string]interface{}{
		"chapter": id.Chapter,
		"verse":   id.Verse,
		"lang":    lang,
		"source":  source,
	})
}

// Search handles GET /v1/search?q=&lang=
func (h *HTTPHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_QUERY", "Query parameter q is required", nil)
		return
	}
	lang, ok := languageFromQuery(w, r)
	if !ok {
		return
	}

	ctx, ticket := h.sequencer.Begin(r.Context(), slot(r, "search"))
	defer ticket.Done()

	results, err := h.service.Search(ctx, query, lang)
	if h.superseded(w, r, ticket) {
		return
	}
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}
	if results == nil {
		results = []gita.SearchResult{}
	}
	httpx.JSONSuccessWithRequest(r, w, results, map[string]interface{}{
		"total": len(results),
		"query": query,
		"lang":  lang,
	})
}

// Chat handles POST /v1/chat
func (h *HTTPHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body", nil)
		return
	}
	if details := httpx.ValidateStruct(req); len(details) > 0 {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid chat request", details)
		return
	}
	lang, _ := gita.ParseLanguage(req.Lang)

	ctx, ticket := h.sequencer.Begin(r.Context(), slot(r, "chat"))
	defer ticket.Done()

	reply, err := h.service.Chat(ctx, req.History, req.Message, lang)
	if h.superseded(w, r, ticket) {
		return
	}
	if err != nil {
		writeGenerationError(w, r, err)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, gita.ChatMessage{Role: gita.RoleModel, Text: reply}, nil)
}

// Chapters handles GET /v1/chapters
func (h *HTTPHandler) Chapters(w http.ResponseWriter, r *http.Request) {
	chapters := gita.Chapters()
	httpx.JSONSuccessWithRequest(r, w, chapters, map[string]interface{}{"total": len(chapters)})
}

// Chapter handles GET /v1/chapters/{chapter}
func (h *HTTPHandler) Chapter(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("chapter"))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_CHAPTER", "Chapter must be a number", nil)
		return
	}
	ch, err := gita.ChapterByID(n)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "Chapter not found", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, ch, nil)
}

// Share handles GET /v1/share?chapter=&verse=
func (h *HTTPHandler) Share(w http.ResponseWriter, r *http.Request) {
	id, ok := gita.ParseDeepLink(r.URL.Query())
	if !ok {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_VERSE", "chapter and verse must be positive numbers", nil)
		return
	}
	if err := gita.Validate(id); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_VERSE", err.Error(), nil)
		return
	}
	link, err := gita.ShareURL(h.shareBaseURL, id)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Share links are not configured", nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, map[string]string{"url": link}, nil)
}

func (h *HTTPHandler) superseded(w http.ResponseWriter, r *http.Request, t *Ticket) bool {
	if !t.Superseded() {
		return false
	}
	h.metrics.SupersededRequests.Inc()
	httpx.JSONErrorWithRequest(r, w, http.StatusConflict, "SUPERSEDED", ErrSuperseded.Error(), nil)
	return true
}

func slot(r *http.Request, name string) string {
	client := strings.TrimSpace(r.Header.Get(ClientIDHeader))
	if client == "" {
		return ""
	}
	return client + "/" + name
}

func languageFromQuery(w http.ResponseWriter, r *http.Request) (gita.Language, bool) {
	lang, err := gita.ParseLanguage(r.URL.Query().Get("lang"))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_LANGUAGE", "lang must be en or hi", nil)
		return "", false
	}
	return lang, true
}

// writeGenerationError maps generator failures to 502 responses.
func writeGenerationError(w http.ResponseWriter, r *http.Request, err error) {
	var formatErr *gita.FormatError
	switch {
	case errors.Is(err, gita.ErrEmptyGeneration):
		httpx.JSONErrorWithRequest(r, w, http.StatusBadGateway, "GENERATION_EMPTY", "The generator returned no content, please retry", nil)
	case errors.As(err, &formatErr):
		httpx.JSONErrorWithRequest(r, w, http.StatusBadGateway, "GENERATION_FORMAT", "The generator returned malformed content, please retry", nil)
	default:
		httpx.JSONErrorWithRequest(r, w, http.StatusBadGateway, "GENERATION_UNAVAILABLE", "The generator is unavailable, please retry", nil)
	}
}
