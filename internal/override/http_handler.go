package override

import (
	"errors"
	"io"
	"net/http"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/gita"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/httpx"
	"github.com/trikaaldarshi/Geeta-wisdom/internal/metrics"
)

const maxImportBytes = 4 << 20

type HTTPHandler struct {
	store   *Store
	metrics *metrics.Collector
}

func NewHTTPHandler(store *Store, m *metrics.Collector) *HTTPHandler {
	return &HTTPHandler{store: store, metrics: m}
}

// List handles GET /v1/admin/verses
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	entries := h.store.ListAll(r.Context())
	httpx.JSONSuccessWithRequest(r, w, entries, map[string]interface{}{"total": len(entries)})
}

// Get handles GET /v1/admin/verses/{chapter}/{verse}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := verseIDFromPath(w, r)
	if !ok {
		return
	}
	rec, found := h.store.Get(r.Context(), id)
	if !found {
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, "NOT_FOUND", "No override for "+id.Key(), nil)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, Entry{VerseID: id, Content: rec}, nil)
}

// Put handles PUT /v1/admin/verses/{chapter}/{verse}
func (h *HTTPHandler) Put(w http.ResponseWriter, r *http.Request) {
	id, ok := verseIDFromPath(w, r)
	if !ok {
		return
	}

	var rec gita.VerseRecord
	if err := httpx.DecodeJSON(r, &rec); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_JSON", "Request body must be a verse record", nil)
		return
	}
	if details := httpx.ValidateStruct(rec); len(details) > 0 {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "VALIDATION_ERROR", "Verse record is incomplete", details)
		return
	}

	if err := h.store.Upsert(r.Context(), id, rec); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not save override", nil)
		return
	}
	h.metrics.OverrideMutations.WithLabelValues("upsert").Inc()
	httpx.JSONSuccessWithRequest(r, w, Entry{VerseID: id, Content: rec}, nil)
}

// Delete handles DELETE /v1/admin/verses/{chapter}/{verse}
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := verseIDFromPath(w, r)
	if !ok {
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not delete override", nil)
		return
	}
	h.metrics.OverrideMutations.WithLabelValues("delete").Inc()
	httpx.JSONSuccessNoContent(w)
}

// Export handles GET /v1/admin/verses/export and returns the raw persisted document.
func (h *HTTPHandler) Export(w http.ResponseWriter, r *http.Request) {
	raw, err := h.store.Export(r.Context())
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "STORAGE_UNREADABLE", "Override storage could not be read", nil)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+StorageKey+`.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}

// Import handles POST /v1/admin/verses/import?replace=true|false
func (h *HTTPHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpx.JSONErrorWithRequest(r, w, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Import document too large", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_BODY", "Could not read request body", nil)
		return
	}
	replace := r.URL.Query().Get("replace") == "true"

	n, err := h.store.Import(r.Context(), raw, replace)
	if err != nil {
		if errors.Is(err, ErrInvalidDocument) {
			httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_DOCUMENT", err.Error(), nil)
			return
		}
		if errors.Is(err, gita.ErrStorageRead) {
			httpx.JSONErrorWithRequest(r, w, http.StatusServiceUnavailable, "STORAGE_UNREADABLE", "Override storage could not be read", nil)
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not import overrides", nil)
		return
	}
	h.metrics.OverrideMutations.WithLabelValues("import").Add(float64(n))
	httpx.JSONSuccessWithRequest(r, w, map[string]interface{}{"imported": n, "replaced": replace}, nil)
}

// verseIDFromPath reads {chapter} and {verse}. It writes the error response
// itself when ok is false.
func verseIDFromPath(w http.ResponseWriter, r *http.Request) (gita.VerseID, bool) {
	id, err := gita.ParseVerseID(r.PathValue("chapter"), r.PathValue("verse"))
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "INVALID_VERSE", err.Error(), nil)
		return gita.VerseID{}, false
	}
	return id, true
}
