package override

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/trikaaldarshi/Geeta-wisdom/internal/gita"
)

// document is the persisted override blob: a JSON object keyed by "<chapter>-<verse>".
// Key order is kept as written; a re-upserted key keeps its first position.
type document struct {
	keys    []string
	records map[string]gita.VerseRecord
}

func newDocument() *document {
	return &document{records: make(map[string]gita.VerseRecord)}
}

func decodeDocument(b []byte) (*document, error) {
	doc := newDocument()
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return doc, nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected key, got %v", tok)
		}
		var rec gita.VerseRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		doc.set(key, rec)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *document) get(key string) (gita.VerseRecord, bool) {
	rec, ok := d.records[key]
	return rec, ok
}

func (d *document) set(key string, rec gita.VerseRecord) {
	if _, exists := d.records[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.records[key] = rec
}

func (d *document) remove(key string) bool {
	if _, exists := d.records[key]; !exists {
		return false
	}
	delete(d.records, key)
	for i, k := range d.keys {
		if k == key {
			d.keys = append(d.keys[:i], d.keys[i+1:]...)
			break
		}
	}
	return true
}

func (d *document) encode() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(d.records[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
