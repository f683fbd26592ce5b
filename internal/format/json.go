package format

import (
	"bytes"
	"encoding/json"

	"github.com/lizergic/Transcribe-Tool/internal/domain"
)

// jsonDocument is the stable wire shape of the JSON output. Field names on
// segment records are fixed (start, end, text); model and language are
// passed through from the engine, never synthesized here.
type jsonDocument struct {
	Model    string           `json:"model,omitempty"`
	Language string           `json:"language,omitempty"`
	Segments []domain.Segment `json:"segments"`
}

// RenderJSON emits the transcript as an indented UTF-8 JSON document. The
// segments field is always present, an empty list for an empty transcript.
func RenderJSON(t *domain.Transcript) (string, error) {
	doc := jsonDocument{
		Model:    t.Model,
		Language: t.Language,
		Segments: t.Segments,
	}
	if doc.Segments == nil {
		doc.Segments = []domain.Segment{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}
