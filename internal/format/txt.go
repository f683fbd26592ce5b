package format

import (
	"strings"

	"github.com/lizergic/Transcribe-Tool/internal/domain"
)

// RenderTXT emits each segment's trimmed text on its own line, in sequence
// order. Segments whose text is empty after trimming are skipped. An empty
// transcript yields a zero-byte document.
func RenderTXT(segments []domain.Segment) string {
	var sb strings.Builder
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		sb.WriteString(text)
		sb.WriteByte('\n')
	}
	return sb.String()
}
