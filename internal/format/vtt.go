package format

import (
	"fmt"
	"strings"

	"github.com/lizergic/Transcribe-Tool/internal/domain"
)

// RenderVTT emits a WebVTT document: the WEBVTT header, a blank line, then
// one cue per segment. Cues carry no numeric identifier (optional in VTT)
// and use '.' before the millisecond field. An empty transcript yields just
// the header.
func RenderVTT(segments []domain.Segment) string {
	var sb strings.Builder
	sb.WriteString("WEBVTT\n\n")
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		fmt.Fprintf(&sb, "%s --> %s\n%s\n\n",
			vttTimestamp(seg.Start), vttTimestamp(seg.End), text)
	}
	return sb.String()
}
