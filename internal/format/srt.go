package format

import (
	"fmt"
	"strings"

	"github.com/lizergic/Transcribe-Tool/internal/domain"
)

// RenderSRT emits one SubRip cue block per segment:
//
//	1
//	00:00:00,000 --> 00:00:01,200
//	hello
//
// Cue indices are assigned by position, starting at 1 and always contiguous,
// regardless of the timing values in the segments. Segments whose text is
// empty after trimming are skipped and do not consume an index. Timing data
// is rendered as received; end < start is not repaired here.
func RenderSRT(segments []domain.Segment) string {
	var sb strings.Builder
	idx := 1
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		fmt.Fprintf(&sb, "%d\n%s --> %s\n%s\n\n",
			idx, srtTimestamp(seg.Start), srtTimestamp(seg.End), text)
		idx++
	}
	return sb.String()
}
