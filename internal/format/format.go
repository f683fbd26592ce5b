package format

import (
	"fmt"
	"strings"

	"github.com/lizergic/Transcribe-Tool/internal/domain"
)

// Format identifies one of the supported output document formats.
type Format string

const (
	TXT  Format = "txt"
	SRT  Format = "srt"
	VTT  Format = "vtt"
	JSON Format = "json"
)

// All lists the supported formats in the order they are documented.
var All = []Format{TXT, SRT, VTT, JSON}

// Parse validates a user-supplied format name.
func Parse(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case TXT, SRT, VTT, JSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (expected txt, srt, vtt or json)", domain.ErrUnknownFormat, s)
}

// Extension returns the file extension for the format, dot included.
func (f Format) Extension() string {
	return "." + string(f)
}

// Render produces the complete output document for a transcript in the
// given format. Formatters are pure: they never touch the filesystem and
// never reject malformed timing data.
func Render(f Format, t *domain.Transcript) (string, error) {
	switch f {
	case TXT:
		return RenderTXT(t.Segments), nil
	case SRT:
		return RenderSRT(t.Segments), nil
	case VTT:
		return RenderVTT(t.Segments), nil
	case JSON:
		return RenderJSON(t)
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownFormat, f)
}
