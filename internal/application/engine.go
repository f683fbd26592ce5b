package application

import (
	"fmt"
	"strings"

	"github.com/lizergic/Transcribe-Tool/internal/domain"
	"github.com/lizergic/Transcribe-Tool/internal/ports"
)

// ResolveTranscriber picks the recognition engine once at startup: the
// first available engine in preference order wins and is used for the whole
// run. A later per-call failure never triggers a switch to the next engine.
func ResolveTranscriber(engines ...ports.Transcriber) (ports.Transcriber, error) {
	names := make([]string, 0, len(engines))
	for _, e := range engines {
		if e.Available() {
			return e, nil
		}
		names = append(names, e.Name())
	}
	return nil, fmt.Errorf("%w (tried: %s)", domain.ErrNoEngine, strings.Join(names, ", "))
}
