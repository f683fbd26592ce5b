package domain

import "time"

// Segment is one timed span of recognized speech. Start and End are in
// seconds from the beginning of the media file. Text may carry the engine's
// leading/trailing whitespace; formatters trim it.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the full recognition result for one media file.
// Model and Language are whatever the engine/driver reported; nothing here
// fabricates or repairs them.
type Transcript struct {
	Segments      []Segment `json:"segments"`
	Model         string    `json:"model"`
	Language      string    `json:"language"`
	TranscribedAt time.Time `json:"transcribed_at"`
}
