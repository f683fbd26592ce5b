package output

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/lizergic/Transcribe-Tool/internal/format"
)

func TestDerivePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		f     format.Format
		want  string
	}{
		{"mp4 to srt", "sample.mp4", format.SRT, "sample.srt"},
		{"mp4 to txt", "sample.mp4", format.TXT, "sample.txt"},
		{"keeps directory", "/media/talks/keynote.mkv", format.VTT, "/media/talks/keynote.vtt"},
		{"no extension", "recording", format.JSON, "recording.json"},
		{"dot in directory only", "/data/v1.2/audio", format.TXT, "/data/v1.2/audio.txt"},
		{"double extension", "show.season1.mp3", format.SRT, "show.season1.srt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePath(tt.input, tt.f)
			if got != tt.want {
				t.Errorf("DerivePath(%q, %s) = %q, want %q", tt.input, tt.f, got, tt.want)
			}
		})
	}
}

func TestWriter_Write(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriterFs(fs)

	if err := w.Write("/out/sample.srt", "1\n00:00:00,000 --> 00:00:01,000\nhi\n\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := afero.ReadFile(fs, "/out/sample.srt")
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "1\n00:00:00,000 --> 00:00:01,000\nhi\n\n" {
		t.Errorf("file content = %q", data)
	}
}

func TestWriter_Overwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriterFs(fs)

	if err := w.Write("/sample.txt", "old\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := w.Write("/sample.txt", "new\n"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, _ := afero.ReadFile(fs, "/sample.txt")
	if string(data) != "new\n" {
		t.Errorf("overwrite left %q", data)
	}
}

func TestWriter_UTF8Content(t *testing.T) {
	fs := afero.NewMemMapFs()
	w := NewWriterFs(fs)

	text := "こんにちは世界\nпривет мир\n"
	if err := w.Write("/multi.txt", text); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, _ := afero.ReadFile(fs, "/multi.txt")
	if string(data) != text {
		t.Errorf("multilingual content corrupted: %q", data)
	}
}

func TestWriter_ReadOnlyFsFails(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	w := NewWriterFs(fs)

	if err := w.Write("/denied.txt", "x"); err == nil {
		t.Error("expected error writing to read-only filesystem")
	}
}
