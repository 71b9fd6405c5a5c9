// Package export serializes the visible transcript of a session. Both
// formats exclude the system message; export never mutates the store.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Dwayne234/HR-PeopleTeam/internal/core"
)

// Exporter converts a visible message sequence to one output format.
type Exporter interface {
	Export(msgs []core.Message) ([]byte, error)
	FileExtension() string
	MimeType() string
}

// JSONExporter writes the transcript as an indented array of message
// records, byte-for-byte reproducible from the store at export time.
type JSONExporter struct{}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

func (e *JSONExporter) Export(msgs []core.Message) ([]byte, error) {
	return json.MarshalIndent(msgs, "", "  ")
}

func (e *JSONExporter) FileExtension() string { return ".json" }

func (e *JSONExporter) MimeType() string { return "application/json" }

// TextExporter writes the human-readable transcript: one paragraph per
// message, speaker label and timestamp up front, separated by blank lines.
type TextExporter struct{}

func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

func (e *TextExporter) Export(msgs []core.Message) ([]byte, error) {
	paragraphs := make([]string, 0, len(msgs))
	for _, m := range msgs {
		ts := m.Timestamp
		if ts == "" {
			ts = "unknown"
		}
		paragraphs = append(paragraphs, fmt.Sprintf("%s (%s): %s", core.DisplayName(m.Role), ts, m.Content))
	}
	return []byte(strings.Join(paragraphs, "\n\n")), nil
}

func (e *TextExporter) FileExtension() string { return ".txt" }

func (e *TextExporter) MimeType() string { return "text/plain" }

// Filename embeds the export instant: chat_<YYYYMMDD_HHMMSS><ext>.
func Filename(exporter Exporter, at time.Time) string {
	return fmt.Sprintf("chat_%s%s", at.Format("20060102_150405"), exporter.FileExtension())
}

// WriteFile exports msgs into dir and returns the written path.
func WriteFile(dir string, exporter Exporter, msgs []core.Message, at time.Time) (string, error) {
	content, err := exporter.Export(msgs)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	outputPath := filepath.Join(dir, Filename(exporter, at))
	if err := os.WriteFile(outputPath, content, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return outputPath, nil
}
