package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"rental-ledger/internal/domain"
)

// JSONReportWriter writes reports as JSON documents.
type JSONReportWriter struct {
	stdout io.Writer
	indent string
}

// NewJSONReportWriter writes "-" or "" to os.Stdout. An empty indent writes compact JSON.
func NewJSONReportWriter(indent string) *JSONReportWriter {
	return &JSONReportWriter{stdout: os.Stdout, indent: indent}
}

// WriteReport encodes report fully before touching path, so a failed batch
// never leaves a truncated output file behind.
func (w *JSONReportWriter) WriteReport(ctx context.Context, path string, report *domain.Report) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", w.indent)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if path == "" || path == StdioPath {
		_, err := w.stdout.Write(buf.Bytes())
		return err
	}

	// Write next to the target and rename, so readers never see a partial file.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create output file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move output into %s: %w", path, err)
	}
	return nil
}
