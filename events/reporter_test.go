package events

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/samber/oops"
)

// TestLogReporterSurfacesOopsCode verifies coded errors log their code
// and context as structured attributes
func TestLogReporterSurfacesOopsCode(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := LogReporter{Logger: logger}

	r.Report(oops.
		Code("SETTINGS_INVALID_PATCH").
		With("section", "ball").
		Errorf("bad value"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if rec["code"] != "SETTINGS_INVALID_PATCH" {
		t.Errorf("expected code attribute, got %v", rec["code"])
	}
	ctx, ok := rec["context"].(map[string]any)
	if !ok || ctx["section"] != "ball" {
		t.Errorf("expected context attribute with section, got %v", rec["context"])
	}
}

// TestLogReporterNilError verifies nil reports log nothing
func TestLogReporterNilError(t *testing.T) {
	var buf bytes.Buffer
	r := LogReporter{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	r.Report(nil)

	if buf.Len() != 0 {
		t.Errorf("nil report produced output: %s", buf.String())
	}
}
