package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"mofmt/internal/driver"
)

func TestRenderFmtJSON(t *testing.T) {
	results := []driver.FormatResult{
		{Path: "a.mo", Changed: true},
		{Path: "b.mo", Err: errors.New("permission denied")},
	}

	var buf bytes.Buffer
	if err := renderFmtJSON(&buf, results, true); err != nil {
		t.Fatalf("renderFmtJSON: %v", err)
	}

	var payload []struct {
		Path     string `json:"path"`
		Changed  bool   `json:"changed"`
		Error    string `json:"error"`
		CheckRun bool   `json:"check"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if len(payload) != 2 {
		t.Fatalf("want 2 entries, got %d", len(payload))
	}
	if payload[0].Path != "a.mo" || !payload[0].Changed || !payload[0].CheckRun {
		t.Fatalf("unexpected first entry: %+v", payload[0])
	}
	if payload[1].Error != "permission denied" {
		t.Fatalf("unexpected second entry: %+v", payload[1])
	}
}

func TestRenderFmtTextCheckMode(t *testing.T) {
	results := []driver.FormatResult{
		{Path: "a.mo", Changed: true},
		{Path: "b.mo", Changed: false},
	}

	var out, errOut bytes.Buffer
	var hasErrors, hasChanges bool
	renderFmtText(&out, &errOut, results, true, false, &hasErrors, &hasChanges)

	if hasErrors {
		t.Fatalf("no errors expected")
	}
	if !hasChanges {
		t.Fatalf("expected changes to be reported")
	}
	if got := out.String(); got != "a.mo\n" {
		t.Fatalf("check output: want %q, got %q", "a.mo\n", got)
	}
}

func TestRenderFmtTextQuiet(t *testing.T) {
	results := []driver.FormatResult{{Path: "a.mo", Changed: true}}

	var out, errOut bytes.Buffer
	var hasErrors, hasChanges bool
	renderFmtText(&out, &errOut, results, false, true, &hasErrors, &hasChanges)

	if out.Len() != 0 {
		t.Fatalf("quiet mode must not print, got %q", out.String())
	}
}

func TestRenderFmtStdoutReportsErrors(t *testing.T) {
	results := []driver.FormatResult{
		{Path: "a.mo", Formatted: []byte("model A\nend A;\n")},
		{Path: "b.mo", Err: errors.New("boom")},
	}

	var out, errOut bytes.Buffer
	var hasErrors bool
	renderFmtStdout(&out, &errOut, results, &hasErrors)

	if !hasErrors {
		t.Fatalf("expected the error to be flagged")
	}
	if out.String() != "model A\nend A;\n" {
		t.Fatalf("unexpected stdout payload: %q", out.String())
	}
	if !strings.Contains(errOut.String(), "b.mo") {
		t.Fatalf("stderr should name the failing file: %q", errOut.String())
	}
}

func TestApplyColorMode(t *testing.T) {
	if err := applyColorMode("on"); err != nil {
		t.Fatalf("on: %v", err)
	}
	if err := applyColorMode("off"); err != nil {
		t.Fatalf("off: %v", err)
	}
	if err := applyColorMode("auto"); err != nil {
		t.Fatalf("auto: %v", err)
	}
	if err := applyColorMode("rainbow"); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}

func TestRenderVersionJSON(t *testing.T) {
	var buf bytes.Buffer
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123", BuildDate: ""}
	opts := versionOptions{format: "json", showHash: true, showDate: true}

	if err := renderVersionJSON(&buf, info, opts); err != nil {
		t.Fatalf("renderVersionJSON: %v", err)
	}

	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if payload.Tool != "mofmt" || payload.Version != "1.2.3" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.GitCommit != "abc123" || payload.BuildDate != "unknown" {
		t.Fatalf("unexpected build metadata: %+v", payload)
	}
}
