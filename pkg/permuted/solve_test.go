package permuted

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestSolve(t *testing.T) {
	if got := Solve(); got != 142857 {
		t.Fatalf("Solve() = %d, want 142857", got)
	}
}

func TestSolveTrace(t *testing.T) {
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	EnableTrace()
	defer func() {
		DisableTrace()
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
	}()

	if got := Solve(); got != 142857 {
		t.Fatalf("Solve() with tracing = %d, want 142857", got)
	}

	out := buf.String()
	if !strings.Contains(out, "[SEARCH] checked 100,000 candidates") {
		t.Errorf("trace missing progress line, got:\n%s", out)
	}
	if !strings.Contains(out, "[SEARCH] found 142,857 after 142,857 candidates") {
		t.Errorf("trace missing result line, got:\n%s", out)
	}
}

func TestSolveTraceDisabledIsSilent(t *testing.T) {
	var buf bytes.Buffer
	prevOut := log.Writer()
	log.SetOutput(&buf)
	DisableTrace()
	defer log.SetOutput(prevOut)

	Solve()
	if buf.Len() != 0 {
		t.Errorf("expected no log output with tracing disabled, got:\n%s", buf.String())
	}
}

func TestGetVersion(t *testing.T) {
	if GetVersion() != Version {
		t.Errorf("GetVersion() = %q, want %q", GetVersion(), Version)
	}
	info := GetVersionInfo()
	if info.Version != Version || info.GoVersion == "" {
		t.Errorf("GetVersionInfo() = %+v", info)
	}
}
