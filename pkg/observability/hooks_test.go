package observability

import (
	"testing"
	"time"
)

type recordingHooks struct {
	blocks int
	certs  []string
}

func (r *recordingHooks) OnBlockStart(int, int, int)                  { r.blocks++ }
func (r *recordingHooks) OnBlockComplete(int, time.Duration)          {}
func (r *recordingHooks) OnCertificate(kind string)                   { r.certs = append(r.certs, kind) }
func (r *recordingHooks) OnAuthenticate(string, time.Duration, error) {}

func TestSetRecognitionHooks(t *testing.T) {
	defer Reset()

	rec := &recordingHooks{}
	SetRecognitionHooks(rec)

	Recognition().OnBlockStart(0, 2, 3)
	Recognition().OnCertificate("k4")

	if rec.blocks != 1 {
		t.Errorf("blocks = %d, want 1", rec.blocks)
	}
	if len(rec.certs) != 1 || rec.certs[0] != "k4" {
		t.Errorf("certs = %v, want [k4]", rec.certs)
	}
}

func TestSetRecognitionHooks_NilKeepsCurrent(t *testing.T) {
	defer Reset()

	rec := &recordingHooks{}
	SetRecognitionHooks(rec)
	SetRecognitionHooks(nil)

	Recognition().OnBlockStart(0, 0, 1)
	if rec.blocks != 1 {
		t.Error("nil registration must not replace the current hooks")
	}
}

func TestDefaultIsNoop(t *testing.T) {
	Reset()
	// Must not panic.
	Recognition().OnBlockStart(0, 0, 1)
	Recognition().OnBlockComplete(0, time.Millisecond)
	Recognition().OnCertificate("t4")
	Recognition().OnAuthenticate("t4", time.Millisecond, nil)
}
