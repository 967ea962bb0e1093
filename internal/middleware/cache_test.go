package middleware

import (
	"bytes"
	"net/http/httptest"
	"testing"
)

func TestCaptureWriterBuffersWithinLimit(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: 200, limit: 16}

	if _, err := cw.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := cw.Write([]byte(" world")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := cw.buf.String(); got != "hello world" {
		t.Fatalf("buffered %q, want %q", got, "hello world")
	}
	if rec.Body.String() != "hello world" {
		t.Fatalf("client got %q, want full body", rec.Body.String())
	}
}

func TestCaptureWriterDropsOversizedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: 200, limit: 8}

	big := bytes.Repeat([]byte("x"), 32)
	if _, err := cw.Write(big); err != nil {
		t.Fatalf("write: %v", err)
	}
	// The client still receives the body; the cache buffer is abandoned
	// and stays abandoned for any later chunk.
	if rec.Body.Len() != len(big) {
		t.Fatalf("client got %d bytes, want %d", rec.Body.Len(), len(big))
	}
	if cw.limit > 0 {
		t.Fatalf("limit = %d, want caching disabled", cw.limit)
	}
	if cw.buf.Len() != 0 {
		t.Fatalf("buffer holds %d bytes, want 0", cw.buf.Len())
	}
	if _, err := cw.Write([]byte("tail")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if cw.buf.Len() != 0 {
		t.Fatalf("buffer refilled after overflow: %d bytes", cw.buf.Len())
	}
}
