package pipeline

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch_Success(t *testing.T) {
	body := `{"speaker_id":"u1","text":"hello"}` + "\n"
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("expected GET got %s", r.Method)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	}))
	defer ts.Close()

	f := NewTranscriptFetcher(nil, nil)
	raw, err := f.Fetch(context.Background(), "m1", ts.URL)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if raw != body {
		t.Fatalf("unexpected body: %q", raw)
	}
}

func TestFetch_TrimsURLWhitespace(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	f := NewTranscriptFetcher(nil, nil)
	raw, err := f.Fetch(context.Background(), "m1", "  "+ts.URL+"  ")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if raw != "ok" {
		t.Fatalf("unexpected body: %q", raw)
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	f := NewTranscriptFetcher(nil, nil)
	_, err := f.Fetch(context.Background(), "m1", ts.URL)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T", err)
	}
	if fetchErr.Status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", fetchErr.Status)
	}
}

func TestFetch_Unreachable(t *testing.T) {
	f := NewTranscriptFetcher(nil, nil)
	_, err := f.Fetch(context.Background(), "m1", "http://127.0.0.1:1/transcript.jsonl")
	if err == nil {
		t.Fatal("expected error for unreachable host")
	}
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %T", err)
	}
}
