package wiki

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileService(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "wiki.json")
	data := `[
		{"title": "Atatürk", "extract": "First. Second. Third."},
		{"title": "Mercury", "ambiguous": true, "options": ["Mercury (planet)"]}
	]`
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	svc := &FileService{Path: p}

	got, err := svc.Summary(context.Background(), SummaryRequest{Title: "atatürk"})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if got.Extract != "First. Second. Third." {
		t.Fatalf("unexpected extract: %q", got.Extract)
	}

	_, err = svc.Summary(context.Background(), SummaryRequest{Title: "Mercury"})
	var amb *AmbiguousError
	if !errors.As(err, &amb) || len(amb.Options) != 1 {
		t.Fatalf("expected AmbiguousError, got %v", err)
	}

	_, err = svc.Summary(context.Background(), SummaryRequest{Title: "Nothing"})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestFileService_EmptyPath(t *testing.T) {
	svc := &FileService{}
	if _, err := svc.Summary(context.Background(), SummaryRequest{Title: "x"}); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
