package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestGenerateStoragePath(t *testing.T) {
	id := uuid.MustParse("3f2b8c1e-0000-4000-8000-000000000001")
	testCases := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "plain", filename: "kvkk_rapor.html", want: "3f/3f2b8c1e-0000-4000-8000-000000000001/kvkk_rapor.html"},
		{name: "spaces", filename: "ders notu.txt", want: "3f/3f2b8c1e-0000-4000-8000-000000000001/ders_notu.txt"},
		{name: "directories stripped", filename: "output/vectors/metadata.json", want: "3f/3f2b8c1e-0000-4000-8000-000000000001/metadata.json"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := generateStoragePath(id, tc.filename); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestGetContentType(t *testing.T) {
	if got := getContentType("r.HTML"); got != "text/html; charset=utf-8" {
		t.Errorf("html = %q", got)
	}
	if got := getContentType("x.bin"); got != "application/octet-stream" {
		t.Errorf("bin = %q", got)
	}
}

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	s, err := New(ctx, Config{Type: TypeLocal, LocalPath: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	runID := uuid.New()

	p, err := s.Upload(ctx, runID, "kvkk_rapor.html", strings.NewReader("<html></html>"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	rc, err := s.Download(ctx, p)
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "<html></html>" {
		t.Errorf("data = %q", data)
	}

	if err := s.Delete(ctx, p); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, p); err != nil {
		t.Errorf("deleting twice should be a no-op: %v", err)
	}
	if _, err := s.Download(ctx, p); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNew_Errors(t *testing.T) {
	ctx := context.Background()
	if _, err := New(ctx, Config{Type: "ftp"}); err == nil {
		t.Error("expected unknown type error")
	}
	if _, err := New(ctx, Config{Type: TypeS3}); err == nil {
		t.Error("expected missing bucket error")
	}
	if _, err := New(ctx, Config{Type: TypeLocal}); err == nil {
		t.Error("expected missing path error")
	}
}
