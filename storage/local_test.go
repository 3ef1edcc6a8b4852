package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestNewFilename(t *testing.T) {
	got := NewFilename("my summer  painting.jpg")

	prefix, rest, ok := strings.Cut(got, "_")
	if !ok {
		t.Fatalf("NewFilename() = %q, want <timestamp>_<name>", got)
	}
	if _, err := strconv.ParseInt(prefix, 10, 64); err != nil {
		t.Errorf("filename prefix %q is not a timestamp", prefix)
	}
	if rest != "my_summer_painting.jpg" {
		t.Errorf("sanitized name = %q, want whitespace runs collapsed to underscores", rest)
	}
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"a.png", "image/png"},
		{"a.PNG", "image/png"},
		{"a.gif", "image/gif"},
		{"a.svg", "image/svg+xml"},
		{"a.jpg", "image/jpeg"},
		{"a.jpeg", "image/jpeg"},
		{"no-extension", "image/jpeg"},
	}
	for _, tt := range tests {
		if got := ContentTypeFor(tt.filename); got != tt.want {
			t.Errorf("ContentTypeFor(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), false)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	filename, err := store.Store(ctx, strings.NewReader("png bytes"), "cover art.png")
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !strings.HasSuffix(filename, "_cover_art.png") {
		t.Errorf("stored filename = %q, want sanitized original name suffix", filename)
	}

	stream, contentType, err := store.Retrieve(ctx, filename)
	if err != nil {
		t.Fatalf("Retrieve: %v", err)
	}
	defer stream.Close()

	if contentType != "image/png" {
		t.Errorf("content type = %q, want image/png", contentType)
	}
	contents, err := io.ReadAll(stream)
	if err != nil {
		t.Fatal(err)
	}
	if string(contents) != "png bytes" {
		t.Errorf("retrieved %q, want stored bytes", contents)
	}
}

func TestLocalStoreRetrieveMissing(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), false)
	if err != nil {
		t.Fatal(err)
	}

	_, _, err = store.Retrieve(context.Background(), "unknown.png")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Retrieve on missing file = %v, want ErrNotFound", err)
	}
}

func TestLocalStoreDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStore(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	filename, err := store.Store(ctx, strings.NewReader("x"), "img.jpg")
	if err != nil {
		t.Fatal(err)
	}

	// Delete accepts the public path form, not just the bare filename.
	if err := store.Delete(ctx, "/assets/projects/"+filename); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filename)); !errors.Is(err, os.ErrNotExist) {
		t.Error("file still present after Delete")
	}

	// Deleting an absent file is not an error.
	if err := store.Delete(ctx, filename); err != nil {
		t.Errorf("Delete of missing file = %v, want nil", err)
	}
}

func TestLocalStorePublicURL(t *testing.T) {
	ephemeral, err := NewLocalStore(t.TempDir(), true)
	if err != nil {
		t.Fatal(err)
	}
	persistent, err := NewLocalStore(t.TempDir(), false)
	if err != nil {
		t.Fatal(err)
	}

	if got := ephemeral.PublicURL("a.png"); got != "/api/images/a.png" {
		t.Errorf("ephemeral PublicURL = %q, want API-served path", got)
	}
	if got := persistent.PublicURL("a.png"); got != "/assets/projects/a.png" {
		t.Errorf("persistent PublicURL = %q, want static path", got)
	}
}
