package uploads

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func multipartFile(t *testing.T, field, filename string, content []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}

	f, fh, err := req.FormFile(field)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	return f, fh
}

func TestSave_WritesFileAndBuildsURL(t *testing.T) {
	dir := t.TempDir()
	st, err := NewStore(dir, "http://localhost:8080/")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	st.now = func() time.Time { return time.UnixMilli(1700000000000) }

	f, fh := multipartFile(t, "animal-img", "milo.png", []byte("png-bytes"))
	defer f.Close()

	url, err := st.Save(f, fh)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	want := "http://localhost:8080/uploads/1700000000000.png"
	if url != want {
		t.Fatalf("url = %q, want %q", url, want)
	}

	stored, err := os.ReadFile(filepath.Join(dir, "1700000000000.png"))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(stored) != "png-bytes" {
		t.Fatalf("stored content = %q", stored)
	}
}

func TestSave_KeepsExtension(t *testing.T) {
	st, err := NewStore(t.TempDir(), "http://x")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	f, fh := multipartFile(t, "animal-img", "photo.JPEG", []byte("x"))
	defer f.Close()

	url, err := st.Save(f, fh)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(url, ".JPEG") {
		t.Fatalf("url %q lost extension", url)
	}
}

func TestSave_NilFile(t *testing.T) {
	st, err := NewStore(t.TempDir(), "http://x")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := st.Save(nil, nil); err != ErrNoFile {
		t.Fatalf("expected ErrNoFile, got %v", err)
	}
}

func TestNewStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewStore(dir, "http://x"); err != nil {
		t.Fatalf("new store: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("dir not created: %v", err)
	}
}
