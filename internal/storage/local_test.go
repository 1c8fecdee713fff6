package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("photo", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	writer.Close()

	request, err := http.NewRequest(http.MethodPost, "/", &body)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())
	if err := request.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return request.MultipartForm.File["photo"][0]
}

func TestSaveStoresUnderRandomName(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	header := uploadHeader(t, "kitchen before.JPG", []byte("fake image"))
	relative, err := store.Save(header, "progress")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(relative, "progress/") || !strings.HasSuffix(relative, ".jpg") {
		t.Errorf("relative path = %q", relative)
	}
	if strings.Contains(relative, "kitchen") {
		t.Error("original file name leaked into the stored path")
	}

	stored, err := os.ReadFile(filepath.Join(store.Root(), filepath.FromSlash(relative)))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(stored) != "fake image" {
		t.Errorf("stored content = %q", stored)
	}
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	header := uploadHeader(t, "malware.exe", []byte{0x4d, 0x5a})
	if _, err := store.Save(header, "equipment"); !errors.Is(err, ErrUnsupportedFileType) {
		t.Fatalf("err = %v, want ErrUnsupportedFileType", err)
	}
}

func TestRemove(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	header := uploadHeader(t, "receipt.pdf", []byte("pdf"))
	relative, err := store.Save(header, "receipts")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Remove(relative); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(store.Root(), filepath.FromSlash(relative))); !errors.Is(err, os.ErrNotExist) {
		t.Error("file still exists after Remove")
	}

	// Removing twice is fine, traversal is not.
	if err := store.Remove(relative); err != nil {
		t.Errorf("second Remove: %v", err)
	}
	if err := store.Remove("../outside.txt"); err == nil {
		t.Error("expected error for path traversal")
	}
}
