package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"gemilang_backend/internals/configs"
)

// Maksimal ukuran upload gambar (sesuai rule lama max:2048 KB).
const MaxImageSizeKB = 2048

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// ValidationError dipakai controller untuk membedakan error input (422)
// dari kegagalan IO (500).
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Storage menyimpan upload di disk publik lokal dan memetakan path relatif
// ke URL publik. Layout: <BaseDir>/<namespace>/<generated-filename>, URL:
// <BaseURL>/storage/<namespace>/<generated-filename>.
type Storage struct {
	BaseDir string
	BaseURL string
}

func New(baseDir, baseURL string) *Storage {
	return &Storage{BaseDir: baseDir, BaseURL: strings.TrimRight(baseURL, "/")}
}

func NewFromEnv() *Storage {
	return New(configs.UploadDir, configs.AppBaseURL)
}

// StoreImage memvalidasi content-type & ukuran file, lalu menulisnya di bawah
// subdirektori namespace ("posts", "gallery") dengan nama unik.
// Return path relatif "namespace/filename".
func (s *Storage) StoreImage(namespace string, fh *multipart.FileHeader) (string, error) {
	contentType := fh.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", &ValidationError{
			Field:   "image",
			Message: "tipe file harus jpeg, png, gif, atau webp",
		}
	}
	if fh.Size > MaxImageSizeKB*1024 {
		return "", &ValidationError{
			Field:   "image",
			Message: fmt.Sprintf("ukuran file maksimal %d KB", MaxImageSizeKB),
		}
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	relPath := filepath.Join(namespace, generateUniqueFilename(fh.Filename))
	absPath := filepath.Join(s.BaseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat direktori upload: %w", err)
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("gagal membuat file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("gagal menulis file: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

// URL memetakan path relatif ke URL publik. Deterministik, tanpa IO.
func (s *Storage) URL(path string) string {
	if path == "" {
		return ""
	}
	return s.BaseURL + "/storage/" + path
}

// Remove menghapus file secara best-effort; path kosong atau file yang sudah
// tidak ada bukan error (idempotent).
func (s *Storage) Remove(path string) error {
	if path == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.BaseDir, filepath.FromSlash(path)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Exists dipakai di test untuk memverifikasi lifecycle file.
func (s *Storage) Exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(s.BaseDir, filepath.FromSlash(path)))
	return err == nil
}

var reUnsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func sanitizeFilename(filename string) string {
	return reUnsafeFilename.ReplaceAllString(filename, "_")
}

func generateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s-%s-%s", timestamp, uuid.New().String(), sanitizeFilename(originalFilename))
}
