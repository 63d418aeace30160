package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aryankuttarmare14/job-board-app/internal/constants"
	"github.com/google/uuid"
)

// ResumeStore is a path-addressed, write-once file store for uploaded
// resumes. No versioning, no hashing, no dedup.
type ResumeStore struct {
	dir string
}

// NewResumeStore creates the upload directory if needed.
func NewResumeStore(dir string) (*ResumeStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &ResumeStore{dir: dir}, nil
}

// Dir returns the directory files are stored under.
func (s *ResumeStore) Dir() string {
	return s.dir
}

// Store writes an uploaded file under a collision-resistant name derived
// from the owner id and returns its public URL path.
func (s *ResumeStore) Store(ownerID uint64, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%d-%s.pdf", ownerID, time.Now().UnixNano(), uuid.NewString())

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create resume file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write resume file: %w", err)
	}

	return constants.ResumeBaseURL + "/" + name, nil
}

// Resolve maps a stored resume URL back to a path inside the upload
// directory. URLs that would escape the directory are rejected.
func (s *ResumeStore) Resolve(resumeURL string) (string, error) {
	name := path.Base(strings.TrimPrefix(resumeURL, constants.ResumeBaseURL+"/"))
	if name == "" || name == "." || name == ".." {
		return "", errors.New("invalid resume path")
	}
	return filepath.Join(s.dir, name), nil
}

// Exists reports whether the file behind a resume URL is present.
func (s *ResumeStore) Exists(resumeURL string) bool {
	p, err := s.Resolve(resumeURL)
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

// Delete unlinks the file behind a resume URL. Best-effort: a missing file
// is not an error.
func (s *ResumeStore) Delete(resumeURL string) error {
	p, err := s.Resolve(resumeURL)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
