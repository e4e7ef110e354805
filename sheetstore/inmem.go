package sheetstore

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
)

// InMemSheetStore keeps uploaded files in memory. Used by tests and local
// runs without S3 credentials.
type InMemSheetStore struct {
	files *xsync.MapOf[string, []byte]
}

func NewInMemSheetStore() *InMemSheetStore {
	return &InMemSheetStore{
		files: xsync.NewMapOf[string, []byte](),
	}
}

func (s *InMemSheetStore) Save(ctx context.Context, content []byte, filename string, examId string, studentId string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExts[ext]; !ok {
		return "", ErrUnsupportedFileType(ext)
	}
	key := fmt.Sprintf("sheets/%s/%s/%s%s", examId, studentId, uuid.New().String(), ext)
	s.files.Store(key, content)
	return key, nil
}

func (s *InMemSheetStore) Download(ctx context.Context, key string) ([]byte, error) {
	content, ok := s.files.Load(key)
	if !ok {
		return nil, fmt.Errorf("file %s not found", key)
	}
	return content, nil
}

func (s *InMemSheetStore) Delete(ctx context.Context, key string) error {
	s.files.Delete(key)
	return nil
}
