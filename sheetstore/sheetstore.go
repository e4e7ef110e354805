package sheetstore

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/skolapp/backend/logger"
	"github.com/skolapp/backend/s3bucket"
	"github.com/wailsapp/mimetype"
)

// Storage persists uploaded answer-sheet files. The returned key is what
// submission records carry around and what Download/Delete accept.
type Storage interface {
	Save(ctx context.Context, content []byte, filename string, examId string, studentId string) (string, error)
	Download(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// allowed answer-sheet upload extensions
var allowedExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".pdf":  "application/pdf",
	".webp": "image/webp",
}

// SheetStore stores answer sheets in S3 under
// sheets/{examId}/{studentId}/{uuid}{ext}.
type SheetStore struct {
	bucket      *s3bucket.S3Bucket
	maxImageDim int // larger images are downscaled before storage
}

func NewSheetStore(bucket *s3bucket.S3Bucket, maxImageDim int) *SheetStore {
	return &SheetStore{
		bucket:      bucket,
		maxImageDim: maxImageDim,
	}
}

func (s *SheetStore) Save(ctx context.Context, content []byte, filename string, examId string, studentId string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	mediaType, ok := allowedExts[ext]
	if !ok {
		return "", ErrUnsupportedFileType(ext)
	}

	detected := mimetype.Detect(content)
	if !detected.Is(mediaType) {
		return "", ErrFileContentMismatch(ext).SetDebug(
			fmt.Errorf("detected media type %s for extension %s", detected.String(), ext))
	}

	if ext == ".jpg" || ext == ".jpeg" || ext == ".png" {
		downscaled, err := downscale(content, ext, s.maxImageDim)
		if err != nil {
			// keep the original if decoding fails, OCR may still cope
			logger.FromContext(ctx).Warn("failed to downscale sheet image", "error", err)
		} else {
			content = downscaled
		}
	}

	key := fmt.Sprintf("sheets/%s/%s/%s%s", examId, studentId, uuid.New().String(), ext)
	_, err := s.bucket.Upload(ctx, content, key, mediaType)
	if err != nil {
		return "", fmt.Errorf("failed to upload sheet: %w", err)
	}
	return key, nil
}

func (s *SheetStore) Download(ctx context.Context, key string) ([]byte, error) {
	return s.bucket.Download(ctx, key)
}

func (s *SheetStore) Delete(ctx context.Context, key string) error {
	return s.bucket.Delete(ctx, key)
}

// downscale re-encodes images whose longer side exceeds maxDim. Phone
// photos easily reach 4000px which only slows the OCR model down.
func downscale(content []byte, ext string, maxDim int) ([]byte, error) {
	if maxDim <= 0 {
		return content, nil
	}
	img, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return content, nil
	}
	resized := resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Lanczos3)

	buf := new(bytes.Buffer)
	if ext == ".png" {
		err = png.Encode(buf, resized)
	} else {
		err = jpeg.Encode(buf, resized, &jpeg.Options{Quality: 85})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
