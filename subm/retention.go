package subm

import (
	"context"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/skolapp/backend/logger"
	"github.com/skolapp/backend/s3bucket"
	"github.com/skolapp/backend/sheetstore"
)

// RetentionPolicy runs after a submission completes: the OCR transcript is
// archived compressed, and the original sheet photos are deleted when
// configured to. Everything here is best effort, a failure never fails the
// submission.
type RetentionPolicy struct {
	sheets       sheetstore.Storage
	archive      *s3bucket.S3Bucket // nil disables transcript archival
	deleteSheets bool
}

func NewRetentionPolicy(sheets sheetstore.Storage, archive *s3bucket.S3Bucket, deleteSheets bool) *RetentionPolicy {
	return &RetentionPolicy{
		sheets:       sheets,
		archive:      archive,
		deleteSheets: deleteSheets,
	}
}

// Apply mutates subm in place: deleted sheet files are removed from
// FileKeys. The caller persists the submission afterwards.
func (p *RetentionPolicy) Apply(ctx context.Context, subm *WrittenSubmission) {
	if p == nil {
		return
	}
	log := logger.FromContext(ctx)

	if p.archive != nil && subm.OcrText != "" {
		if err := p.archiveTranscript(ctx, subm); err != nil {
			log.Warn("failed to archive ocr transcript", "error", err)
		}
	}

	if !p.deleteSheets {
		return
	}
	var kept []string
	for _, key := range subm.FileKeys {
		if err := p.sheets.Delete(ctx, key); err != nil {
			log.Warn("failed to delete sheet file", "key", key, "error", err)
			kept = append(kept, key)
		}
	}
	subm.FileKeys = kept
}

func (p *RetentionPolicy) archiveTranscript(ctx context.Context, subm *WrittenSubmission) error {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	compressed := enc.EncodeAll([]byte(subm.OcrText), nil)
	enc.Close()

	key := fmt.Sprintf("ocr-archive/%s.txt.zst", subm.ID)
	if _, err := p.archive.Upload(ctx, compressed, key, "application/zstd"); err != nil {
		return fmt.Errorf("failed to upload transcript archive: %w", err)
	}
	return nil
}
