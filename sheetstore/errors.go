package sheetstore

import (
	"fmt"

	"github.com/skolapp/backend/srvcerror"
)

const ErrCodeUnsupportedFileType = "unsupported_file_type"

func ErrUnsupportedFileType(ext string) *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeUnsupportedFileType,
		fmt.Sprintf("file type %q is not allowed, upload jpg, jpeg, png, gif, pdf or webp", ext),
	)
}

const ErrCodeFileContentMismatch = "file_content_mismatch"

func ErrFileContentMismatch(ext string) *srvcerror.Error {
	return srvcerror.NewValidation(
		ErrCodeFileContentMismatch,
		fmt.Sprintf("file content does not match its %q extension", ext),
	)
}
