package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/skolapp/backend/auth"
	"github.com/skolapp/backend/httpjson"
	"github.com/skolapp/backend/logger"
	"github.com/skolapp/backend/subm"
)

func (httpserver *HttpServer) uploadWritten(w http.ResponseWriter, r *http.Request) {
	maxBytes := int64(httpserver.maxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		httpjson.WriteErrorJson(w,
			fmt.Sprintf("invalid multipart body (limit %d MB)", httpserver.maxUploadMB),
			http.StatusBadRequest, "invalid_request_body")
		return
	}

	examId := r.FormValue("examId")
	studentId := r.FormValue("studentId")
	if studentId == "" {
		if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
			studentId = claims.StudentID
		}
	}

	var files []subm.UploadFile
	if r.MultipartForm != nil {
		for _, headers := range r.MultipartForm.File {
			for _, header := range headers {
				f, err := header.Open()
				if err != nil {
					httpjson.WriteErrorJson(w, "failed to read uploaded file",
						http.StatusBadRequest, "invalid_request_body")
					return
				}
				content, err := io.ReadAll(f)
				f.Close()
				if err != nil {
					httpjson.WriteErrorJson(w, "failed to read uploaded file",
						http.StatusBadRequest, "invalid_request_body")
					return
				}
				files = append(files, subm.UploadFile{
					Filename: header.Filename,
					Content:  content,
				})
			}
		}
	}

	res, err := httpserver.submSrvc.UploadWritten(r.Context(), examId, studentId, files)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteAcceptedJson(w, mapWrittenSubmission(res))
}
