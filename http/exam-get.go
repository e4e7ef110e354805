package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/httpjson"
	"github.com/skolapp/backend/logger"
)

func (httpserver *HttpServer) getExam(w http.ResponseWriter, r *http.Request) {
	examId := chi.URLParam(r, "examId")

	ex, err := httpserver.examRepo.Get(r.Context(), examId)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	if ex == nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, exam.ErrExamNotFound())
		return
	}

	httpjson.WriteSuccessJson(w, mapExam(ex, false))
}
