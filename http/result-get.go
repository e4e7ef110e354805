package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skolapp/backend/httpjson"
	"github.com/skolapp/backend/logger"
)

func (httpserver *HttpServer) getResult(w http.ResponseWriter, r *http.Request) {
	examId := chi.URLParam(r, "examId")
	studentId := chi.URLParam(r, "studentId")

	res, err := httpserver.resultBldr.Build(r.Context(), examId, studentId)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, res)
}
