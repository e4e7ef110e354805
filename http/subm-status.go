package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/skolapp/backend/httpjson"
	"github.com/skolapp/backend/logger"
)

func (httpserver *HttpServer) submissionStatus(w http.ResponseWriter, r *http.Request) {
	submId, err := uuid.Parse(chi.URLParam(r, "submissionId"))
	if err != nil {
		httpjson.WriteErrorJson(w, "invalid submission id",
			http.StatusBadRequest, "invalid_submission_id")
		return
	}

	res, err := httpserver.submSrvc.GetStatus(r.Context(), submId)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapWrittenSubmission(res))
}
