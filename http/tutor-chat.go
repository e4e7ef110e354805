package http

import (
	"encoding/json"
	"net/http"

	"github.com/skolapp/backend/httpjson"
	"github.com/skolapp/backend/logger"
)

func (httpserver *HttpServer) tutorChat(w http.ResponseWriter, r *http.Request) {
	type chatRequest struct {
		ExamID   string `json:"examId"`
		Question string `json:"question"`
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteErrorJson(w, "invalid request body", http.StatusBadRequest, "invalid_request_body")
		return
	}

	reply, err := httpserver.tutorSrvc.Chat(r.Context(), req.ExamID, req.Question)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]string{
		"examId": req.ExamID,
		"reply":  reply,
	})
}
