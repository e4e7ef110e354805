package http

import (
	"encoding/json"
	"net/http"

	"github.com/skolapp/backend/httpjson"
	"github.com/skolapp/backend/logger"
	"github.com/skolapp/backend/rubric"
)

func (httpserver *HttpServer) putRubric(w http.ResponseWriter, r *http.Request) {
	type rubricRequest struct {
		ExamID     string `json:"examId"`
		QuestionID string `json:"questionId"`
		Steps      []struct {
			Number      int    `json:"number"`
			Description string `json:"description"`
			Marks       int    `json:"marks"`
		} `json:"steps"`
	}

	var req rubricRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteErrorJson(w, "invalid request body", http.StatusBadRequest, "invalid_request_body")
		return
	}

	rub := rubric.Rubric{
		ExamID:     req.ExamID,
		QuestionID: req.QuestionID,
	}
	for _, s := range req.Steps {
		rub.Steps = append(rub.Steps, rubric.Step{
			Number:      s.Number,
			Description: s.Description,
			Marks:       s.Marks,
		})
	}

	if err := httpserver.rubricSrvc.Put(r.Context(), rub); err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, map[string]any{
		"examId":     rub.ExamID,
		"questionId": rub.QuestionID,
		"steps":      len(rub.Steps),
	})
}
