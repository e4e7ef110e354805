package http

import (
	"encoding/json"
	"net/http"

	"github.com/skolapp/backend/auth"
	"github.com/skolapp/backend/httpjson"
	"github.com/skolapp/backend/logger"
	"github.com/skolapp/backend/subm"
)

func (httpserver *HttpServer) submitMcq(w http.ResponseWriter, r *http.Request) {
	type mcqRequest struct {
		ExamID    string `json:"examId"`
		StudentID string `json:"studentId"`
		Answers   []struct {
			QuestionID     string `json:"questionId"`
			SelectedOption string `json:"selectedOption"`
		} `json:"answers"`
	}

	var req mcqRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteErrorJson(w, "invalid request body", http.StatusBadRequest, "invalid_request_body")
		return
	}

	answers := make([]subm.McqAnswer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, subm.McqAnswer{
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
		})
	}

	studentId := req.StudentID
	if studentId == "" {
		if claims := auth.ClaimsFromContext(r.Context()); claims != nil {
			studentId = claims.StudentID
		}
	}

	res, err := httpserver.submSrvc.SubmitMcq(r.Context(), req.ExamID, studentId, answers)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapMcqSubmission(res))
}
