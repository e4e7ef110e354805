package http

import (
	"encoding/json"
	"net/http"

	"github.com/skolapp/backend/examgen"
	"github.com/skolapp/backend/httpjson"
	"github.com/skolapp/backend/logger"
)

func (httpserver *HttpServer) generateExam(w http.ResponseWriter, r *http.Request) {
	type generateRequest struct {
		Subject string `json:"subject"`
		Grade   int    `json:"grade"`
		Chapter string `json:"chapter"`
		Parts   []struct {
			Title            string `json:"title"`
			Type             string `json:"type"`
			QuestionCount    int    `json:"questionCount"`
			MarksPerQuestion int    `json:"marksPerQuestion"`
		} `json:"parts"`
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.WriteErrorJson(w, "invalid request body", http.StatusBadRequest, "invalid_request_body")
		return
	}

	params := examgen.Params{
		Subject: req.Subject,
		Grade:   req.Grade,
		Chapter: req.Chapter,
	}
	for _, p := range req.Parts {
		params.Parts = append(params.Parts, examgen.PartPlan{
			Title:            p.Title,
			TypeLabel:        p.Type,
			QuestionCount:    p.QuestionCount,
			MarksPerQuestion: p.MarksPerQuestion,
		})
	}

	ex, err := httpserver.examGen.Generate(r.Context(), params)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapExam(ex, true))
}
