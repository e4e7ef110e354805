// Package tutor answers student questions about an exam's material with
// retrieval-augmented chat: exam content is embedded once, the most
// relevant chunks are fed to the model alongside the question.
package tutor

import (
	"context"
	"fmt"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/skolapp/backend/exam"
	"github.com/skolapp/backend/srvcerror"
)

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type Chatter interface {
	CompleteText(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// LLM is the combined model boundary the tutor needs.
type LLM interface {
	Embedder
	Chatter
}

type Srvc struct {
	llm     LLM
	exams   exam.Repo
	indexes *xsync.MapOf[string, *examIndex]
	topK    int
}

func NewSrvc(llm LLM, exams exam.Repo, topK int) *Srvc {
	if topK < 1 {
		topK = 4
	}
	return &Srvc{
		llm:     llm,
		exams:   exams,
		indexes: xsync.NewMapOf[string, *examIndex](),
		topK:    topK,
	}
}

const tutorSystemPrompt = `You are a patient school tutor helping a student understand exam material.
Use the provided exam excerpts to ground your explanation.
Explain step by step at the student's grade level. If the question is unrelated to the excerpts, say so and answer briefly from general knowledge.`

// Chat answers one student question about the given exam.
func (s *Srvc) Chat(ctx context.Context, examId string, question string) (string, error) {
	if examId == "" {
		return "", ErrMissingExamId()
	}
	if strings.TrimSpace(question) == "" {
		return "", ErrEmptyQuestion()
	}

	idx, err := s.indexFor(ctx, examId)
	if err != nil {
		return "", err
	}

	queryVec, err := s.llm.Embed(ctx, question)
	if err != nil {
		return "", srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to embed question: %w", err))
	}

	var b strings.Builder
	b.WriteString("Exam excerpts:\n")
	for _, text := range idx.topK(queryVec, s.topK) {
		b.WriteString("---\n")
		b.WriteString(text)
		b.WriteString("\n")
	}
	b.WriteString("---\n\nStudent question: ")
	b.WriteString(question)

	reply, err := s.llm.CompleteText(ctx, tutorSystemPrompt, b.String())
	if err != nil {
		return "", srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("tutor completion failed: %w", err))
	}
	return reply, nil
}

func (s *Srvc) indexFor(ctx context.Context, examId string) (*examIndex, error) {
	if idx, ok := s.indexes.Load(examId); ok {
		return idx, nil
	}

	ex, err := s.exams.Get(ctx, examId)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(
			fmt.Errorf("failed to load exam %s: %w", examId, err))
	}
	if ex == nil {
		return nil, exam.ErrExamNotFound()
	}

	idx, err := buildIndex(ctx, s.llm, ex)
	if err != nil {
		return nil, srvcerror.ErrInternalSE().SetDebug(err)
	}
	s.indexes.Store(examId, idx)
	return idx, nil
}
