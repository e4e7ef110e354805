package exam

import "strings"

// QuestionKind distinguishes auto-scorable MCQ parts from AI-evaluated
// subjective parts. It is resolved once when an exam enters the system;
// downstream code never matches on type labels again.
type QuestionKind string

const (
	KindMcq        QuestionKind = "mcq"
	KindSubjective QuestionKind = "subjective"
)

// KindFromLabel maps a free-form question-type label ("MCQ", "Multiple
// Choice Questions (MCQ)", "Short Answer", ...) to a kind. Anything that
// does not mention MCQ is subjective.
func KindFromLabel(label string) QuestionKind {
	if strings.Contains(strings.ToLower(label), "mcq") {
		return KindMcq
	}
	return KindSubjective
}

type Question struct {
	ID      string
	Text    string
	Options []string // empty for subjective questions
	// CorrectAnswer is the exact option text for MCQ questions and a full
	// worked model answer for subjective ones.
	CorrectAnswer string
}

type Part struct {
	Title            string
	Kind             QuestionKind
	MarksPerQuestion int
	Questions        []Question
}

type Exam struct {
	ID      string
	Subject string
	Grade   int
	Chapter string
	Parts   []Part
}

// MarkedQuestion is a question together with the marks it carries, flattened
// out of its part.
type MarkedQuestion struct {
	Question
	Kind      QuestionKind
	Marks     int
	PartTitle string
}

// McqQuestions returns all MCQ questions with their per-question marks.
func (e *Exam) McqQuestions() []MarkedQuestion {
	return e.questionsOfKind(KindMcq)
}

// SubjectiveQuestions returns all subjective questions with their marks.
func (e *Exam) SubjectiveQuestions() []MarkedQuestion {
	return e.questionsOfKind(KindSubjective)
}

func (e *Exam) questionsOfKind(kind QuestionKind) []MarkedQuestion {
	var res []MarkedQuestion
	for _, part := range e.Parts {
		if part.Kind != kind {
			continue
		}
		for _, q := range part.Questions {
			res = append(res, MarkedQuestion{
				Question:  q,
				Kind:      part.Kind,
				Marks:     part.MarksPerQuestion,
				PartTitle: part.Title,
			})
		}
	}
	return res
}

// FindQuestion looks a question up by id across all parts.
func (e *Exam) FindQuestion(questionId string) (MarkedQuestion, bool) {
	for _, part := range e.Parts {
		for _, q := range part.Questions {
			if q.ID == questionId {
				return MarkedQuestion{
					Question:  q,
					Kind:      part.Kind,
					Marks:     part.MarksPerQuestion,
					PartTitle: part.Title,
				}, true
			}
		}
	}
	return MarkedQuestion{}, false
}
