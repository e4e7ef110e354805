package rubric

// Step is one scoring step of a rubric. Steps are ordered and their marks
// sum to the question's total marks.
type Step struct {
	Number      int
	Description string
	Marks       int
}

// Rubric is the ordered list of scoring steps for one subjective question.
type Rubric struct {
	ExamID     string
	QuestionID string
	Steps      []Step
}

func (r Rubric) TotalMarks() int {
	sum := 0
	for _, s := range r.Steps {
		sum += s.Marks
	}
	return sum
}

// Validate checks the save-time invariant: at least one step, every step
// worth at least one mark, step numbers sequential, and the sum equal to
// the question's total marks. Rubrics are never re-validated at evaluation
// time, so a violation here must be rejected.
func (r Rubric) Validate(questionTotal int) error {
	if len(r.Steps) == 0 {
		return ErrRubricNoSteps()
	}
	sum := 0
	for i, s := range r.Steps {
		if s.Marks < 1 {
			return ErrRubricStepMarksBelowOne(i + 1)
		}
		if s.Number != i+1 {
			return ErrRubricStepsOutOfOrder()
		}
		sum += s.Marks
	}
	if sum != questionTotal {
		return ErrRubricMarksSumMismatch(sum, questionTotal)
	}
	return nil
}
