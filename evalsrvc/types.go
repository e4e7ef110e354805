package evalsrvc

// StepAnalysis is the per-rubric-step outcome inside a subjective
// evaluation. For rubric-free evaluations the steps are the model's own.
type StepAnalysis struct {
	StepNumber   int    `json:"stepNumber"`
	Description  string `json:"description"`
	IsCorrect    bool   `json:"isCorrect"`
	MarksAwarded int    `json:"marksAwarded"`
	MaxMarks     int    `json:"maxMarks"`
	Feedback     string `json:"feedback"`
}

// SubjectiveResult is the outcome of evaluating one subjective question.
// The earned/step sums come straight from the model and are passed through
// unverified.
type SubjectiveResult struct {
	QuestionID      string         `json:"questionId"`
	EarnedMarks     int            `json:"earnedMarks"`
	MaxMarks        int            `json:"maxMarks"`
	IsFullyCorrect  bool           `json:"isFullyCorrect"`
	ExpectedAnswer  string         `json:"expectedAnswer"`
	StudentAnswer   string         `json:"studentAnswer"`
	StepAnalysis    []StepAnalysis `json:"stepAnalysis"`
	OverallFeedback string         `json:"overallFeedback"`
}

// McqGuess is one (question number -> option) pair read off a sheet.
type McqGuess struct {
	QuestionNumber int    `json:"questionNumber"`
	Option         string `json:"option"`
}

// McqExtraction holds the raw OCR text of a sheet and the MCQ answers
// parsed out of it. Confidence is the share of the exam's MCQ questions a
// guess was found for.
type McqExtraction struct {
	RawText    string     `json:"rawText"`
	Guesses    []McqGuess `json:"guesses"`
	Confidence float64    `json:"confidence"`
}

// McqAnswerEval is one sheet-extracted MCQ answer compared against the
// exam's correct answer.
type McqAnswerEval struct {
	QuestionID     string `json:"questionId"`
	QuestionNumber int    `json:"questionNumber"`
	SelectedOption string `json:"selectedOption"`
	CorrectAnswer  string `json:"correctAnswer"`
	IsCorrect      bool   `json:"isCorrect"`
	MarksAwarded   int    `json:"marksAwarded"`
	MaxMarks       int    `json:"maxMarks"`
}

// McqSheetEvaluation is the scored result of all MCQ answers extracted
// from an uploaded sheet. When present it takes precedence over a directly
// submitted MCQ answer set.
type McqSheetEvaluation struct {
	Answers    []McqAnswerEval `json:"answers"`
	Score      int             `json:"score"`
	TotalMarks int             `json:"totalMarks"`
	Confidence float64         `json:"confidence"`
}
