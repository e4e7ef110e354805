package evalsrvc

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/skolapp/backend/exam"
)

// mcqAnswerRe matches "question number -> option letter" lines on an
// answer sheet: "1. B", "Q3: (c)", "2) ans: D". Only a single letter a-f
// at the end of the line is accepted so worked answers do not match.
var mcqAnswerRe = regexp.MustCompile(`(?mi)^[ \t]*(?:q(?:uestion)?[ \t]*)?(\d{1,3})[ \t]*[.):-]?[ \t]*(?:ans(?:wer)?[ \t]*[:\-]?[ \t]*)?\(?([a-f])\)?[ \t]*$`)

// ExtractMcq parses MCQ answer guesses out of raw OCR text. mcqCount is
// the number of MCQ questions on the exam and only drives the confidence
// ratio. Duplicate question numbers keep the first occurrence.
func ExtractMcq(rawText string, mcqCount int) McqExtraction {
	extraction := McqExtraction{RawText: rawText}

	seen := map[int]bool{}
	for _, m := range mcqAnswerRe.FindAllStringSubmatch(rawText, -1) {
		num, err := strconv.Atoi(m[1])
		if err != nil || seen[num] {
			continue
		}
		seen[num] = true
		extraction.Guesses = append(extraction.Guesses, McqGuess{
			QuestionNumber: num,
			Option:         strings.ToUpper(m[2]),
		})
	}

	if mcqCount > 0 {
		extraction.Confidence = float64(len(extraction.Guesses)) / float64(mcqCount)
		if extraction.Confidence > 1 {
			extraction.Confidence = 1
		}
	}
	return extraction
}

// EvaluateSheet scores extracted MCQ guesses against the exam. Question
// numbers are 1-based positions within the exam's MCQ questions. A guessed
// option letter is resolved to the option text at that index; guesses for
// unknown question numbers are dropped. TotalMarks counts every MCQ
// question on the exam, answered or not, same denominator as a direct MCQ
// submission.
func EvaluateSheet(ex *exam.Exam, extraction McqExtraction) McqSheetEvaluation {
	questions := ex.McqQuestions()
	eval := McqSheetEvaluation{Confidence: extraction.Confidence}
	for _, q := range questions {
		eval.TotalMarks += q.Marks
	}

	for _, guess := range extraction.Guesses {
		idx := guess.QuestionNumber - 1
		if idx < 0 || idx >= len(questions) {
			continue
		}
		q := questions[idx]

		selected := resolveOption(q.Options, guess.Option)
		correct := strings.EqualFold(selected, q.CorrectAnswer)

		awarded := 0
		if correct {
			awarded = q.Marks
		}
		eval.Answers = append(eval.Answers, McqAnswerEval{
			QuestionID:     q.ID,
			QuestionNumber: guess.QuestionNumber,
			SelectedOption: selected,
			CorrectAnswer:  q.CorrectAnswer,
			IsCorrect:      correct,
			MarksAwarded:   awarded,
			MaxMarks:       q.Marks,
		})
		eval.Score += awarded
	}
	return eval
}

// resolveOption maps an option letter (A, B, ...) to the option text. If
// the letter is out of range the letter itself is kept so the mismatch is
// visible in the evaluation.
func resolveOption(options []string, letter string) string {
	if len(letter) != 1 {
		return letter
	}
	idx := int(letter[0] - 'A')
	if idx < 0 || idx >= len(options) {
		return letter
	}
	return options[idx]
}
