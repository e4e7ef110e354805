package evalsrvc

import (
	"regexp"
	"strings"
)

// questionMarkerRe matches question-number markers at line starts: "Q1",
// "Question 1", "1.", "1)". OCR output is noisy so the match is lenient.
// A bare number needs trailing punctuation to count as a marker; a "Q"/
// "Question" prefix is enough on its own.
var questionMarkerRe = regexp.MustCompile(`(?mi)^[ \t]*(?:q(?:uestion)?[ \t]*\d{1,3}[.):]?|\d{1,3}[.):])[ \t]*`)

// SplitAnswers cuts the submission's full OCR text into one answer chunk
// per question. Chunks are assigned to questions in order of appearance.
// With no markers at all the entire text is given to every question, which
// degrades gracefully but imprecisely. With fewer chunks than questions the
// remaining questions get an empty answer; they are scored zero, not
// skipped.
func SplitAnswers(ocrText string, questionCount int) []string {
	answers := make([]string, questionCount)
	if questionCount == 0 {
		return answers
	}

	text := strings.TrimSpace(ocrText)
	if text == "" {
		return answers
	}

	markers := questionMarkerRe.FindAllStringIndex(text, -1)
	if len(markers) == 0 {
		for i := range answers {
			answers[i] = text
		}
		return answers
	}

	for i, marker := range markers {
		if i >= questionCount {
			break
		}
		start := marker[1] // answer text begins after the marker
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		answers[i] = strings.TrimSpace(text[start:end])
	}
	return answers
}
