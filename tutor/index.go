package tutor

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/skolapp/backend/exam"
)

// chunk is one embedded piece of exam content.
type chunk struct {
	text string
	vec  []float32
}

// examIndex is the in-memory embedding index for one exam. Built once per
// exam on first use.
type examIndex struct {
	chunks []chunk
}

// chunkExam slices an exam into retrieval units: one header chunk plus one
// chunk per question carrying its model answer.
func chunkExam(ex *exam.Exam) []string {
	var texts []string
	texts = append(texts, fmt.Sprintf("%s exam for grade %d, chapter: %s",
		ex.Subject, ex.Grade, ex.Chapter))

	for _, part := range ex.Parts {
		for _, q := range part.Questions {
			var b strings.Builder
			fmt.Fprintf(&b, "Part %q, question %s: %s\n", part.Title, q.ID, q.Text)
			if len(q.Options) > 0 {
				fmt.Fprintf(&b, "Options: %s\n", strings.Join(q.Options, "; "))
			}
			fmt.Fprintf(&b, "Answer: %s", q.CorrectAnswer)
			texts = append(texts, b.String())
		}
	}
	return texts
}

func buildIndex(ctx context.Context, embed Embedder, ex *exam.Exam) (*examIndex, error) {
	texts := chunkExam(ex)
	idx := &examIndex{chunks: make([]chunk, 0, len(texts))}
	for _, text := range texts {
		vec, err := embed.Embed(ctx, text)
		if err != nil {
			return nil, fmt.Errorf("failed to embed exam chunk: %w", err)
		}
		idx.chunks = append(idx.chunks, chunk{text: text, vec: vec})
	}
	return idx, nil
}

// topK returns the k chunks most similar to the query vector, best first.
func (idx *examIndex) topK(queryVec []float32, k int) []string {
	type scored struct {
		text string
		sim  float64
	}
	ranked := make([]scored, 0, len(idx.chunks))
	for _, c := range idx.chunks {
		ranked = append(ranked, scored{text: c.text, sim: cosine(queryVec, c.vec)})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].sim > ranked[j].sim })

	if k > len(ranked) {
		k = len(ranked)
	}
	res := make([]string, k)
	for i := 0; i < k; i++ {
		res[i] = ranked[i].text
	}
	return res
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
