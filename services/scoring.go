package services

import (
	"fmt"

	"github.com/Kimiqo/TechCrush-individual-project/models"
)

// Answer is one submitted selection. It is never persisted on its own.
type Answer struct {
	QuestionID       uint `json:"questionId"`
	SelectedOptionID int  `json:"selectedOptionId"`
}

type ScoreResult struct {
	Score      int    `json:"score"`
	Total      int    `json:"total"`
	Percentage string `json:"percentage"`
}

// ScoreAnswers grades a submission against the quiz answer key. Total counts
// the quiz's questions, not the submitted answers. Answers referencing unknown
// question ids are ignored. The scan keeps no seen-set, so duplicate answers
// for the same question each count on their own.
func ScoreAnswers(key []models.Question, answers []Answer) (ScoreResult, error) {
	total := len(key)
	if total == 0 {
		return ScoreResult{}, ErrEmptyQuiz
	}

	correct := make(map[uint]int, total)
	for _, q := range key {
		correct[q.ID] = q.CorrectOptionID
	}

	score := 0
	for _, a := range answers {
		if want, ok := correct[a.QuestionID]; ok && want == a.SelectedOptionID {
			score++
		}
	}

	return ScoreResult{
		Score:      score,
		Total:      total,
		Percentage: fmt.Sprintf("%.2f", float64(score)/float64(total)*100),
	}, nil
}
