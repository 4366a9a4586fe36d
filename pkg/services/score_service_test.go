package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/regsentry/regsentry/pkg/models"
)

func flagsOf(classes ...string) []ScoredFlag {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	out := make([]ScoredFlag, len(classes))
	for i, c := range classes {
		out[i] = ScoredFlag{ID: i + 1, Class: c, CreatedAt: base.Add(time.Duration(i) * time.Minute)}
	}
	return out
}

func TestCalculateScore(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    float64
	}{
		{name: "no flags", classes: nil, want: 100},
		{name: "all red is unbalanced", classes: []string{models.FlagRed, models.FlagRed}, want: 0},
		{name: "all green is unbalanced", classes: []string{models.FlagGreen, models.FlagGreen}, want: 0},
		{name: "single red", classes: []string{models.FlagRed}, want: 0},
		{name: "single green", classes: []string{models.FlagGreen}, want: 0},
		{name: "single yellow takes one penalty", classes: []string{models.FlagYellow}, want: 90},
		{name: "all yellow still scores", classes: []string{models.FlagYellow, models.FlagYellow}, want: 81},
		{name: "yellow then green", classes: []string{models.FlagYellow, models.FlagGreen}, want: 90},
		{name: "red run decays", classes: []string{models.FlagRed, models.FlagRed, models.FlagGreen}, want: 62},
		{name: "green resets red run", classes: []string{models.FlagRed, models.FlagGreen, models.FlagRed}, want: 60},
		{name: "yellow run decays", classes: []string{models.FlagYellow, models.FlagYellow, models.FlagGreen}, want: 81},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateScore(flagsOf(tt.classes...)), 1e-9)
		})
	}
}

func TestCalculateScore_ClampsAtZero(t *testing.T) {
	classes := make([]string, 30)
	for i := range classes {
		classes[i] = models.FlagRed
	}
	classes[29] = models.FlagGreen

	score := CalculateScore(flagsOf(classes...))
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
	assert.Zero(t, score)
}

func TestCalculateScore_OrderIndependentInput(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ordered := []ScoredFlag{
		{ID: 1, Class: models.FlagYellow, CreatedAt: base},
		{ID: 2, Class: models.FlagGreen, CreatedAt: base.Add(time.Minute)},
	}
	shuffled := []ScoredFlag{ordered[1], ordered[0]}

	assert.Equal(t, CalculateScore(ordered), CalculateScore(shuffled))
}

func TestHeuristicQuestions(t *testing.T) {
	questions := HeuristicQuestions("145.A.30", []string{"No recurrent training records found."})
	assert.GreaterOrEqual(t, len(questions), 3)
	assert.LessOrEqual(t, len(questions), 5)
	for _, q := range questions {
		assert.NotEmpty(t, q.Question)
		assert.GreaterOrEqual(t, q.Priority, 1)
		assert.LessOrEqual(t, q.Priority, 10)
		assert.Contains(t, q.Question, "145.A.30")
	}
}
