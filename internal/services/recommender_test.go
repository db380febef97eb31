package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommend(t *testing.T) {
	recommender := NewRecommenderService()

	manySkills := []string{"Python", "Docker", "Kubernetes", "Aws", "Terraform"}

	t.Run("good score with enough skills gets a single line", func(t *testing.T) {
		got := recommender.Recommend(80, nil, manySkills)

		assert.Equal(t, "Great! Your resume has a good ATS score. Keep up the good work!", got)
	})

	t.Run("low score with gaps gets all three lines", func(t *testing.T) {
		got := recommender.Recommend(40, []string{"kubernetes", "terraform"}, []string{"Python"})

		lines := strings.Split(got, "\n")
		assert.Len(t, lines, 3)
		assert.Equal(t, "Your resume has a low ATS score. Consider adding more relevant keywords from the job description.", lines[0])
		assert.Equal(t, "Consider adding these keywords: kubernetes, terraform", lines[1])
		assert.Equal(t, "Try to highlight more technical skills relevant to the job description.", lines[2])
	})

	t.Run("score tier boundaries", func(t *testing.T) {
		assert.Contains(t, recommender.Recommend(49.99, nil, manySkills), "low ATS score")
		assert.Contains(t, recommender.Recommend(50, nil, manySkills), "moderate ATS score")
		assert.Contains(t, recommender.Recommend(69.99, nil, manySkills), "moderate ATS score")
		assert.Contains(t, recommender.Recommend(70, nil, manySkills), "good ATS score")
	})

	t.Run("keyword suggestions are capped at five", func(t *testing.T) {
		missing := []string{"one", "two", "three", "four", "five", "six", "seven"}
		got := recommender.Recommend(80, missing, manySkills)

		assert.Contains(t, got, "Consider adding these keywords: one, two, three, four, five")
		assert.NotContains(t, got, "six")
	})

	t.Run("fewer than five matched skills triggers the highlight nudge", func(t *testing.T) {
		got := recommender.Recommend(80, nil, manySkills[:4])

		assert.Contains(t, got, "Try to highlight more technical skills")
	})
}
