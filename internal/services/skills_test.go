package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSkills(t *testing.T) {
	detector, err := NewSkillDetectorService()
	require.NoError(t, err)

	t.Run("detects skills case-insensitively", func(t *testing.T) {
		skills := detector.DetectSkills("Experienced in PYTHON, Docker and postgresql")

		assert.Contains(t, skills, "Python")
		assert.Contains(t, skills, "Docker")
		assert.Contains(t, skills, "Postgresql")
	})

	t.Run("substring matching finds java inside javascript", func(t *testing.T) {
		skills := detector.DetectSkills("Senior JavaScript engineer")

		assert.Contains(t, skills, "Javascript")
		assert.Contains(t, skills, "Java")
	})

	t.Run("multi-word phrases match", func(t *testing.T) {
		skills := detector.DetectSkills("Built machine learning pipelines and a REST API")

		assert.Contains(t, skills, "Machine Learning")
		assert.Contains(t, skills, "Rest Api")
	})

	t.Run("result is sorted and deduplicated", func(t *testing.T) {
		skills := detector.DetectSkills("docker docker kubernetes terraform")

		assert.True(t, sort.StringsAreSorted(skills))

		seen := make(map[string]int)
		for _, skill := range skills {
			seen[skill]++
		}
		for skill, count := range seen {
			assert.Equal(t, 1, count, "skill %q reported more than once", skill)
		}
	})

	t.Run("empty text matches nothing", func(t *testing.T) {
		assert.Empty(t, detector.DetectSkills(""))
	})
}
