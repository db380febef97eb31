package services

import (
	_ "embed"
	"encoding/csv"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed data/skills.csv
var skillVocabularyData string

type skillEntry struct {
	Category string
	Phrase   string // lowercase phrase matched against the text
	Label    string // canonical label reported to the caller
}

var (
	skillOnce    sync.Once
	skillEntries []skillEntry
	skillLoadErr error
)

// loadSkillVocabulary parses the embedded skill taxonomy once per process.
func loadSkillVocabulary() ([]skillEntry, error) {
	skillOnce.Do(func() {
		reader := csv.NewReader(strings.NewReader(skillVocabularyData))
		records, err := reader.ReadAll()
		if err != nil {
			skillLoadErr = fmt.Errorf("failed to parse skill vocabulary: %w", err)
			return
		}

		for i, record := range records {
			if i == 0 {
				// header row
				continue
			}
			if len(record) != 3 {
				skillLoadErr = fmt.Errorf("skill vocabulary row %d: expected 3 columns, got %d", i+1, len(record))
				return
			}
			skillEntries = append(skillEntries, skillEntry{
				Category: record[0],
				Phrase:   strings.ToLower(strings.TrimSpace(record[1])),
				Label:    strings.TrimSpace(record[2]),
			})
		}
	})

	return skillEntries, skillLoadErr
}

type SkillDetectorService interface {
	DetectSkills(text string) []string
}

type skillDetectorService struct {
	vocabulary []skillEntry
}

func NewSkillDetectorService() (SkillDetectorService, error) {
	vocabulary, err := loadSkillVocabulary()
	if err != nil {
		return nil, err
	}

	return &skillDetectorService{vocabulary: vocabulary}, nil
}

// DetectSkills implements SkillDetectorService.
//
// A skill is present iff its phrase appears as a literal substring of the
// lowercased text. Matching is deliberately not word-boundary-aware: "java"
// matches inside "javascript". The result is deduplicated and sorted.
func (s *skillDetectorService) DetectSkills(text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]struct{})
	var matched []string
	for _, entry := range s.vocabulary {
		if !strings.Contains(lower, entry.Phrase) {
			continue
		}
		if _, ok := seen[entry.Label]; ok {
			continue
		}
		seen[entry.Label] = struct{}{}
		matched = append(matched, entry.Label)
	}

	sort.Strings(matched)
	return matched
}
