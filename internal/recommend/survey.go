package recommend

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Profile is the categorical attribute set the similarity search runs
// over. Survey respondents and registered users encode the same way.
type Profile struct {
	AgeBracket       string   `json:"age_bracket"`
	Gender           string   `json:"gender"`
	TimeCommitment   string   `json:"time_commitment"`
	PreferredTime    string   `json:"preferred_time"`
	ExistingHabits   []string `json:"existing_habits"`
	ImprovementAreas []string `json:"improvement_areas"`
	Barriers         []string `json:"barriers"`
}

func LoadSurvey(path string) ([]Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open survey data: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse survey data: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("survey data %s is empty", path)
	}

	// Header: timestamp,age,gender,existing_habits,improvement_areas,
	// time_commitment,preferred_time,barriers
	respondents := make([]Profile, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < 8 {
			return nil, fmt.Errorf("survey row %d has %d columns, want 8", i+2, len(rec))
		}
		respondents = append(respondents, Profile{
			AgeBracket:       rec[1],
			Gender:           rec[2],
			ExistingHabits:   splitMulti(rec[3]),
			ImprovementAreas: splitMulti(rec[4]),
			TimeCommitment:   rec[5],
			PreferredTime:    rec[6],
			Barriers:         splitMulti(rec[7]),
		})
	}

	return respondents, nil
}

// splitMulti breaks a comma-separated multi-select cell into trimmed
// values, dropping empties.
func splitMulti(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return values
}
