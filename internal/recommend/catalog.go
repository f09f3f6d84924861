package recommend

import (
	"encoding/csv"
	"fmt"
	"os"

	"habitTrackerAPI/utils"
)

// CatalogHabit is one row of the static habit catalog. The catalog is
// configuration data loaded once at startup.
type CatalogHabit struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	TimeRequired string `json:"time_required"`
	Difficulty   string `json:"difficulty"`
	MinMinutes   int    `json:"min_minutes"`
}

func LoadCatalog(path string) ([]CatalogHabit, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open habit catalog: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse habit catalog: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("habit catalog %s is empty", path)
	}

	// Header: name,category,description,time_required,difficulty
	catalog := make([]CatalogHabit, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) < 5 {
			return nil, fmt.Errorf("habit catalog row %d has %d columns, want 5", i+2, len(rec))
		}
		catalog = append(catalog, CatalogHabit{
			Name:         rec[0],
			Category:     rec[1],
			Description:  rec[2],
			TimeRequired: rec[3],
			Difficulty:   rec[4],
			MinMinutes:   utils.ParseRequiredMinutes(rec[3]),
		})
	}

	return catalog, nil
}
