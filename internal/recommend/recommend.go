package recommend

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"habitTrackerAPI/utils"
)

const (
	DefaultRecommendations = 5

	// Habits may run slightly over the committed time and still match.
	timeToleranceMinutes = 5

	neighborCount = 3
)

// SimilarUserHabit is a habit practiced by the user's nearest survey
// neighbors, ranked by how many of them have it.
type SimilarUserHabit struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Recommendations struct {
	Habits           []CatalogHabit     `json:"habits"`
	PopularWithPeers []SimilarUserHabit `json:"popular_with_peers"`
}

// Recommender combines catalog filter-and-rank with a nearest-neighbor
// search over the survey dataset.
type Recommender struct {
	catalog []CatalogHabit
	survey  []Profile
	encoder *Encoder
	index   *NeighborIndex
}

func NewRecommender(catalogPath, surveyPath string) (*Recommender, error) {
	catalog, err := LoadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}
	survey, err := LoadSurvey(surveyPath)
	if err != nil {
		return nil, err
	}
	return newRecommender(catalog, survey), nil
}

func newRecommender(catalog []CatalogHabit, survey []Profile) *Recommender {
	encoder := NewEncoder(survey)
	vectors := make([][]float64, len(survey))
	for i, r := range survey {
		vectors[i] = encoder.Encode(r)
	}
	return &Recommender{
		catalog: catalog,
		survey:  survey,
		encoder: encoder,
		index:   NewNeighborIndex(vectors),
	}
}

// Recommend returns up to n catalog habits for the profile, ranked by
// how closely each habit's minimum time matches the user's committed
// minutes, plus the habits the profile's nearest survey neighbors
// already practice.
func (r *Recommender) Recommend(p Profile, n int) (*Recommendations, error) {
	if n <= 0 {
		n = DefaultRecommendations
	}

	habits := r.filterAndRank(p, n)

	peers, err := r.popularWithPeers(p)
	if err != nil {
		return nil, err
	}

	return &Recommendations{Habits: habits, PopularWithPeers: peers}, nil
}

func (r *Recommender) filterAndRank(p Profile, n int) []CatalogHabit {
	committed := utils.ParseRequiredMinutes(p.TimeCommitment)

	categories := make(map[string]bool, len(p.ImprovementAreas))
	for _, area := range p.ImprovementAreas {
		categories[strings.TrimSpace(area)] = true
	}

	var filtered []CatalogHabit
	for _, h := range r.catalog {
		if categories[h.Category] && h.MinMinutes <= committed+timeToleranceMinutes {
			filtered = append(filtered, h)
		}
	}

	// Fall back to habits whose time label mentions the committed
	// minutes, then to the head of the catalog. Fallback membership is
	// the first n matches in catalog order; the ranking below only
	// reorders them.
	if len(filtered) == 0 {
		needle := strconv.Itoa(committed)
		for _, h := range r.catalog {
			if strings.Contains(h.TimeRequired, needle) {
				filtered = append(filtered, h)
				if len(filtered) == n {
					break
				}
			}
		}
	}
	if len(filtered) == 0 {
		head := r.catalog
		if len(head) > n {
			head = head[:n]
		}
		filtered = append(filtered, head...)
	}

	// Closest time match first; ties keep catalog order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return absInt(filtered[i].MinMinutes-committed) < absInt(filtered[j].MinMinutes-committed)
	})

	if len(filtered) > n {
		filtered = filtered[:n]
	}
	return filtered
}

// popularWithPeers queries the neighbor index and tallies the existing
// habits of the k nearest respondents, skipping habits the user
// already has.
func (r *Recommender) popularWithPeers(p Profile) ([]SimilarUserHabit, error) {
	indices, _, err := r.index.Nearest(r.encoder.Encode(p), neighborCount)
	if err != nil {
		return nil, fmt.Errorf("similarity search failed: %w", err)
	}

	own := make(map[string]bool, len(p.ExistingHabits))
	for _, h := range p.ExistingHabits {
		own[h] = true
	}

	counts := map[string]int{}
	var order []string
	for _, idx := range indices {
		for _, h := range r.survey[idx].ExistingHabits {
			if own[h] {
				continue
			}
			if counts[h] == 0 {
				order = append(order, h)
			}
			counts[h]++
		}
	}

	peers := make([]SimilarUserHabit, 0, len(order))
	for _, name := range order {
		peers = append(peers, SimilarUserHabit{Name: name, Count: counts[name]})
	}
	sort.SliceStable(peers, func(i, j int) bool { return peers[i].Count > peers[j].Count })
	return peers, nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
