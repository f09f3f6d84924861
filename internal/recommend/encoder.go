package recommend

import "sort"

// Encoder turns a Profile into a flat binary feature vector:
// one-hot columns for the fixed single-valued fields, multi-hot
// columns for the multi-select fields over the vocabulary observed in
// the survey data. A value missing from the vocabulary contributes no
// column, matching how the index was fitted.
type Encoder struct {
	ages        []string
	genders     []string
	commitments []string
	preferred   []string

	habitVocab   []string
	areaVocab    []string
	barrierVocab []string
}

func NewEncoder(respondents []Profile) *Encoder {
	e := &Encoder{
		ages:        AgeBrackets(),
		genders:     GenderOptions(),
		commitments: TimeCommitmentOptions(),
		preferred:   PreferredTimeOptions(),
	}

	habits := map[string]bool{}
	areas := map[string]bool{}
	barriers := map[string]bool{}
	for _, r := range respondents {
		for _, v := range r.ExistingHabits {
			habits[v] = true
		}
		for _, v := range r.ImprovementAreas {
			areas[v] = true
		}
		for _, v := range r.Barriers {
			barriers[v] = true
		}
	}

	e.habitVocab = sortedKeys(habits)
	e.areaVocab = sortedKeys(areas)
	e.barrierVocab = sortedKeys(barriers)
	return e
}

// Dimensions returns the length of the produced vectors.
func (e *Encoder) Dimensions() int {
	return len(e.ages) + len(e.genders) + len(e.commitments) + len(e.preferred) +
		len(e.habitVocab) + len(e.areaVocab) + len(e.barrierVocab)
}

func (e *Encoder) Encode(p Profile) []float64 {
	vec := make([]float64, 0, e.Dimensions())
	vec = append(vec, oneHot(e.ages, p.AgeBracket)...)
	vec = append(vec, oneHot(e.genders, p.Gender)...)
	vec = append(vec, oneHot(e.commitments, p.TimeCommitment)...)
	vec = append(vec, oneHot(e.preferred, p.PreferredTime)...)
	vec = append(vec, multiHot(e.habitVocab, p.ExistingHabits)...)
	vec = append(vec, multiHot(e.areaVocab, p.ImprovementAreas)...)
	vec = append(vec, multiHot(e.barrierVocab, p.Barriers)...)
	return vec
}

func oneHot(vocab []string, value string) []float64 {
	cols := make([]float64, len(vocab))
	for i, v := range vocab {
		if v == value {
			cols[i] = 1
		}
	}
	return cols
}

func multiHot(vocab []string, values []string) []float64 {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	cols := make([]float64, len(vocab))
	for i, v := range vocab {
		if set[v] {
			cols[i] = 1
		}
	}
	return cols
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
