package recommend

import "testing"

func TestEncoderDimensions(t *testing.T) {
	survey := testSurvey()
	e := NewEncoder(survey)

	// 4 ages + 4 genders + 4 commitments + 4 preferred times, plus the
	// learned multi-hot vocabularies.
	wantFixed := 16
	wantLearned := 5 + 4 + 3 // habits, areas, barriers in testSurvey
	if got := e.Dimensions(); got != wantFixed+wantLearned {
		t.Errorf("Dimensions() = %d, want %d", got, wantFixed+wantLearned)
	}

	for _, r := range survey {
		if got := len(e.Encode(r)); got != e.Dimensions() {
			t.Errorf("Encode produced %d columns, want %d", got, e.Dimensions())
		}
	}
}

func TestEncodeUnknownValuesContributeNothing(t *testing.T) {
	e := NewEncoder(testSurvey())

	known := Profile{AgeBracket: "18-25", Gender: "Male"}
	unknown := Profile{AgeBracket: "12-17", Gender: "Unlisted", ExistingHabits: []string{"Skydiving"}}

	if sum(e.Encode(known)) != 2 {
		t.Errorf("known profile should set exactly 2 columns, got %v", sum(e.Encode(known)))
	}
	if sum(e.Encode(unknown)) != 0 {
		t.Errorf("unknown values must contribute no columns, got %v", sum(e.Encode(unknown)))
	}
}

func TestEncodeIdenticalProfilesMatch(t *testing.T) {
	survey := testSurvey()
	e := NewEncoder(survey)

	a := e.Encode(survey[0])
	b := e.Encode(survey[0])
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("encoding is not deterministic at column %d", i)
		}
	}
}

func sum(vec []float64) float64 {
	var s float64
	for _, v := range vec {
		s += v
	}
	return s
}
