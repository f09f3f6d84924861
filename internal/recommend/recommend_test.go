package recommend

import "testing"

func testCatalog() []CatalogHabit {
	return []CatalogHabit{
		{Name: "Quick stretch", Category: "Physical health", TimeRequired: "5 minutes", MinMinutes: 5},
		{Name: "Walk", Category: "Physical health", TimeRequired: "10 minutes", MinMinutes: 10},
		{Name: "Workout", Category: "Physical health", TimeRequired: "20 minutes", MinMinutes: 20},
		{Name: "Deep work", Category: "Productivity", TimeRequired: "1 hour", MinMinutes: 60},
		{Name: "Budget review", Category: "Finance", TimeRequired: "15-20 minutes", MinMinutes: 15},
	}
}

func testSurvey() []Profile {
	return []Profile{
		{
			AgeBracket: "18-25", Gender: "Male", TimeCommitment: "15 minutes", PreferredTime: "Morning",
			ExistingHabits:   []string{"Reading", "Regular exercise"},
			ImprovementAreas: []string{"Physical health"},
			Barriers:         []string{"Lack of time"},
		},
		{
			AgeBracket: "26-35", Gender: "Female", TimeCommitment: "30 minutes", PreferredTime: "Evening",
			ExistingHabits:   []string{"Meditation"},
			ImprovementAreas: []string{"Mental health"},
			Barriers:         []string{"No motivation"},
		},
		{
			AgeBracket: "18-25", Gender: "Male", TimeCommitment: "15 minutes", PreferredTime: "Morning",
			ExistingHabits:   []string{"Reading", "Journaling"},
			ImprovementAreas: []string{"Physical health", "Productivity"},
			Barriers:         []string{"Lack of time"},
		},
		{
			AgeBracket: "45+", Gender: "Other", TimeCommitment: "1 hour", PreferredTime: "Any",
			ExistingHabits:   []string{"Saving money"},
			ImprovementAreas: []string{"Finance"},
			Barriers:         []string{"Fear of failure"},
		},
	}
}

func TestFilterAndRankOrdersByTimeDistance(t *testing.T) {
	r := newRecommender(testCatalog(), testSurvey())

	p := Profile{
		TimeCommitment:   "15 minutes",
		ImprovementAreas: []string{"Physical health"},
	}
	got := r.filterAndRank(p, 5)

	// min times {5, 10, 20} at 15 committed minutes rank as {10, 20, 5}.
	want := []string{"Walk", "Workout", "Quick stretch"}
	if len(got) != len(want) {
		t.Fatalf("got %d habits, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("rank %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestFilterAndRankRespectsTolerance(t *testing.T) {
	r := newRecommender(testCatalog(), testSurvey())

	p := Profile{
		TimeCommitment:   "15 minutes",
		ImprovementAreas: []string{"Productivity"},
	}
	got := r.filterAndRank(p, 5)

	// "Deep work" needs 60 minutes, far over 15+5; the category yields
	// nothing, so the time-text fallback kicks in ("15-20 minutes").
	if len(got) != 1 || got[0].Name != "Budget review" {
		t.Fatalf("expected time-text fallback to Budget review, got %+v", got)
	}
}

func TestFilterAndRankCatalogHeadFallback(t *testing.T) {
	r := newRecommender(testCatalog(), testSurvey())

	p := Profile{
		TimeCommitment:   "45 minutes",
		ImprovementAreas: []string{"Relationships"},
	}
	got := r.filterAndRank(p, 3)

	if len(got) != 3 {
		t.Fatalf("expected 3 catalog habits from the head fallback, got %d", len(got))
	}
}

func TestFilterAndRankHeadFallbackStaysInHead(t *testing.T) {
	// A late catalog row with a tiny time requirement must not displace
	// head rows when the head fallback fires.
	catalog := []CatalogHabit{
		{Name: "Morning pages", Category: "Mental health", TimeRequired: "1 hour", MinMinutes: 60},
		{Name: "Gym session", Category: "Physical health", TimeRequired: "1 hour", MinMinutes: 60},
		{Name: "Language drill", Category: "Productivity", TimeRequired: "1 hour", MinMinutes: 60},
		{Name: "Meal prep", Category: "Physical health", TimeRequired: "1 hour", MinMinutes: 60},
		{Name: "Inbox sweep", Category: "Productivity", TimeRequired: "1 hour", MinMinutes: 60},
		{Name: "Micro tidy", Category: "Productivity", TimeRequired: "7 min", MinMinutes: 7},
	}
	r := newRecommender(catalog, testSurvey())

	p := Profile{
		TimeCommitment:   "6 minutes",
		ImprovementAreas: []string{"Relationships"},
	}
	got := r.filterAndRank(p, 5)

	if len(got) != 5 {
		t.Fatalf("expected the first 5 catalog habits, got %d", len(got))
	}
	for _, h := range got {
		if h.Name == "Micro tidy" {
			t.Errorf("head fallback returned %q from outside the catalog head", h.Name)
		}
	}
}

func TestFilterAndRankTimeTextFallbackCapsAtN(t *testing.T) {
	catalog := []CatalogHabit{
		{Name: "First", Category: "Finance", TimeRequired: "15 minutes", MinMinutes: 15},
		{Name: "Second", Category: "Finance", TimeRequired: "15-20 minutes", MinMinutes: 15},
		{Name: "Third", Category: "Finance", TimeRequired: "15 minutes", MinMinutes: 15},
	}
	r := newRecommender(catalog, testSurvey())

	p := Profile{
		TimeCommitment:   "15 minutes",
		ImprovementAreas: []string{"Relationships"},
	}
	got := r.filterAndRank(p, 2)

	// Three labels mention "15"; only the first two matches in catalog
	// order may come back.
	want := []string{"First", "Second"}
	if len(got) != len(want) {
		t.Fatalf("got %d habits, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("rank %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestFilterAndRankStableTieBreak(t *testing.T) {
	catalog := []CatalogHabit{
		{Name: "A", Category: "Finance", TimeRequired: "10 minutes", MinMinutes: 10},
		{Name: "B", Category: "Finance", TimeRequired: "20 minutes", MinMinutes: 20},
	}
	r := newRecommender(catalog, testSurvey())

	p := Profile{
		TimeCommitment:   "15 minutes",
		ImprovementAreas: []string{"Finance"},
	}
	got := r.filterAndRank(p, 5)

	// Both are 5 minutes away; catalog order decides.
	if got[0].Name != "A" || got[1].Name != "B" {
		t.Errorf("tie-break not stable: got %q then %q", got[0].Name, got[1].Name)
	}
}

func TestRecommendPopularWithPeers(t *testing.T) {
	r := newRecommender(testCatalog(), testSurvey())

	p := Profile{
		AgeBracket: "18-25", Gender: "Male", TimeCommitment: "15 minutes", PreferredTime: "Morning",
		ExistingHabits:   []string{"Reading"},
		ImprovementAreas: []string{"Physical health"},
		Barriers:         []string{"Lack of time"},
	}

	recs, err := r.Recommend(p, 5)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(recs.Habits) == 0 {
		t.Fatal("expected ranked habits")
	}

	// "Reading" is the user's own habit and must not come back.
	for _, peer := range recs.PopularWithPeers {
		if peer.Name == "Reading" {
			t.Errorf("peer list contains the user's own habit %q", peer.Name)
		}
	}
	if len(recs.PopularWithPeers) == 0 {
		t.Error("expected at least one peer habit from the nearest respondents")
	}
}

func TestRecommendDefaultsN(t *testing.T) {
	r := newRecommender(testCatalog(), testSurvey())

	recs, err := r.Recommend(Profile{TimeCommitment: "5 minutes"}, 0)
	if err != nil {
		t.Fatalf("Recommend returned error: %v", err)
	}
	if len(recs.Habits) > DefaultRecommendations {
		t.Errorf("got %d habits, want at most %d", len(recs.Habits), DefaultRecommendations)
	}
}
