package recommend

// Fixed categorical vocabularies for the single-valued profile fields.
// These mirror the options the survey offered; values outside them
// contribute no feature column.

func AgeBrackets() []string {
	return []string{"18-25", "26-35", "36-45", "45+"}
}

func GenderOptions() []string {
	return []string{"Male", "Female", "Other", "Prefer not to say"}
}

func TimeCommitmentOptions() []string {
	return []string{"5 minutes", "15 minutes", "30 minutes", "1 hour"}
}

func PreferredTimeOptions() []string {
	return []string{"Morning", "Afternoon", "Evening", "Any"}
}

func ImprovementAreaOptions() []string {
	return []string{"Physical health", "Mental health", "Productivity", "Finance", "Relationships"}
}

func BarrierOptions() []string {
	return []string{
		"Lack of time",
		"No motivation",
		"Not sure where to start",
		"Fear of failure",
		"No support",
		"Too difficult",
	}
}

// ProfileOptions bundles every vocabulary for clients rendering
// profile forms.
type ProfileOptions struct {
	AgeBrackets      []string `json:"age_brackets"`
	Genders          []string `json:"genders"`
	TimeCommitments  []string `json:"time_commitments"`
	PreferredTimes   []string `json:"preferred_times"`
	ImprovementAreas []string `json:"improvement_areas"`
	Barriers         []string `json:"barriers"`
}

func Options() ProfileOptions {
	return ProfileOptions{
		AgeBrackets:      AgeBrackets(),
		Genders:          GenderOptions(),
		TimeCommitments:  TimeCommitmentOptions(),
		PreferredTimes:   PreferredTimeOptions(),
		ImprovementAreas: ImprovementAreaOptions(),
		Barriers:         BarrierOptions(),
	}
}
