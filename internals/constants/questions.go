package constants

// Fixed question keys for the three scored drawings. Report submissions
// must answer every key of each list; report formatting walks them in order.

var HouseQuestions = []string{
	"Who_Lives_Here",
	"Are_there_Happy",
	"Do_People_Visit_Here",
	"What_else_people_want",
}

var PersonQuestions = []string{
	"Who_is_this_person",
	"How_old_are_they",
	"Whats_thier_fav_thing",
	"What_they_dont_like",
}

var TreeQuestions = []string{
	"What_kind_of_tree",
	"how_old_is_it",
	"what_season_is_it",
	"anyone_tried_to_cut",
	"what_else_grows",
	"who_waters",
	"does_it_get_enough_sunshine",
}

// ValidateAnswers reports the question keys missing or empty in answers.
func ValidateAnswers(answers map[string]any, questions []string) []string {
	var missing []string
	for _, q := range questions {
		v, ok := answers[q]
		if !ok || v == nil {
			missing = append(missing, q)
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			missing = append(missing, q)
		}
	}
	return missing
}
