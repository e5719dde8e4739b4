package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullAnswers(questions []string) map[string]any {
	out := make(map[string]any, len(questions))
	for _, q := range questions {
		out[q] = "an answer"
	}
	return out
}

func TestValidateAnswersComplete(t *testing.T) {
	assert.Empty(t, ValidateAnswers(fullAnswers(HouseQuestions), HouseQuestions))
	assert.Empty(t, ValidateAnswers(fullAnswers(TreeQuestions), TreeQuestions))
	assert.Empty(t, ValidateAnswers(fullAnswers(PersonQuestions), PersonQuestions))
}

func TestValidateAnswersMissingKeys(t *testing.T) {
	answers := fullAnswers(HouseQuestions)
	delete(answers, "Who_Lives_Here")
	delete(answers, "What_else_people_want")

	missing := ValidateAnswers(answers, HouseQuestions)
	assert.ElementsMatch(t, []string{"Who_Lives_Here", "What_else_people_want"}, missing)
}

func TestValidateAnswersEmptyAndNilValues(t *testing.T) {
	answers := fullAnswers(PersonQuestions)
	answers["Who_is_this_person"] = ""
	answers["How_old_are_they"] = nil

	missing := ValidateAnswers(answers, PersonQuestions)
	assert.ElementsMatch(t, []string{"Who_is_this_person", "How_old_are_they"}, missing)
}

func TestValidateAnswersNonStringValuesAccepted(t *testing.T) {
	answers := fullAnswers(TreeQuestions)
	answers["how_old_is_it"] = 7
	answers["anyone_tried_to_cut"] = false

	assert.Empty(t, ValidateAnswers(answers, TreeQuestions))
}
