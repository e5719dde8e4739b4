package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dsiku_backend/internals/constants"
	"dsiku_backend/internals/features/reports/model"
)

func answersFor(questions []string) map[string]any {
	out := make(map[string]any, len(questions))
	for _, q := range questions {
		out[q] = "answer for " + q
	}
	return out
}

func completeRequest() StoreReportRequest {
	return StoreReportRequest{
		ChildName:      "Asha",
		SubmittedRole:  "Professional",
		SubmittedPhone: "9876543210",
		House:          SectionPayload{Answers: answersFor(constants.HouseQuestions)},
		Tree:           SectionPayload{Answers: answersFor(constants.TreeQuestions)},
		Person:         SectionPayload{Answers: answersFor(constants.PersonQuestions)},
	}
}

func TestMissingAnswersComplete(t *testing.T) {
	req := completeRequest()
	assert.Empty(t, req.MissingAnswers())
}

func TestMissingAnswersSectionPrefixes(t *testing.T) {
	req := completeRequest()
	delete(req.House.Answers, "Who_Lives_Here")
	req.Tree.Answers["who_waters"] = ""
	delete(req.Person.Answers, "What_they_dont_like")

	missing := req.MissingAnswers()
	assert.ElementsMatch(t, []string{
		"house.Who_Lives_Here",
		"tree.who_waters",
		"person.What_they_dont_like",
	}, missing)
}

func TestToReportViewPairsAnswersInOrder(t *testing.T) {
	m := model.ReportModel{
		ReportChildName:     "Asha",
		ReportSchoolName:    "GPS Anand Nagar",
		ReportHouseAnswers:  answersFor(constants.HouseQuestions),
		ReportTreeAnswers:   answersFor(constants.TreeQuestions),
		ReportPersonAnswers: answersFor(constants.PersonQuestions),
	}

	view := ToReportView(m)
	assert.Equal(t, "GPS Anand Nagar", view.SchoolName)
	assert.Len(t, view.House.Answers, len(constants.HouseQuestions))
	assert.Len(t, view.Tree.Answers, len(constants.TreeQuestions))
	assert.Len(t, view.Person.Answers, len(constants.PersonQuestions))

	// question keys render with spaces, in list order
	assert.Equal(t, "Who Lives Here", view.House.Answers[0].Question)
	assert.Equal(t, "answer for Who_Lives_Here", view.House.Answers[0].Answer)
	assert.Equal(t, "does it get enough sunshine", view.Tree.Answers[len(view.Tree.Answers)-1].Question)
}

func TestToReportViewPersonalSubmissionFallback(t *testing.T) {
	m := model.ReportModel{
		ReportChildName:     "Ravi",
		ReportSchoolName:    "  ",
		ReportHouseAnswers:  answersFor(constants.HouseQuestions),
		ReportTreeAnswers:   answersFor(constants.TreeQuestions),
		ReportPersonAnswers: answersFor(constants.PersonQuestions),
	}
	assert.Equal(t, PersonalSubmissionSchool, ToReportView(m).SchoolName)
}

func TestToReportViewUnansweredKeyRendersNil(t *testing.T) {
	answers := answersFor(constants.HouseQuestions)
	delete(answers, "Are_there_Happy")
	m := model.ReportModel{
		ReportHouseAnswers:  answers,
		ReportTreeAnswers:   answersFor(constants.TreeQuestions),
		ReportPersonAnswers: answersFor(constants.PersonQuestions),
	}

	view := ToReportView(m)
	assert.Equal(t, "Are there Happy", view.House.Answers[1].Question)
	assert.Nil(t, view.House.Answers[1].Answer)
}

func TestUpdateScoreRequestNormalize(t *testing.T) {
	req := UpdateScoreRequest{Section: " House ", LabeledBy: " 9876543210 "}
	req.Normalize()
	assert.Equal(t, "house", req.Section)
	assert.Equal(t, "9876543210", req.LabeledBy)
	assert.True(t, req.ValidSection())
}

func TestUpdateScoreRequestImageTypeAlias(t *testing.T) {
	req := UpdateScoreRequest{ImageType: "Tree", LabeledBy: "9876543210"}
	req.Normalize()
	assert.Equal(t, "tree", req.Section)
	assert.True(t, req.ValidSection())

	bad := UpdateScoreRequest{ImageType: "portrait"}
	bad.Normalize()
	assert.False(t, bad.ValidSection())
}
