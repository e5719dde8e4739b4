package dto

import (
	"strings"

	"dsiku_backend/internals/constants"
	"dsiku_backend/internals/features/reports/model"
)

// PersonalSubmissionSchool labels reports a professional submits outside any
// school context.
const PersonalSubmissionSchool = "Personal Submission"

type SectionPayload struct {
	ImagePath *string        `json:"imagePath"`
	Score     float64        `json:"score"`
	Answers   map[string]any `json:"answers" validate:"required"`
}

type StoreReportRequest struct {
	ClinicName    string `json:"clinicName" validate:"omitempty,max=150"`
	ChildName     string `json:"childName" validate:"required,min=1,max=100"`
	Age           *int   `json:"age" validate:"omitempty,min=3,max=18"`
	SchoolName    string `json:"schoolName" validate:"omitempty,max=150"`
	OptionalNotes string `json:"optionalNotes" validate:"omitempty,max=5000"`
	FlagForLabel  bool   `json:"flagForLabel"`
	ChildID       string `json:"childId" validate:"omitempty,uuid"`

	House  SectionPayload `json:"house" validate:"required"`
	Tree   SectionPayload `json:"tree" validate:"required"`
	Person SectionPayload `json:"person" validate:"required"`

	SubmittedRole  string `json:"submittedRole" validate:"required"`
	SubmittedPhone string `json:"submittedPhone" validate:"required,min=7,max=20"`
}

func (r *StoreReportRequest) Normalize() {
	r.ClinicName = strings.TrimSpace(r.ClinicName)
	r.ChildName = strings.TrimSpace(r.ChildName)
	r.SchoolName = strings.TrimSpace(r.SchoolName)
	r.SubmittedRole = strings.TrimSpace(r.SubmittedRole)
	r.SubmittedPhone = strings.TrimSpace(r.SubmittedPhone)
	r.ChildID = strings.TrimSpace(r.ChildID)
}

// MissingAnswers walks all three sections against the fixed question lists
// and returns the missing keys prefixed by section.
func (r *StoreReportRequest) MissingAnswers() []string {
	var missing []string
	for _, m := range constants.ValidateAnswers(r.House.Answers, constants.HouseQuestions) {
		missing = append(missing, "house."+m)
	}
	for _, m := range constants.ValidateAnswers(r.Tree.Answers, constants.TreeQuestions) {
		missing = append(missing, "tree."+m)
	}
	for _, m := range constants.ValidateAnswers(r.Person.Answers, constants.PersonQuestions) {
		missing = append(missing, "person."+m)
	}
	return missing
}

type UpdateScoreRequest struct {
	// Older clients send imageType; both spellings name the drawing section.
	Section     string  `json:"section" validate:"omitempty,oneof=house tree person"`
	ImageType   string  `json:"imageType" validate:"omitempty"`
	ManualScore float64 `json:"manualScore" validate:"min=0,max=100"`
	LabeledBy   string  `json:"labeledBy" validate:"required,min=7,max=20"`
}

func (r *UpdateScoreRequest) Normalize() {
	r.Section = strings.ToLower(strings.TrimSpace(r.Section))
	if r.Section == "" {
		r.Section = strings.ToLower(strings.TrimSpace(r.ImageType))
	}
	r.LabeledBy = strings.TrimSpace(r.LabeledBy)
}

// Validate reports whether the section names a known drawing.
func (r *UpdateScoreRequest) ValidSection() bool {
	switch r.Section {
	case "house", "tree", "person":
		return true
	}
	return false
}

// QA is one question/answer pair in display order.
type QA struct {
	Question string `json:"question"`
	Answer   any    `json:"answer"`
}

func pairAnswers(questions []string, answers map[string]any) []QA {
	out := make([]QA, 0, len(questions))
	for _, q := range questions {
		out = append(out, QA{
			Question: strings.ReplaceAll(q, "_", " "),
			Answer:   answers[q],
		})
	}
	return out
}

type SectionView struct {
	ImagePath   *string `json:"imagePath,omitempty"`
	Score       float64 `json:"score"`
	ManualScore *float64 `json:"manualScore,omitempty"`
	LabeledBy   *string `json:"labeledBy,omitempty"`
	Answers     []QA    `json:"answers"`
}

type ReportView struct {
	ReportID       string      `json:"reportId"`
	ClinicName     string      `json:"clinicName"`
	ChildName      string      `json:"childName"`
	Age            *int        `json:"age,omitempty"`
	SchoolName     string      `json:"schoolName"`
	OptionalNotes  string      `json:"optionalNotes,omitempty"`
	FlagForLabel   bool        `json:"flagForLabel"`
	House          SectionView `json:"house"`
	Tree           SectionView `json:"tree"`
	Person         SectionView `json:"person"`
	SubmittedRole  string      `json:"submittedRole"`
	SubmittedPhone string      `json:"submittedPhone"`
	SubmittedAt    string      `json:"submittedAt"`
}

// ToReportView formats a stored report for display, pairing every answer
// with its question text. Reports without a school name render as personal
// submissions.
func ToReportView(m model.ReportModel) ReportView {
	schoolName := m.ReportSchoolName
	if strings.TrimSpace(schoolName) == "" {
		schoolName = PersonalSubmissionSchool
	}
	return ReportView{
		ReportID:       m.ReportID.String(),
		ClinicName:     m.ReportClinicName,
		ChildName:      m.ReportChildName,
		Age:            m.ReportAge,
		SchoolName:     schoolName,
		OptionalNotes:  m.ReportOptionalNotes,
		FlagForLabel:   m.ReportFlagForLabel,
		House:          toSectionView(m.House, constants.HouseQuestions, m.ReportHouseAnswers),
		Tree:           toSectionView(m.Tree, constants.TreeQuestions, m.ReportTreeAnswers),
		Person:         toSectionView(m.Person, constants.PersonQuestions, m.ReportPersonAnswers),
		SubmittedRole:  m.ReportSubmittedRole,
		SubmittedPhone: m.ReportSubmittedPhone,
		SubmittedAt:    m.ReportSubmittedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func toSectionView(s model.DrawingSection, questions []string, answers map[string]any) SectionView {
	return SectionView{
		ImagePath:   s.ImagePath,
		Score:       s.Score,
		ManualScore: s.ManualScore,
		LabeledBy:   s.LabeledBy,
		Answers:     pairAnswers(questions, answers),
	}
}
