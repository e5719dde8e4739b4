package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"dsiku_backend/internals/constants"
	childModel "dsiku_backend/internals/features/children/model"
	profModel "dsiku_backend/internals/features/professionals/model"
	"dsiku_backend/internals/features/reports/dto"
	"dsiku_backend/internals/features/reports/model"
	schoolModel "dsiku_backend/internals/features/schools/model"
	teacherModel "dsiku_backend/internals/features/teachers/model"
	adminModel "dsiku_backend/internals/features/users/model"
	"dsiku_backend/internals/helpers"
	"dsiku_backend/internals/helpers/errs"
)

// dayRange resolves a ?date=YYYY-MM-DD parameter (defaulting to today, UTC)
// to a half-open [start, end) window.
func dayRange(dateStr string) (time.Time, time.Time) {
	day := time.Now().UTC()
	if dateStr != "" {
		if parsed, err := time.Parse("2006-01-02", dateStr); err == nil {
			day = parsed
		}
	}
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(24 * time.Hour)
}

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// Store persists a screening submission. School, organization and clinic are
// frozen onto the report at submission time; later renames never rewrite
// historical reports.
func (ctl *ReportController) Store(c *fiber.Ctx) error {
	var req dto.StoreReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	role := constants.NormalizeRole(req.SubmittedRole)
	if !constants.IsUserRole(role) {
		return helper.JsonTaxonomyError(c, errs.Validationf("role %q cannot submit reports", req.SubmittedRole))
	}

	if missing := req.MissingAnswers(); len(missing) > 0 {
		return helper.JsonTaxonomyError(c, errs.Validationf("missing answers: %s", strings.Join(missing, ", ")))
	}

	// Parent and teacher submissions always reference an enrolled child.
	if role == constants.RoleParent || role == constants.RoleTeacher {
		if req.Age == nil || req.ChildID == "" {
			return helper.JsonTaxonomyError(c, errs.Validationf("child age and childId are required for parent and teacher submissions"))
		}
	}

	report := model.ReportModel{
		ReportClinicName:    req.ClinicName,
		ReportChildName:     req.ChildName,
		ReportAge:           req.Age,
		ReportOptionalNotes: req.OptionalNotes,
		ReportFlagForLabel:  req.FlagForLabel,
		House: model.DrawingSection{
			ImagePath: req.House.ImagePath,
			Score:     req.House.Score,
		},
		Tree: model.DrawingSection{
			ImagePath: req.Tree.ImagePath,
			Score:     req.Tree.Score,
		},
		Person: model.DrawingSection{
			ImagePath: req.Person.ImagePath,
			Score:     req.Person.Score,
		},
		ReportHouseAnswers:   req.House.Answers,
		ReportTreeAnswers:    req.Tree.Answers,
		ReportPersonAnswers:  req.Person.Answers,
		ReportSubmittedRole:  role,
		ReportSubmittedPhone: req.SubmittedPhone,
	}

	if req.SchoolName != "" && req.SchoolName != dto.PersonalSubmissionSchool {
		var school schoolModel.SchoolModel
		if err := ctl.DB.Where("school_name = ?", req.SchoolName).First(&school).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonTaxonomyError(c, errs.NotFoundf("school %q", req.SchoolName))
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school")
		}
		report.ReportSchoolID = &school.SchoolID
		report.ReportSchoolName = school.SchoolName
		report.ReportOrganizationID = &school.SchoolOrganizationID
	}

	if req.ChildID != "" {
		childID, err := uuid.Parse(req.ChildID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid child id")
		}
		report.ReportChildID = &childID
	}

	// Professionals inherit their clinic name when the payload omits it.
	if role == constants.RoleProfessional && report.ReportClinicName == "" {
		var pro profModel.ProfessionalModel
		if err := ctl.DB.Where("professional_number = ?", req.SubmittedPhone).
			First(&pro).Error; err == nil {
			report.ReportClinicName = pro.ProfessionalClinicName
		}
	}

	if err := ctl.DB.Create(&report).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to store report")
	}
	return helper.JsonCreated(c, "Report stored", dto.ToReportView(report))
}

func (ctl *ReportController) views(rows []model.ReportModel) []dto.ReportView {
	out := make([]dto.ReportView, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToReportView(m))
	}
	return out
}

func queryPhone(c *fiber.Ctx, aliases ...string) string {
	for _, key := range aliases {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			return v
		}
	}
	return ""
}

// ProfessionalReports lists what a professional submitted plus every report
// frozen under one of their assigned schools.
func (ctl *ReportController) ProfessionalReports(c *fiber.Ctx) error {
	phone := queryPhone(c, "phone", "professionalId")
	if phone == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("phone query parameter is required"))
	}

	var pro profModel.ProfessionalModel
	if err := ctl.DB.Where("professional_number = ?", phone).First(&pro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.ErrIdentityNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch professional")
	}

	q := ctl.DB.Where("report_submitted_phone = ?", phone)
	if len(pro.ProfessionalAssignedSchools) > 0 {
		q = ctl.DB.Where("report_submitted_phone = ? OR report_school_id IN ?",
			phone, []string(pro.ProfessionalAssignedSchools))
	}

	var rows []model.ReportModel
	if err := q.Order("report_submitted_at DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list reports")
	}
	return helper.JsonOK(c, "Professional reports fetched", ctl.views(rows))
}

// ParentSubmissions lists a parent's own submissions. With ?date it returns
// that day's submission count instead of the list.
func (ctl *ReportController) ParentSubmissions(c *fiber.Ctx) error {
	phone := queryPhone(c, "parentPhone", "phone")
	if phone == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("parentPhone query parameter is required"))
	}

	if date := strings.TrimSpace(c.Query("date")); date != "" {
		start, end := dayRange(date)
		var count int64
		if err := ctl.DB.Model(&model.ReportModel{}).
			Where("report_submitted_phone = ? AND report_submitted_at >= ? AND report_submitted_at < ?",
				phone, start, end).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
		}
		return helper.JsonOK(c, "Parent submissions counted", fiber.Map{
			"count": count,
			"date":  start.Format("2006-01-02"),
		})
	}

	var rows []model.ReportModel
	if err := ctl.DB.Where("report_submitted_phone = ? AND report_submitted_role = ?",
		phone, constants.RoleParent).
		Order("report_submitted_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list reports")
	}
	return helper.JsonOK(c, "Parent submissions fetched", ctl.views(rows))
}

// TeacherSubmissions lists the reports filed for the children of the
// teacher's own class, not what the teacher personally submitted.
func (ctl *ReportController) TeacherSubmissions(c *fiber.Ctx) error {
	phone := queryPhone(c, "teacherPhone", "phone")
	if phone == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("teacherPhone query parameter is required"))
	}

	var teacher teacherModel.TeacherModel
	if err := ctl.DB.Where("teacher_phone = ?", phone).First(&teacher).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.ErrIdentityNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	var childIDs []uuid.UUID
	if err := ctl.DB.Model(&childModel.ChildModel{}).
		Where("child_school_id = ? AND child_class = ?", teacher.TeacherSchoolID, teacher.TeacherClass).
		Pluck("child_id", &childIDs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list children")
	}

	rows := []model.ReportModel{}
	if len(childIDs) > 0 {
		if err := ctl.DB.Where("report_child_id IN ?", childIDs).
			Order("report_submitted_at DESC").
			Find(&rows).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list reports")
		}
	}
	return helper.JsonOK(c, "Teacher submissions fetched", ctl.views(rows))
}

// ClinicSubmissions lists reports under a clinic. The clinic resolves either
// directly from ?clinicName or through the professional's phone.
func (ctl *ReportController) ClinicSubmissions(c *fiber.Ctx) error {
	clinicName := strings.TrimSpace(c.Query("clinicName"))
	if clinicName == "" {
		phone := strings.TrimSpace(c.Query("phone"))
		if phone == "" {
			return helper.JsonTaxonomyError(c, errs.Validationf("clinicName or phone query parameter is required"))
		}
		var pro profModel.ProfessionalModel
		if err := ctl.DB.Where("professional_number = ?", phone).First(&pro).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonTaxonomyError(c, errs.ErrIdentityNotFound)
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch professional")
		}
		clinicName = pro.ProfessionalClinicName
	}

	var rows []model.ReportModel
	if err := ctl.DB.Where("report_clinic_name = ?", clinicName).
		Order("report_submitted_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list reports")
	}
	return helper.JsonOK(c, "Clinic submissions fetched", fiber.Map{
		"clinicName": clinicName,
		"reports":    ctl.views(rows),
	})
}

// ClinicSubmissionByID returns one report. When a professional labeled any
// section (or submitted the report), their details ride along.
func (ctl *ReportController) ClinicSubmissionByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report id")
	}

	var report model.ReportModel
	if err := ctl.DB.First(&report, "report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("report %s", id))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch report")
	}

	payload := fiber.Map{"report": dto.ToReportView(report)}

	labelerPhone := ""
	switch {
	case report.House.LabeledBy != nil:
		labelerPhone = *report.House.LabeledBy
	case report.Tree.LabeledBy != nil:
		labelerPhone = *report.Tree.LabeledBy
	case report.Person.LabeledBy != nil:
		labelerPhone = *report.Person.LabeledBy
	case report.ReportSubmittedRole == constants.RoleProfessional:
		labelerPhone = report.ReportSubmittedPhone
	}
	if labelerPhone != "" {
		var pro profModel.ProfessionalModel
		if err := ctl.DB.Where("professional_number = ?", labelerPhone).
			First(&pro).Error; err == nil {
			payload["professionalInfo"] = fiber.Map{
				"name":           pro.ProfessionalName,
				"phone":          pro.ProfessionalNumber,
				"clinicName":     pro.ProfessionalClinicName,
				"professionalID": pro.ProfessionalCode,
			}
		}
	}
	return helper.JsonOK(c, "Report fetched", payload)
}

// SchoolSubmissions lists reports frozen under a school name. With ?date it
// returns that day's submission count instead of the list.
func (ctl *ReportController) SchoolSubmissions(c *fiber.Ctx) error {
	schoolName := strings.TrimSpace(c.Query("schoolName"))
	if schoolName == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("schoolName query parameter is required"))
	}

	if date := strings.TrimSpace(c.Query("date")); date != "" {
		start, end := dayRange(date)
		var count int64
		if err := ctl.DB.Model(&model.ReportModel{}).
			Where("report_school_name = ? AND report_submitted_at >= ? AND report_submitted_at < ?",
				schoolName, start, end).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
		}
		return helper.JsonOK(c, "School submissions counted", fiber.Map{
			"schoolName": schoolName,
			"count":      count,
			"date":       start.Format("2006-01-02"),
		})
	}

	var rows []model.ReportModel
	if err := ctl.DB.Where("report_school_name = ?", schoolName).
		Order("report_submitted_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list reports")
	}
	return helper.JsonOK(c, "School submissions fetched", fiber.Map{
		"schoolName": schoolName,
		"total":      len(rows),
		"reports":    ctl.views(rows),
	})
}

// ProfessionalSchoolSubmissions summarizes today/total submission counts per
// assigned school, plus a trailing bucket for the professional's personal
// (school-less) submissions.
func (ctl *ReportController) ProfessionalSchoolSubmissions(c *fiber.Ctx) error {
	phone := queryPhone(c, "phone", "professionalId")
	if phone == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("phone query parameter is required"))
	}

	var pro profModel.ProfessionalModel
	if err := ctl.DB.Where("professional_number = ?", phone).First(&pro).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.ErrIdentityNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch professional")
	}

	var schools []schoolModel.SchoolModel
	if len(pro.ProfessionalAssignedSchools) > 0 {
		q := ctl.DB.Where("school_id IN ?", []string(pro.ProfessionalAssignedSchools))
		if orgID := strings.TrimSpace(c.Query("organizationId")); orgID != "" {
			q = q.Where("school_organization_id = ?", orgID)
		}
		if err := q.Order("school_name ASC").Find(&schools).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list schools")
		}
	}

	start, end := dayRange(strings.TrimSpace(c.Query("date")))
	countReports := func(q *gorm.DB) (int64, error) {
		var n int64
		err := q.Count(&n).Error
		return n, err
	}

	results := make([]fiber.Map, 0, len(schools)+1)
	for _, school := range schools {
		todayCount, err := countReports(ctl.DB.Model(&model.ReportModel{}).
			Where("report_school_id = ? AND report_submitted_at >= ? AND report_submitted_at < ?",
				school.SchoolID, start, end))
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
		}
		totalCount, err := countReports(ctl.DB.Model(&model.ReportModel{}).
			Where("report_school_id = ?", school.SchoolID))
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
		}
		results = append(results, fiber.Map{
			"schoolId":   school.SchoolID,
			"schoolName": school.SchoolName,
			"todayCount": todayCount,
			"totalCount": totalCount,
		})
	}

	personalToday, err := countReports(ctl.DB.Model(&model.ReportModel{}).
		Where("report_submitted_phone = ? AND report_school_id IS NULL AND report_submitted_at >= ? AND report_submitted_at < ?",
			phone, start, end))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}
	personalTotal, err := countReports(ctl.DB.Model(&model.ReportModel{}).
		Where("report_submitted_phone = ? AND report_school_id IS NULL", phone))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
	}
	results = append(results, fiber.Map{
		"schoolId":   nil,
		"schoolName": "Personal Submissions",
		"todayCount": personalToday,
		"totalCount": personalTotal,
	})

	return helper.JsonOK(c, "Professional school submissions fetched", results)
}

// NGOSubmissions summarizes submissions for an organization. With
// ?ngoAdminPhone the summary narrows to that admin's assigned schools with
// today/total counts; with ?organizationId it aggregates per school.
func (ctl *ReportController) NGOSubmissions(c *fiber.Ctx) error {
	if phone := strings.TrimSpace(c.Query("ngoAdminPhone")); phone != "" {
		return ctl.ngoAdminSummary(c, phone)
	}

	orgID := strings.TrimSpace(c.Query("organizationId"))
	if orgID == "" {
		return helper.JsonTaxonomyError(c, errs.Validationf("ngoAdminPhone or organizationId query parameter is required"))
	}

	type schoolCount struct {
		ReportSchoolName string `json:"schoolName"`
		Count            int64  `json:"count"`
	}
	var perSchool []schoolCount
	if err := ctl.DB.Model(&model.ReportModel{}).
		Select("report_school_name, COUNT(*) AS count").
		Where("report_organization_id = ?", orgID).
		Group("report_school_name").
		Order("count DESC").
		Scan(&perSchool).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to aggregate reports")
	}

	var total int64
	for _, s := range perSchool {
		total += s.Count
	}
	return helper.JsonOK(c, "Organization submissions fetched", fiber.Map{
		"organizationId": orgID,
		"total":          total,
		"bySchool":       perSchool,
	})
}

// ngoAdminSummary counts today/total submissions across the schools assigned
// to one NGO admin.
func (ctl *ReportController) ngoAdminSummary(c *fiber.Ctx, phone string) error {
	var admin adminModel.AdminModel
	if err := ctl.DB.Where("admin_number = ? AND admin_role = ?",
		phone, constants.RoleNGOAdmin).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.ErrIdentityNotFound)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch admin")
	}

	schools := admin.AssignedSchools()
	start, end := dayRange(strings.TrimSpace(c.Query("date")))

	var todayCount, totalCount int64
	if len(schools) > 0 {
		if err := ctl.DB.Model(&model.ReportModel{}).
			Where("report_school_name IN ? AND report_submitted_at >= ? AND report_submitted_at < ?",
				schools, start, end).
			Count(&todayCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
		}
		if err := ctl.DB.Model(&model.ReportModel{}).
			Where("report_school_name IN ?", schools).
			Count(&totalCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count submissions")
		}
	}
	return helper.JsonOK(c, "Organization submissions counted", fiber.Map{
		"ngoAdmin":    phone,
		"date":        start.Format("2006-01-02"),
		"todayCount":  todayCount,
		"totalCount":  totalCount,
		"schoolCount": len(schools),
	})
}

// UpdateScore records a manual label for one drawing section. The model
// score stays untouched; manual_score sits beside it and the flag marks the
// report as labeled.
func (ctl *ReportController) UpdateScore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("reportId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid report id")
	}

	var req dto.UpdateScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if fe := helper.ValidateStruct(&req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}
	if !req.ValidSection() {
		return helper.JsonTaxonomyError(c, errs.Validationf("imageType must be one of house, tree, person"))
	}

	var report model.ReportModel
	if err := ctl.DB.First(&report, "report_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonTaxonomyError(c, errs.NotFoundf("report %s", id))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch report")
	}

	now := time.Now()
	updates := map[string]any{
		"report_" + req.Section + "_manual_score": req.ManualScore,
		"report_" + req.Section + "_labeled_by":   req.LabeledBy,
		"report_" + req.Section + "_labeled_at":   now,
		"report_flag_for_label":                   true,
	}
	if err := ctl.DB.Model(&report).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update score")
	}

	if err := ctl.DB.First(&report, "report_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload report")
	}
	return helper.JsonUpdated(c, "Manual score recorded", dto.ToReportView(report))
}
