package helper

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"dsiku_backend/internals/constants"
	childModel "dsiku_backend/internals/features/children/model"
	profModel "dsiku_backend/internals/features/professionals/model"
	teacherModel "dsiku_backend/internals/features/teachers/model"
	userModel "dsiku_backend/internals/features/users/model"
	"dsiku_backend/internals/helpers/errs"
)

type IdentityKind string

const (
	KindAdmin        IdentityKind = "admin"
	KindProfessional IdentityKind = "professional"
	KindTeacher      IdentityKind = "teacher"
	KindParent       IdentityKind = "parent"
)

// Identity is the resolved caller, whichever record kind matched. Fields not
// applicable to the kind stay zero.
type Identity struct {
	Kind           IdentityKind
	ID             uuid.UUID
	Role           string // backend label
	Name           string
	Number         string
	OrganizationID uuid.UUID

	// teacher/parent
	SchoolID   *uuid.UUID
	SchoolName string
	Class      *int

	// admin
	AssignedSchoolNames []string

	// professional
	ClinicName        string
	ProfessionalCode  string
	AssignedSchoolIDs []string
}

// identityProbeOrder fixes how a phone number that collides across record
// kinds resolves when no role is given: the first matching kind wins.
var identityProbeOrder = []string{
	constants.RoleOrganizationAdmin,
	constants.RoleNGOAdmin,
	constants.RoleSchoolAdmin,
	constants.RoleProfessional,
	constants.RoleTeacher,
	constants.RoleParent,
}

// IdentityProbeOrder exposes the priority order (read-only copy).
func IdentityProbeOrder() []string {
	out := make([]string, len(identityProbeOrder))
	copy(out, identityProbeOrder)
	return out
}

// ResolveIdentity looks up the record for phone, restricted to role when role
// is non-empty (frontend labels accepted; "Any" means unrestricted). Returns
// errs.ErrIdentityNotFound when nothing matches. Read-only.
func ResolveIdentity(db *gorm.DB, phone, role string) (*Identity, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errs.Validationf("phone number is required")
	}

	role = strings.TrimSpace(role)
	if role != "" && role != "Any" {
		return resolveByRole(db, phone, constants.NormalizeRole(role))
	}

	return probeIdentity(identityProbeOrder, func(r string) (*Identity, error) {
		return resolveByRole(db, phone, r)
	})
}

// probeIdentity walks order and returns the first matching identity. A kind
// with no match keeps the probe going; any other lookup failure aborts it.
func probeIdentity(order []string, lookup func(role string) (*Identity, error)) (*Identity, error) {
	for _, probe := range order {
		id, err := lookup(probe)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, errs.ErrIdentityNotFound) {
			return nil, err
		}
	}
	return nil, errs.ErrIdentityNotFound
}

// ResolveOrganization is the tenant lookup every organization-scoped mutating
// request runs before the boundary check.
func ResolveOrganization(db *gorm.DB, phone, role string) (uuid.UUID, error) {
	id, err := ResolveIdentity(db, phone, role)
	if err != nil {
		return uuid.Nil, err
	}
	return id.OrganizationID, nil
}

func resolveByRole(db *gorm.DB, phone, normalizedRole string) (*Identity, error) {
	switch {
	case constants.IsAdminRole(normalizedRole):
		return resolveAdmin(db, phone, normalizedRole)
	case normalizedRole == constants.RoleProfessional:
		return resolveProfessional(db, phone)
	case normalizedRole == constants.RoleTeacher:
		return resolveTeacher(db, phone)
	case normalizedRole == constants.RoleParent:
		return resolveParent(db, phone)
	default:
		return nil, errs.ErrIdentityNotFound
	}
}

func resolveAdmin(db *gorm.DB, phone, role string) (*Identity, error) {
	var admin userModel.AdminModel
	err := db.Where("admin_number = ? AND admin_role = ?", phone, role).First(&admin).Error
	if err != nil {
		return nil, wrapLookupErr(err)
	}
	return &Identity{
		Kind:                KindAdmin,
		ID:                  admin.AdminID,
		Role:                admin.AdminRole,
		Name:                admin.AdminName,
		Number:              admin.AdminNumber,
		OrganizationID:      admin.AdminOrganizationID,
		AssignedSchoolNames: admin.AssignedSchools(),
	}, nil
}

func resolveProfessional(db *gorm.DB, phone string) (*Identity, error) {
	var pro profModel.ProfessionalModel
	err := db.Where("professional_number = ?", phone).First(&pro).Error
	if err != nil {
		return nil, wrapLookupErr(err)
	}
	return &Identity{
		Kind:              KindProfessional,
		ID:                pro.ProfessionalID,
		Role:              constants.RoleProfessional,
		Name:              pro.ProfessionalName,
		Number:            pro.ProfessionalNumber,
		OrganizationID:    pro.ProfessionalOrganizationID,
		ClinicName:        pro.ProfessionalClinicName,
		ProfessionalCode:  pro.ProfessionalCode,
		AssignedSchoolIDs: pro.ProfessionalAssignedSchools,
	}, nil
}

// Teacher and parent organization context derives transitively through the
// school reference, not from any denormalized copy on the record itself.
func resolveTeacher(db *gorm.DB, phone string) (*Identity, error) {
	var teacher teacherModel.TeacherModel
	err := db.Where("teacher_phone = ?", phone).First(&teacher).Error
	if err != nil {
		return nil, wrapLookupErr(err)
	}
	orgID, schoolName, err := schoolOrganization(db, teacher.TeacherSchoolID)
	if err != nil {
		return nil, err
	}
	schoolID := teacher.TeacherSchoolID
	class := teacher.TeacherClass
	return &Identity{
		Kind:           KindTeacher,
		ID:             teacher.TeacherID,
		Role:           constants.RoleTeacher,
		Name:           teacher.TeacherName,
		Number:         teacher.TeacherPhone,
		OrganizationID: orgID,
		SchoolID:       &schoolID,
		SchoolName:     schoolName,
		Class:          &class,
	}, nil
}

func resolveParent(db *gorm.DB, phone string) (*Identity, error) {
	var child childModel.ChildModel
	err := db.Where("child_parent_phone = ?", phone).First(&child).Error
	if err != nil {
		return nil, wrapLookupErr(err)
	}
	if child.ChildSchoolID == nil {
		return nil, errs.ErrIdentityNotFound
	}
	orgID, schoolName, err := schoolOrganization(db, *child.ChildSchoolID)
	if err != nil {
		return nil, err
	}
	name := ""
	if child.ChildParentName != nil {
		name = *child.ChildParentName
	}
	return &Identity{
		Kind:           KindParent,
		ID:             child.ChildID,
		Role:           constants.RoleParent,
		Name:           name,
		Number:         phone,
		OrganizationID: orgID,
		SchoolID:       child.ChildSchoolID,
		SchoolName:     schoolName,
	}, nil
}

func schoolOrganization(db *gorm.DB, schoolID uuid.UUID) (uuid.UUID, string, error) {
	var row struct {
		SchoolOrganizationID uuid.UUID
		SchoolName           string
	}
	err := db.Table("schools").
		Select("school_organization_id, school_name").
		Where("school_id = ?", schoolID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, "", errs.ErrIdentityNotFound
		}
		return uuid.Nil, "", err
	}
	return row.SchoolOrganizationID, row.SchoolName, nil
}

func wrapLookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrIdentityNotFound
	}
	return err
}
