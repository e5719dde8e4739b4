package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dsiku_backend/internals/helpers"
	helperAuth "dsiku_backend/internals/helpers/auth"
	"dsiku_backend/internals/helpers/errs"
)

// identityHint covers the payload key spellings the frontends send. Only used
// when the request carries no token with an organization claim.
type identityHint struct {
	// adminPhone names the CALLER on roster uploads, where phone is the
	// teacher or child being created; it must win.
	AdminPhone     string `json:"adminPhone"`
	Phone          string `json:"phone"`
	PhoneNumber    string `json:"phoneNumber"`
	Number         string `json:"number"`
	SubmittedPhone string `json:"submittedPhone"`
	Role           string `json:"role"`
	UserType       string `json:"usertype"`
	SubmittedRole  string `json:"submittedRole"`
	OrganizationID string `json:"organizationId"`
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// EffectiveOrganization decides which organization a request operates in.
// The caller's resolved organization always wins; a requested organization is
// only accepted when it matches. Cross-tenant requests are rejected, never
// silently redirected.
func EffectiveOrganization(callerOrgID, requestedOrgID string) (string, error) {
	callerOrgID = strings.TrimSpace(callerOrgID)
	requestedOrgID = strings.TrimSpace(requestedOrgID)

	if callerOrgID == "" {
		return "", errs.ErrIdentityNotFound
	}
	if requestedOrgID != "" && requestedOrgID != callerOrgID {
		return "", errs.ErrForbidden
	}
	return callerOrgID, nil
}

// RequireOrganizationContext resolves the caller's organization and stores it
// in locals. Token claims short-circuit the lookup; otherwise the phone and
// role from the payload or query string drive the identity resolver.
func RequireOrganizationContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if v, ok := c.Locals(helperAuth.LocOrganizationID).(string); ok && strings.TrimSpace(v) != "" {
			return c.Next()
		}

		var hint identityHint
		_ = c.BodyParser(&hint) // best effort, GET requests carry no body

		phone := firstNonEmpty(hint.AdminPhone, hint.Phone, hint.PhoneNumber, hint.Number, hint.SubmittedPhone,
			c.Query("adminPhone"), c.Query("phone"), c.Query("phoneNumber"), c.Query("number"))
		role := firstNonEmpty(hint.Role, hint.UserType, hint.SubmittedRole, c.Query("role"), c.Query("usertype"))

		if phone == "" {
			return helper.JsonTaxonomyError(c, errs.Validationf("phone number is required to resolve organization context"))
		}

		db, ok := c.Locals("db").(*gorm.DB)
		if !ok || db == nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Database is not available")
		}

		orgID, err := helperAuth.ResolveOrganization(db, phone, role)
		if err != nil {
			return helper.JsonTaxonomyError(c, err)
		}

		c.Locals(helperAuth.LocOrganizationID, orgID.String())
		c.Locals(helperAuth.LocUserNumber, phone)
		return c.Next()
	}
}

// EnforceOrganizationBoundary rejects requests whose payload, query or path
// names a different organization than the caller's. Runs after
// RequireOrganizationContext; a request that reaches it without a resolved
// caller organization is refused outright.
func EnforceOrganizationBoundary() fiber.Handler {
	return func(c *fiber.Ctx) error {
		callerOrg, _ := c.Locals(helperAuth.LocOrganizationID).(string)

		var hint identityHint
		_ = c.BodyParser(&hint)
		requested := firstNonEmpty(hint.OrganizationID, c.Query("organizationId"), c.Params("organizationId"))

		effective, err := EffectiveOrganization(callerOrg, requested)
		if err != nil {
			return helper.JsonTaxonomyError(c, err)
		}

		c.Locals(helperAuth.LocOrganizationID, effective)
		return c.Next()
	}
}
