package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helperAuth "dsiku_backend/internals/helpers/auth"
	"dsiku_backend/internals/helpers/errs"
)

func TestEffectiveOrganizationCallerWins(t *testing.T) {
	org, err := EffectiveOrganization("org-1", "")
	assert.NoError(t, err)
	assert.Equal(t, "org-1", org)
}

func TestEffectiveOrganizationMatchingRequest(t *testing.T) {
	org, err := EffectiveOrganization("org-1", "org-1")
	assert.NoError(t, err)
	assert.Equal(t, "org-1", org)

	// whitespace around ids is not meaningful
	org, err = EffectiveOrganization(" org-1 ", "org-1")
	assert.NoError(t, err)
	assert.Equal(t, "org-1", org)
}

func TestEffectiveOrganizationCrossTenantRejected(t *testing.T) {
	_, err := EffectiveOrganization("org-1", "org-2")
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestEffectiveOrganizationNoCallerContext(t *testing.T) {
	_, err := EffectiveOrganization("", "org-2")
	assert.ErrorIs(t, err, errs.ErrIdentityNotFound)

	_, err = EffectiveOrganization("", "")
	assert.ErrorIs(t, err, errs.ErrIdentityNotFound)
}

func okHandler(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }

// A request that reaches the boundary without a resolved caller organization
// must never make it to the handler, even when it names a target tenant.
func TestEnforceBoundaryRefusesUnresolvedCaller(t *testing.T) {
	app := fiber.New()
	app.Post("/create-school", EnforceOrganizationBoundary(), okHandler)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/create-school?organizationId=org-beta", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRequireOrganizationContextDemandsPhone(t *testing.T) {
	app := fiber.New()
	app.Post("/create-school", RequireOrganizationContext(), okHandler)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/create-school", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestResolverThenBoundaryChainWithTokenClaims(t *testing.T) {
	app := fiber.New()
	app.Post("/create-school",
		func(c *fiber.Ctx) error {
			c.Locals(helperAuth.LocOrganizationID, "org-1")
			return c.Next()
		},
		RequireOrganizationContext(),
		EnforceOrganizationBoundary(),
		okHandler)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/create-school?organizationId=org-1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/create-school?organizationId=org-2", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
