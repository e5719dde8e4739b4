package helper

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsiku_backend/internals/constants"
	"dsiku_backend/internals/helpers/errs"
)

// A phone present in both an admin kind and the professionals table resolves
// to the admin: the probe order decides, not insertion order.
func TestProbeIdentityAdminWinsOverProfessional(t *testing.T) {
	adminOrg := uuid.New()
	records := map[string]*Identity{
		constants.RoleSchoolAdmin:  {Kind: KindAdmin, Role: constants.RoleSchoolAdmin, OrganizationID: adminOrg},
		constants.RoleProfessional: {Kind: KindProfessional, Role: constants.RoleProfessional, OrganizationID: uuid.New()},
	}
	lookup := func(role string) (*Identity, error) {
		if id, ok := records[role]; ok {
			return id, nil
		}
		return nil, errs.ErrIdentityNotFound
	}

	id, err := probeIdentity(IdentityProbeOrder(), lookup)
	require.NoError(t, err)
	assert.Equal(t, KindAdmin, id.Kind)
	assert.Equal(t, adminOrg, id.OrganizationID)
}

func TestProbeIdentityKeepsGoingPastMisses(t *testing.T) {
	var probed []string
	lookup := func(role string) (*Identity, error) {
		probed = append(probed, role)
		if role == constants.RoleParent {
			return &Identity{Kind: KindParent, Role: constants.RoleParent}, nil
		}
		return nil, errs.ErrIdentityNotFound
	}

	id, err := probeIdentity(IdentityProbeOrder(), lookup)
	require.NoError(t, err)
	assert.Equal(t, KindParent, id.Kind)
	// every kind before Parent was tried, in priority order
	assert.Equal(t, IdentityProbeOrder(), probed)
}

func TestProbeIdentityNoMatchAnywhere(t *testing.T) {
	lookup := func(string) (*Identity, error) { return nil, errs.ErrIdentityNotFound }

	_, err := probeIdentity(IdentityProbeOrder(), lookup)
	assert.ErrorIs(t, err, errs.ErrIdentityNotFound)
}

func TestProbeIdentityAbortsOnLookupFailure(t *testing.T) {
	boom := errors.New("connection reset")
	var calls int
	lookup := func(role string) (*Identity, error) {
		calls++
		if role == constants.RoleNGOAdmin {
			return nil, boom
		}
		return nil, errs.ErrIdentityNotFound
	}

	_, err := probeIdentity(IdentityProbeOrder(), lookup)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
}
