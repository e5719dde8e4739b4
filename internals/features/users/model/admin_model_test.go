package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestNormalizeSchoolListJSONArray(t *testing.T) {
	raw := datatypes.JSON(`["GPS Anand Nagar", "  GHS Rampur  ", ""]`)
	assert.Equal(t, []string{"GPS Anand Nagar", "GHS Rampur"}, NormalizeSchoolList(raw))
}

func TestNormalizeSchoolListCommaJoinedString(t *testing.T) {
	raw := datatypes.JSON(`"GPS Anand Nagar, GHS Rampur,,  KV Sector 8 "`)
	assert.Equal(t, []string{"GPS Anand Nagar", "GHS Rampur", "KV Sector 8"}, NormalizeSchoolList(raw))
}

func TestNormalizeSchoolListSingleString(t *testing.T) {
	raw := datatypes.JSON(`"GPS Anand Nagar"`)
	assert.Equal(t, []string{"GPS Anand Nagar"}, NormalizeSchoolList(raw))
}

func TestNormalizeSchoolListDegenerateValues(t *testing.T) {
	assert.Empty(t, NormalizeSchoolList(nil))
	assert.Empty(t, NormalizeSchoolList(datatypes.JSON(``)))
	assert.Empty(t, NormalizeSchoolList(datatypes.JSON(`[]`)))
	assert.Empty(t, NormalizeSchoolList(datatypes.JSON(`""`)))
	assert.Empty(t, NormalizeSchoolList(datatypes.JSON(`{"not":"a list"}`)))
	assert.Empty(t, NormalizeSchoolList(datatypes.JSON(`42`)))
}

func TestAssignedSchoolsRoundTrip(t *testing.T) {
	var admin AdminModel
	admin.SetAssignedSchools([]string{"GPS Anand Nagar", "GHS Rampur"})
	assert.Equal(t, []string{"GPS Anand Nagar", "GHS Rampur"}, admin.AssignedSchools())

	admin.SetAssignedSchools(nil)
	assert.Empty(t, admin.AssignedSchools())
	assert.Equal(t, datatypes.JSON(`[]`), admin.AdminAssignedSchoolList)
}
