package helper

// Locals keys hydrated by the auth and organization middlewares. Handlers read
// these instead of re-parsing the token.
const (
	LocUserID         = "user_id"
	LocUserRole       = "user_role"
	LocUserName       = "user_name"
	LocUserNumber     = "user_number"
	LocOrganizationID = "organization_id"
)
