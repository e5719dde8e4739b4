package controller

import (
	"strings"

	"github.com/google/uuid"
)

func parseUUIDParam(raw string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(raw))
}
