package services

import "errors"

// Validation and business-rule errors owned by the service layer. Storage
// errors (team not found, name conflicts) are raised by the db package and
// pass through unchanged; the HTTP mapping in handlers covers both.
var (
	ErrTeamNameRequired     = errors.New("team name is required")
	ErrNoFieldsToUpdate     = errors.New("no fields provided for update")
	ErrRoundOutOfRange      = errors.New("round must be between 1 and 3")
	ErrLevelOutOfRange      = errors.New("level must be between 2 and 14")
	ErrResetPasswordInvalid = errors.New("invalid reset password")
)
