package domain

import "errors"

// Domain errors (no external dependencies). Every rejection path surfaces one
// of these so handlers and tests can branch on the kind instead of matching
// message text.
var (
	// Validation: malformed or missing input, fatal to the request.
	ErrInvalidInput = errors.New("invalid input")

	// Not found: unknown asset, session, document, plant or user.
	ErrNotFound      = errors.New("resource not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrAssetNotFound = errors.New("asset not in master data")

	// Conflicts: expected operator-facing rejections.
	ErrInvalidTransition = errors.New("invalid movement for current asset location")
	ErrDuplicateScan     = errors.New("duplicate scan in session")
	ErrDuplicateDocument = errors.New("duplicate document number")
	ErrSessionClosed     = errors.New("session is not active")
	ErrPlantMismatch     = errors.New("plant does not match session")
	ErrDuplicate         = errors.New("resource already exists")

	// Auth.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")
)
