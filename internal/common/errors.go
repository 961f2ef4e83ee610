// Package common defines shared constants and sentinel errors used across
// the recipekeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// search client terminal outcomes
	ErrNoAPIKeys        = errors.New("no credentials available")
	ErrAllKeysExhausted = errors.New("all api keys exhausted")

	// quota errors
	ErrQuotaExceeded = errors.New("monthly upload quota exceeded")

	// auth errors (invalid or malformed token)
	ErrInvalidToken = errors.New("invalid token")

	// service specific errors
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
)
