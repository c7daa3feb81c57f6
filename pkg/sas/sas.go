// Package sas mints short-lived, read-only capability URLs over durable
// blob storage locators.
package sas

import (
	"errors"
	"time"
)

// ErrNotConfigured is returned when no storage credentials are available
// for signing.
var ErrNotConfigured = errors.New("sas: storage credentials not configured")

// Signer converts a durable blob path into URLs. SignReadURL grants
// anyone holding the result read access until expiry, so callers must
// bound expiry conservatively. URL returns the unsigned durable locator.
type Signer interface {
	SignReadURL(blobPath string, expiry time.Time) (string, error)
	URL(blobPath string) string
}
