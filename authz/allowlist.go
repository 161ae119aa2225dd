// Package authz gates admin operations behind an operator-configured
// allow-list of identities. Authorization failures are returned to
// callers as structured payloads, never as transport errors.
package authz

import (
	"errors"
	"strings"
)

// Error messages are part of the API contract: clients distinguish a
// misconfigured deployment from a denied caller by message.
var (
	ErrNotConfigured = errors.New("Admin list not configured")
	ErrAccessDenied  = errors.New("Access denied")
)

// AllowList is the set of email addresses permitted to perform admin
// reads and order-status updates.
type AllowList map[string]struct{}

// Parse builds an AllowList from a comma-separated email string,
// trimming whitespace around each entry. Empty input yields an empty
// (unconfigured) list.
func Parse(raw string) AllowList {
	list := AllowList{}
	for _, entry := range strings.Split(raw, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			list[entry] = struct{}{}
		}
	}
	return list
}

// Authorize returns nil when email may perform admin operations,
// ErrNotConfigured when no admin list is set, and ErrAccessDenied when
// the caller is not on it.
func (a AllowList) Authorize(email string) error {
	if len(a) == 0 {
		return ErrNotConfigured
	}
	if _, ok := a[email]; !ok {
		return ErrAccessDenied
	}
	return nil
}
