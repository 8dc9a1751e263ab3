// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"errors"
)

var (
	// ErrInvitationNotFound is returned when no invitation matches the
	// given token or ID.
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrInvitationNotPending is returned when acting on an invitation
	// that was already accepted, rejected, or has expired.
	ErrInvitationNotPending = errors.New("invitation is no longer pending")
	// ErrAlreadyMember is returned when inviting a user who already
	// belongs to the tenant.
	ErrAlreadyMember = errors.New("user is already a member of the tenant")
	// ErrEmailMismatch is returned when the accepting identity's email
	// does not match the one the invitation was issued to.
	ErrEmailMismatch = errors.New("invitation was issued to a different email")
	// ErrTenantInactive is returned when inviting into a deactivated
	// tenant while active-tenant enforcement is on.
	ErrTenantInactive = errors.New("tenant is not active")
	// ErrNotAllowed is returned when the caller's role does not grant
	// the attempted operation.
	ErrNotAllowed = errors.New("caller is not allowed to perform this action")
)
