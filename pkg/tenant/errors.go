// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"errors"
)

var (
	// ErrTenantNotFound is returned when no tenant matches the given ID
	// or slug.
	ErrTenantNotFound = errors.New("tenant not found")
	// ErrSlugTaken is returned when creating or renaming a tenant to a
	// slug another tenant already holds.
	ErrSlugTaken = errors.New("tenant slug is already taken")
	// ErrMemberNotFound is returned when the target user does not belong
	// to the tenant.
	ErrMemberNotFound = errors.New("user is not a member of the tenant")
	// ErrLastOwner is returned when demoting or removing the only owner
	// the tenant has left.
	ErrLastOwner = errors.New("tenant must retain at least one owner")
	// ErrNotAllowed is returned when the caller's role does not grant
	// the attempted operation.
	ErrNotAllowed = errors.New("caller is not allowed to perform this action")
)
