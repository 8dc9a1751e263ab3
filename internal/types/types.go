// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Tenant struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	Logo      *string   `db:"logo" json:"logo,omitempty"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Membership struct {
	ID        string     `db:"id" json:"id"`
	UserID    string     `db:"user_id" json:"user_id"`
	TenantID  string     `db:"tenant_id" json:"tenant_id"`
	Role      TenantRole `db:"role" json:"role"`
	InvitedBy *string    `db:"invited_by" json:"invited_by,omitempty"`
	InvitedAt *time.Time `db:"invited_at" json:"invited_at,omitempty"`
	JoinedAt  *time.Time `db:"joined_at" json:"joined_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
}

type Invitation struct {
	ID         string     `db:"id" json:"id"`
	TenantID   string     `db:"tenant_id" json:"tenant_id"`
	InvitedBy  string     `db:"invited_by" json:"invited_by"`
	Email      string     `db:"email" json:"email"`
	Role       TenantRole `db:"role" json:"role"`
	Token      string     `db:"token" json:"-"`
	ExpiresAt  time.Time  `db:"expires_at" json:"expires_at"`
	AcceptedAt *time.Time `db:"accepted_at" json:"accepted_at,omitempty"`
	RejectedAt *time.Time `db:"rejected_at" json:"rejected_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// IsPending reports whether the invitation can still be acted on.
func (i *Invitation) IsPending() bool {
	return i.AcceptedAt == nil && i.RejectedAt == nil && i.ExpiresAt.After(time.Now())
}

// IsExpired reports whether the invitation lapsed without a decision.
func (i *Invitation) IsExpired() bool {
	return i.AcceptedAt == nil && i.RejectedAt == nil && !i.ExpiresAt.After(time.Now())
}

func (i *Invitation) IsAccepted() bool {
	return i.AcceptedAt != nil
}

func (i *Invitation) IsRejected() bool {
	return i.RejectedAt != nil
}

// User is the already-authenticated identity supplied by the identity
// provider. The service never authenticates, it only receives one of these.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// TenantUser is a membership row joined with identity details for listings.
type TenantUser struct {
	UserID   string     `json:"user_id"`
	Email    string     `json:"email"`
	Role     TenantRole `json:"role"`
	JoinedAt *time.Time `json:"joined_at,omitempty"`
}
