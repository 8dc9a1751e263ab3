// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Response is the envelope every JSON endpoint replies with.
type Response struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Status  int         `json:"status"`
}
