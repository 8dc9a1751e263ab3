// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import "errors"

var ErrInvalidAuthModel = errors.New("authorization model in the store does not match the expected model")
