// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/sekeco/iam-service/cmd"

func main() {
	cmd.Execute()
}
