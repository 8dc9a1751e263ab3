// Copyright 2026 Sekeco Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

type Tuple struct {
	User     string
	Relation string
	Object   string
}

func NewTuple(user, relation, object string) *Tuple {
	t := new(Tuple)

	t.User = user
	t.Relation = relation
	t.Object = object

	return t
}
