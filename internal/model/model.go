// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package model holds the immutable snapshot types one run operates on.
package model

// Stack is a deployed CloudFormation stack, reduced to what navigation
// needs. Snapshots are taken once per run and never refreshed.
type Stack struct {
	Name string
}

// Resource is one provisioned entity belonging to a stack. PhysicalID may be
// empty while a resource is still being created.
type Resource struct {
	Type       string
	LogicalID  string
	PhysicalID string
}

// Choice is the presentation projection of a Resource offered by the picker.
type Choice struct {
	Label string
	URL   string
}
