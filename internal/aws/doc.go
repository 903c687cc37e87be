// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package aws loads SDK configuration and exposes the two CloudFormation
// read operations the navigator consumes.
package aws
