// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package stackset turns the matched stacks into the run's working set and
// aggregates their resources across listing pages.
package stackset
