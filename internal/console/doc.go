// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package console maps stack resources to AWS console deep links and selects
// which resources are navigable at all.
package console
