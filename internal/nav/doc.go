// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package nav is the restartable resource-picker loop: pick a resource, open
// its console page, come back for the next one.
package nav
