// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package command wires the CLI surface and orchestrates one navigation run.
package command
