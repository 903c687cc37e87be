// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional YAML config file and defines the
// immutable per-run settings struct.
package config
