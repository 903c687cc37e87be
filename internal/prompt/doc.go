// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

// Package prompt renders the interactive prompts (text, autocomplete,
// multiselect) on bubbletea. Cancellation surfaces as errs.ErrCancelled; the
// prompts never terminate the process themselves.
package prompt
