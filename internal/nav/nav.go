// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package nav

import (
	"errors"
	"fmt"

	"github.com/cfnav/cfnav/internal/console"
	"github.com/cfnav/cfnav/internal/errs"
	"github.com/cfnav/cfnav/internal/log"
	"github.com/cfnav/cfnav/internal/model"
)

// state enumerates the loop's phases. An explicit loop over these avoids the
// unbounded recursion a long session would otherwise build up.
type state int

const (
	statePrompting state = iota
	stateOpening
	stateCancelled
)

// Picker awaits a single selection from the given choices. Cancellation is
// reported as errs.ErrCancelled.
type Picker func(choices []model.Choice) (model.Choice, error)

// Opener launches a URL in the user's browser, best effort.
type Opener func(url string) error

// BuildChoices projects navigable resources into picker rows. Resources
// without a deep-link rule are dropped here, never shown.
func BuildChoices(resources []model.Resource, region string) []model.Choice {
	ordered := console.FilterAndSort(resources)

	choices := make([]model.Choice, 0, len(ordered))
	for _, r := range ordered {
		url, ok := console.Resolve(r.Type, r.PhysicalID, region)
		if !ok {
			continue
		}
		// The physical id keeps same-template deployments apart in the list.
		choices = append(choices, model.Choice{
			Label: fmt.Sprintf("%s  (%s)  %s", r.LogicalID, r.Type, r.PhysicalID),
			URL:   url,
		})
	}
	return choices
}

// Run drives the picker until the user cancels. Each pass recomputes the
// choice list, awaits a pick, logs the URL and hands it to the opener
// fire-and-forget. The loop has no other exit; the tool is meant to stay
// open across many console visits in one session.
func Run(resources []model.Resource, region string, pick Picker, open Opener) error {
	var current model.Choice

	for st := statePrompting; ; {
		switch st {
		case statePrompting:
			choices := BuildChoices(resources, region)

			picked, err := pick(choices)
			if err != nil {
				if errors.Is(err, errs.ErrCancelled) {
					st = stateCancelled
					continue
				}
				// Keep the session alive through a bad pick.
				log.Errorf("selection failed: %v", err)
				continue
			}

			current = picked
			st = stateOpening

		case stateOpening:
			log.Infof("opening %s", current.URL)
			fmt.Println(current.URL)
			if err := open(current.URL); err != nil {
				log.Warnf("browser open failed: %v", err)
			}
			st = statePrompting

		case stateCancelled:
			return errs.ErrCancelled
		}
	}
}
