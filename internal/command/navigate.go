// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	openproc "github.com/skratchdot/open-golang/open"
	"github.com/urfave/cli/v3"

	"github.com/cfnav/cfnav/internal/aws"
	"github.com/cfnav/cfnav/internal/branch"
	"github.com/cfnav/cfnav/internal/config"
	"github.com/cfnav/cfnav/internal/errs"
	"github.com/cfnav/cfnav/internal/fuzzy"
	"github.com/cfnav/cfnav/internal/log"
	"github.com/cfnav/cfnav/internal/match"
	"github.com/cfnav/cfnav/internal/model"
	"github.com/cfnav/cfnav/internal/nav"
	"github.com/cfnav/cfnav/internal/prompt"
	"github.com/cfnav/cfnav/internal/stackset"
)

// stackClient is the read surface the orchestrator consumes.
type stackClient interface {
	DescribeAllStacks(ctx context.Context) ([]model.Stack, error)
	ListResourcePage(ctx context.Context, stackName string, cursor *string) ([]model.Resource, *string, error)
}

// newStackClient builds the CloudFormation-backed client. Variable so tests
// can substitute a fake.
var newStackClient = func(ctx context.Context, run config.Run) (stackClient, error) {
	awsCfg, err := aws.LoadAWSConfig(ctx, aws.WithProfile(run.Profile), aws.WithRegion(run.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return aws.NewClient(awsCfg), nil
}

// navigateAction is the orchestrator: build the run config, fetch stacks,
// match, guard, aggregate, then hand off to the navigation loop.
func navigateAction(ctx context.Context, cmd *cli.Command) error {
	run, err := buildRun(ctx, cmd)
	if err != nil {
		return err
	}
	log.Debugf("run built: match=%q, region=%s, profile=%s, threshold=%d",
		run.Match, run.Region, run.Profile, run.GuardThreshold)

	// Compile the pattern before touching the network so a bad pattern fails
	// fast.
	matcher, err := match.Compile(run.Match)
	if err != nil {
		return err
	}

	client, err := newStackClient(ctx, run)
	if err != nil {
		return err
	}

	all, err := client.DescribeAllStacks(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		return errs.ErrNoStacks
	}

	matched := matcher.Filter(all)
	log.Debugf("stacks matched: count=%d", len(matched))
	if len(matched) == 0 {
		return fmt.Errorf("%w: %s", errs.ErrNoMatchingStacks, run.Match)
	}

	working, err := stackset.Guard(matched, run.GuardThreshold, func(names []string) ([]int, error) {
		if run.NoInput {
			return nil, errs.ErrNoTerminal
		}
		title := fmt.Sprintf("%d stacks matched %q. Select the ones to search:", len(names), run.Match)
		return prompt.MultiSelect(title, names)
	})
	if err != nil {
		return err
	}
	if len(working) == 0 {
		return errs.ErrNoResources
	}

	resources, err := stackset.Aggregate(ctx, client, working)
	if err != nil {
		return err
	}
	log.Debugf("resources aggregated: count=%d", len(resources))

	if len(nav.BuildChoices(resources, run.Region)) == 0 {
		return errs.ErrNoResources
	}

	// The navigation loop is all prompts; bail now rather than spin on a
	// prompt that can never render.
	if run.NoInput {
		return errs.ErrNoTerminal
	}

	return nav.Run(resources, run.Region, pickWithPrompt, openproc.Start)
}

// pickWithPrompt runs the fuzzy autocomplete over the choice labels and
// selects by position, so rows that happen to render identically still map
// to their own choice.
func pickWithPrompt(choices []model.Choice) (model.Choice, error) {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.Label
	}

	idx, err := prompt.Autocomplete("Pick a resource", "", labels, func(input string) []int {
		return fuzzy.Suggest(input, labels)
	})
	if err != nil {
		return model.Choice{}, err
	}
	return choices[idx], nil
}

// buildRun assembles the immutable per-run configuration from flags, env,
// config file and the branch fallback. Prompting for a missing pattern
// happens here so everything downstream sees a fixed value.
func buildRun(ctx context.Context, cmd *cli.Command) (config.Run, error) {
	threshold, _ := config.GetInt("guard.threshold", stackset.DefaultGuardThreshold)

	run := config.Run{
		Profile:        cmd.String("profile"),
		Match:          cmd.String("match"),
		Region:         cmd.String("region"),
		GuardThreshold: threshold,
		NoInput:        cmd.Bool("no-input") || !prompt.Interactive(),
	}

	if run.Match == "" {
		fallback := branch.DefaultMatch(ctx)
		if run.NoInput {
			run.Match = fallback
		} else {
			pattern, err := prompt.Text("Stack match pattern", fallback)
			if err != nil {
				return config.Run{}, err
			}
			run.Match = pattern
		}
	}
	if run.Match == "" {
		return config.Run{}, errs.ErrNoPattern
	}

	return run, nil
}
