// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	cfn "github.com/aws/aws-sdk-go-v2/service/cloudformation"

	"github.com/cfnav/cfnav/internal/log"
	"github.com/cfnav/cfnav/internal/model"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile string
	region  string
	retryer func() awsv2.Retryer
}

// Option customizes how AWS config is loaded.
// Default behavior (no options) inherits the shell environment and shared
// config chain (AWS_PROFILE, ~/.aws/config, ~/.aws/credentials, IMDS, etc.).
type Option func(*options)

// LoadAWSConfig loads AWS SDK v2 config. By default it inherits the shell's
// AWS setup (AWS_PROFILE, shared config, env, IMDS). Options can override
// profile, region, and retryer without changing callers.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("opts applied: profile=%s, region=%s", o.profile, o.region)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		log.Debugf("config load err: err=%v", err)
		return awsv2.Config{}, err
	}
	log.Debugf("config loaded")
	return cfg, nil
}

// WithProfile sets the shared config profile. Defaults to AWS_PROFILE/env chain.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion sets the region override. Defaults to env/profile/metadata chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// Client wraps the CloudFormation API behind the two read operations the
// navigator needs.
type Client struct {
	cfn *cfn.Client
}

// NewClient constructs a Client from the provided config. Additional service
// options can be supplied via optFns.
func NewClient(cfg awsv2.Config, optFns ...func(*cfn.Options)) *Client {
	client := cfn.NewFromConfig(cfg, optFns...)
	log.Debugf("cloudformation client created")
	return &Client{cfn: client}
}

// DescribeAllStacks drains the DescribeStacks pages and returns every live
// stack in the account/region. Deleted stacks are excluded by the API.
func (c *Client) DescribeAllStacks(ctx context.Context) ([]model.Stack, error) {
	var stacks []model.Stack

	paginator := cfn.NewDescribeStacksPaginator(c.cfn, &cfn.DescribeStacksInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe stacks: %w", err)
		}
		for _, s := range page.Stacks {
			stacks = append(stacks, model.Stack{Name: awsv2.ToString(s.StackName)})
		}
	}

	log.Debugf("stacks described: count=%d", len(stacks))
	return stacks, nil
}

// ListResourcePage fetches one page of a stack's resources. cursor is the
// opaque continuation token from the previous page, nil for the first page.
// The returned cursor is nil once the listing is exhausted.
func (c *Client) ListResourcePage(ctx context.Context, stackName string, cursor *string) ([]model.Resource, *string, error) {
	out, err := c.cfn.ListStackResources(ctx, &cfn.ListStackResourcesInput{
		StackName: awsv2.String(stackName),
		NextToken: cursor,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list resources for stack %s: %w", stackName, err)
	}

	resources := make([]model.Resource, 0, len(out.StackResourceSummaries))
	for _, r := range out.StackResourceSummaries {
		resources = append(resources, model.Resource{
			Type:       awsv2.ToString(r.ResourceType),
			LogicalID:  awsv2.ToString(r.LogicalResourceId),
			PhysicalID: awsv2.ToString(r.PhysicalResourceId),
		})
	}

	log.Tracef("resource page fetched: stack=%s, count=%d, more=%v", stackName, len(resources), out.NextToken != nil)
	return resources, out.NextToken, nil
}
