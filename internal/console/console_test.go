// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfnav/cfnav/internal/model"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		resourceType string
		physicalID   string
		region       string
		want         string
		wantOK       bool
	}{
		{
			name:         "dynamodb table",
			resourceType: "AWS::DynamoDB::Table",
			physicalID:   "orders-table",
			region:       "us-east-1",
			want:         "https://us-east-1.console.aws.amazon.com/dynamodb/home?region=us-east-1#tables:selected=orders-table;tab=overview",
			wantOK:       true,
		},
		{
			name:         "lambda function",
			resourceType: "AWS::Lambda::Function",
			physicalID:   "my-fn",
			region:       "ap-southeast-2",
			want:         "https://ap-southeast-2.console.aws.amazon.com/lambda/home?region=ap-southeast-2#/functions/my-fn",
			wantOK:       true,
		},
		{
			name:         "log group escapes slashes",
			resourceType: "AWS::Logs::LogGroup",
			physicalID:   "/aws/lambda/my-fn",
			region:       "us-east-1",
			want:         "https://us-east-1.console.aws.amazon.com/cloudwatch/home?region=us-east-1#logsV2:log-groups/log-group/$252Faws$252Flambda$252Fmy-fn",
			wantOK:       true,
		},
		{
			name:         "rest api",
			resourceType: "AWS::ApiGateway::RestApi",
			physicalID:   "abc123",
			region:       "eu-west-1",
			want:         "https://eu-west-1.console.aws.amazon.com/apigateway/main/apis/abc123/resources?api=abc123&region=eu-west-1",
			wantOK:       true,
		},
		{
			name:         "unsupported type",
			resourceType: "AWS::S3::Bucket",
			physicalID:   "my-bucket",
			region:       "us-east-1",
			wantOK:       false,
		},
		{
			name:         "empty type",
			resourceType: "",
			physicalID:   "something",
			region:       "us-east-1",
			wantOK:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.resourceType, tt.physicalID, tt.region)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveMissingInputs(t *testing.T) {
	// A missing physical id or region must not panic; a placeholder is
	// substituted instead.
	got, ok := Resolve("AWS::Lambda::Function", "", "")
	require.True(t, ok)
	assert.Contains(t, got, "unknown")
}

func TestFilterAndSort(t *testing.T) {
	in := []model.Resource{
		{Type: "AWS::Lambda::Function", LogicalID: "Worker", PhysicalID: "worker"},
		{Type: "AWS::S3::Bucket", LogicalID: "Assets", PhysicalID: "assets"},
		{Type: "AWS::DynamoDB::Table", LogicalID: "Orders", PhysicalID: "orders"},
		{Type: "AWS::Lambda::Function", LogicalID: "Api", PhysicalID: "api"},
		{Type: "AWS::IAM::Role", LogicalID: "Role", PhysicalID: "role"},
	}

	got := FilterAndSort(in)

	require.Len(t, got, 3)
	assert.Equal(t, "Orders", got[0].LogicalID)
	assert.Equal(t, "Api", got[1].LogicalID)
	assert.Equal(t, "Worker", got[2].LogicalID)

	for _, r := range got {
		assert.True(t, Supported(r.Type), "unsupported type leaked through: %s", r.Type)
	}

	// Input order is untouched.
	assert.Equal(t, "Worker", in[0].LogicalID)

	// Re-running on the output is a no-op.
	again := FilterAndSort(got)
	assert.Equal(t, got, again)
}

func TestFilterAndSortEmpty(t *testing.T) {
	assert.Empty(t, FilterAndSort(nil))
	assert.Empty(t, FilterAndSort([]model.Resource{{Type: "AWS::IAM::Role", LogicalID: "R"}}))
}
