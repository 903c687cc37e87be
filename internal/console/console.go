// Copyright (c) 2026 cfnav contributors.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"sort"
	"strings"

	"github.com/cfnav/cfnav/internal/model"
)

// missingToken stands in for an absent physical id or region so Resolve stays
// total. The allow-list filter keeps these out of the picker in practice.
const missingToken = "unknown"

// rule describes how one resource type maps to its console page.
type rule struct {
	// template with {region} and {id} placeholders.
	template string
	// The CloudWatch console double-escapes "/" in log group names, so each
	// slash becomes the literal sequence "$252F" before substitution.
	escapeSlash bool
}

// rules is the closed deep-link table. A type absent from this table has no
// console link and is invisible to the picker. Extending support is a single
// row here.
var rules = map[string]rule{
	"AWS::DynamoDB::Table": {
		template: "https://{region}.console.aws.amazon.com/dynamodb/home?region={region}#tables:selected={id};tab=overview",
	},
	"AWS::Lambda::Function": {
		template: "https://{region}.console.aws.amazon.com/lambda/home?region={region}#/functions/{id}",
	},
	"AWS::Logs::LogGroup": {
		template:    "https://{region}.console.aws.amazon.com/cloudwatch/home?region={region}#logsV2:log-groups/log-group/{id}",
		escapeSlash: true,
	},
	"AWS::ApiGateway::RestApi": {
		template: "https://{region}.console.aws.amazon.com/apigateway/main/apis/{id}/resources?api={id}&region={region}",
	},
}

// Resolve maps a resource to its console URL. The second return is false when
// the type has no deep-link rule; callers treat that as "no link available".
// Resolve never fails on missing inputs, it substitutes a placeholder instead.
func Resolve(resourceType, physicalID, region string) (string, bool) {
	r, ok := rules[resourceType]
	if !ok {
		return "", false
	}

	id := physicalID
	if id == "" {
		id = missingToken
	}
	if region == "" {
		region = missingToken
	}
	if r.escapeSlash {
		id = strings.ReplaceAll(id, "/", "$252F")
	}

	return strings.NewReplacer("{region}", region, "{id}", id).Replace(r.template), true
}

// Supported reports whether the given resource type has a deep-link rule.
func Supported(resourceType string) bool {
	_, ok := rules[resourceType]
	return ok
}

// FilterAndSort drops resources without a deep-link rule and orders the rest
// by type, then logical id. Pure and idempotent; the input slice is not
// modified. The fixed order keeps the picker stable across iterations.
func FilterAndSort(in []model.Resource) []model.Resource {
	out := make([]model.Resource, 0, len(in))
	for _, r := range in {
		if Supported(r.Type) {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].LogicalID < out[j].LogicalID
	})

	return out
}
