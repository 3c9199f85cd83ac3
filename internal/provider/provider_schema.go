// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/devops-wiz/terraform-provider-mailchimpform/internal/formconfig"
	"github.com/hashicorp/terraform-plugin-framework-validators/stringvalidator"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/schema/validator"
)

// attributeName renders a descriptor field name as a Terraform attribute name (apiKey -> api_key).
func attributeName(field string) string {
	var b strings.Builder
	for i, r := range field {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// namedAttribute is a rendered provider schema attribute.
type namedAttribute struct {
	name string
	attr schema.Attribute
}

// attributeFactory renders descriptor fields into provider schema attributes.
type attributeFactory struct {
	sensitive map[string]bool
	extra     map[string][]validator.String
}

var _ formconfig.FieldFactory[namedAttribute] = attributeFactory{}

func newAttributeFactory() attributeFactory {
	return attributeFactory{
		sensitive: map[string]bool{formconfig.FieldAPIKey: true},
		extra: map[string][]validator.String{
			formconfig.FieldServer: {
				stringvalidator.RegexMatches(serverPattern, "server must be a Mailchimp data center prefix such as \"us6\"."),
			},
		},
	}
}

func (a attributeFactory) Text(f formconfig.Field) (namedAttribute, error) {
	name := attributeName(f.Name)
	var validators []validator.String
	if f.Required {
		validators = append(validators, stringvalidator.LengthAtLeast(1))
	}
	validators = append(validators, a.extra[f.Name]...)

	return namedAttribute{
		name: name,
		attr: schema.StringAttribute{
			MarkdownDescription: fieldDescription(f),
			// Required fields may come from the environment, so they are enforced in Configure.
			Optional:   true,
			Sensitive:  a.sensitive[f.Name],
			Validators: validators,
		},
	}, nil
}

func (a attributeFactory) Checkbox(f formconfig.Field) (namedAttribute, error) {
	return namedAttribute{
		name: attributeName(f.Name),
		attr: schema.BoolAttribute{
			MarkdownDescription: fieldDescription(f),
			Optional:            true,
		},
	}, nil
}

var trailingPunct = regexp.MustCompile(`[?.:]+$`)

func fieldDescription(f formconfig.Field) string {
	label := trailingPunct.ReplaceAllString(f.Label, "")
	var envHint string
	if vars := envVars[f.Name]; len(vars) > 0 {
		envHint = fmt.Sprintf(" May also be set with the `%s` environment variable.", vars[0])
	}
	switch {
	case f.Kind == formconfig.KindCheckbox:
		return fmt.Sprintf("%s. Defaults to `false`.%s", label, envHint)
	case f.Required:
		return fmt.Sprintf("%s. Required.%s", label, envHint)
	default:
		return fmt.Sprintf("%s.%s", label, envHint)
	}
}

// renderProviderAttributes builds the provider schema attributes from the descriptor.
func renderProviderAttributes() (map[string]schema.Attribute, error) {
	rendered, err := formconfig.NewForm[namedAttribute](newAttributeFactory()).Build()
	if err != nil {
		return nil, err
	}
	attrs := make(map[string]schema.Attribute, len(rendered))
	for _, r := range rendered {
		if _, dup := attrs[r.name]; dup {
			return nil, fmt.Errorf("duplicate attribute %q", r.name)
		}
		attrs[r.name] = r.attr
	}
	return attrs, nil
}
