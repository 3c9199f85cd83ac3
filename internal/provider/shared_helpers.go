// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"fmt"

	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Tiny mapping helpers to reduce verbosity in map-to-state code.
func stringOrNull(s string) types.String {
	if s != "" {
		return types.StringValue(s)
	}
	return types.StringNull()
}

func boolValue(b bool) types.Bool { return types.BoolValue(b) }

// providerFromData extracts the configured provider handed to data sources.
// It returns nil without diagnostics when the provider is not configured yet.
func providerFromData(data any, diags *diag.Diagnostics) *MailchimpFormProvider {
	if data == nil {
		return nil
	}
	p, ok := data.(*MailchimpFormProvider)
	if !ok {
		diags.AddError(
			"Unexpected Data Source Configure Type",
			fmt.Sprintf("Expected *MailchimpFormProvider, got: %T. Please report this issue to the provider developers.", data),
		)
		return nil
	}
	return p
}

// logResponse writes a data source response to the mailchimp log subsystem when
// mailchimp_log is enabled. The API key is masked in every field value.
func logResponse(ctx context.Context, p *MailchimpFormProvider, msg string, fields map[string]interface{}) {
	if p == nil || !p.config.settings.EnableLogging {
		return
	}
	ctx = tflog.NewSubsystem(ctx, logSubsystem)
	if key := p.config.settings.APIKey; key != "" {
		ctx = tflog.SubsystemMaskAllFieldValuesStrings(ctx, logSubsystem, key)
	}
	ctx = tflog.SubsystemMaskFieldValuesWithFieldKeys(ctx, logSubsystem, attrAPIKey)
	tflog.SubsystemInfo(ctx, logSubsystem, RedactSecrets(msg), fields)
}
