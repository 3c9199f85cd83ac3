// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"

	"github.com/devops-wiz/terraform-provider-mailchimpform/internal/formconfig"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/diag"
	"github.com/hashicorp/terraform-plugin-framework/path"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/provider/schema"
	"github.com/hashicorp/terraform-plugin-framework/resource"
	"github.com/hashicorp/terraform-plugin-framework/types"
	"github.com/hashicorp/terraform-plugin-log/tflog"
)

// Ensure MailchimpFormProvider satisfies various provider interfaces.
var _ provider.Provider = &MailchimpFormProvider{}
var _ provider.ProviderWithValidateConfig = &MailchimpFormProvider{}

// MailchimpFormProvider defines the provider implementation.
type MailchimpFormProvider struct {
	// version is set to the provider version on release, "dev" when the
	// provider is built and ran locally, and "test" when running acceptance
	// testing.
	version string
	// schema is the form processor's configuration descriptor.
	schema formconfig.Schema
	// config holds the merged settings once Configure succeeds.
	config resolvedConfig
}

// MailchimpFormProviderModel describes the provider data model. Tags match the
// attribute names rendered from the descriptor.
type MailchimpFormProviderModel struct {
	APIKey        types.String `tfsdk:"api_key"`
	Server        types.String `tfsdk:"server"`
	EnableLogging types.Bool   `tfsdk:"mailchimp_log"`
}

func (p *MailchimpFormProvider) Metadata(_ context.Context, _ provider.MetadataRequest, resp *provider.MetadataResponse) {
	resp.TypeName = providerTypeName
	resp.Version = p.version
}

func (p *MailchimpFormProvider) Schema(_ context.Context, _ provider.SchemaRequest, resp *provider.SchemaResponse) {
	attrs, err := renderProviderAttributes()
	if err != nil {
		resp.Diagnostics.AddError("Error rendering provider schema", err.Error())
		return
	}
	resp.Schema = schema.Schema{
		MarkdownDescription: "Configuration for the form builder's Mailchimp processor. " +
			"Values are merged over the processor defaults: environment variables first, then this block.",
		Attributes: attrs,
	}
}

func (p *MailchimpFormProvider) ValidateConfig(ctx context.Context, req provider.ValidateConfigRequest, resp *provider.ValidateConfigResponse) {
	var data MailchimpFormProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	rc, errs := deriveResolvedConfig(p.schema, data)
	if len(errs) == 0 {
		errs = validateResolvedConfig(p.schema, rc)
	}
	appendValidationErrs(&resp.Diagnostics, dropUnknown(errs, unknownFields(data)))
}

func (p *MailchimpFormProvider) Configure(ctx context.Context, req provider.ConfigureRequest, resp *provider.ConfigureResponse) {
	var data MailchimpFormProviderModel

	resp.Diagnostics.Append(req.Config.Get(ctx, &data)...)
	if resp.Diagnostics.HasError() {
		return
	}

	rc, errs := deriveResolvedConfig(p.schema, data)
	if len(errs) == 0 {
		errs = validateResolvedConfig(p.schema, rc)
	}
	if len(errs) > 0 {
		appendValidationErrs(&resp.Diagnostics, errs)
		return
	}

	ctx = tflog.MaskAllFieldValuesStrings(ctx, rc.settings.APIKey)
	tflog.Debug(ctx, "configured mailchimp form processor", map[string]interface{}{
		"server":             rc.settings.Server,
		"mailchimp_log":      rc.settings.EnableLogging,
		"api_key_source":     rc.sources[formconfig.FieldAPIKey],
		"server_source":      rc.sources[formconfig.FieldServer],
		"mailchimp_log_from": rc.sources[formconfig.FieldEnableLogging],
		"user_agent":         userAgent + "/" + p.version,
	})

	p.config = rc

	resp.DataSourceData = p
	resp.ResourceData = p
}

func (p *MailchimpFormProvider) Resources(_ context.Context) []func() resource.Resource {
	return []func() resource.Resource{}
}

func (p *MailchimpFormProvider) DataSources(_ context.Context) []func() datasource.DataSource {
	return []func() datasource.DataSource{
		NewFieldsDataSource,
		NewSettingsDataSource,
	}
}

// appendValidationErrs converts validation errors to diagnostics, scoping them to attributes when possible.
func appendValidationErrs(diags *diag.Diagnostics, errs []validationErr) {
	for _, e := range errs {
		if e.attr == "" {
			diags.AddError(e.summary, e.detail)
			continue
		}
		diags.AddAttributeError(path.Root(e.attr), e.summary, e.detail)
	}
}

func New(version string) func() provider.Provider {
	return func() provider.Provider {
		return &MailchimpFormProvider{
			version: version,
			schema:  formconfig.New(),
		}
	}
}
