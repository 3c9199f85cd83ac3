// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var _ datasource.DataSource = (*settingsDataSource)(nil)
var _ datasource.DataSourceWithConfigure = (*settingsDataSource)(nil)

// NewSettingsDataSource returns the data source that publishes the effective processor settings.
func NewSettingsDataSource() datasource.DataSource { return &settingsDataSource{} }

type settingsDataSource struct {
	provider *MailchimpFormProvider
}

type settingsDataSourceModel struct {
	ID            types.String `tfsdk:"id"`
	APIKey        types.String `tfsdk:"api_key"`
	Server        types.String `tfsdk:"server"`
	EnableLogging types.Bool   `tfsdk:"mailchimp_log"`
}

func (d *settingsDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_settings"
}

func (d *settingsDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Effective Mailchimp form processor settings after merging defaults, environment and provider configuration.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "The Mailchimp server prefix, used as identifier.",
			},
			"api_key": schema.StringAttribute{
				Computed:            true,
				Sensitive:           true,
				MarkdownDescription: "Mailchimp API key.",
			},
			"server": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Mailchimp server (data center) prefix.",
			},
			"mailchimp_log": schema.BoolAttribute{
				Computed:            true,
				MarkdownDescription: "Whether responses are logged.",
			},
		},
	}
}

func (d *settingsDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.provider = providerFromData(req.ProviderData, &resp.Diagnostics)
}

func (d *settingsDataSource) Read(ctx context.Context, _ datasource.ReadRequest, resp *datasource.ReadResponse) {
	if d.provider == nil {
		resp.Diagnostics.AddError(
			"Unconfigured provider",
			"The mailchimpform provider has not been configured. Settings are only available after provider configuration succeeds.",
		)
		return
	}

	s := d.provider.config.settings
	data := settingsDataSourceModel{
		ID:            types.StringValue(s.Server),
		APIKey:        stringOrNull(s.APIKey),
		Server:        stringOrNull(s.Server),
		EnableLogging: boolValue(s.EnableLogging),
	}

	logResponse(ctx, d.provider, "read settings", map[string]interface{}{
		attrAPIKey:        redactSecretValue(s.APIKey),
		attrServer:        s.Server,
		attrEnableLogging: s.EnableLogging,
	})

	if diags := resp.State.Set(ctx, &data); diags.HasError() {
		resp.Diagnostics.AddError(
			"Failed to set data source state",
			"An unexpected error occurred while writing computed data to Terraform state. See diagnostics for details.",
		)
		resp.Diagnostics.Append(diags...)
		return
	}
}
