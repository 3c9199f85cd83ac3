// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"fmt"

	"github.com/devops-wiz/terraform-provider-mailchimpform/internal/formconfig"
	"github.com/hashicorp/terraform-plugin-framework/attr"
	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/datasource/schema"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

var _ datasource.DataSource = (*fieldsDataSource)(nil)
var _ datasource.DataSourceWithConfigure = (*fieldsDataSource)(nil)

// NewFieldsDataSource returns the data source that publishes the processor's field descriptors and defaults.
func NewFieldsDataSource() datasource.DataSource {
	return &fieldsDataSource{schema: formconfig.New()}
}

type fieldsDataSource struct {
	schema   formconfig.Schema
	provider *MailchimpFormProvider
}

type fieldsDataSourceModel struct {
	ID       types.String `tfsdk:"id"`
	Fields   types.List   `tfsdk:"fields"`
	Defaults types.Map    `tfsdk:"defaults"`
}

type fieldModel struct {
	Name      types.String `tfsdk:"name"`
	Label     types.String `tfsdk:"label"`
	Kind      types.String `tfsdk:"kind"`
	Required  types.Bool   `tfsdk:"required"`
	Attribute types.String `tfsdk:"attribute"`
}

var fieldAttrTypes = map[string]attr.Type{
	"name":      types.StringType,
	"label":     types.StringType,
	"kind":      types.StringType,
	"required":  types.BoolType,
	"attribute": types.StringType,
}

func (d *fieldsDataSource) Metadata(_ context.Context, req datasource.MetadataRequest, resp *datasource.MetadataResponse) {
	resp.TypeName = req.ProviderTypeName + "_fields"
}

func (d *fieldsDataSource) Schema(_ context.Context, _ datasource.SchemaRequest, resp *datasource.SchemaResponse) {
	resp.Schema = schema.Schema{
		MarkdownDescription: "Field descriptors and default values of the Mailchimp form processor configuration, in display order.",
		Attributes: map[string]schema.Attribute{
			"id": schema.StringAttribute{
				Computed:            true,
				MarkdownDescription: "Constant identifier for this data source.",
			},
			"fields": schema.ListNestedAttribute{
				Computed:            true,
				MarkdownDescription: "Ordered configuration fields.",
				NestedObject: schema.NestedAttributeObject{
					Attributes: map[string]schema.Attribute{
						"name": schema.StringAttribute{
							Computed:            true,
							MarkdownDescription: "Field name as persisted by the form builder (e.g. `apiKey`).",
						},
						"label": schema.StringAttribute{
							Computed:            true,
							MarkdownDescription: "Display label.",
						},
						"kind": schema.StringAttribute{
							Computed:            true,
							MarkdownDescription: "Control type: `text` or `checkbox`.",
						},
						"required": schema.BoolAttribute{
							Computed:            true,
							MarkdownDescription: "Whether the form requires a value.",
						},
						"attribute": schema.StringAttribute{
							Computed:            true,
							MarkdownDescription: "Matching provider configuration attribute (e.g. `api_key`).",
						},
					},
				},
			},
			"defaults": schema.MapAttribute{
				Computed:            true,
				ElementType:         types.StringType,
				MarkdownDescription: "Default values keyed by field name. The logging toggle has no entry and defaults to unchecked.",
			},
		},
	}
}

func (d *fieldsDataSource) Configure(_ context.Context, req datasource.ConfigureRequest, resp *datasource.ConfigureResponse) {
	d.provider = providerFromData(req.ProviderData, &resp.Diagnostics)
}

func (d *fieldsDataSource) Read(ctx context.Context, _ datasource.ReadRequest, resp *datasource.ReadResponse) {
	var data fieldsDataSourceModel
	data.ID = types.StringValue(providerTypeName + "_fields")

	descriptors := d.schema.Fields()
	items := make([]fieldModel, 0, len(descriptors))
	for _, f := range descriptors {
		items = append(items, fieldModel{
			Name:      types.StringValue(f.Name),
			Label:     types.StringValue(f.Label),
			Kind:      types.StringValue(string(f.Kind)),
			Required:  boolValue(f.Required),
			Attribute: types.StringValue(attributeName(f.Name)),
		})
	}
	list, diags := types.ListValueFrom(ctx, types.ObjectType{AttrTypes: fieldAttrTypes}, items)
	resp.Diagnostics.Append(diags...)

	defaults := make(map[string]string)
	for k, v := range d.schema.Defaults() {
		defaults[k] = fmt.Sprint(v)
	}
	defaultsMap, diags := types.MapValueFrom(ctx, types.StringType, defaults)
	resp.Diagnostics.Append(diags...)
	if resp.Diagnostics.HasError() {
		return
	}

	data.Fields = list
	data.Defaults = defaultsMap

	logResponse(ctx, d.provider, "read field descriptors", map[string]interface{}{
		"field_count":   len(items),
		"default_count": len(defaults),
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
