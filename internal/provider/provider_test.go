// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"context"
	"os"
	"testing"

	"github.com/hashicorp/terraform-plugin-framework/datasource"
	"github.com/hashicorp/terraform-plugin-framework/provider"
	"github.com/hashicorp/terraform-plugin-framework/providerserver"
	"github.com/hashicorp/terraform-plugin-framework/tfsdk"
	"github.com/hashicorp/terraform-plugin-go/tfprotov6"
	"github.com/hashicorp/terraform-plugin-go/tftypes"
	"github.com/stretchr/testify/require"
)

// testAccPreCheck guards acceptance tests against credentials leaking in from the developer's shell.
func testAccPreCheck(t *testing.T) {
	for _, v := range []string{envAPIKey, envServer, envServerAlias} {
		if os.Getenv(v) != "" {
			t.Fatalf("%s must be unset for acceptance tests; credentials are passed through HCL", v)
		}
	}
}

// Provider factory for acceptance tests
var testAccProtoV6ProviderFactories = map[string]func() (tfprotov6.ProviderServer, error){
	providerTypeName: providerserver.NewProtocol6WithError(New("test")()),
}

func newTestProvider() *MailchimpFormProvider {
	return New("test")().(*MailchimpFormProvider)
}

// providerConfig builds a tfsdk.Config for the provider schema; attributes missing from vals are null.
func providerConfig(t *testing.T, p *MailchimpFormProvider, vals map[string]tftypes.Value) tfsdk.Config {
	t.Helper()
	ctx := context.Background()

	resp := &provider.SchemaResponse{}
	p.Schema(ctx, provider.SchemaRequest{}, resp)
	require.False(t, resp.Diagnostics.HasError(), "schema diagnostics: %v", resp.Diagnostics)

	obj, ok := resp.Schema.Type().TerraformType(ctx).(tftypes.Object)
	require.True(t, ok)

	full := make(map[string]tftypes.Value, len(obj.AttributeTypes))
	for name, typ := range obj.AttributeTypes {
		if v, ok := vals[name]; ok {
			full[name] = v
			continue
		}
		full[name] = tftypes.NewValue(typ, nil)
	}
	return tfsdk.Config{Schema: resp.Schema, Raw: tftypes.NewValue(obj, full)}
}

// configureProvider runs Configure with the given HCL values.
func configureProvider(t *testing.T, p *MailchimpFormProvider, vals map[string]tftypes.Value) *provider.ConfigureResponse {
	t.Helper()
	resp := &provider.ConfigureResponse{}
	p.Configure(context.Background(), provider.ConfigureRequest{Config: providerConfig(t, p, vals)}, resp)
	return resp
}

// readDataSource configures ds with providerData and runs Read against a null config.
func readDataSource(ctx context.Context, t *testing.T, ds datasource.DataSource, providerData any) *datasource.ReadResponse {
	t.Helper()

	if c, ok := ds.(datasource.DataSourceWithConfigure); ok {
		cresp := &datasource.ConfigureResponse{}
		c.Configure(ctx, datasource.ConfigureRequest{ProviderData: providerData}, cresp)
		require.False(t, cresp.Diagnostics.HasError(), "configure diagnostics: %v", cresp.Diagnostics)
	}

	sresp := &datasource.SchemaResponse{}
	ds.Schema(ctx, datasource.SchemaRequest{}, sresp)
	require.False(t, sresp.Diagnostics.HasError())

	typ := sresp.Schema.Type().TerraformType(ctx)
	resp := &datasource.ReadResponse{State: tfsdk.State{Schema: sresp.Schema, Raw: tftypes.NewValue(typ, nil)}}
	ds.Read(ctx, datasource.ReadRequest{Config: tfsdk.Config{Schema: sresp.Schema, Raw: tftypes.NewValue(typ, nil)}}, resp)
	return resp
}

func str(v string) tftypes.Value { return tftypes.NewValue(tftypes.String, v) }

func boolean(v bool) tftypes.Value { return tftypes.NewValue(tftypes.Bool, v) }
