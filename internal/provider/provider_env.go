// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"os"
	"strconv"

	"github.com/devops-wiz/terraform-provider-mailchimpform/internal/formconfig"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

// envVars maps descriptor field names to a canonical environment variable followed by aliases.
var envVars = map[string][]string{
	formconfig.FieldAPIKey:        {envAPIKey},
	formconfig.FieldServer:        {envServer, envServerAlias},
	formconfig.FieldEnableLogging: {envEnableLogging},
}

// lookupEnv returns the first non-empty value among the canonical variable and its aliases.
func lookupEnv(names ...string) (string, bool) {
	for _, n := range names {
		if n == "" {
			continue
		}
		if v := os.Getenv(n); v != "" {
			return v, true
		}
	}
	return "", false
}

// envStore exposes the process environment as a configuration layer.
func envStore() formconfig.Store {
	return formconfig.StoreFunc(func(name string) (string, bool) {
		return lookupEnv(envVars[name]...)
	})
}

// readString returns the HCL value when it is known.
func readString(s types.String) (string, bool) {
	if s.IsNull() || s.IsUnknown() {
		return "", false
	}
	return s.ValueString(), true
}

func readBool(b types.Bool) (bool, bool) {
	if b.IsNull() || b.IsUnknown() {
		return false, false
	}
	return b.ValueBool(), true
}

// configStore exposes the known HCL values as a configuration layer.
func configStore(data MailchimpFormProviderModel) formconfig.MapStore {
	m := formconfig.MapStore{}
	if v, ok := readString(data.APIKey); ok {
		m[formconfig.FieldAPIKey] = v
	}
	if v, ok := readString(data.Server); ok {
		m[formconfig.FieldServer] = v
	}
	if v, ok := readBool(data.EnableLogging); ok {
		m[formconfig.FieldEnableLogging] = strconv.FormatBool(v)
	}
	return m
}

// unknownFields lists descriptor fields whose HCL value is not yet known (e.g. during validate).
func unknownFields(data MailchimpFormProviderModel) map[string]bool {
	return map[string]bool{
		formconfig.FieldAPIKey:        data.APIKey.IsUnknown(),
		formconfig.FieldServer:        data.Server.IsUnknown(),
		formconfig.FieldEnableLogging: data.EnableLogging.IsUnknown(),
	}
}
