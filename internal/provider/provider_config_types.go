// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import "github.com/devops-wiz/terraform-provider-mailchimpform/internal/formconfig"

// validationErr captures a configuration validation error and optional attribute path.
type validationErr struct {
	attr    string // empty for general error
	field   string // descriptor field name, empty for general error
	summary string
	detail  string
}

// resolvedConfig contains the merged provider configuration handed to data sources.
type resolvedConfig struct {
	settings formconfig.Settings
	// sources records where each descriptor field's value came from.
	sources map[string]string
}
