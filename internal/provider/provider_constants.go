// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

// Centralized attribute names used in provider configuration schema and validation.
// They are the Terraform renderings of the descriptor's field names.
const (
	attrAPIKey        = "api_key"
	attrServer        = "server"
	attrEnableLogging = "mailchimp_log"
)

// Environment variables read when the matching attribute is not set in HCL.
const (
	envAPIKey        = "MAILCHIMP_API_KEY"
	envServer        = "MAILCHIMP_SERVER"
	envServerAlias   = "MAILCHIMP_DC"
	envEnableLogging = "MAILCHIMP_LOG"
)

const (
	providerTypeName = "mailchimpform"
	// logSubsystem receives data source responses when mailchimp_log is enabled.
	logSubsystem = "mailchimp"
	userAgent    = "devops-wiz/terraform-provider-mailchimpform"
)

// Value sources recorded per attribute for debug logging.
const (
	sourceDefault = "default"
	sourceEnv     = "env"
	sourceConfig  = "config"
)
