// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package provider implements the Terraform Provider for the form builder's Mailchimp processor configuration.
//
// Highlights:
//   - Schema: provider attributes are rendered from the formconfig descriptor, so
//     field names, required flags and kinds have a single source.
//   - Precedence: descriptor defaults, then MAILCHIMP_* environment variables, then HCL.
//   - Privacy: the API key is sensitive in schemas and redacted from diagnostics and logs.
//   - Logging: mailchimp_log routes data source responses to the "mailchimp" tflog subsystem.
package provider
