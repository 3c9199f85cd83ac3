// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

const (
	// FakeAPIKey is shaped like a Mailchimp API key (32 hex characters and a data center suffix).
	FakeAPIKey = "0123456789abcdef0123456789abcdef-us6"
	// FakeServer is the data center prefix matching FakeAPIKey.
	FakeServer = "us6"
)

// EnvVars lists every environment variable the provider reads.
var EnvVars = []string{
	"MAILCHIMP_API_KEY",
	"MAILCHIMP_SERVER",
	"MAILCHIMP_DC",
	"MAILCHIMP_LOG",
}
