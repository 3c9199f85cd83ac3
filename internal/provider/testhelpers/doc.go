// Package testhelpers provides shared testing utilities used across unit and
// acceptance tests.
//
// Intended use:
//   - Unit tests: fixed credentials and environment isolation helpers.
//   - Acceptance tests: HCL builders for provider blocks and data sources.
//
// Conventions:
//   - Keep dependencies minimal and avoid importing production-only paths.
//   - Never use real credentials; the fixtures below only look like Mailchimp keys.
//
// This package is for test code and is not part of the provider's public API.
package testhelpers
