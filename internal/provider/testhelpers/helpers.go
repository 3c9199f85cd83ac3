// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package testhelpers

import (
	"strings"
	"testing"
	"text/template"
)

// ClearEnv blanks every provider environment variable for the duration of the test.
func ClearEnv(t *testing.T) {
	t.Helper()
	for _, v := range EnvVars {
		t.Setenv(v, "")
	}
}

// ProviderBlock describes a provider "mailchimpform" block. Empty strings and a nil
// Logging pointer leave the attribute out.
type ProviderBlock struct {
	APIKey  string
	Server  string
	Logging *bool
}

var providerTmpl = template.Must(template.New("provider").
	Funcs(template.FuncMap{"deref": func(b *bool) bool { return *b }}).
	Parse(`
provider "mailchimpform" {
{{- if .APIKey }}
  api_key = "{{ .APIKey }}"
{{- end }}
{{- if .Server }}
  server = "{{ .Server }}"
{{- end }}
{{- if .Logging }}
  mailchimp_log = {{ deref .Logging }}
{{- end }}
}
`))

// MustRender returns the HCL for the provider block followed by extra configuration.
func (b ProviderBlock) MustRender(t *testing.T, extra ...string) string {
	t.Helper()
	var sb strings.Builder
	if err := providerTmpl.Execute(&sb, b); err != nil {
		t.Fatalf("render provider block: %v", err)
	}
	for _, e := range extra {
		sb.WriteString(e)
	}
	return sb.String()
}

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
