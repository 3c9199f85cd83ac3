// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"strings"
	"testing"

	"github.com/devops-wiz/terraform-provider-mailchimpform/internal/formconfig"
	"github.com/devops-wiz/terraform-provider-mailchimpform/internal/provider/testhelpers"
	"github.com/hashicorp/terraform-plugin-framework/types"
)

func nullModel() MailchimpFormProviderModel {
	return MailchimpFormProviderModel{APIKey: types.StringNull(), Server: types.StringNull(), EnableLogging: types.BoolNull()}
}

func Test_deriveResolvedConfig_env_precedence_and_defaults(t *testing.T) {
	s := formconfig.New()

	t.Run("defaults when nothing is set", func(t *testing.T) {
		testhelpers.ClearEnv(t)

		rc, errs := deriveResolvedConfig(s, nullModel())
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if rc.settings != (formconfig.Settings{}) {
			t.Fatalf("expected zero settings, got %+v", rc.settings)
		}
		for _, f := range s.Fields() {
			if rc.sources[f.Name] != sourceDefault {
				t.Fatalf("expected %s from default, got %q", f.Name, rc.sources[f.Name])
			}
		}
	})

	t.Run("server canonical over alias; HCL overrides env", func(t *testing.T) {
		testhelpers.ClearEnv(t)
		t.Setenv(envServerAlias, "us1")
		t.Setenv(envServer, "us2")

		rc, _ := deriveResolvedConfig(s, nullModel())
		if rc.settings.Server != "us2" {
			t.Fatalf("expected canonical server, got %q", rc.settings.Server)
		}
		if rc.sources[formconfig.FieldServer] != sourceEnv {
			t.Fatalf("expected env source, got %q", rc.sources[formconfig.FieldServer])
		}

		m := nullModel()
		m.Server = types.StringValue("us3")
		rc, _ = deriveResolvedConfig(s, m)
		if rc.settings.Server != "us3" {
			t.Fatalf("expected HCL server, got %q", rc.settings.Server)
		}
		if rc.sources[formconfig.FieldServer] != sourceConfig {
			t.Fatalf("expected config source, got %q", rc.sources[formconfig.FieldServer])
		}
	})

	t.Run("alias used when canonical unset", func(t *testing.T) {
		testhelpers.ClearEnv(t)
		t.Setenv(envServerAlias, "us1")

		rc, _ := deriveResolvedConfig(s, nullModel())
		if rc.settings.Server != "us1" {
			t.Fatalf("expected alias server, got %q", rc.settings.Server)
		}
	})

	t.Run("logging from env and HCL false wins", func(t *testing.T) {
		testhelpers.ClearEnv(t)
		t.Setenv(envEnableLogging, "1")

		rc, _ := deriveResolvedConfig(s, nullModel())
		if !rc.settings.EnableLogging {
			t.Fatalf("expected logging enabled from env")
		}

		m := nullModel()
		m.EnableLogging = types.BoolValue(false)
		rc, _ = deriveResolvedConfig(s, m)
		if rc.settings.EnableLogging {
			t.Fatalf("expected HCL false to override env")
		}
	})

	t.Run("invalid env checkbox", func(t *testing.T) {
		testhelpers.ClearEnv(t)
		t.Setenv(envEnableLogging, "sometimes")

		_, errs := deriveResolvedConfig(s, nullModel())
		if len(errs) != 1 || errs[0].attr != attrEnableLogging {
			t.Fatalf("expected one mailchimp_log error, got %v", errs)
		}
	})

	t.Run("invalid env overridden by HCL", func(t *testing.T) {
		testhelpers.ClearEnv(t)
		t.Setenv(envEnableLogging, "yes")

		m := nullModel()
		m.EnableLogging = types.BoolValue(true)
		rc, errs := deriveResolvedConfig(s, m)
		if len(errs) != 0 {
			t.Fatalf("expected HCL to win over invalid env, got %v", errs)
		}
		if !rc.settings.EnableLogging || rc.sources[formconfig.FieldEnableLogging] != sourceConfig {
			t.Fatalf("expected logging enabled from config, got %+v %v", rc.settings, rc.sources)
		}
	})

	t.Run("env server is trimmed", func(t *testing.T) {
		testhelpers.ClearEnv(t)
		t.Setenv(envServer, " us6 ")

		rc, errs := deriveResolvedConfig(s, nullModel())
		if len(errs) != 0 {
			t.Fatalf("unexpected errors: %v", errs)
		}
		if rc.settings.Server != "us6" {
			t.Fatalf("expected trimmed server, got %q", rc.settings.Server)
		}
	})

	t.Run("unknown HCL falls through to env", func(t *testing.T) {
		testhelpers.ClearEnv(t)
		t.Setenv(envAPIKey, testhelpers.FakeAPIKey)

		m := nullModel()
		m.APIKey = types.StringUnknown()
		rc, _ := deriveResolvedConfig(s, m)
		if rc.settings.APIKey != testhelpers.FakeAPIKey {
			t.Fatalf("expected env api key when HCL is unknown")
		}
	})
}

func Test_validateRequired(t *testing.T) {
	s := formconfig.New()

	errs := validateRequired(s, resolvedConfig{})
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(errs), errs)
	}
	if errs[0].attr != attrAPIKey || errs[1].attr != attrServer {
		t.Fatalf("unexpected attrs: %q, %q", errs[0].attr, errs[1].attr)
	}
	if errs[0].summary != "Missing API Key Configuration." {
		t.Fatalf("unexpected summary %q", errs[0].summary)
	}
	if !strings.Contains(errs[1].detail, envServer) || !strings.Contains(errs[1].detail, envServerAlias) {
		t.Fatalf("expected env hints in detail, got %q", errs[1].detail)
	}

	errs = validateRequired(s, resolvedConfig{settings: formconfig.Settings{APIKey: "k", Server: "us6"}})
	if len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func Test_validateServer(t *testing.T) {
	for _, tt := range []struct {
		in      string
		wantErr bool
	}{
		{"", false}, {"us6", false}, {"us21", false},
		{"https://us6.api.mailchimp.com", true}, {"us6.api.mailchimp.com", true}, {"US6", true},
	} {
		errs := validateServer(resolvedConfig{settings: formconfig.Settings{Server: tt.in}})
		if tt.wantErr && len(errs) == 0 {
			t.Fatalf("expected error for %q", tt.in)
		}
		if !tt.wantErr && len(errs) != 0 {
			t.Fatalf("expected no error for %q", tt.in)
		}
	}
}

func Test_dropUnknown(t *testing.T) {
	errs := []validationErr{
		{attr: attrAPIKey, field: formconfig.FieldAPIKey, summary: "a"},
		{attr: attrServer, field: formconfig.FieldServer, summary: "b"},
		{summary: "general"},
	}
	out := dropUnknown(errs, map[string]bool{formconfig.FieldAPIKey: true})
	if len(out) != 2 || out[0].field != formconfig.FieldServer || out[1].summary != "general" {
		t.Fatalf("unexpected result: %v", out)
	}
}

func Test_validateResolvedConfig_integration_and_redaction(t *testing.T) {
	rc := resolvedConfig{settings: formconfig.Settings{
		APIKey: testhelpers.FakeAPIKey,
		// A server value that echoes the key must not surface it.
		Server: "https://" + testhelpers.FakeAPIKey + ".example.com",
	}}
	errs := validateResolvedConfig(formconfig.New(), rc)
	if len(errs) == 0 {
		t.Fatalf("expected at least one validation error")
	}
	for _, e := range errs {
		if strings.Contains(e.summary, testhelpers.FakeAPIKey) || strings.Contains(e.detail, testhelpers.FakeAPIKey) {
			t.Fatalf("validation error leaked api key: %+v", e)
		}
	}
}
