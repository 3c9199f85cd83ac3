// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package provider

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/devops-wiz/terraform-provider-mailchimpform/internal/formconfig"
)

// serverPattern matches a Mailchimp data center prefix such as "us6".
var serverPattern = regexp.MustCompile(`^[a-z]+[0-9]+$`)

// configuration derivation: descriptor defaults < environment < HCL
func deriveResolvedConfig(s formconfig.Schema, data MailchimpFormProviderModel) (resolvedConfig, []validationErr) {
	env := envStore()
	hcl := configStore(data)

	settings, err := formconfig.Load(s, env, hcl)
	if err != nil {
		var fe *formconfig.FieldError
		if errors.As(err, &fe) {
			return resolvedConfig{}, []validationErr{fromFieldError(fe)}
		}
		return resolvedConfig{}, []validationErr{{summary: "Invalid Provider Configuration.", detail: err.Error()}}
	}

	sources := make(map[string]string, len(s.Fields()))
	for _, f := range s.Fields() {
		switch {
		case hasKey(hcl, f.Name):
			sources[f.Name] = sourceConfig
		case hasKey(env, f.Name):
			sources[f.Name] = sourceEnv
		default:
			sources[f.Name] = sourceDefault
		}
	}

	return resolvedConfig{settings: settings, sources: sources}, nil
}

func hasKey(st formconfig.Store, name string) bool {
	_, ok := st.Lookup(name)
	return ok
}

func fromFieldError(fe *formconfig.FieldError) validationErr {
	return validationErr{attr: attributeName(fe.Field), field: fe.Field, summary: fe.Summary, detail: fe.Detail}
}

// validateRequired reports descriptor-required fields left empty after merging.
func validateRequired(s formconfig.Schema, rc resolvedConfig) []validationErr {
	var errs []validationErr
	for _, fe := range rc.settings.Validate(s.Fields()) {
		ve := fromFieldError(fe)
		ve.summary = fmt.Sprintf("Missing %s Configuration.", fe.Label)
		switch vars := envVars[fe.Field]; len(vars) {
		case 0:
			ve.detail = fmt.Sprintf("Provide '%s'.", ve.attr)
		case 1:
			ve.detail = fmt.Sprintf("Provide '%s' or set %s.", ve.attr, vars[0])
		default:
			ve.detail = fmt.Sprintf("Provide '%s' or set %s (or alias %s).", ve.attr, vars[0], strings.Join(vars[1:], ", "))
		}
		errs = append(errs, ve)
	}
	return errs
}

// validateServer rejects URLs and hostnames where a data center prefix is expected.
func validateServer(rc resolvedConfig) []validationErr {
	server := strings.TrimSpace(rc.settings.Server)
	if server == "" || serverPattern.MatchString(server) {
		return nil
	}
	return []validationErr{{
		attr:    attrServer,
		field:   formconfig.FieldServer,
		summary: "Invalid Server Configuration.",
		detail:  fmt.Sprintf("server must be the Mailchimp data center prefix (e.g. \"us6\"), not a URL or hostname; got %q", server),
	}}
}

func validateResolvedConfig(s formconfig.Schema, rc resolvedConfig) []validationErr {
	var all []validationErr
	all = append(all, validateRequired(s, rc)...)
	all = append(all, validateServer(rc)...)

	// Before returning, sanitize any secrets from messages to prevent leakage.
	for i := range all {
		all[i] = sanitizeValidationError(all[i], rc)
	}
	return all
}

// dropUnknown removes errors for fields whose HCL value is not known yet.
func dropUnknown(errs []validationErr, unknown map[string]bool) []validationErr {
	out := errs[:0]
	for _, e := range errs {
		if e.field != "" && unknown[e.field] {
			continue
		}
		out = append(out, e)
	}
	return out
}
