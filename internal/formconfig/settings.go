// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package formconfig

import (
	"fmt"
	"strings"
)

// Settings holds configuration values after defaults and persisted layers are merged.
type Settings struct {
	APIKey        string
	Server        string
	EnableLogging bool
}

// FieldError reports a problem with a single field's value.
type FieldError struct {
	Field   string
	Label   string
	Summary string
	Detail  string
}

func (e *FieldError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Summary)
	}
	return fmt.Sprintf("%s: %s %s", e.Field, e.Summary, e.Detail)
}

// Load merges layers over the descriptor's defaults. Later layers win, and only
// the winning value of each field is parsed. Text values are trimmed. Keys that
// are not declared fields are ignored, as are nil layers.
func Load(s Schema, layers ...Store) (Settings, error) {
	var out Settings
	defaults := s.Defaults()
	if v, ok := defaults[FieldAPIKey].(string); ok {
		out.APIKey = v
	}
	if v, ok := defaults[FieldServer].(string); ok {
		out.Server = v
	}
	if v, ok := defaults[FieldEnableLogging].(bool); ok {
		out.EnableLogging = v
	}

	for _, f := range s.Fields() {
		raw, ok := lookupLast(f.Name, layers)
		if !ok {
			continue
		}
		switch f.Name {
		case FieldAPIKey:
			out.APIKey = strings.TrimSpace(raw)
		case FieldServer:
			out.Server = strings.TrimSpace(raw)
		case FieldEnableLogging:
			b, err := ParseCheckbox(raw)
			if err != nil {
				return Settings{}, &FieldError{
					Field:   f.Name,
					Label:   f.Label,
					Summary: "Invalid checkbox value.",
					Detail:  err.Error(),
				}
			}
			out.EnableLogging = b
		}
	}
	return out, nil
}

// lookupLast returns the value held by the last layer that has name.
func lookupLast(name string, layers []Store) (string, bool) {
	for i := len(layers) - 1; i >= 0; i-- {
		if layers[i] == nil {
			continue
		}
		if v, ok := layers[i].Lookup(name); ok {
			return v, true
		}
	}
	return "", false
}

// ParseCheckbox interprets a persisted checkbox value. Empty means unchecked.
func ParseCheckbox(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "off", "false":
		return false, nil
	case "1", "on", "true":
		return true, nil
	default:
		return false, fmt.Errorf("expected one of 1, 0, on, off, true, false; got %q", raw)
	}
}

// Value returns the value held for a declared field name.
func (s Settings) Value(name string) (any, bool) {
	switch name {
	case FieldAPIKey:
		return s.APIKey, true
	case FieldServer:
		return s.Server, true
	case FieldEnableLogging:
		return s.EnableLogging, true
	}
	return nil, false
}

// Validate reports every required text field that is empty, in field order.
func (s Settings) Validate(fields []Field) []*FieldError {
	var errs []*FieldError
	for _, f := range fields {
		if !f.Required || f.Kind != KindText {
			continue
		}
		v, ok := s.Value(f.Name)
		str, _ := v.(string)
		if ok && strings.TrimSpace(str) != "" {
			continue
		}
		errs = append(errs, &FieldError{
			Field:   f.Name,
			Label:   f.Label,
			Summary: fmt.Sprintf("Missing %s.", f.Label),
			Detail:  fmt.Sprintf("%s is required.", f.Label),
		})
	}
	return errs
}
