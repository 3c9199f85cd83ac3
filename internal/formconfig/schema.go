// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

package formconfig

// Kind is the control type a host should use for a field.
type Kind string

const (
	KindText     Kind = "text"
	KindCheckbox Kind = "checkbox"
)

// Field names as persisted by the host.
const (
	FieldAPIKey        = "apiKey"
	FieldServer        = "server"
	FieldEnableLogging = "mailchimp_log"
)

// Field describes a single configurable value and how it is presented.
type Field struct {
	Name     string
	Label    string
	Kind     Kind
	Required bool
}

// Schema is the Mailchimp processor's configuration descriptor. The zero value is
// ready to use and holds no state.
type Schema struct{}

// New returns the configuration descriptor.
func New() Schema { return Schema{} }

// Defaults returns the values persisted settings are merged over. The logging
// toggle has no entry and loads as false.
func (Schema) Defaults() map[string]any {
	return map[string]any{
		FieldAPIKey: "",
		FieldServer: "",
	}
}

// Fields returns the field descriptors in display order.
func (Schema) Fields() []Field {
	return []Field{
		{Name: FieldAPIKey, Label: "API Key", Kind: KindText, Required: true},
		{Name: FieldServer, Label: "Server", Kind: KindText, Required: true},
		{Name: FieldEnableLogging, Label: "Log responses?", Kind: KindCheckbox, Required: false},
	}
}

// Field looks up a descriptor by name.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
