// Copyright (c) DevOps Wiz
// SPDX-License-Identifier: MPL-2.0

// Package formconfig declares the configuration of the form builder's Mailchimp
// processor as plain data.
//
// The descriptor is two things:
//   - Defaults: the values a host merges persisted settings over.
//   - Fields: an ordered list of field descriptors (name, label, kind, required).
//
// Nothing here builds UI. A host renders the descriptor by passing a FieldFactory
// to Render (or NewForm), and loads persisted values with Load.
package formconfig
