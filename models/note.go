// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a single entry of the user's notes collection.
//
// The whole collection is persisted as one JSON array, so the JSON field
// names below are part of the on-disk format and must not change.
type Note struct {
	// ID uniquely identifies the note inside the collection.
	// It is a UUIDv7 string, so it is derived from the creation time.
	ID string `json:"id"`

	// Title is the short heading shown in the notes list.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// CreatedAt is the UTC creation time. Serialised as RFC 3339.
	// Never changes after the note is created.
	CreatedAt time.Time `json:"createdAt"`
}

// NotePatch describes a partial update of a [Note].
// A nil field is left untouched; ID and CreatedAt can not be patched.
type NotePatch struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether the patch changes nothing.
func (p NotePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil
}

// Apply returns a copy of n with the patched fields replaced.
func (p NotePatch) Apply(n Note) Note {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	return n
}
