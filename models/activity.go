// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// Activity is a single extracurricular activity as served by GET /activities.
// The activity name is not part of the value: it is the key under which the
// activity is stored in a [Catalog].
type Activity struct {
	// Description is the human-readable summary of the activity.
	Description string `json:"description"`

	// Schedule is a free-form schedule string (e.g. "Fridays, 3:30 PM - 5:00 PM").
	Schedule string `json:"schedule"`

	// MaxParticipants is the capacity of the activity. Never negative.
	MaxParticipants int `json:"max_participants"`

	// Participants holds the enrolled participant emails in server order.
	// Uniqueness is enforced by the server.
	Participants []string `json:"participants"`
}

// SpotsLeft returns the remaining capacity of the activity. It is derived
// on every call and never stored.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// HasParticipant reports whether email is enrolled in the activity.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// Catalog is the full set of activities keyed by name.
//
// Names keeps the key order of the JSON object the catalog was decoded from
// (or the order activities were added in), so renderers can iterate the
// catalog deterministically in server order.
type Catalog struct {
	Names      []string
	Activities map[string]Activity
}

// ErrDuplicateActivity is returned when the same activity name appears twice
// in a catalog payload.
var ErrDuplicateActivity = errors.New("duplicate activity name in catalog")

// NewCatalog returns an empty catalog ready for use.
func NewCatalog() Catalog {
	return Catalog{
		Names:      make([]string, 0),
		Activities: make(map[string]Activity),
	}
}

// Add appends an activity under name. Adding an existing name replaces the
// stored value but keeps its original position.
func (c *Catalog) Add(name string, activity Activity) {
	if c.Activities == nil {
		c.Activities = make(map[string]Activity)
	}
	if _, ok := c.Activities[name]; !ok {
		c.Names = append(c.Names, name)
	}
	c.Activities[name] = activity
}

// Get returns the activity stored under name.
func (c Catalog) Get(name string) (Activity, bool) {
	a, ok := c.Activities[name]
	return a, ok
}

// Len returns the number of activities in the catalog.
func (c Catalog) Len() int {
	return len(c.Names)
}

// UnmarshalJSON decodes a JSON object of name → activity while preserving
// the key order of the document.
func (c *Catalog) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode catalog: expected JSON object, got %v", tok)
	}

	result := NewCatalog()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode catalog key: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decode catalog: unexpected key %v", keyTok)
		}

		var activity Activity
		if err = dec.Decode(&activity); err != nil {
			return fmt.Errorf("decode activity %q: %w", name, err)
		}
		if activity.Participants == nil {
			activity.Participants = []string{}
		}
		if _, exists := result.Activities[name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateActivity, name)
		}
		result.Add(name, activity)
	}

	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("decode catalog: %w", err)
	}

	*c = result
	return nil
}

// MarshalJSON encodes the catalog as a JSON object whose keys follow Names.
func (c Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range c.Names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		activity := c.Activities[name]
		if activity.Participants == nil {
			activity.Participants = []string{}
		}
		value, err := json.Marshal(activity)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
