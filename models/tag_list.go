package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// TagList is an ordered list of short tag strings. In the database it lives
// in a single comma-delimited text column; on the wire it is a JSON array.
// Order is preserved in both directions.
type TagList []string

// Value implements driver.Valuer, joining the tags into one column.
func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return nil, nil
	}
	return strings.Join(t, ","), nil
}

// Scan implements sql.Scanner, splitting the stored column back into tags.
func (t *TagList) Scan(src any) error {
	if src == nil {
		*t = nil
		return nil
	}

	var raw string
	switch v := src.(type) {
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TagList", src)
	}

	if raw == "" {
		*t = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make(TagList, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	*t = tags
	return nil
}

// MarshalJSON always emits an array, never null.
func (t TagList) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(t))
}

// UnmarshalJSON accepts either a JSON array of strings or a single
// comma-delimited string, which is how the reference clients submit tags.
func (t *TagList) UnmarshalJSON(data []byte) error {
	var asSlice []string
	if err := json.Unmarshal(data, &asSlice); err == nil {
		*t = TagList(asSlice)
		return nil
	}

	var asString string
	if err := json.Unmarshal(data, &asString); err != nil {
		return fmt.Errorf("tags must be a string array or a delimited string: %w", err)
	}
	return t.Scan(asString)
}
