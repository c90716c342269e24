package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// routeHandlers contains all the handlers for the API surface
type routeHandlers struct {
	projectHandler projectHandler
	galleryHandler galleryHandler
	profileHandler profileHandler
	authHandler    authHandler
	contactHandler contactHandler
}

// FlexInt is an int that also accepts a numeric JSON string, the way the
// reference clients submit the project type. A non-numeric value is a
// decode error, never a silent zero.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("value %q is not an integer", s)
		}
		*f = FlexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// FlexBool coerces a JSON bool, number or string to 0/1, matching the
// reference system's truthiness handling of is_published. null and absent
// both coerce to 0.
type FlexBool int

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*f = 0
	case bytes.Equal(data, []byte("true")):
		*f = 1
	case bytes.Equal(data, []byte("false")):
		*f = 0
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" || s == "0" || strings.EqualFold(s, "false") {
			*f = 0
		} else {
			*f = 1
		}
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		if n != 0 {
			*f = 1
		} else {
			*f = 0
		}
	}
	return nil
}

// normalizeOptional maps an absent or empty-string field to null, which is
// how every optional text column is stored.
func normalizeOptional(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
