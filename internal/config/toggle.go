package config

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Toggle is a tri-state boolean whose zero value means "not set".
type Toggle uint8

const (
	ToggleUnset Toggle = iota
	ToggleOff
	ToggleOn
)

// ToggleOf converts b into a set Toggle.
func ToggleOf(b bool) Toggle {
	if b {
		return ToggleOn
	}
	return ToggleOff
}

// Enabled reports the toggle value, returning def when unset.
func (t Toggle) Enabled(def bool) bool {
	switch t {
	case ToggleOn:
		return true
	case ToggleOff:
		return false
	default:
		return def
	}
}

func (t Toggle) String() string {
	if t == ToggleUnset {
		return ""
	}
	return strconv.FormatBool(t == ToggleOn)
}

// Set implements flag.Value.
func (t *Toggle) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid boolean %q: %w", s, err)
	}
	*t = ToggleOf(b)
	return nil
}

// IsBoolFlag lets the flag package accept "-flag" without a value.
func (t *Toggle) IsBoolFlag() bool { return true }

// UnmarshalText is used by caarlos0/env.
func (t *Toggle) UnmarshalText(text []byte) error {
	return t.Set(string(text))
}

func (t *Toggle) UnmarshalJSON(b []byte) error {
	var v *bool
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == nil {
		*t = ToggleUnset
		return nil
	}
	*t = ToggleOf(*v)
	return nil
}

func (t Toggle) MarshalJSON() ([]byte, error) {
	if t == ToggleUnset {
		return []byte("null"), nil
	}
	return json.Marshal(t == ToggleOn)
}
