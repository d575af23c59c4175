package models

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const (
	UnlimitedLabel       = "unlimited"
	legacyUnlimitedLabel = "Ilimitado"
)

// Cap is the daily portion limit of a food group. The zero value is
// unlimited.
type Cap struct {
	limit int
}

func Capped(n int) Cap {
	if n <= 0 {
		panic(fmt.Sprintf("models: capped limit must be positive, got %d", n))
	}
	return Cap{limit: n}
}

func Unlimited() Cap {
	return Cap{}
}

func (c Cap) IsUnlimited() bool {
	return c.limit == 0
}

// Limit returns the portion limit and false when the cap is unlimited.
func (c Cap) Limit() (int, bool) {
	if c.IsUnlimited() {
		return 0, false
	}
	return c.limit, true
}

// Allows reports whether one more portion fits after used portions.
func (c Cap) Allows(used int) bool {
	return c.IsUnlimited() || used < c.limit
}

// Over returns how many portions used exceeds the cap by, never negative.
func (c Cap) Over(used int) int {
	if c.IsUnlimited() || used <= c.limit {
		return 0
	}
	return used - c.limit
}

func (c Cap) String() string {
	if c.IsUnlimited() {
		return UnlimitedLabel
	}
	return strconv.Itoa(c.limit)
}

func (c Cap) MarshalJSON() ([]byte, error) {
	if c.IsUnlimited() {
		return json.Marshal(UnlimitedLabel)
	}
	return json.Marshal(c.limit)
}

func (c *Cap) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseCap(raw)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCap accepts a positive number, a numeric string, or the unlimited
// label (including the legacy "Ilimitado").
func ParseCap(v interface{}) (Cap, error) {
	switch value := v.(type) {
	case nil:
		return Unlimited(), nil
	case Cap:
		return value, nil
	case int:
		return capFromInt(int64(value))
	case int64:
		return capFromInt(value)
	case float64:
		if value != float64(int64(value)) {
			return Cap{}, fmt.Errorf("invalid portion cap %v: not a whole number", value)
		}
		return capFromInt(int64(value))
	case string:
		s := strings.TrimSpace(value)
		if strings.EqualFold(s, UnlimitedLabel) || strings.EqualFold(s, legacyUnlimitedLabel) {
			return Unlimited(), nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Cap{}, fmt.Errorf("invalid portion cap %q", value)
		}
		return capFromInt(n)
	default:
		return Cap{}, fmt.Errorf("invalid portion cap type %T", v)
	}
}

func capFromInt(n int64) (Cap, error) {
	if n <= 0 {
		return Cap{}, fmt.Errorf("invalid portion cap %d: must be positive", n)
	}
	return Cap{limit: int(n)}, nil
}

// CapHookFunc decodes config and catalog file values into Cap.
func CapHookFunc() mapstructure.DecodeHookFuncType {
	capType := reflect.TypeOf(Cap{})
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != capType {
			return data, nil
		}
		return ParseCap(data)
	}
}
