package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Nutrition is the per-serving nutrition record stored as JSONB on a dish.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

func (n Nutrition) Validate() error {
	fields := map[string]float64{
		"calories": n.Calories,
		"protein":  n.Protein,
		"fat":      n.Fat,
		"carbs":    n.Carbs,
	}
	for name, v := range fields {
		if v < 0 {
			return fmt.Errorf("nutrition: %s must not be negative, got %v", name, v)
		}
	}
	return nil
}

func (n Nutrition) Value() (driver.Value, error) {
	return json.Marshal(n)
}

func (n *Nutrition) Scan(src interface{}) error {
	return scanJSON(src, n, "nutrition")
}

// Tags is a list of free-form labels ("hot", "meat", ...) stored as a JSONB
// array.
type Tags []string

func (t Tags) Validate() error {
	for _, tag := range t {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tags: empty tag is not allowed")
		}
	}
	return nil
}

func (t Tags) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(t)
}

func (t *Tags) Scan(src interface{}) error {
	return scanJSON(src, t, "tags")
}

// Preferences is the free-form user preference map on a profile.
type Preferences map[string]string

func (p Preferences) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal(map[string]string{})
	}
	return json.Marshal(p)
}

func (p *Preferences) Scan(src interface{}) error {
	return scanJSON(src, p, "preferences")
}

func scanJSON(src, dst interface{}, what string) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		if err := json.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("%s: malformed JSON: %w", what, err)
		}
		return nil
	case string:
		if err := json.Unmarshal([]byte(data), dst); err != nil {
			return fmt.Errorf("%s: malformed JSON: %w", what, err)
		}
		return nil
	default:
		return fmt.Errorf("%s: unsupported column type %T", what, src)
	}
}
