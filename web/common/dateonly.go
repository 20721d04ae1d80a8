package common

import (
	"encoding/json"
	"fmt"
	"time"
)

type DateOnly struct {
	time.Time
}

const dateLayout = "2006-01-02" // yyyy-MM-dd

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date format: %v", err)
	}

	d.Time = t
	return nil
}

// UnmarshalParam binds query and form parameters (gin's BindUnmarshaler).
// Without it, query binding would treat the raw value as JSON and reject
// every plain yyyy-MM-dd date.
func (d *DateOnly) UnmarshalParam(param string) error {
	if param == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.Parse(dateLayout, param)
	if err != nil {
		return fmt.Errorf("invalid date format: %v", err)
	}

	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d DateOnly) String() string {
	if d.Time.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}
