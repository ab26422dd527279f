package attendance

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used on the wire and in filters.
const DateLayout = time.DateOnly

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

func (s Status) Valid() bool {
	return s == StatusPresent || s == StatusAbsent
}

// ParseStatus accepts any casing of Present/Absent.
func ParseStatus(v string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "present":
		return StatusPresent, nil
	case "absent":
		return StatusAbsent, nil
	}
	return "", fmt.Errorf("invalid attendance status %q", v)
}

// RecordID is the backend-assigned identifier. Backends emit either a JSON
// string or a number; both decode to the same textual form.
type RecordID string

func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("attendance id: %w", err)
	}
	*id = RecordID(n.String())
	return nil
}

type Record struct {
	ID       RecordID `json:"id"`
	Employee string   `json:"employee"`
	Date     string   `json:"date"`
	Status   Status   `json:"status"`
}

// Today is the calendar date of now in UTC.
func Today(now time.Time) string {
	return now.UTC().Format(DateLayout)
}
