package attendance_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-workforce/internal/attendance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []attendance.Record {
	return []attendance.Record{
		{ID: "1", Employee: "E1", Date: "2024-01-02", Status: attendance.StatusPresent},
		{ID: "2", Employee: "E2", Date: "2024-01-02", Status: attendance.StatusAbsent},
		{ID: "3", Employee: "E1", Date: "2024-01-01", Status: attendance.StatusAbsent},
		{ID: "4", Employee: "E3", Date: "2024-01-03", Status: attendance.StatusPresent},
	}
}

func ids(records []attendance.Record) []attendance.RecordID {
	out := make([]attendance.RecordID, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	records := sampleRecords()

	t.Run("no filters returns input unchanged", func(t *testing.T) {
		assert.Equal(t, records, attendance.Filter(records, "", ""))
	})

	t.Run("by date", func(t *testing.T) {
		assert.Equal(t, []attendance.RecordID{"1", "2"}, ids(attendance.Filter(records, "2024-01-02", "")))
	})

	t.Run("by employee", func(t *testing.T) {
		assert.Equal(t, []attendance.RecordID{"1", "3"}, ids(attendance.Filter(records, "", "E1")))
	})

	t.Run("both filters compose with AND", func(t *testing.T) {
		got := attendance.Filter(records, "2024-01-02", "E1")
		assert.Equal(t, []attendance.RecordID{"1"}, ids(got))
		for _, r := range got {
			assert.Equal(t, "2024-01-02", r.Date)
			assert.Equal(t, "E1", r.Employee)
		}
	})

	t.Run("no match", func(t *testing.T) {
		got := attendance.Filter(records, "2030-01-01", "E1")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("does not touch input", func(t *testing.T) {
		before := sampleRecords()
		_ = attendance.Filter(records, "2024-01-01", "E1")
		assert.Equal(t, before, records)
	})
}

func TestSortByDateDesc(t *testing.T) {
	sorted := attendance.SortByDateDesc(sampleRecords())
	assert.Equal(t, []attendance.RecordID{"4", "1", "2", "3"}, ids(sorted))

	t.Run("idempotent and stable", func(t *testing.T) {
		again := attendance.SortByDateDesc(sorted)
		assert.Equal(t, sorted, again)
	})

	t.Run("scenario", func(t *testing.T) {
		in := []attendance.Record{
			{Date: "2024-01-01", Status: attendance.StatusAbsent, Employee: "E2"},
			{Date: "2024-01-02", Status: attendance.StatusPresent, Employee: "E1"},
		}
		out := attendance.SortByDateDesc(in)
		require.Len(t, out, 2)
		assert.Equal(t, "2024-01-02", out[0].Date)
		assert.Equal(t, "2024-01-01", out[1].Date)
		assert.Equal(t, "2024-01-01", in[0].Date, "input must not be reordered")
	})

	t.Run("nil input", func(t *testing.T) {
		out := attendance.SortByDateDesc(nil)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}

func TestParseStatus(t *testing.T) {
	s, err := attendance.ParseStatus("present")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, s)

	s, err = attendance.ParseStatus(" ABSENT ")
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusAbsent, s)

	_, err = attendance.ParseStatus("late")
	assert.Error(t, err)
	assert.False(t, attendance.Status("Late").Valid())
}

func TestRecordID_Unmarshal(t *testing.T) {
	var recs []attendance.Record
	err := json.Unmarshal([]byte(`[
		{"id": 12, "employee": "E1", "date": "2024-01-01", "status": "Present"},
		{"id": "b7c1", "employee": "E2", "date": "2024-01-02", "status": "Absent"},
		{"id": null, "employee": "E3", "date": "2024-01-03", "status": "Absent"}
	]`), &recs)
	require.NoError(t, err)

	assert.Equal(t, attendance.RecordID("12"), recs[0].ID)
	assert.Equal(t, attendance.RecordID("b7c1"), recs[1].ID)
	assert.Equal(t, attendance.RecordID(""), recs[2].ID)

	assert.Error(t, json.Unmarshal([]byte(`{"id": true}`), &attendance.Record{}))
}

func TestToday(t *testing.T) {
	now := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("MST", -7*3600))
	assert.Equal(t, "2024-03-10", attendance.Today(now))
}
