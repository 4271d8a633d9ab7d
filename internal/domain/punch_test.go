package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePunchKind_AcceptsLegacySpelling(t *testing.T) {
	cases := map[string]PunchKind{
		"Start": PunchStart,
		"start": PunchStart,
		"End":   PunchEnd,
		"Ende":  PunchEnd,
		" out ": PunchEnd,
	}
	for in, want := range cases {
		got, err := ParsePunchKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParsePunchKind_Unknown(t *testing.T) {
	_, err := ParsePunchKind("pause")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pause")
}

func TestPunchKind_Opposite(t *testing.T) {
	assert.Equal(t, PunchEnd, PunchStart.Opposite())
	assert.Equal(t, PunchStart, PunchEnd.Opposite())
}

func TestNewPunchEvent_FormatsWithSeconds(t *testing.T) {
	at := time.Date(2024, 3, 4, 7, 5, 9, 0, time.UTC)
	p := NewPunchEvent(PunchStart, at, true)
	assert.Equal(t, "2024-03-04 07:05:09", p.Timestamp)
	assert.True(t, p.HomeOffice)
	assert.True(t, p.IsStart())
}

func TestLeaveEntry_Validate(t *testing.T) {
	from := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)

	err := LeaveEntry{From: from, To: to}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "before it starts")

	assert.NoError(t, LeaveEntry{From: to, To: from}.Validate())
	assert.Error(t, LeaveEntry{From: from}.Validate())
}

func TestSettings_Defaults(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 0, s.BaselineMinutes)
	assert.Nil(t, s.ReferenceDate)
	assert.False(t, s.HomeOfficeActive)
	assert.Equal(t, "", s.ReferenceDateString())
}
