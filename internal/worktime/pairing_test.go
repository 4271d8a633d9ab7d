package worktime

import (
	"testing"
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startAt(ts string) domain.PunchEvent {
	return domain.PunchEvent{Kind: domain.PunchStart, Timestamp: ts}
}
func endAt(ts string) domain.PunchEvent {
	return domain.PunchEvent{Kind: domain.PunchEnd, Timestamp: ts}
}

func at(t *testing.T, ts string) time.Time {
	t.Helper()
	v, ok := ParseTimestamp(ts, time.UTC)
	require.True(t, ok, "bad fixture timestamp %q", ts)
	return v
}

func TestParseTimestamp_AcceptsBothLayouts(t *testing.T) {
	withSeconds, ok := ParseTimestamp("2024-01-01 08:00:30", time.UTC)
	require.True(t, ok)
	assert.Equal(t, 30, withSeconds.Second())

	withoutSeconds, ok := ParseTimestamp(" 2024-01-01 08:00 ", time.UTC)
	require.True(t, ok)
	assert.Equal(t, 8, withoutSeconds.Hour())

	for _, bad := range []string{"", "yesterday", "2024-01-01T08:00:00", "01.01.2024 08:00"} {
		_, ok := ParseTimestamp(bad, time.UTC)
		assert.False(t, ok, bad)
	}
}

func TestPairEvents_SimplePair(t *testing.T) {
	now := at(t, "2024-01-01 18:00:00")
	got := PairEvents([]domain.PunchEvent{
		startAt("2024-01-01 08:00:00"),
		endAt("2024-01-01 16:30:00"),
	}, OpenSession{}, now, time.UTC)

	require.Len(t, got, 1)
	assert.Equal(t, 8*time.Hour+30*time.Minute, got[0].Duration())
}

func TestPairEvents_SortsUnorderedInput(t *testing.T) {
	now := at(t, "2024-01-02 18:00:00")
	got := PairEvents([]domain.PunchEvent{
		endAt("2024-01-02 12:00"),
		startAt("2024-01-01 08:00"),
		startAt("2024-01-02 09:00"),
		endAt("2024-01-01 10:00"),
	}, OpenSession{}, now, time.UTC)

	require.Len(t, got, 2)
	assert.Equal(t, at(t, "2024-01-01 08:00:00"), got[0].Start)
	assert.Equal(t, 2*time.Hour, got[0].Duration())
	assert.Equal(t, 3*time.Hour, got[1].Duration())
}

func TestPairEvents_DropsUnparsableEvents(t *testing.T) {
	now := at(t, "2024-01-01 18:00:00")
	got := PairEvents([]domain.PunchEvent{
		startAt("garbage"),
		startAt("2024-01-01 08:00:00"),
		endAt("not a time"),
		endAt("2024-01-01 09:00:00"),
	}, OpenSession{}, now, time.UTC)

	require.Len(t, got, 1)
	assert.Equal(t, time.Hour, got[0].Duration())
}

func TestPairEvents_DoubleStartKeepsLatest(t *testing.T) {
	now := at(t, "2024-01-01 18:00:00")
	got := PairEvents([]domain.PunchEvent{
		startAt("2024-01-01 08:00:00"),
		startAt("2024-01-01 10:00:00"),
		endAt("2024-01-01 12:00:00"),
	}, OpenSession{}, now, time.UTC)

	require.Len(t, got, 1)
	assert.Equal(t, at(t, "2024-01-01 10:00:00"), got[0].Start)
	assert.Equal(t, 2*time.Hour, got[0].Duration())
}

func TestPairEvents_IgnoresOrphanAndNonPositiveEnds(t *testing.T) {
	now := at(t, "2024-01-01 18:00:00")
	got := PairEvents([]domain.PunchEvent{
		endAt("2024-01-01 07:00:00"),
		startAt("2024-01-01 08:00:00"),
		endAt("2024-01-01 08:00:00"),
		endAt("2024-01-01 09:00:00"),
		endAt("2024-01-01 10:00:00"),
	}, OpenSession{}, now, time.UTC)

	require.Len(t, got, 1)
	assert.Equal(t, time.Hour, got[0].Duration())
	for _, iv := range got {
		assert.True(t, iv.End.After(iv.Start))
	}
}

func TestPairEvents_OpenSession(t *testing.T) {
	events := []domain.PunchEvent{startAt("2024-01-01 09:00:00")}
	now := at(t, "2024-01-01 11:30:00")

	t.Run("inactive emits nothing", func(t *testing.T) {
		assert.Empty(t, PairEvents(events, OpenSession{}, now, time.UTC))
	})

	t.Run("active runs from cursor to now", func(t *testing.T) {
		got := PairEvents(events, OpenSession{Active: true}, now, time.UTC)
		require.Len(t, got, 1)
		assert.Equal(t, 2*time.Hour+30*time.Minute, got[0].Duration())
		assert.Equal(t, now, got[0].End)
	})

	t.Run("active prefers the supplied open-since", func(t *testing.T) {
		since := at(t, "2024-01-01 10:00:00")
		got := PairEvents(events, OpenSession{Active: true, Since: since}, now, time.UTC)
		require.Len(t, got, 1)
		assert.Equal(t, 90*time.Minute, got[0].Duration())
	})

	t.Run("open-since in the future is dropped", func(t *testing.T) {
		since := at(t, "2024-01-01 12:00:00")
		assert.Empty(t, PairEvents(events, OpenSession{Active: true, Since: since}, now, time.UTC))
	})
}

func TestPairEvents_EmptyInput(t *testing.T) {
	assert.Empty(t, PairEvents(nil, OpenSession{Active: true}, time.Now(), nil))
}

func TestCurrentSession(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.False(t, CurrentSession(nil, time.UTC).Active)
	})

	t.Run("last start is open", func(t *testing.T) {
		got := CurrentSession([]domain.PunchEvent{
			startAt("2024-01-01 08:00:00"),
			endAt("2024-01-01 12:00:00"),
			startAt("2024-01-01 13:00"),
		}, time.UTC)
		assert.True(t, got.Active)
		assert.Equal(t, at(t, "2024-01-01 13:00:00"), got.Since)
	})

	t.Run("chronological order wins over storage order", func(t *testing.T) {
		got := CurrentSession([]domain.PunchEvent{
			startAt("2024-01-01 13:00:00"),
			endAt("2024-01-01 17:00:00"),
			startAt("2024-01-01 08:00:00"),
		}, time.UTC)
		assert.False(t, got.Active)
	})

	t.Run("unreadable trailing punch ignored", func(t *testing.T) {
		got := CurrentSession([]domain.PunchEvent{
			startAt("2024-01-01 08:00:00"),
			endAt("broken"),
		}, time.UTC)
		assert.True(t, got.Active)
	})
}
