package isotime

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatIsFixedWidthUTC(t *testing.T) {
	loc := time.FixedZone("EAT", 3*60*60)
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, loc)

	assert.Equal(t, "2025-03-01T09:00:00.000000+00:00", Format(ts))
}

func TestParseAcceptsCommonLayouts(t *testing.T) {
	want := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	cases := []string{
		"2025-03-01T09:30:00Z",
		"2025-03-01T09:30:00.000000+00:00",
		"2025-03-01T12:30:00+03:00",
		"2025-03-01T09:30:00",
		"2025-03-01T09:30",
		"2025-03-01T09:30Z",
		"2025-03-01T12:30+03:00",
		"2025-03-01 09:30:00",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			got, err := Parse(in)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("next tuesday")
	assert.Error(t, err)
}

func TestFormatRoundTripsAtMicrosecondPrecision(t *testing.T) {
	ts := time.Date(2025, 3, 1, 9, 30, 0, 123456789, time.UTC)

	got, err := Parse(Format(ts))
	require.NoError(t, err)
	assert.True(t, Normalize(ts).Equal(got))
}

func TestFormattedStringsSortChronologically(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		base.Add(500 * time.Millisecond),
		base,
		base.Add(time.Second),
		base.Add(1500 * time.Millisecond),
	}
	strs := make([]string, len(times))
	for i, ts := range times {
		strs[i] = Format(ts)
	}
	sort.Strings(strs)

	assert.Equal(t, []string{Format(base), Format(times[0]), Format(times[2]), Format(times[3])}, strs)
}

func TestTimeUnmarshalJSON(t *testing.T) {
	var in struct {
		At *Time `json:"at"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"at":"2025-06-01T18:00:00"}`), &in))
	require.NotNil(t, in.At)
	assert.Equal(t, time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), in.At.Time)

	assert.Error(t, json.Unmarshal([]byte(`{"at":12}`), &in))
}
