package casper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2020-11-17T00:39:24.072Z")
	require.NoError(t, err)
	assert.Equal(t, Timestamp(1605573564072), ts)
	assert.Equal(t, "2020-11-17T00:39:24.072Z", ts.String())

	// без дробной части
	ts, err = ParseTimestamp("2018-02-16T00:31:37Z")
	require.NoError(t, err)
	assert.Equal(t, "2018-02-16T00:31:37.000Z", ts.String())

	_, err = ParseTimestamp("not a timestamp")
	assert.Error(t, err)
}

func TestTimestamp_JSONRoundTrip(t *testing.T) {
	ts := Timestamp(1605573564072)

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2020-11-17T00:39:24.072Z"`, string(data))

	var decoded Timestamp
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ts, decoded)
}

func TestParseTimeDiff(t *testing.T) {
	tests := []struct {
		in   string
		want TimeDiff
	}{
		{"30m", 30 * 60 * 1000},
		{"30min", 30 * 60 * 1000},
		{"10s", 10 * 1000},
		{"500ms", 500},
		{"1h 30m", 90 * 60 * 1000},
		{"1day", 24 * 60 * 60 * 1000},
		{"2days", 2 * 24 * 60 * 60 * 1000},
		{"1h12m30s", (60*60 + 12*60 + 30) * 1000},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeDiff(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTimeDiff_Invalid(t *testing.T) {
	for _, in := range []string{"", "30", "m30", "30parsecs"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseTimeDiff(in)
			assert.Error(t, err)
		})
	}
}

func TestTimeDiff_String(t *testing.T) {
	assert.Equal(t, "30m", TimeDiff(30*60*1000).String())
	assert.Equal(t, "1h 30m", TimeDiff(90*60*1000).String())
	assert.Equal(t, "0s", TimeDiff(0).String())
	assert.Equal(t, "2days 1ms", TimeDiff(2*24*60*60*1000+1).String())
}

func TestTimeDiff_JSONRoundTrip(t *testing.T) {
	d := TimeDiff(30 * 60 * 1000)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"30m"`, string(data))

	var decoded TimeDiff
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, d, decoded)
}
