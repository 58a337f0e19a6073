package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalLine(t *testing.T) {
	ts := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-03-04T09:00:00_I", MarshalLine(Event{Timestamp: ts, Kind: In}))
	assert.Equal(t, "2024-03-04T09:00:00_O", MarshalLine(Event{Timestamp: ts, Kind: Out}))
}

func TestMarshalLine_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 3, 4, 11, 0, 0, 0, loc)

	assert.Equal(t, "2024-03-04T09:00:00_O", MarshalLine(Event{Timestamp: ts, Kind: Out}))
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Event
	}{
		{
			name: "punch in",
			line: "2024-03-04T09:00:00_I",
			want: Event{Timestamp: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Kind: In},
		},
		{
			name: "punch out with newline",
			line: "2024-03-04T17:38:12_O\n",
			want: Event{Timestamp: time.Date(2024, 3, 4, 17, 38, 12, 0, time.UTC), Kind: Out},
		},
		{
			name: "zulu suffix",
			line: "2024-03-04T09:00:00Z_I",
			want: Event{Timestamp: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Kind: In},
		},
		{
			name: "windows line ending",
			line: "2024-03-04T09:00:00_O\r\n",
			want: Event{Timestamp: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), Kind: Out},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line)
			require.NoError(t, err)
			assert.True(t, tt.want.Timestamp.Equal(got.Timestamp))
			assert.Equal(t, time.UTC, got.Timestamp.Location())
			assert.Equal(t, tt.want.Kind, got.Kind)
		})
	}
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr string
	}{
		{"no separator", "2024-03-04T09:00:00I", "missing kind separator"},
		{"bad kind", "2024-03-04T09:00:00_X", "unknown punch kind"},
		{"empty kind", "2024-03-04T09:00:00_", "unknown punch kind"},
		{"bad timestamp", "2024-13-04T09:00:00_I", "invalid timestamp"},
		{"garbage", "hello_I", "invalid timestamp"},
		{"lowercase kind", "2024-03-04T09:00:00_i", "unknown punch kind"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(tt.line)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLineRoundTrip(t *testing.T) {
	original := New(In, time.Date(2024, 2, 29, 23, 59, 59, 999, time.UTC))

	parsed, err := ParseLine(MarshalLine(original))
	require.NoError(t, err)
	assert.Equal(t, original, parsed)
}

func TestNew_TruncatesToSecond(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)
	e := New(Out, time.Date(2024, 1, 1, 20, 30, 15, 123456789, loc))

	assert.Equal(t, time.Date(2024, 1, 2, 1, 30, 15, 0, time.UTC), e.Timestamp)
	assert.Equal(t, time.UTC, e.Timestamp.Location())
}

func TestKindMarker(t *testing.T) {
	assert.Equal(t, "I", In.Marker())
	assert.Equal(t, "O", Out.Marker())
	assert.True(t, In.Valid())
	assert.False(t, Kind("sideways").Valid())

	k, err := KindFromMarker("O")
	require.NoError(t, err)
	assert.Equal(t, Out, k)
}
