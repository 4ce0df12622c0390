package params

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr error
	}{
		{
			name:  "valid date",
			input: "20231025",
			want:  Date{Year: 2023, Month: 10, Day: 25},
		},
		{
			name:  "first of january",
			input: "20240101",
			want:  Date{Year: 2024, Month: 1, Day: 1},
		},
		{
			name:  "day 31 accepted in every month",
			input: "20230431",
			want:  Date{Year: 2023, Month: 4, Day: 31},
		},
		{
			name:  "february 30 accepted without calendar check",
			input: "20230230",
			want:  Date{Year: 2023, Month: 2, Day: 30},
		},
		{
			name:    "too short",
			input:   "2023101",
			wantErr: ErrFormat,
		},
		{
			name:    "too long",
			input:   "202310255",
			wantErr: ErrFormat,
		},
		{
			name:    "non-digit characters",
			input:   "2023-1-1",
			wantErr: ErrFormat,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrFormat,
		},
		{
			name:    "month 13",
			input:   "20231301",
			wantErr: ErrValue,
		},
		{
			name:    "month 0",
			input:   "20230001",
			wantErr: ErrValue,
		},
		{
			name:    "day 32",
			input:   "20231032",
			wantErr: ErrValue,
		},
		{
			name:    "day 0",
			input:   "20231000",
			wantErr: ErrValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr error
	}{
		{
			name:  "four digit form",
			input: "0935",
			want:  TimeOfDay{Hour: 9, Minute: 35},
		},
		{
			name:  "six digit form",
			input: "093512",
			want:  TimeOfDay{Hour: 9, Minute: 35, Second: 12},
		},
		{
			name:  "midnight",
			input: "0000",
			want:  TimeOfDay{},
		},
		{
			name:  "end of day",
			input: "235959",
			want:  TimeOfDay{Hour: 23, Minute: 59, Second: 59},
		},
		{
			name:    "five digits rejected",
			input:   "99999",
			wantErr: ErrFormat,
		},
		{
			name:    "non-digit characters",
			input:   "09:35",
			wantErr: ErrFormat,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: ErrFormat,
		},
		{
			name:    "hour 24",
			input:   "2400",
			wantErr: ErrValue,
		},
		{
			name:    "minute 60",
			input:   "2460",
			wantErr: ErrValue,
		},
		{
			name:    "second 60",
			input:   "093560",
			wantErr: ErrValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDatetime(t *testing.T) {
	t.Run("date with time", func(t *testing.T) {
		got, err := ParseDatetime("20231025", "0935")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 10, 25, 9, 35, 0, 0, time.Local), got)
	})

	t.Run("empty time means midnight", func(t *testing.T) {
		got, err := ParseDatetime("20231025", "")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 10, 25, 0, 0, 0, 0, time.Local), got)
	})

	t.Run("bad date fails", func(t *testing.T) {
		_, err := ParseDatetime("2023101", "0935")
		assert.ErrorIs(t, err, ErrFormat)
	})

	t.Run("bad time fails", func(t *testing.T) {
		_, err := ParseDatetime("20231025", "2460")
		assert.ErrorIs(t, err, ErrValue)
	})
}

func TestDateAt(t *testing.T) {
	d := Date{Year: 2023, Month: 10, Day: 25}
	at := d.At(TimeOfDay{Hour: 14, Minute: 30, Second: 5})
	assert.Equal(t, time.Date(2023, 10, 25, 14, 30, 5, 0, time.Local), at)
	assert.Equal(t, time.Date(2023, 10, 25, 0, 0, 0, 0, time.Local), d.Time())
}
