package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-05-01")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2023, time.May, 1), d)
	assert.Equal(t, "2023-05-01", d.String())

	_, err = ParseDate("01/05/2023")
	require.Error(t, err)
	_, err = ParseDate("")
	require.Error(t, err)
}

func TestNewDateNormalizes(t *testing.T) {
	assert.Equal(t, Date{Year: 2024, Month: time.March, Day: 1}, NewDate(2024, time.February, 30))
}

func TestDateScan(t *testing.T) {
	want := NewDate(2023, time.May, 1)
	for _, tc := range []struct {
		name string
		in   any
	}{
		{"string", "2023-05-01"},
		{"bytes", []byte("2023-05-01")},
		{"timestamp string", "2023-05-01T00:00:00Z"},
		{"time", time.Date(2023, time.May, 1, 12, 0, 0, 0, time.UTC)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tc.in))
			assert.Equal(t, want, d)
		})
	}

	var d Date
	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
	require.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2023, time.May, 1).Value()
	require.NoError(t, err)
	assert.Equal(t, "2023-05-01", v)

	v, err = Date{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = Date{Year: 2023, Month: time.February, Day: 30}.Value()
	require.Error(t, err)
}

func TestDateValid(t *testing.T) {
	assert.True(t, NewDate(2024, time.February, 29).Valid())
	assert.True(t, NewDate(9999, time.December, 31).Valid())
	assert.False(t, Date{Year: 2023, Month: time.February, Day: 29}.Valid())
	assert.False(t, Date{Year: 2023, Month: 13, Day: 1}.Valid())
	assert.False(t, Date{Year: 2023, Month: time.May, Day: 0}.Valid())
	assert.False(t, Date{Year: 10000, Month: time.January, Day: 1}.Valid())
	assert.False(t, Date{}.Valid())
}
