package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2020, time.January, 1)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2020-01-01"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"2020-13-01"`), &back))
	assert.Error(t, json.Unmarshal([]byte(`20200101`), &back))
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{"time", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.FixedZone("JST", 9*3600))},
		{"string", "2020-01-01"},
		{"bytes", []byte("2020-01-01")},
		{"timestamp text", "2020-01-01 00:00:00+00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.value))
			assert.Equal(t, "2020-01-01", d.String())
		})
	}

	var d Date
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("yesterday"))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(1999, time.December, 31).Value()
	require.NoError(t, err)
	assert.Equal(t, "1999-12-31", v)
}

func TestGenderValid(t *testing.T) {
	for _, g := range Genders {
		assert.True(t, g.Valid(), g)
	}
	assert.False(t, Gender("UNKNOWN").Valid())
	assert.False(t, Gender("female").Valid())
	assert.False(t, Gender("").Valid())
}
