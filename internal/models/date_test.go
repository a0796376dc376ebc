package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateScanAndMarshal(t *testing.T) {
	cases := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"time", time.Date(2001, 5, 17, 13, 0, 0, 0, time.UTC), `"2001-05-17"`},
		{"bytes datetime", []byte("2001-05-17 00:00:00"), `"2001-05-17"`},
		{"string", "2001-05-17", `"2001-05-17"`},
		{"zero date", "0000-00-00", `null`},
		{"nil", nil, `null`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tc.input))
			out, err := json.Marshal(d)
			require.NoError(t, err)
			assert.JSONEq(t, tc.want, string(out))
		})
	}
}

func TestDateRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, d.Scan("yesterday"))
	assert.Error(t, d.Scan(42))
}

func TestDateRoundTripJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-01"`), &d))
	assert.Equal(t, "2024-02-01", d.String())
	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", v)
}
