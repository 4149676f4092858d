package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeatClass(t *testing.T) {
	tests := []struct {
		in   string
		want SeatClass
	}{
		{"FIRST_CLASS", SeatClassFirst},
		{"FIRST", SeatClassFirst},
		{"first", SeatClassFirst},
		{"  first_class  ", SeatClassFirst},
		{"BUSINESS_CLASS", SeatClassBusiness},
		{"business", SeatClassBusiness},
		{"ECONOMY_CLASS", SeatClassEconomy},
		{"Economy", SeatClassEconomy},
	}
	for _, tt := range tests {
		got, err := ParseSeatClass(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestParseSeatClass_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "PREMIUM", "ECONOMY_PLUS", "1"} {
		_, err := ParseSeatClass(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseFlightStatus(t *testing.T) {
	got, err := ParseFlightStatus("scheduled")
	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, got)

	got, err = ParseFlightStatus("IN_AIR")
	require.NoError(t, err)
	assert.Equal(t, StatusInAir, got)

	_, err = ParseFlightStatus("TAXIING")
	assert.Error(t, err)
}
