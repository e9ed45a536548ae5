package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthOf(t *testing.T) {
	assert.Equal(t, "2024-01", MonthOf("2024-01-22"))
	assert.Equal(t, "2024-12", MonthOf("2024-12-01"))
	assert.Equal(t, "2024", MonthOf("2024"))
	assert.Equal(t, "", MonthOf(""))
}

func TestDatePart(t *testing.T) {
	assert.Equal(t, "2024-01-22", DatePart("2024-01-22T14:30:00Z"))
	assert.Equal(t, "2024-01-22", DatePart("2024-01-22T23:59:59Z"))
	assert.Equal(t, "2024-01-22", DatePart("2024-01-22"))
	assert.Equal(t, "", DatePart("T10:00:00Z"))
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{name: "one night", checkIn: "2024-01-22", checkOut: "2024-01-23", want: 1},
		{name: "week", checkIn: "2024-01-01", checkOut: "2024-01-08", want: 7},
		{name: "same day", checkIn: "2024-01-22", checkOut: "2024-01-22", want: 0},
		{name: "reversed", checkIn: "2024-01-23", checkOut: "2024-01-22", want: 0},
		{name: "leap february", checkIn: "2024-02-28", checkOut: "2024-03-01", want: 2},
		{name: "malformed check-in", checkIn: "not-a-date", checkOut: "2024-01-23", want: 0},
		{name: "malformed check-out", checkIn: "2024-01-22", checkOut: "someday", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nights(tt.checkIn, tt.checkOut))
		})
	}
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-01-22"))
	assert.False(t, IsValidDate("2024-13-01"))
	assert.False(t, IsValidDate("22-01-2024"))
	assert.False(t, IsValidDate(""))
}
