package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTotal(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		checkIn  string
		checkOut string
		want     float64
	}{
		{name: "two nights", rate: 120, checkIn: "2024-01-20", checkOut: "2024-01-22", want: 240},
		{name: "one night", rate: 99.5, checkIn: "2024-01-22", checkOut: "2024-01-23", want: 99.5},
		{name: "same day", rate: 120, checkIn: "2024-01-22", checkOut: "2024-01-22", want: 0},
		{name: "reversed dates", rate: 120, checkIn: "2024-01-23", checkOut: "2024-01-22", want: 0},
		{name: "across month boundary", rate: 80, checkIn: "2024-01-31", checkOut: "2024-02-02", want: 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, EstimateTotal(tt.rate, tt.checkIn, tt.checkOut), 1e-9)
		})
	}
}

func TestNewReferenceCodeShape(t *testing.T) {
	code := newReferenceCode()
	assert.Len(t, code, 11)
	assert.Equal(t, "BK-", code[:3])
	assert.NotEqual(t, code, newReferenceCode())
}
