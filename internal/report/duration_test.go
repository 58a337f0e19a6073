package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00h00m"},
		{59 * time.Second, "00h00m"},
		{time.Minute, "00h01m"},
		{4*time.Hour + 38*time.Minute, "04h38m"},
		{4*time.Hour + 38*time.Minute + 59*time.Second, "04h38m"},
		{24 * time.Hour, "24h00m"},
		{51*time.Hour + 7*time.Minute, "51h07m"},
		{123*time.Hour + 45*time.Minute, "123h45m"},
		{-5 * time.Minute, "00h00m"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}
