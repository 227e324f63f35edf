package datestr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAccepts(t *testing.T) {
	for _, s := range []string{"2024-01-01", "2024-02-29", "1999-12-31", "2025-06-15"} {
		assert.NoError(t, Validate(s), s)
	}
}

func TestValidateRejectsBadShape(t *testing.T) {
	cases := []string{
		"",
		"2024-1-1",
		"24-01-01",
		"2024/01/01",
		"2024-01-01 10:00",
		"2024-01-01' OR '1'='1",
		"hari ini",
	}
	for _, s := range cases {
		assert.ErrorIs(t, Validate(s), ErrBadDate, s)
	}
}

func TestValidateRejectsImpossibleCalendarDates(t *testing.T) {
	// bentuk cocok pola tapi bukan tanggal nyata
	for _, s := range []string{"2024-02-30", "2023-02-29", "2024-13-01", "2024-00-10", "2024-04-31"} {
		assert.ErrorIs(t, Validate(s), ErrBadDate, s)
	}
}
