package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
		wantErr  bool
	}{
		{
			name:     "Mês válido resolve o primeiro dia em UTC",
			input:    "2025-12",
			expected: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Parâmetro vazio é rejeitado",
			input:   "",
			wantErr: true,
		},
		{
			name:    "Ano sem mês é rejeitado",
			input:   "2025",
			wantErr: true,
		},
		{
			name:    "Mês treze é rejeitado",
			input:   "2025-13",
			wantErr: true,
		},
		{
			name:    "Data completa é rejeitada",
			input:   "2025-12-01",
			wantErr: true,
		},
		{
			name:    "Texto livre é rejeitado",
			input:   "dezembro",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseMonth(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMonthWindow(t *testing.T) {
	month := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	start, end := MonthWindow(month)

	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestMonthEnd(t *testing.T) {
	tests := []struct {
		name     string
		month    time.Time
		expected time.Time
	}{
		{
			name:     "Dezembro termina no dia 31",
			month:    time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Fevereiro bissexto termina no dia 29",
			month:    time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "Fevereiro comum termina no dia 28",
			month:    time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthEnd(tt.month))
		})
	}
}

func TestPrevMonth(t *testing.T) {
	january := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), PrevMonth(january))
}

func TestMonthsBetween(t *testing.T) {
	from := time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

	months := MonthsBetween(from, to)

	assert.Len(t, months, 3)
	assert.Equal(t, "2025-11", FormatMonth(months[0]))
	assert.Equal(t, "2025-12", FormatMonth(months[1]))
	assert.Equal(t, "2026-01", FormatMonth(months[2]))
}

func TestMonthsBetweenMesUnico(t *testing.T) {
	month := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)

	months := MonthsBetween(month, month)

	assert.Len(t, months, 1)
	assert.Equal(t, month, months[0])
}
