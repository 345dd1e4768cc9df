package utils

import (
	"fmt"
	"time"
)

// MonthLayout é o formato aceito para parâmetros de mês em toda a API
const MonthLayout = "2006-01"

// ParseMonth valida e converte um parâmetro "YYYY-MM" para o primeiro dia do
// mês em UTC. Meses malformados são rejeitados aqui, antes de qualquer
// agregação começar.
func ParseMonth(monthStr string) (time.Time, error) {
	if monthStr == "" {
		return time.Time{}, fmt.Errorf("o parâmetro de mês é obrigatório")
	}

	month, err := time.Parse(MonthLayout, monthStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("mês inválido %q, use o formato YYYY-MM: %w", monthStr, err)
	}

	return time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}

// MonthWindow retorna a janela [início do mês, início do mês seguinte) para o
// mês informado. O fim exclusivo da janela também serve de corte "as-of" para
// a resolução de snapshots.
func MonthWindow(month time.Time) (start, end time.Time) {
	start = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}

// MonthEnd retorna o último dia de calendário do mês informado.
func MonthEnd(month time.Time) time.Time {
	_, end := MonthWindow(month)
	return end.AddDate(0, 0, -1)
}

// PrevMonth retorna o primeiro dia do mês anterior.
func PrevMonth(month time.Time) time.Time {
	start, _ := MonthWindow(month)
	return start.AddDate(0, -1, 0)
}

// FormatMonth converte uma data para o formato "YYYY-MM" usado na API.
func FormatMonth(month time.Time) string {
	return month.Format(MonthLayout)
}

// MonthsBetween retorna os primeiros dias de todos os meses no intervalo
// fechado [from, to], em ordem crescente.
func MonthsBetween(from, to time.Time) []time.Time {
	months := []time.Time{}

	current := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)

	for !current.After(last) {
		months = append(months, current)
		current = current.AddDate(0, 1, 0)
	}

	return months
}

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}
