package utils

import (
	"fmt"
	"strconv"
	"time"
)

// ParseYearMonth interpreta os query params de ano e mês, usando a data
// de referência como padrão quando ausentes. Valores fora do calendário
// são rejeitados antes de chegar às camadas de negócio.
func ParseYearMonth(yearStr, monthStr string, now time.Time) (int, int, error) {
	year := now.Year()
	month := int(now.Month())

	if yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			return 0, 0, fmt.Errorf("ano inválido: %q", yearStr)
		}
		year = parsed
	}

	if year <= 0 {
		return 0, 0, fmt.Errorf("ano inválido: %d", year)
	}

	if monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil {
			return 0, 0, fmt.Errorf("mês inválido: %q", monthStr)
		}
		month = parsed
	}

	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("mês inválido: %d, informe um valor entre 1 e 12", month)
	}

	return year, month, nil
}

// ParseYear interpreta o query param de ano, usando a data de referência
// como padrão quando ausente.
func ParseYear(yearStr string, now time.Time) (int, error) {
	if yearStr == "" {
		return now.Year(), nil
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return 0, fmt.Errorf("ano inválido: %q", yearStr)
	}

	if year <= 0 {
		return 0, fmt.Errorf("ano inválido: %d", year)
	}

	return year, nil
}
