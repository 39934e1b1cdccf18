package validator

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"estoque/internal/domain"
	apperror "estoque/internal/errors"
)

// firstOf devolve o primeiro parâmetro não vazio entre os nomes informados.
func firstOf(q url.Values, names ...string) (string, string) {
	for _, name := range names {
		if v := strings.TrimSpace(q.Get(name)); v != "" {
			return name, v
		}
	}
	return names[0], ""
}

// ValidateSalesRange lê start/end (ou data_inicial/data_final) da query.
// Um end sem hora cobre o dia inteiro.
func (v *Validator) ValidateSalesRange(q url.Values) (domain.DateRange, error) {
	fe := fieldErrors{}

	startName, startRaw := firstOf(q, "start", "data_inicial")
	endName, endRaw := firstOf(q, "end", "data_final")

	var period domain.DateRange
	if startRaw == "" {
		fe.add(startName, msgRequired)
	} else if t, _, ok := parseDateTime(startRaw); ok {
		period.Start = t
	} else {
		fe.add(startName, "Data inválida. Use AAAA-MM-DD ou AAAA-MM-DDTHH:MM:SS.")
	}

	if endRaw == "" {
		fe.add(endName, msgRequired)
	} else if t, dateOnly, ok := parseDateTime(endRaw); ok {
		if dateOnly {
			// Último microssegundo do dia (precisão do timestamp do PostgreSQL).
			t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
		}
		period.End = t
	} else {
		fe.add(endName, "Data inválida. Use AAAA-MM-DD ou AAAA-MM-DDTHH:MM:SS.")
	}

	if len(fe) == 0 && period.End.Before(period.Start) {
		fe.add(endName, "Deve ser posterior à data inicial.")
	}

	if err := fe.err("Período inválido."); err != nil {
		return domain.DateRange{}, err
	}
	return period, nil
}

// ParseThreshold lê um limite inteiro ≥ 0 da query; ausente devolve def.
func ParseThreshold(q url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperror.NewFieldValidationError("Parâmetro inválido.", map[string][]string{
			name: {"Deve ser um número inteiro maior ou igual a 0."},
		})
	}
	return n, nil
}

// ParseID converte o identificador do caminho.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewFieldValidationError("ID inválido.", map[string][]string{
			"id": {"Deve ser um número inteiro positivo."},
		})
	}
	return id, nil
}
