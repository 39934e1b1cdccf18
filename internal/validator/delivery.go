package validator

import (
	"strings"
	"time"

	"estoque/internal/domain"
)

// Formatos aceitos para datas, do mais específico ao mais simples.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	dateOnlyLayout,
}

const dateOnlyLayout = "2006-01-02"

// parseDateTime interpreta s em um dos formatos aceitos. Datas sem fuso são tratadas como UTC.
// dateOnly indica que s não tinha componente de hora.
func parseDateTime(s string) (t time.Time, dateOnly bool, ok bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateTimeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return parsed.UTC(), layout == dateOnlyLayout, true
		}
	}
	return time.Time{}, false, false
}

type deliveryPayload struct {
	ProductID    *int64  `json:"produto_id" validate:"required,gt=0,lte=2147483647"`
	DeliveryDate *string `json:"data_entrega" validate:"required"`
	Address      *string `json:"endereco_entrega" validate:"required,notblank,max=200"`
}

// ValidateDelivery valida o corpo do agendamento de entrega.
func (v *Validator) ValidateDelivery(body []byte) (domain.Delivery, error) {
	var p deliveryPayload
	fe := fieldErrors{}

	if err := decodeObject(body, []field{
		{"produto_id", kindInt, &p.ProductID},
		{"data_entrega", kindString, &p.DeliveryDate},
		{"endereco_entrega", kindString, &p.Address},
	}, fe); err != nil {
		return domain.Delivery{}, err
	}

	v.check(p, fe)

	var when time.Time
	if p.DeliveryDate != nil && len(fe["data_entrega"]) == 0 {
		parsed, _, ok := parseDateTime(*p.DeliveryDate)
		if !ok {
			fe.add("data_entrega", "Data inválida. Use AAAA-MM-DD ou AAAA-MM-DDTHH:MM:SS.")
		}
		when = parsed
	}

	if err := fe.err(msgInvalidPayload); err != nil {
		return domain.Delivery{}, err
	}

	return domain.Delivery{
		ProductID:    *p.ProductID,
		DeliveryDate: when,
		Address:      strings.TrimSpace(*p.Address),
	}, nil
}
