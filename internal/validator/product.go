package validator

import (
	"estoque/internal/domain"
	apperror "estoque/internal/errors"
)

// productPayload espelha o corpo JSON de um produto. Ponteiros distinguem campo ausente de valor zero.
type productPayload struct {
	Name     *string  `json:"nome" validate:"required,max=100"`
	Category *string  `json:"categoria" validate:"required,max=100"`
	Quantity *int     `json:"quantidade" validate:"required,gte=0,lte=2147483647"`
	Price    *float64 `json:"preco" validate:"required,gte=0"`
	Location *string  `json:"localizacao" validate:"required,max=100"`
}

// ValidateProduct valida o corpo de criação/atualização de produto.
// Todos os campos são obrigatórios; quantidade e preço devem ser ≥ 0.
// A quantidade é limitada à faixa da coluna INTEGER.
func (v *Validator) ValidateProduct(body []byte) (domain.ProductInput, error) {
	var p productPayload
	fe := fieldErrors{}

	if err := decodeObject(body, []field{
		{"nome", kindString, &p.Name},
		{"categoria", kindString, &p.Category},
		{"quantidade", kindInt, &p.Quantity},
		{"preco", kindNumber, &p.Price},
		{"localizacao", kindString, &p.Location},
	}, fe); err != nil {
		return domain.ProductInput{}, err
	}

	v.check(p, fe)
	if err := fe.err(msgInvalidPayload); err != nil {
		return domain.ProductInput{}, err
	}

	return domain.ProductInput{
		Name:     *p.Name,
		Category: *p.Category,
		Quantity: *p.Quantity,
		Price:    *p.Price,
		Location: *p.Location,
	}, nil
}

type stockPayload struct {
	Quantity *int `json:"quantidade" validate:"required,gte=-2147483648,lte=2147483647"`
}

// ValidateStockDelta valida o corpo {"quantidade": delta} do ajuste de estoque.
// O delta pode ser negativo; outros campos do corpo são ignorados.
func (v *Validator) ValidateStockDelta(body []byte) (int, error) {
	var p stockPayload
	fe := fieldErrors{}

	if err := decodeObject(body, []field{{"quantidade", kindInt, &p.Quantity}}, fe); err != nil {
		return 0, apperror.NewValidationError("Quantidade inválida!")
	}
	fe.dropUnknown()

	v.check(p, fe)
	if err := fe.err("Quantidade inválida!"); err != nil {
		return 0, err
	}
	return *p.Quantity, nil
}
