// Package validator valida os payloads de entrada da API e os normaliza para os tipos de domínio.
// Regras de presença e faixa vêm das tags do go-playground/validator; erros de tipo são
// detectados campo a campo durante a decodificação. Todas as falhas de um payload são
// devolvidas juntas em um único ValidationError.
package validator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	apperror "estoque/internal/errors"
)

const (
	msgInvalidPayload = "Payload inválido. Verifique os campos informados."
	msgRequired       = "Campo obrigatório."
	msgUnknownField   = "Campo desconhecido."
)

// kind é o tipo JSON esperado de um campo.
type kind int

const (
	kindString kind = iota
	kindInt
	kindNumber
)

func (k kind) typeMessage() string {
	switch k {
	case kindInt:
		return "Deve ser um número inteiro."
	case kindNumber:
		return "Deve ser um número."
	default:
		return "Deve ser um texto."
	}
}

// field liga um nome do JSON ao ponteiro do campo de destino (e.g., **string).
type field struct {
	name   string
	kind   kind
	target interface{}
}

// fieldErrors acumula mensagens por campo.
type fieldErrors map[string][]string

func (fe fieldErrors) add(name, msg string) {
	fe[name] = append(fe[name], msg)
}

// dropUnknown descarta os campos marcados apenas como desconhecidos.
func (fe fieldErrors) dropUnknown() {
	for name, msgs := range fe {
		if len(msgs) == 1 && msgs[0] == msgUnknownField {
			delete(fe, name)
		}
	}
}

func (fe fieldErrors) err(msg string) error {
	if len(fe) == 0 {
		return nil
	}
	return apperror.NewFieldValidationError(msg, fe)
}

// Validator agrupa as validações de payload da API.
type Validator struct {
	v *validator.Validate
}

// New cria um Validator que reporta os campos pelo nome JSON.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return &Validator{v: v}
}

// decodeObject decodifica body como objeto JSON, preenchendo cada campo conhecido.
// Campos com tipo errado ou desconhecidos são registrados em fe.
func decodeObject(body []byte, fields []field, fe fieldErrors) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return apperror.NewValidationError("Corpo da requisição vazio.")
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}

	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f.name] = struct{}{}
		value, ok := raw[f.name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(value, f.target); err != nil {
			fe.add(f.name, f.kind.typeMessage())
		}
	}

	unknown := make([]string, 0)
	for name := range raw {
		if _, ok := known[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fe.add(name, msgUnknownField)
	}
	return nil
}

// check executa as regras das tags sobre s. Campos que já falharam na
// decodificação não recebem mensagens adicionais.
func (v *Validator) check(s interface{}, fe fieldErrors) {
	err := v.v.Struct(s)
	if err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		fe.add("_", err.Error())
		return
	}
	failed := make(map[string]bool, len(fe))
	for name := range fe {
		failed[name] = true
	}
	for _, e := range verrs {
		if failed[e.Field()] {
			continue
		}
		fe.add(e.Field(), ruleMessage(e))
	}
}

func ruleMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return msgRequired
	case "gte":
		return fmt.Sprintf("Deve ser maior ou igual a %s.", e.Param())
	case "lte":
		return fmt.Sprintf("Deve ser menor ou igual a %s.", e.Param())
	case "gt":
		return fmt.Sprintf("Deve ser maior que %s.", e.Param())
	case "max":
		return fmt.Sprintf("Tamanho máximo de %s caracteres.", e.Param())
	case "notblank":
		return "Não pode ser vazio."
	default:
		return fmt.Sprintf("Valor inválido (%s).", e.Tag())
	}
}
