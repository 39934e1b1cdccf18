package validator

import (
	"estoque/internal/domain"
)

type credentialsPayload struct {
	Username *string `json:"username" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// ValidateCredentials valida o corpo do login. Campos extras são ignorados.
func (v *Validator) ValidateCredentials(body []byte) (domain.Credentials, error) {
	var p credentialsPayload
	fe := fieldErrors{}

	if err := decodeObject(body, []field{
		{"username", kindString, &p.Username},
		{"password", kindString, &p.Password},
	}, fe); err != nil {
		return domain.Credentials{}, err
	}
	fe.dropUnknown()

	v.check(p, fe)
	if err := fe.err("Credenciais ausentes."); err != nil {
		return domain.Credentials{}, err
	}
	return domain.Credentials{Username: *p.Username, Password: *p.Password}, nil
}
