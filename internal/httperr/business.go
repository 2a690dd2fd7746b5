package httperr

import "errors"

// BusinessError é um erro de fluxo com código estável; os handlers
// mapeiam o código para o status HTTP, nunca a mensagem.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness confere se err carrega exatamente esse código.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
