package gateway

import "errors"

var (
	// ErrUnavailable cobre falha de transporte: conexão, timeout, DNS.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrInvalidResponse é um 2xx com corpo que não parseia ou um
	// status inesperado.
	ErrInvalidResponse = errors.New("invalid backend response")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
)

// ===============================
// Códigos de erro de autenticação
// ===============================

// O backend devolve um conjunto fechado de códigos no login; cada um
// vira uma mensagem própria para o usuário. Código desconhecido cai na
// mensagem genérica.
var authMessages = map[string]string{
	"invalid_credentials": "E-mail ou senha incorretos.",
	"user_not_found":      "Não existe conta com esse e-mail.",
	"email_not_verified":  "Confirme seu e-mail antes de entrar.",
	"account_disabled":    "Conta desativada. Fale com o suporte.",
	"too_many_attempts":   "Muitas tentativas. Aguarde alguns minutos.",
}

const genericAuthMessage = "Não foi possível entrar. Tente novamente."

func AuthMessage(code string) string {
	if msg, ok := authMessages[code]; ok {
		return msg
	}
	return genericAuthMessage
}

// AuthError carrega o código do provedor para o chamador mapear.
type AuthError struct {
	Code string
}

func (e AuthError) Error() string {
	return "auth: " + e.Code
}

func (e AuthError) Message() string {
	return AuthMessage(e.Code)
}
