package validators

import "strings"

// A validação do lado do agente é só presença de campo e formato
// básico de e-mail; regra de negócio fica no backend.

// IsEmailShapeValid confere o formato sem resolver o domínio: o
// agente pode estar offline do DNS e o backend valida de verdade.
func IsEmailShapeValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.ContainsAny(email, " \t")
}

type Field struct {
	Name  string
	Value string
}

// MissingField devolve o nome do primeiro campo obrigatório vazio.
func MissingField(fields ...Field) (string, bool) {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return f.Name, true
		}
	}
	return "", false
}
