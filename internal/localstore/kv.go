// Package localstore é o armazenamento local persistente do agente.
// Guarda blobs JSON por chave (sessão, empresa ativa, vínculo de pagamento).
package localstore

import "context"

// KV é o contrato mínimo de armazenamento chave/valor.
// Get devolve (nil, nil) quando a chave não existe: quem lê decide o default.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
