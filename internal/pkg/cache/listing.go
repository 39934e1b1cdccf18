package cache

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"
)

// ListingCache memoriza respostas de listagem por um TTL.
// As chaves carregam um número de geração; Invalidate incrementa a geração e
// todas as entradas anteriores deixam de ser lidas (expiram sozinhas pelo TTL).
type ListingCache struct {
	client    Client
	namespace string
	ttl       time.Duration
}

// NewListingCache cria o cache de listagens sob o namespace informado (e.g., "produtos").
func NewListingCache(client Client, namespace string, ttl time.Duration) *ListingCache {
	return &ListingCache{client: client, namespace: namespace, ttl: ttl}
}

func (c *ListingCache) generationKey() string {
	return c.namespace + ":gen"
}

// Key monta a chave da listagem: namespace, geração atual, caminho e query ordenada.
func (c *ListingCache) Key(ctx context.Context, path string, query url.Values) (string, error) {
	gen, err := c.client.GetInt(ctx, c.generationKey())
	if err != nil && !errors.Is(err, ErrCacheMiss) {
		return "", err
	}
	// url.Values.Encode ordena as chaves.
	return fmt.Sprintf("%s:v%d:%s?%s", c.namespace, gen, path, query.Encode()), nil
}

// Get devolve o corpo memorizado. found=false em caso de miss.
func (c *ListingCache) Get(ctx context.Context, key string) (body []byte, found bool, err error) {
	val, err := c.client.Get(ctx, key)
	if errors.Is(err, ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(val), true, nil
}

// Set memoriza o corpo pelo TTL configurado.
func (c *ListingCache) Set(ctx context.Context, key string, body []byte) error {
	return c.client.Set(ctx, key, body, c.ttl)
}

// Invalidate descarta todas as listagens memorizadas.
func (c *ListingCache) Invalidate(ctx context.Context) error {
	_, err := c.client.Incr(ctx, c.generationKey())
	return err
}
