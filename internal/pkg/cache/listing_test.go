package cache_test

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estoque/internal/pkg/cache"
)

// MockClient é um mock de cache.Client.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockClient) GetInt(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClient) Incr(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClient) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return m.Called(ctx, key, expiration).Error(0)
}

func TestListingCache_KeySortsQueryAndUsesGeneration(t *testing.T) {
	client := new(MockClient)
	client.On("GetInt", mock.Anything, "produtos:gen").Return(int64(3), nil)
	lc := cache.NewListingCache(client, "produtos", time.Minute)

	key, err := lc.Key(context.Background(), "/products", url.Values{"nome": {"bolt"}, "categoria": {"Hardware"}})

	require.NoError(t, err)
	assert.Equal(t, "produtos:v3:/products?categoria=Hardware&nome=bolt", key)
}

func TestListingCache_KeyWithoutGeneration(t *testing.T) {
	client := new(MockClient)
	client.On("GetInt", mock.Anything, "produtos:gen").Return(int64(0), cache.ErrCacheMiss)
	lc := cache.NewListingCache(client, "produtos", time.Minute)

	key, err := lc.Key(context.Background(), "/produtos", url.Values{})

	require.NoError(t, err)
	assert.Equal(t, "produtos:v0:/produtos?", key)
}

func TestListingCache_KeyPropagatesBackendError(t *testing.T) {
	client := new(MockClient)
	client.On("GetInt", mock.Anything, "produtos:gen").Return(int64(0), errors.New("conexão recusada"))
	lc := cache.NewListingCache(client, "produtos", time.Minute)

	_, err := lc.Key(context.Background(), "/products", nil)
	assert.Error(t, err)
}

func TestListingCache_GetMissAndHit(t *testing.T) {
	client := new(MockClient)
	client.On("Get", mock.Anything, "k1").Return("", cache.ErrCacheMiss)
	client.On("Get", mock.Anything, "k2").Return(`[{"id":1}]`, nil)
	lc := cache.NewListingCache(client, "produtos", time.Minute)

	_, found, err := lc.Get(context.Background(), "k1")
	require.NoError(t, err)
	assert.False(t, found)

	body, found, err := lc.Get(context.Background(), "k2")
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":1}]`, string(body))
}

func TestListingCache_SetUsesTTL(t *testing.T) {
	client := new(MockClient)
	client.On("Set", mock.Anything, "k", []byte("[]"), 60*time.Second).Return(nil)
	lc := cache.NewListingCache(client, "produtos", 60*time.Second)

	require.NoError(t, lc.Set(context.Background(), "k", []byte("[]")))
	client.AssertExpectations(t)
}

func TestListingCache_InvalidateBumpsGeneration(t *testing.T) {
	client := new(MockClient)
	client.On("Incr", mock.Anything, "produtos:gen").Return(int64(4), nil)
	lc := cache.NewListingCache(client, "produtos", time.Minute)

	require.NoError(t, lc.Invalidate(context.Background()))
	client.AssertCalled(t, "Incr", mock.Anything, "produtos:gen")
}
