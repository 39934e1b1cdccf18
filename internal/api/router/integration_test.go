//go:build integration
// +build integration

package router_test

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"estoque/internal/api/auth"
	"estoque/internal/api/delivery"
	"estoque/internal/api/product"
	"estoque/internal/api/report"
	"estoque/internal/api/router"
	"estoque/internal/domain"
	"estoque/internal/pkg/database"
	"estoque/internal/pkg/logger"
	"estoque/internal/pkg/token"
	"estoque/internal/repository/deliveryrepo"
	"estoque/internal/repository/productrepo"
	"estoque/internal/repository/salerepo"
	"estoque/internal/service/authservice"
	"estoque/internal/service/deliveryservice"
	"estoque/internal/service/productservice"
	"estoque/internal/service/reportservice"
	"estoque/internal/validator"
	"estoque/migrations"
)

// setupTestDB sobe um PostgreSQL descartável com o schema migrado.
func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("estoque"),
		postgres.WithUsername("estoque"),
		postgres.WithPassword("estoque"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("falha ao encerrar o container: %v", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.NewPostgresDB(ctx, dsn, database.DefaultPool)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.Migrate(ctx, db))
	return db
}

func newAPI(t *testing.T, db *sql.DB) *resty.Client {
	log := logger.NewNop()
	v := validator.New()
	tokens := token.NewService("segredo-de-integracao", time.Hour)
	hash, err := authservice.HashPassword("secret")
	require.NoError(t, err)

	productRepo := productrepo.NewProductRepository(db, 5*time.Second, log)
	saleRepo := salerepo.NewSaleRepository(db, 5*time.Second, log)
	deliveryRepo := deliveryrepo.NewDeliveryRepository(db, 5*time.Second, log)

	h := router.NewRouter(router.Handlers{
		Product: product.NewHandler(productservice.NewService(productRepo, nil, log), v, log),
		Report: report.NewHandler(reportservice.NewService(productRepo, saleRepo,
			reportservice.Thresholds{Low: 10, High: 100}, log), v, log),
		Delivery: delivery.NewHandler(deliveryservice.NewService(deliveryRepo, log), v, log),
		Auth:     auth.NewHandler(authservice.NewService("admin", hash, tokens, log), v, log),
	}, router.Options{Tokens: tokens, Logger: log})

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL).SetTimeout(10 * time.Second)
}

func login(t *testing.T, client *resty.Client) string {
	var tok domain.TokenResponse
	resp, err := client.R().
		SetBody(map[string]string{"username": "admin", "password": "secret"}).
		SetResult(&tok).
		Post("/api/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	return tok.AccessToken
}

func createProduct(t *testing.T, client *resty.Client, tok, name, category string, qty int) domain.Product {
	var p domain.Product
	resp, err := client.R().
		SetAuthToken(tok).
		SetBody(map[string]interface{}{
			"nome": name, "categoria": category, "quantidade": qty, "preco": 1.5, "localizacao": "A1",
		}).
		SetResult(&p).
		Post("/products")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), string(resp.Body()))
	return p
}

func TestIntegration_InventoryFlow(t *testing.T) {
	db := setupTestDB(t)
	client := newAPI(t, db)
	tok := login(t, client)

	t.Run("create without token is rejected", func(t *testing.T) {
		resp, err := client.R().SetBody(map[string]interface{}{"nome": "X"}).Post("/products")
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	})

	bolt := createProduct(t, client, tok, "Bolt", "Hardware", 50)

	t.Run("created product is listed exactly once", func(t *testing.T) {
		var list []domain.Product
		resp, err := client.R().SetResult(&list).SetQueryParam("categoria", "Hardware").Get("/api/produtos")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())

		count := 0
		for _, p := range list {
			if p.ID == bolt.ID {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("negative quantity is a validation error", func(t *testing.T) {
		var errResp domain.ErrorResponse
		resp, err := client.R().SetAuthToken(tok).
			SetBody(map[string]interface{}{"nome": "N", "categoria": "C", "quantidade": -1, "preco": 1, "localizacao": "L"}).
			SetError(&errResp).
			Post("/products")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
		assert.Contains(t, errResp.Fields, "quantidade")
	})

	t.Run("update of a missing product is not found", func(t *testing.T) {
		resp, err := client.R().
			SetBody(map[string]interface{}{"nome": "N", "categoria": "C", "quantidade": 1, "preco": 1, "localizacao": "L"}).
			Put("/products/999999")
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	})

	t.Run("adjusting by +5 then -5 restores the quantity", func(t *testing.T) {
		for _, delta := range []int{5, -5} {
			resp, err := client.R().SetBody(map[string]int{"quantidade": delta}).
				Put(fmt.Sprintf("/products/%d/stock", bolt.ID))
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, resp.StatusCode())
		}

		var p domain.Product
		_, err := client.R().SetResult(&p).Get("/product/Bolt")
		require.NoError(t, err)
		assert.Equal(t, 50, p.Quantity)
	})

	t.Run("stock report thresholds", func(t *testing.T) {
		createProduct(t, client, tok, "Nut", "Hardware", 5)
		createProduct(t, client, tok, "Washer", "Hardware", 150)

		var legacy struct {
			Low  []domain.StockLevelEntry `json:"baixo_estoque"`
			High []domain.StockLevelEntry `json:"excesso_estoque"`
		}
		resp, err := client.R().SetResult(&legacy).Get("/api/relatorios")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
		assert.Contains(t, legacy.Low, domain.StockLevelEntry{Name: "Nut", Quantity: 5, Location: "A1"})
		assert.Contains(t, legacy.High, domain.StockLevelEntry{Name: "Washer", Quantity: 150, Location: "A1"})
	})

	t.Run("name filter is a case-insensitive substring", func(t *testing.T) {
		createProduct(t, client, tok, "Blue WIDGET", "Toys", 1)
		createProduct(t, client, tok, "Gadget", "Toys", 1)

		var list []domain.Product
		_, err := client.R().SetResult(&list).SetQueryParam("name", "widget").Get("/products")
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Blue WIDGET", list[0].Name)
	})

	t.Run("sales report and delete conflict", func(t *testing.T) {
		_, err := db.Exec(`INSERT INTO venda (produto_id, quantidade_vendida, data_venda) VALUES ($1, 3, '2024-01-01 12:00:00')`, bolt.ID)
		require.NoError(t, err)

		var sales []domain.Sale
		resp, err := client.R().SetResult(&sales).
			SetQueryParams(map[string]string{"start": "2024-01-01", "end": "2024-01-01"}).
			Get("/reports/sales")
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode())
		require.Len(t, sales, 1)
		assert.Equal(t, "Bolt", sales[0].ProductName)

		resp, err = client.R().Delete(fmt.Sprintf("/products/%d", bolt.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode())
	})

	t.Run("delivery for a missing product is rejected", func(t *testing.T) {
		resp, err := client.R().
			SetBody(map[string]interface{}{"produto_id": 999999, "data_entrega": "2030-01-01", "endereco_entrega": "Rua A"}).
			Post("/entregas")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})

	t.Run("delete returns no content", func(t *testing.T) {
		p := createProduct(t, client, tok, "Temp", "Misc", 1)

		resp, err := client.R().Delete(fmt.Sprintf("/products/%d", p.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode())
		assert.Empty(t, resp.Body())

		resp, err = client.R().Delete(fmt.Sprintf("/products/%d", p.ID))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	})
}
