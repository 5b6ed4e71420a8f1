package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain"
)

// appWithError monta una ruta que siempre responde el error dado.
func appWithError(err error) *fiber.App {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})
	return app
}

func TestRespondError_MapeoDeEstados(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"entrada inválida", fmt.Errorf("cantidad: %w", domain.ErrInvalidInput), fiber.StatusBadRequest, "VALIDATION"},
		{"no encontrado", fmt.Errorf("artículo: %w", domain.ErrNotFound), fiber.StatusNotFound, "NOT_FOUND"},
		{"duplicado", domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
		{"conflicto", domain.ErrConflict, fiber.StatusConflict, "CONFLICT"},
		{"irreversible", domain.ErrIrreversible, fiber.StatusConflict, "IRREVERSIBLE"},
		{"desconocido", fmt.Errorf("se cayó la base"), fiber.StatusInternalServerError, "INTERNAL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := appWithError(tc.err)
			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var out dto.ErrorResponse
			require.NoError(t, json.Unmarshal(body, &out))
			assert.Equal(t, tc.code, out.Code)
		})
	}
}

func TestRespondError_FaltanteDeStockConDetalle(t *testing.T) {
	shortage := &domain.StockShortageError{
		ItemID:     "item-1",
		ItemName:   "Tornillo 3/8",
		LocationID: "loc-a",
		Available:  decimal.NewFromInt(4),
		Requested:  decimal.NewFromInt(10),
	}
	app := appWithError(shortage)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/boom", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ShortageResponse
	require.NoError(t, json.Unmarshal(body, &out))

	assert.Equal(t, "INSUFFICIENT_STOCK", out.Code)
	assert.Equal(t, "item-1", out.ItemID)
	assert.Equal(t, "loc-a", out.LocationID)
	assert.Equal(t, "4", out.Available)
	assert.Equal(t, "10", out.Requested)
	assert.Equal(t, "6", out.ShortBy)
}

func TestParseBody_ValidacionDeTags(t *testing.T) {
	app := fiber.New()
	app.Post("/inbound", func(c *fiber.Ctx) error {
		var in dto.CreateInboundRequest
		if !parseBody(c, &in) {
			return nil
		}
		return c.SendStatus(fiber.StatusOK)
	})

	t.Run("cuerpo ilegible", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/inbound", nil)
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("sin líneas", func(t *testing.T) {
		body := `{"supplier_id":"sup-1","user_id":"u-1","lines":[]}`
		req := httptest.NewRequest(fiber.MethodPost, "/inbound", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("válido", func(t *testing.T) {
		body := `{"supplier_id":"sup-1","user_id":"u-1","lines":[{"item_id":"item-1","location_id":"loc-a","quantity":"5","unit_price":"100"}]}`
		req := httptest.NewRequest(fiber.MethodPost, "/inbound", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
