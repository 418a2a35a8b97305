package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestGoogleLoginMissingEmail(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, "/users/google-login", map[string]string{"name": "Ana"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "El email es obligatorio", body.Message)
}

func TestGoogleLoginIdempotent(t *testing.T) {
	app, _ := setupApp(t)

	payload := map[string]string{
		"email":   "ana@example.com",
		"name":    "Ana",
		"picture": "https://example.com/ana.png",
	}

	first := postJSON(t, app, "/users/google-login", payload)
	assert.Equal(t, http.StatusOK, first.StatusCode)

	var firstBody struct {
		User struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, first, &firstBody)
	assert.NotZero(t, firstBody.User.ID)
	assert.Equal(t, "ana@example.com", firstBody.User.Email)

	second := postJSON(t, app, "/users/google-login", payload)
	assert.Equal(t, http.StatusOK, second.StatusCode)

	var secondBody struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, second, &secondBody)
	assert.Equal(t, firstBody.User.ID, secondBody.User.ID)
}

func TestGoogleLoginReturnsSuppliedProfile(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, "/users/google-login", map[string]string{
		"email":   "luis@example.com",
		"name":    "Luis",
		"picture": "https://example.com/luis.png",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		User struct {
			Name    string  `json:"name"`
			Email   string  `json:"email"`
			Picture *string `json:"picture"`
		} `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Luis", body.User.Name)
	assert.Equal(t, "luis@example.com", body.User.Email)
	require.NotNil(t, body.User.Picture)
	assert.Equal(t, "https://example.com/luis.png", *body.User.Picture)
}

func TestCreateUser(t *testing.T) {
	app, _ := setupApp(t)

	resp := postJSON(t, app, "/users", map[string]string{
		"name":  "Eva",
		"email": "eva@example.com",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		Message string `json:"message"`
		ID      uint   `json:"id"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "Usuario creado correctamente", body.Message)
	assert.NotZero(t, body.ID)
}
