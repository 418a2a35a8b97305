package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/reportesapp/backend/internal/config"
	"github.com/reportesapp/backend/internal/dto"
	"github.com/reportesapp/backend/internal/services"
)

type UserHandler struct {
	users  *services.UserService
	google *services.GoogleJWKSClient
	cfg    *config.Config
}

func NewUserHandler(users *services.UserService, google *services.GoogleJWKSClient, cfg *config.Config) *UserHandler {
	return &UserHandler{users: users, google: google, cfg: cfg}
}

// GoogleLogin provisions a user on first third-party login and returns the
// existing row on every later one. When the client sends an id_token and a
// Google client id is configured, the verified claims override the bare
// profile fields.
func (h *UserHandler) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Cuerpo de la petición inválido",
		})
	}

	if req.IDToken != "" && h.cfg.GoogleClientID != "" {
		claims, err := h.google.VerifyIDToken(req.IDToken, h.cfg.GoogleClientID)
		if err != nil {
			slog.Error("google token verification failed", "error", err, "request_id", requestID(c))
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Message: "Token de Google inválido",
			})
		}
		req.Email = claims.Email
		req.Name = claims.Name
		req.Picture = claims.Picture
	}

	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "El email es obligatorio",
		})
	}

	var picture *string
	if req.Picture != "" {
		picture = &req.Picture
	}

	user, err := h.users.GoogleLogin(c.Context(), req.Email, req.Name, picture)
	if err != nil {
		slog.Error("google login failed", "error", err, "request_id", requestID(c))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Error al iniciar sesión",
		})
	}

	return c.JSON(dto.LoginResponse{User: *user})
}

// Create registers a user directly, without the login flow.
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "Cuerpo de la petición inválido",
		})
	}

	var picture *string
	if req.Picture != "" {
		picture = &req.Picture
	}

	user, err := h.users.Create(c.Context(), req.Name, req.Email, picture)
	if err != nil {
		slog.Error("failed to create user", "error", err, "request_id", requestID(c))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Error al crear el usuario",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateUserResponse{
		Message: "Usuario creado correctamente",
		ID:      user.ID,
	})
}
