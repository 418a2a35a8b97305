package handlers

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/reportesapp/backend/internal/config"
	"github.com/reportesapp/backend/internal/dto"
	"github.com/reportesapp/backend/internal/models"
	"github.com/reportesapp/backend/internal/services"
	"github.com/reportesapp/backend/internal/storage"
)

type ReportHandler struct {
	reports *services.ReportService
	files   *storage.FileStore
	cfg     *config.Config
}

func NewReportHandler(reports *services.ReportService, files *storage.FileStore, cfg *config.Config) *ReportHandler {
	return &ReportHandler{reports: reports, files: files, cfg: cfg}
}

// Create handles the multipart report submission. Required fields are
// checked before the image is persisted, and a stored image is removed
// again if the row insert fails, so no orphan files are left behind.
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	received := dto.ReceivedFields{
		UserID:      c.FormValue("user_id"),
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Location:    c.FormValue("location"),
		Contact:     c.FormValue("contact"),
		Status:      c.FormValue("status"),
	}

	if received.UserID == "" || received.Title == "" || received.Description == "" ||
		received.Location == "" || received.Contact == "" || received.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MissingFieldsResponse{
			Message:  "Todos los campos son obligatorios",
			Received: received,
		})
	}

	userID, err := strconv.ParseUint(received.UserID, 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "El campo user_id debe ser numérico",
		})
	}

	var image *string
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		name, err := h.files.Save(fh)
		if err != nil {
			if errors.Is(err, storage.ErrDisallowedType) || errors.Is(err, storage.ErrFileTooLarge) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Message: "Error al subir la imagen",
					Error:   err.Error(),
				})
			}
			slog.Error("image upload failed", "error", err, "request_id", requestID(c))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Message: "Error al subir la imagen",
			})
		}
		image = &name
	}

	report := models.Report{
		UserID:      uint(userID),
		Title:       received.Title,
		Description: received.Description,
		Location:    received.Location,
		Contact:     received.Contact,
		Status:      received.Status,
		Image:       image,
	}

	if err := h.reports.Create(c.Context(), &report); err != nil {
		if image != nil {
			if rmErr := h.files.Remove(*image); rmErr != nil {
				slog.Error("failed to remove orphaned upload", "file", *image, "error", rmErr)
			}
		}
		slog.Error("failed to save report", "error", err, "request_id", requestID(c))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Error al guardar en la base de datos",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateReportResponse{
		Message:  "Reporte guardado correctamente",
		ID:       report.ID,
		Image:    image,
		ImageURL: h.imageURL(image),
	})
}

// List returns every report, most recent first.
func (h *ReportHandler) List(c *fiber.Ctx) error {
	reports, err := h.reports.List(c.Context())
	if err != nil {
		slog.Error("failed to list reports", "error", err, "request_id", requestID(c))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Error al obtener los reportes",
		})
	}

	items := make([]dto.ReportItem, 0, len(reports))
	for _, r := range reports {
		items = append(items, dto.ReportItem{
			ID:       r.ID,
			Title:    r.Title,
			Status:   r.Status,
			Location: r.Location,
			Image:    r.Image,
			Date:     r.CreatedAt.Format("2006-01-02"),
			ImageURL: h.imageURL(r.Image),
		})
	}
	return c.JSON(items)
}

// ListByUser returns one user's reports; the projection omits location.
func (h *ReportHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Message: "El parámetro userId debe ser numérico",
		})
	}

	reports, err := h.reports.ListByUser(c.Context(), uint(userID))
	if err != nil {
		slog.Error("failed to list user reports", "error", err, "user_id", userID, "request_id", requestID(c))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: "Error al obtener los reportes",
		})
	}

	items := make([]dto.UserReportItem, 0, len(reports))
	for _, r := range reports {
		items = append(items, dto.UserReportItem{
			ID:       r.ID,
			Title:    r.Title,
			Status:   r.Status,
			Image:    r.Image,
			Date:     r.CreatedAt.Format("2006-01-02"),
			ImageURL: h.imageURL(r.Image),
		})
	}
	return c.JSON(dto.UserReportsResponse{Reports: items})
}

func (h *ReportHandler) imageURL(image *string) *string {
	if image == nil {
		return nil
	}
	u := h.cfg.PublicBaseURL + "/uploads/" + *image
	return &u
}
