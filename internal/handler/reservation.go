package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/model"
	"github.com/iliyamo/restaurant-ops/internal/repository"
)

// ReservationHandler serves the table reservation CRUD endpoints.
type ReservationHandler struct {
	Reservations *repository.ReservationRepo
	Tables       *repository.TableRepo
}

func NewReservationHandler(r *repository.ReservationRepo, t *repository.TableRepo) *ReservationHandler {
	return &ReservationHandler{Reservations: r, Tables: t}
}

type reservationReq struct {
	TableID *uint64    `json:"table_id"`
	StartAt *time.Time `json:"start_at"`
	EndAt   *time.Time `json:"end_at"`
	Status  *string    `json:"status"`
}

func (h *ReservationHandler) List(c echo.Context) error {
	out, err := h.Reservations.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if out == nil {
		out = []model.Reservation{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReservationHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	res, err := h.Reservations.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) Create(c echo.Context) error {
	var req reservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.TableID == nil || req.StartAt == nil || req.EndAt == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "table_id, start_at and end_at required"})
	}
	if !req.EndAt.After(*req.StartAt) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_at must be after start_at"})
	}

	ctx := c.Request().Context()
	if _, err := h.Tables.GetByID(ctx, *req.TableID); err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	res := model.Reservation{TableID: *req.TableID, StartAt: *req.StartAt, EndAt: *req.EndAt, Status: "pending"}
	if req.Status != nil && *req.Status != "" {
		res.Status = *req.Status
	}
	if err := h.Reservations.Create(ctx, &res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *ReservationHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req reservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	res, err := h.Reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if req.TableID != nil {
		if _, err := h.Tables.GetByID(ctx, *req.TableID); err != nil {
			if errors.Is(err, repository.ErrTableNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		res.TableID = *req.TableID
	}
	if req.StartAt != nil {
		res.StartAt = *req.StartAt
	}
	if req.EndAt != nil {
		res.EndAt = *req.EndAt
	}
	if req.Status != nil {
		res.Status = *req.Status
	}
	if !res.EndAt.After(res.StartAt) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_at must be after start_at"})
	}
	if err := h.Reservations.Update(ctx, &res); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Reservations.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "Reservation deleted"})
}
