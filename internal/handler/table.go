package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/model"
	"github.com/iliyamo/restaurant-ops/internal/repository"
)

// TableHandler serves the dining table CRUD endpoints.
type TableHandler struct {
	Tables *repository.TableRepo
}

func NewTableHandler(tables *repository.TableRepo) *TableHandler {
	return &TableHandler{Tables: tables}
}

type tableReq struct {
	Code     *string `json:"code"`
	Seats    *int    `json:"seats"`
	Location *string `json:"location"`
	Active   *bool   `json:"active"`
}

func (h *TableHandler) List(c echo.Context) error {
	out, err := h.Tables.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if out == nil {
		out = []model.Table{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *TableHandler) Create(c echo.Context) error {
	var req tableReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Code == nil || *req.Code == "" || req.Seats == nil || *req.Seats <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "code and positive seats required"})
	}
	t := model.Table{Code: *req.Code, Seats: *req.Seats, Location: req.Location, Active: true}
	if req.Active != nil {
		t.Active = *req.Active
	}
	if err := h.Tables.Create(c.Request().Context(), &t); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "table code already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TableHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req tableReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	t, err := h.Tables.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if req.Code != nil {
		t.Code = *req.Code
	}
	if req.Seats != nil {
		t.Seats = *req.Seats
	}
	if req.Location != nil {
		t.Location = req.Location
	}
	if req.Active != nil {
		t.Active = *req.Active
	}
	if err := h.Tables.Update(ctx, &t); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "table code already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TableHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Tables.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrTableNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"detail": "table deleted"})
}
