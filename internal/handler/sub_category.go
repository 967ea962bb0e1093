package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/model"
	"github.com/iliyamo/restaurant-ops/internal/repository"
)

// SubCategoryHandler serves the sub-category CRUD endpoints.
type SubCategoryHandler struct {
	SubCategories *repository.SubCategoryRepo
}

func NewSubCategoryHandler(s *repository.SubCategoryRepo) *SubCategoryHandler {
	return &SubCategoryHandler{SubCategories: s}
}

type subCategoryReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Img         *string `json:"img"`
}

func (h *SubCategoryHandler) List(c echo.Context) error {
	out, err := h.SubCategories.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if out == nil {
		out = []model.SubCategory{}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SubCategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s, err := h.SubCategories.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSubCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sub-category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SubCategoryHandler) Create(c echo.Context) error {
	var req subCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == nil || *req.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}
	s := model.SubCategory{Name: *req.Name, Description: req.Description, Img: req.Img}
	if err := h.SubCategories.Create(c.Request().Context(), &s); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SubCategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req subCategoryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	s, err := h.SubCategories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sub-category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Description != nil {
		s.Description = req.Description
	}
	if req.Img != nil {
		s.Img = req.Img
	}
	if err := h.SubCategories.Update(ctx, &s); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SubCategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s, err := h.SubCategories.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSubCategoryNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "sub-category not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if err := h.SubCategories.Delete(c.Request().Context(), id); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	// The deleted record is echoed back, matching the other delete
	// endpoints' clients that render a confirmation.
	return c.JSON(http.StatusOK, s)
}
