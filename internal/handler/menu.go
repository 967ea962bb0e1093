package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/model"
	"github.com/iliyamo/restaurant-ops/internal/repository"
	"github.com/iliyamo/restaurant-ops/internal/ws"
)

// MenuHandler serves the menu CRUD endpoints. Reads are public; every
// successful mutation synthesizes an event on the menu hub so connected
// clients (kitchen displays, customer apps) update without polling. The
// broadcast happens after commit and is best-effort: delivery failures are
// contained in the hub and never fail the request.
type MenuHandler struct {
	Items *repository.MenuRepo
	Hub   *ws.Hub
}

func NewMenuHandler(items *repository.MenuRepo, hub *ws.Hub) *MenuHandler {
	return &MenuHandler{Items: items, Hub: hub}
}

type menuItemReq struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	Amount      *int     `json:"amount"`
	Available   *bool    `json:"available"`
	ImageURL    *string  `json:"image_url"`
}

type menuItemResp struct {
	ID          uint64   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       float64  `json:"price"`
	Category    *string  `json:"category"`
	Amount      int      `json:"amount"`
	Available   bool     `json:"available"`
	ImageURL    *string  `json:"image_url"`
}

func menuOut(m model.MenuItem) menuItemResp {
	return menuItemResp{
		ID: m.ID, Name: m.Name, Description: m.Description, Price: m.Price,
		Category: m.Category, Amount: m.Amount, Available: m.Available, ImageURL: m.ImageURL,
	}
}

// notify broadcasts a typed menu event to every member of the menu hub,
// including a socket client that happens to be the mutating user.
func (h *MenuHandler) notify(event string, body echo.Map) {
	payload := echo.Map{"type": event}
	for k, v := range body {
		payload[k] = v
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.Hub.Broadcast(data, nil)
}

// List returns all menu items.
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.Items.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	out := make([]menuItemResp, 0, len(items))
	for _, m := range items {
		out = append(out, menuOut(m))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one menu item.
func (h *MenuHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	m, err := h.Items.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, menuOut(m))
}

// Create inserts a menu item and broadcasts menu_created.
func (h *MenuHandler) Create(c echo.Context) error {
	var req menuItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Name == nil || *req.Name == "" || req.Price == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and price required"})
	}
	m := model.MenuItem{
		Name:        *req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Available:   true,
		ImageURL:    req.ImageURL,
	}
	if req.Amount != nil {
		m.Amount = *req.Amount
	}
	if req.Available != nil {
		m.Available = *req.Available
	}
	if err := h.Items.Create(c.Request().Context(), &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
	}
	h.notify("menu_created", echo.Map{"item": menuOut(m)})
	return c.JSON(http.StatusCreated, menuOut(m))
}

// Update applies the fields present in the payload and broadcasts
// menu_updated.
func (h *MenuHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req menuItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx := c.Request().Context()
	m, err := h.Items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	if req.Name != nil {
		m.Name = *req.Name
	}
	if req.Description != nil {
		m.Description = req.Description
	}
	if req.Price != nil {
		m.Price = *req.Price
	}
	if req.Category != nil {
		m.Category = req.Category
	}
	if req.Amount != nil {
		m.Amount = *req.Amount
	}
	if req.Available != nil {
		m.Available = *req.Available
	}
	if req.ImageURL != nil {
		m.ImageURL = req.ImageURL
	}

	if err := h.Items.Update(ctx, &m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	h.notify("menu_updated", echo.Map{"item": menuOut(m)})
	return c.JSON(http.StatusOK, menuOut(m))
}

// Delete removes a menu item and broadcasts menu_deleted.
func (h *MenuHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.Items.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "menu item not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	h.notify("menu_deleted", echo.Map{"item_id": id})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
