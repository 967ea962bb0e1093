package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/restaurant-ops/internal/middleware"
	"github.com/iliyamo/restaurant-ops/internal/model"
	"github.com/iliyamo/restaurant-ops/internal/queue"
	"github.com/iliyamo/restaurant-ops/internal/repository"
	"github.com/iliyamo/restaurant-ops/internal/ws"
)

// OrderPublisher is the slice of the queue publisher the handler needs;
// tests substitute a recorder.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, ev queue.OrderPlacedEvent) error
}

// OrderHandler serves order creation, listing and status updates. Each
// successful mutation fans out on the orders hub; creation additionally
// publishes an order.placed event to the broker. Both are best-effort side
// effects fired after commit: neither a dead socket nor a down broker
// fails the order.
type OrderHandler struct {
	Orders    *repository.OrderRepo
	Tables    *repository.TableRepo
	Hub       *ws.Hub
	Publisher OrderPublisher
}

func NewOrderHandler(orders *repository.OrderRepo, tables *repository.TableRepo, hub *ws.Hub, pub OrderPublisher) *OrderHandler {
	return &OrderHandler{Orders: orders, Tables: tables, Hub: hub, Publisher: pub}
}

type orderItemReq struct {
	MenuItemID uint64  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	Notes      *string `json:"notes"`
}

type createOrderReq struct {
	TableCode       *string        `json:"table_code"`
	Items           []orderItemReq `json:"items"`
	GuestName       *string        `json:"guest_name"`
	GuestPhone      *string        `json:"guest_phone"`
	DeliveryAddress *string        `json:"delivery_address"`
}

func (h *OrderHandler) notify(event string, o model.Order) {
	data, err := json.Marshal(echo.Map{
		"type":     event,
		"order_id": o.ID,
		"status":   o.Status,
		"total":    o.Total,
	})
	if err != nil {
		return
	}
	h.Hub.Broadcast(data, nil)
}

// Create places an order. The table is resolved from its printed code when
// one is sent; the total is computed from current menu prices inside the
// insert transaction.
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if len(req.Items) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "items required"})
	}
	for _, it := range req.Items {
		if it.MenuItemID == 0 || it.Quantity <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "items need menu_item_id and positive quantity"})
		}
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o := model.Order{Status: "pending"}
	if u, ok := middleware.CurrentUser(c); ok {
		o.UserID = &u.ID
	}
	if req.TableCode != nil && *req.TableCode != "" {
		t, err := h.Tables.GetByCode(ctx, *req.TableCode)
		if err != nil {
			if errors.Is(err, repository.ErrTableNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
		}
		o.TableID = &t.ID
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, model.OrderItem{MenuItemID: it.MenuItemID, Quantity: it.Quantity, Notes: it.Notes})
	}

	if err := h.Orders.CreateWithItems(ctx, &o, items); err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown menu item in order"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create order failed"})
	}

	// Post-commit side effects: live feed first, then the broker event.
	h.notify("order_created", o)
	if h.Publisher != nil {
		ev := queue.OrderPlacedEvent{
			OrderID:   o.ID,
			TableID:   o.TableID,
			Status:    o.Status,
			Total:     o.Total,
			PlacedAt:  o.CreatedAt.UTC().Format(time.RFC3339),
			ItemCount: len(items),
		}
		if err := h.Publisher.PublishOrderPlaced(ctx, ev); err != nil {
			log.Printf("orders: publish order.placed failed for order %d: %v", o.ID, err)
		}
	}
	return c.JSON(http.StatusCreated, o)
}

// List returns all orders, newest first.
func (h *OrderHandler) List(c echo.Context) error {
	out, err := h.Orders.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if out == nil {
		out = []model.Order{}
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one order with its items.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	o, err := h.Orders.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	items, err := h.Orders.ListItems(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if items == nil {
		items = []model.OrderItem{}
	}
	return c.JSON(http.StatusOK, echo.Map{"order": o, "items": items})
}

type orderStatusReq struct {
	Status string `json:"status"`
}

// orderStatuses is the set of states the kitchen workflow moves through.
var orderStatuses = map[string]bool{
	"pending":   true,
	"preparing": true,
	"ready":     true,
	"delivered": true,
	"paid":      true,
	"cancelled": true,
}

// UpdateStatus moves an order to a new state and broadcasts the change so
// waiter and kitchen screens stay in sync.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req orderStatusReq
	if err := c.Bind(&req); err != nil || !orderStatuses[req.Status] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx := c.Request().Context()
	if err := h.Orders.UpdateStatus(ctx, id, req.Status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	o, err := h.Orders.GetByID(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	h.notify("order_status_updated", o)
	return c.JSON(http.StatusOK, o)
}
