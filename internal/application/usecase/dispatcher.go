package usecase

import (
	"strconv"
	"strings"

	"github.com/jhoicas/storebot/internal/application/dto"
	"github.com/jhoicas/storebot/internal/application/session"
)

// Dispatcher is the conversation controller: it maps incoming button
// actions and free text onto the shop and admin use cases based on the
// action-ID namespace and the session's pending expectation.
type Dispatcher struct {
	shop     *ShopUseCase
	admin    *AdminUseCase
	sessions *session.Manager
}

// NewDispatcher builds the controller.
func NewDispatcher(shop *ShopUseCase, admin *AdminUseCase, sessions *session.Manager) *Dispatcher {
	return &Dispatcher{shop: shop, admin: admin, sessions: sessions}
}

// Start handles the /start entry point.
func (d *Dispatcher) Start() dto.RenderedMessage {
	return d.shop.Start()
}

// AdminPanel handles the /admin entry point.
func (d *Dispatcher) AdminPanel(userID int64, page int) dto.RenderedMessage {
	return d.admin.Panel(userID, page)
}

// HandleAction routes one button press. The second return value is false
// for action IDs outside the controller's namespace.
func (d *Dispatcher) HandleAction(userID int64, action string) (dto.RenderedMessage, bool) {
	switch {
	case action == "catalog":
		return d.shop.CategoryList(), true
	case strings.HasPrefix(action, "cat_"):
		return d.shop.CategoryProducts(strings.TrimPrefix(action, "cat_")), true
	case strings.HasPrefix(action, "prod_"):
		return d.shop.ProductDetail(userID, strings.TrimPrefix(action, "prod_")), true
	case action == "cart":
		return d.shop.Cart(userID), true
	case action == "back_to_main":
		return d.shop.Start(), true
	case strings.HasPrefix(action, "admin_page_"):
		page, err := strconv.Atoi(strings.TrimPrefix(action, "admin_page_"))
		if err != nil {
			page = 0
		}
		return d.admin.Panel(userID, page), true
	case strings.HasPrefix(action, "admin_edit_"):
		return d.admin.Edit(userID, strings.TrimPrefix(action, "admin_edit_")), true
	case action == "admin_change_price":
		return d.admin.ChangePrice(userID), true
	case action == "admin_change_stock":
		return d.admin.ChangeStock(userID), true
	case action == "admin_add_product":
		return d.admin.StartAdd(userID), true
	case action == "admin_reload":
		return d.admin.Reload(userID), true
	default:
		return dto.RenderedMessage{}, false
	}
}

// HandleText routes one free-text message by the pending expectation. The
// second return value is false when no input was expected.
func (d *Dispatcher) HandleText(userID int64, text string) ([]dto.RenderedMessage, bool) {
	pending := d.sessions.Pending(userID)
	switch pending.Kind {
	case session.PendingQuantity:
		return d.shop.HandleQuantity(userID, pending.Code, text), true
	case session.PendingAdminPrice, session.PendingAdminStock, session.PendingAddProduct:
		return d.admin.HandleText(userID, pending, text), true
	default:
		return nil, false
	}
}
