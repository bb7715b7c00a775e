package usecase

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storebot/internal/application/dto"
	"github.com/jhoicas/storebot/internal/application/session"
	"github.com/jhoicas/storebot/internal/domain"
	"github.com/jhoicas/storebot/internal/domain/entity"
	"github.com/jhoicas/storebot/internal/domain/repository"
	"github.com/jhoicas/storebot/pkg/logger"
)

// adminPageSize is the fixed number of products per admin panel page.
const adminPageSize = 10

const accessDenied = "⛔️ Доступ запрещён"

// Add-product wizard steps, in the order the admin is prompted.
const (
	addStepCode = iota
	addStepName
	addStepStock
	addStepPrice
)

// AdminUseCase drives the catalog management flow: paginated listing,
// price/stock edits and the add-product wizard. Every entry point is gated
// by the admin allow-list.
type AdminUseCase struct {
	repo     repository.ProductRepository
	sessions *session.Manager
	admins   map[int64]bool
	log      *logger.Logger
}

// NewAdminUseCase builds the use case. adminIDs is the static allow-list.
func NewAdminUseCase(repo repository.ProductRepository, sessions *session.Manager, adminIDs []int64, log *logger.Logger) *AdminUseCase {
	admins := make(map[int64]bool, len(adminIDs))
	for _, id := range adminIDs {
		admins[id] = true
	}
	return &AdminUseCase{repo: repo, sessions: sessions, admins: admins, log: log}
}

// Authorized reports whether the user is on the admin allow-list.
func (uc *AdminUseCase) Authorized(userID int64) bool {
	return uc.admins[userID]
}

// Panel renders one page of the product list with navigation, add-product
// and reload actions.
func (uc *AdminUseCase) Panel(userID int64, page int) dto.RenderedMessage {
	if !uc.Authorized(userID) {
		return dto.RenderedMessage{Text: accessDenied}
	}
	if page < 0 {
		page = 0
	}

	var keyboard [][]dto.Button
	for _, p := range uc.repo.Page(page, adminPageSize) {
		keyboard = append(keyboard, dto.Row(dto.Button{
			Label:  fmt.Sprintf("%s | %d шт. | %s₽", p.Name, p.Stock, p.Price.String()),
			Action: "admin_edit_" + p.Code,
		}))
	}

	var nav []dto.Button
	if page > 0 {
		nav = append(nav, dto.Button{Label: "⬅️ Назад", Action: fmt.Sprintf("admin_page_%d", page-1)})
	}
	if (page+1)*adminPageSize < uc.repo.Len() {
		nav = append(nav, dto.Button{Label: "➡️ Вперёд", Action: fmt.Sprintf("admin_page_%d", page+1)})
	}
	if len(nav) > 0 {
		keyboard = append(keyboard, nav)
	}
	keyboard = append(keyboard,
		dto.Row(dto.Button{Label: "➕ Добавить товар", Action: "admin_add_product"}),
		dto.Row(dto.Button{Label: "🔄 Обновить из файла", Action: "admin_reload"}),
		dto.Row(dto.Button{Label: "⬅️ Назад", Action: "back_to_main"}),
	)

	return dto.RenderedMessage{Text: "🔧 Админ-панель: список товаров", Keyboard: keyboard}
}

// Edit selects a product as the edit target and renders its card.
func (uc *AdminUseCase) Edit(userID int64, code string) dto.RenderedMessage {
	if !uc.Authorized(userID) {
		return dto.RenderedMessage{Text: accessDenied}
	}
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return dto.RenderedMessage{Text: "❌ Товар не найден."}
	}

	uc.sessions.SetEditCode(userID, code)
	text := fmt.Sprintf(
		"🔧 Редактирование товара:\n<b>%s</b>\nОстаток: <b>%d</b> шт.\nЦена: <b>%s₽</b>\n\nЧто хотите изменить?",
		product.Name, product.Stock, product.Price.String(),
	)
	return dto.RenderedMessage{
		Text: text,
		Keyboard: [][]dto.Button{
			dto.Row(
				dto.Button{Label: "📝 Изменить цену", Action: "admin_change_price"},
				dto.Button{Label: "📦 Изменить остаток", Action: "admin_change_stock"},
			),
			dto.Row(dto.Button{Label: "⬅️ Назад к списку", Action: "admin_page_0"}),
		},
		HTML: true,
	}
}

// ChangePrice arms the new-price expectation for the selected product.
func (uc *AdminUseCase) ChangePrice(userID int64) dto.RenderedMessage {
	if !uc.Authorized(userID) {
		return dto.RenderedMessage{Text: accessDenied}
	}
	code := uc.sessions.EditCode(userID)
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return dto.RenderedMessage{Text: "❌ Товар не найден."}
	}

	uc.sessions.SetPending(userID, session.Pending{Kind: session.PendingAdminPrice, Code: code})
	return dto.RenderedMessage{
		Text: fmt.Sprintf("Введите новую цену для <b>%s</b> (текущее: %s₽):",
			product.Name, product.Price.String()),
		HTML: true,
	}
}

// ChangeStock arms the new-stock expectation for the selected product.
func (uc *AdminUseCase) ChangeStock(userID int64) dto.RenderedMessage {
	if !uc.Authorized(userID) {
		return dto.RenderedMessage{Text: accessDenied}
	}
	code := uc.sessions.EditCode(userID)
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return dto.RenderedMessage{Text: "❌ Товар не найден."}
	}

	uc.sessions.SetPending(userID, session.Pending{Kind: session.PendingAdminStock, Code: code})
	return dto.RenderedMessage{
		Text: fmt.Sprintf("Введите новый остаток для <b>%s</b> (текущее: %d шт.):",
			product.Name, product.Stock),
		HTML: true,
	}
}

// StartAdd begins the four-step add-product wizard.
func (uc *AdminUseCase) StartAdd(userID int64) dto.RenderedMessage {
	if !uc.Authorized(userID) {
		return dto.RenderedMessage{Text: accessDenied}
	}
	uc.sessions.SetPending(userID, session.Pending{Kind: session.PendingAddProduct, AddStep: addStepCode})
	return dto.RenderedMessage{Text: "Введите <b>код</b> нового товара:", HTML: true}
}

// Reload re-reads the catalog workbook from disk.
func (uc *AdminUseCase) Reload(userID int64) dto.RenderedMessage {
	if !uc.Authorized(userID) {
		return dto.RenderedMessage{Text: accessDenied}
	}
	count, err := uc.repo.Reload()
	if err != nil {
		uc.log.Error().Err(err).Msg("admin catalog reload")
		return dto.RenderedMessage{Text: "⚠️ Не удалось перезагрузить каталог из файла."}
	}
	return dto.RenderedMessage{Text: fmt.Sprintf("🔄 Каталог перезагружен: %d товаров.", count)}
}

// HandleText consumes free text while an admin expectation is armed.
func (uc *AdminUseCase) HandleText(userID int64, pending session.Pending, text string) []dto.RenderedMessage {
	switch pending.Kind {
	case session.PendingAdminPrice:
		return []dto.RenderedMessage{uc.handlePriceInput(userID, pending.Code, text)}
	case session.PendingAdminStock:
		return []dto.RenderedMessage{uc.handleStockInput(userID, pending.Code, text)}
	case session.PendingAddProduct:
		return []dto.RenderedMessage{uc.handleAddStep(userID, pending, text)}
	default:
		return nil
	}
}

// handlePriceInput applies a price edit. The expectation is cleared even on
// bad input: the admin re-initiates the edit instead of retrying in place.
func (uc *AdminUseCase) handlePriceInput(userID int64, code, text string) dto.RenderedMessage {
	uc.sessions.ClearPending(userID)

	price, err := parsePrice(text)
	if err != nil {
		return dto.RenderedMessage{Text: "⚠️ Некорректная цена. Попробуйте снова."}
	}
	if err := uc.repo.SetPrice(code, price); err != nil {
		return uc.mutationFailure(err, "set price", code)
	}
	return dto.RenderedMessage{Text: fmt.Sprintf("✅ Цена обновлена: %s ₽", price.StringFixed(2))}
}

// handleStockInput applies a stock edit, same clearing rule as price.
func (uc *AdminUseCase) handleStockInput(userID int64, code, text string) dto.RenderedMessage {
	uc.sessions.ClearPending(userID)

	stock, err := parseStock(text)
	if err != nil {
		return dto.RenderedMessage{Text: "⚠️ Некорректный остаток. Попробуйте снова."}
	}
	if err := uc.repo.SetStock(code, stock); err != nil {
		return uc.mutationFailure(err, "set stock", code)
	}
	return dto.RenderedMessage{Text: fmt.Sprintf("✅ Остаток обновлён: %d шт.", stock)}
}

// handleAddStep advances the add-product wizard by one step. Invalid input
// re-prompts the same step; only a completed step advances.
func (uc *AdminUseCase) handleAddStep(userID int64, pending session.Pending, text string) dto.RenderedMessage {
	draft := pending.Draft

	switch pending.AddStep {
	case addStepCode:
		code := strings.TrimSpace(text)
		if _, err := uc.repo.GetByCode(code); err == nil {
			return dto.RenderedMessage{Text: "⚠️ Такой код уже существует. Введите другой:"}
		}
		draft.Code = code
		uc.advanceAdd(userID, addStepName, draft)
		return dto.RenderedMessage{Text: "Введите <b>название</b> товара:", HTML: true}

	case addStepName:
		draft.Name = strings.TrimSpace(text)
		uc.advanceAdd(userID, addStepStock, draft)
		return dto.RenderedMessage{Text: "Введите <b>остаток</b> (шт.):", HTML: true}

	case addStepStock:
		stock, err := parseStock(text)
		if err != nil {
			return dto.RenderedMessage{Text: "⚠️ Введите целое число (0 и выше)"}
		}
		draft.Stock = stock
		uc.advanceAdd(userID, addStepPrice, draft)
		return dto.RenderedMessage{Text: "Введите <b>цену</b> (₽):", HTML: true}

	case addStepPrice:
		price, err := parsePrice(text)
		if err != nil {
			return dto.RenderedMessage{Text: "⚠️ Введите корректную цену (например, 150.50)"}
		}
		draft.Price = price
		uc.sessions.ClearPending(userID)
		if err := uc.repo.Add(draft); err != nil {
			return uc.mutationFailure(err, "add product", draft.Code)
		}
		return dto.RenderedMessage{
			Text: fmt.Sprintf(
				"✅ Товар <b>%s</b> добавлен!\nКод: <code>%s</code>\nОстаток: <b>%d</b>\nЦена: <b>%s₽</b>",
				draft.Name, draft.Code, draft.Stock, draft.Price.String()),
			HTML: true,
		}

	default:
		uc.sessions.ClearPending(userID)
		return dto.RenderedMessage{Text: accessDenied}
	}
}

func (uc *AdminUseCase) advanceAdd(userID int64, step int, draft entity.Product) {
	uc.sessions.SetPending(userID, session.Pending{
		Kind:    session.PendingAddProduct,
		AddStep: step,
		Draft:   draft,
	})
}

// mutationFailure maps store errors onto admin-visible messages. A
// persistence failure is surfaced explicitly: the in-memory catalog changed
// but the workbook did not.
func (uc *AdminUseCase) mutationFailure(err error, op, code string) dto.RenderedMessage {
	uc.log.Error().Err(err).Str("op", op).Str("code", code).Msg("catalog mutation")
	switch {
	case errors.Is(err, domain.ErrPersistence):
		return dto.RenderedMessage{Text: "💾 Изменение применено, но файл каталога сохранить не удалось."}
	case errors.Is(err, domain.ErrDuplicate):
		return dto.RenderedMessage{Text: "⚠️ Такой код уже существует."}
	case errors.Is(err, domain.ErrNotFound):
		return dto.RenderedMessage{Text: "❌ Товар не найден."}
	default:
		return dto.RenderedMessage{Text: "⚠️ Не удалось применить изменение."}
	}
}

// parsePrice accepts a decimal with comma or period separator, rejects
// negatives and rounds to 2 decimal places.
func parsePrice(text string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	price, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if price.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return price.Round(2), nil
}

// parseStock accepts a non-negative integer.
func parseStock(text string) (int, error) {
	stock, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || stock < 0 {
		return 0, domain.ErrInvalidInput
	}
	return stock, nil
}
