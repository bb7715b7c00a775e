package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storebot/internal/application/catalog"
	"github.com/jhoicas/storebot/internal/application/dto"
	"github.com/jhoicas/storebot/internal/application/session"
	"github.com/jhoicas/storebot/internal/domain/repository"
)

// ContactInfo is the static "order more" contact surface shown to
// customers.
type ContactInfo struct {
	Phone       string
	TelURL      string
	WhatsAppURL string
}

// ShopUseCase drives the customer flow: browsing, product selection,
// quantity entry and the session cart.
type ShopUseCase struct {
	repo     repository.ProductRepository
	sessions *session.Manager
	contact  ContactInfo
}

// NewShopUseCase builds the use case.
func NewShopUseCase(repo repository.ProductRepository, sessions *session.Manager, contact ContactInfo) *ShopUseCase {
	return &ShopUseCase{repo: repo, sessions: sessions, contact: contact}
}

// Start renders the main menu. It is reachable from anywhere and resets
// nothing in the session.
func (uc *ShopUseCase) Start() dto.RenderedMessage {
	return dto.RenderedMessage{
		Text: "Добро пожаловать! Выберите действие:",
		Keyboard: [][]dto.Button{
			dto.Row(dto.Button{Label: "🛍 Каталог", Action: "catalog"}),
			dto.Row(dto.Button{Label: "🛒 Корзина", Action: "cart"}),
		},
	}
}

// CategoryList renders every category as a selectable action.
func (uc *ShopUseCase) CategoryList() dto.RenderedMessage {
	var keyboard [][]dto.Button
	for _, key := range catalog.CategoryKeys() {
		keyboard = append(keyboard, dto.Row(dto.Button{Label: capitalize(key), Action: "cat_" + key}))
	}
	keyboard = append(keyboard, dto.Row(dto.Button{Label: "⬅️ Назад", Action: "back_to_main"}))
	return dto.RenderedMessage{Text: "📦 Выберите категорию:", Keyboard: keyboard}
}

// CategoryProducts renders the products matching a category, or a
// no-products notice when the filter comes back empty.
func (uc *ShopUseCase) CategoryProducts(key string) dto.RenderedMessage {
	filtered := catalog.FilterByCategory(uc.repo.List(), key)
	if len(filtered) == 0 {
		return dto.RenderedMessage{Text: fmt.Sprintf("❌ В категории '%s' товаров нет.", key)}
	}

	var keyboard [][]dto.Button
	for _, p := range filtered {
		keyboard = append(keyboard, dto.Row(dto.Button{Label: p.Name, Action: "prod_" + p.Code}))
	}
	keyboard = append(keyboard, dto.Row(dto.Button{Label: "⬅️ Назад", Action: "catalog"}))
	return dto.RenderedMessage{Text: "📦 Выберите товар:", Keyboard: keyboard}
}

// ProductDetail renders a product card and arms the quantity expectation
// for it.
func (uc *ShopUseCase) ProductDetail(userID int64, code string) dto.RenderedMessage {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return dto.RenderedMessage{Text: "❌ Товар не найден."}
	}

	uc.sessions.SetPending(userID, session.Pending{Kind: session.PendingQuantity, Code: code})
	text := fmt.Sprintf(
		"📌 Товар: %s\n📦 Остаток: %d шт.\n💰 Цена: %s ₽\n\n"+
			"Введите нужное количество:\n\n"+
			"📞 Хотите заказать больше? Свяжитесь с нами:\n<b>%s</b>",
		product.Name, product.Stock, product.Price.String(), uc.contact.Phone,
	)
	return dto.RenderedMessage{
		Text:     text,
		Keyboard: [][]dto.Button{dto.Row(dto.Button{Label: "⬅️ Назад", Action: "catalog"})},
		HTML:     true,
	}
}

// Cart renders the user's cart against current catalog prices. Lines whose
// product no longer resolves are skipped.
func (uc *ShopUseCase) Cart(userID int64) dto.RenderedMessage {
	cart := uc.sessions.Cart(userID)
	if cart.Empty() {
		return dto.RenderedMessage{Text: "🛒 Ваша корзина пока пуста."}
	}

	var b strings.Builder
	b.WriteString("🛒 Ваша корзина:\n\n")
	total := decimal.Zero
	for _, item := range cart.Items() {
		product, err := uc.repo.GetByCode(item.ProductCode)
		if err != nil {
			continue
		}
		cost := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		fmt.Fprintf(&b, "%s ×%d → %s ₽\n", product.Name, item.Quantity, cost.StringFixed(2))
		total = total.Add(cost)
	}
	fmt.Fprintf(&b, "\n💰 Итого: %s ₽", total.StringFixed(2))

	return dto.RenderedMessage{
		Text: b.String(),
		Keyboard: [][]dto.Button{
			dto.Row(dto.Button{Label: "📱 WhatsApp", URL: uc.contact.WhatsAppURL}),
			dto.Row(dto.Button{Label: "⬅️ Вернуться к каталогу", Action: "catalog"}),
		},
	}
}

// HandleQuantity consumes the free text entered while a quantity is
// expected. Malformed or oversized input keeps the expectation armed so
// the customer can retry in place.
func (uc *ShopUseCase) HandleQuantity(userID int64, code, text string) []dto.RenderedMessage {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		uc.sessions.ClearPending(userID)
		return []dto.RenderedMessage{{Text: "❌ Товар не найден."}}
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || quantity <= 0 {
		return []dto.RenderedMessage{{Text: "⚠️ Пожалуйста, введите число."}}
	}
	if quantity > product.Stock {
		return []dto.RenderedMessage{{
			Text: fmt.Sprintf("❌ На складе только %d шт.\nХотите заказать больше? Свяжитесь с нами:", product.Stock),
			Keyboard: [][]dto.Button{
				dto.Row(dto.Button{Label: "📞 Связаться", URL: uc.contact.TelURL}),
			},
		}}
	}

	uc.sessions.Cart(userID).Add(code, quantity)
	uc.sessions.ClearPending(userID)
	return []dto.RenderedMessage{
		{Text: fmt.Sprintf("✅ %s ×%d добавлено в корзину.", product.Name, quantity)},
		{
			Text: "📦 Продолжить выбор?",
			Keyboard: [][]dto.Button{
				dto.Row(dto.Button{Label: "⬅️ Продолжить выбор", Action: "catalog"}),
			},
		},
	}
}

// capitalize uppercases the first rune, matching how category keys are
// shown on buttons.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
