package domain

import "strings"

// ShoppingCartItem — позиция корзины. WantToBuy=false означает «отложено»
// (wishlist): такие позиции не попадают в заказ при оформлении.
type ShoppingCartItem struct {
	Entity

	ShoppingCartID int64
	BookID         int64
	Quantity       int32
	WantToBuy      bool
}

// ShoppingCart — корзина, привязанная к анонимному посетителю или
// покупателю через correlation id.
type ShoppingCart struct {
	Entity

	// CorrelationID — внешний идентификатор корзины (uuid), выдаваемый
	// транспортным слоем; по нему корзина находится между запросами.
	CorrelationID string
	Items         []ShoppingCartItem
}

// NewShoppingCart создаёт пустую корзину с заданным correlation id.
func NewShoppingCart(correlationID string) (ShoppingCart, error) {
	cart := ShoppingCart{
		Entity:        NewEntity(),
		CorrelationID: correlationID,
	}
	if strings.TrimSpace(cart.CorrelationID) == "" {
		return ShoppingCart{}, validationError([]error{ErrCartCorrelationRequired})
	}
	return cart, nil
}

// AddItem добавляет книгу в корзину. Повторное добавление той же книги с тем
// же признаком WantToBuy увеличивает количество существующей позиции.
func (c *ShoppingCart) AddItem(bookID int64, quantity int32, wantToBuy bool) error {
	if quantity <= 0 {
		return ErrCartItemQtyInvalid
	}

	for i := range c.Items {
		if c.Items[i].BookID == bookID && c.Items[i].WantToBuy == wantToBuy {
			c.Items[i].Quantity += quantity
			return nil
		}
	}

	c.Items = append(c.Items, ShoppingCartItem{
		Entity:         NewEntity(),
		ShoppingCartID: c.ID,
		BookID:         bookID,
		Quantity:       quantity,
		WantToBuy:      wantToBuy,
	})
	return nil
}

// RemoveItem удаляет позицию по книге. Отсутствие позиции не считается ошибкой.
func (c *ShoppingCart) RemoveItem(bookID int64) {
	filtered := c.Items[:0]
	for _, item := range c.Items {
		if item.BookID != bookID {
			filtered = append(filtered, item)
		}
	}
	c.Items = filtered
}

// PurchasableItems возвращает позиции, отмеченные к покупке.
func (c *ShoppingCart) PurchasableItems() []ShoppingCartItem {
	result := make([]ShoppingCartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.WantToBuy {
			result = append(result, item)
		}
	}
	return result
}
