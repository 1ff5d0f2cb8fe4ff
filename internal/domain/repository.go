package domain

// BookRepository описывает требования к хранилищу каталога.
type BookRepository interface {
	// Create сохраняет новую книгу и возвращает её с присвоенным ID.
	Create(book Book) (Book, error)
	// Get возвращает книгу по идентификатору или ErrBookNotFound.
	Get(id int64) (Book, error)
	// List возвращает книги каталога; onlyInStock фильтрует по наличию,
	// limit > 0 ограничивает выборку.
	List(onlyInStock bool, limit int) ([]Book, error)
	// Save перезаписывает существующую книгу.
	Save(book Book) error
}

// CustomerRepository описывает требования к хранилищу покупателей.
type CustomerRepository interface {
	// Create сохраняет покупателя; повторный sub даёт ErrCustomerSubTaken.
	Create(customer Customer) (Customer, error)
	// Get возвращает покупателя по идентификатору или ErrCustomerNotFound.
	Get(id int64) (Customer, error)
	// GetBySub находит покупателя по внешнему идентификатору.
	GetBySub(sub string) (Customer, error)
}

// AddressRepository описывает требования к хранилищу адресов.
type AddressRepository interface {
	Create(address Address) (Address, error)
	Get(id int64) (Address, error)
	ListByCustomer(customerID int64) ([]Address, error)
}

// ReferenceDataRepository описывает требования к хранилищу справочника.
type ReferenceDataRepository interface {
	Create(item ReferenceDataItem) (ReferenceDataItem, error)
	// Get возвращает значение по идентификатору или ErrReferenceDataNotFound.
	Get(id int64) (ReferenceDataItem, error)
	// ListByType возвращает все значения одной категории.
	ListByType(dataType ReferenceDataType) ([]ReferenceDataItem, error)
}

// OrderRepository описывает требования к хранилищу заказов.
// Создание заказа идёт только через OrderPlacer, поскольку оно связано
// со списанием складских остатков.
type OrderRepository interface {
	// Get возвращает заказ с позициями или ErrOrderNotFound.
	Get(id int64) (Order, error)
	// ListByCustomer возвращает заказы покупателя, новые первыми.
	ListByCustomer(customerID int64, limit int) ([]Order, error)
	// Save применяет обновления к заказу с учётом optimistic locking.
	Save(order Order) error
}

// StockDecrement — списание остатка одной книги при размещении заказа.
type StockDecrement struct {
	BookID   int64
	Quantity int32
}

// OrderPlacer атомарно сохраняет заказ с позициями и списывает остатки
// всех указанных книг. Либо применяется всё, либо ничего: это единственный
// кросс-агрегатный инвариант ядра, и он обязан исполняться в одной
// транзакции хранилища.
type OrderPlacer interface {
	PlaceOrder(order Order, decrements []StockDecrement) (Order, error)
}

// OfferRepository описывает требования к хранилищу офферов.
type OfferRepository interface {
	Create(offer Offer) (Offer, error)
	Get(id int64) (Offer, error)
	// List фильтрует по покупателю (0 — все) и статусу ("" — все).
	List(customerID int64, status OfferStatus, limit int) ([]Offer, error)
	Save(offer Offer) error
}

// CartRepository описывает требования к хранилищу корзин.
type CartRepository interface {
	Create(cart ShoppingCart) (ShoppingCart, error)
	Get(id int64) (ShoppingCart, error)
	// GetByCorrelationID находит корзину по внешнему идентификатору.
	GetByCorrelationID(correlationID string) (ShoppingCart, error)
	Save(cart ShoppingCart) error
}
