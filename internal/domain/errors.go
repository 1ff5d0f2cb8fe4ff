package domain

import "errors"

var (
	// ErrValidation — общий маркер ошибок валидации; конкретные причины
	// присоединяются к нему через errors.Join.
	ErrValidation = errors.New("validation failed")

	// Ошибка пустого названия книги.
	ErrBookNameRequired = errors.New("book name is required")
	// Ошибка пустого автора.
	ErrBookAuthorRequired = errors.New("book author is required")
	// Ошибка пустого ISBN.
	ErrBookISBNRequired = errors.New("book isbn is required")
	// Ошибка отрицательной цены.
	ErrPriceNegative = errors.New("price must be non-negative")
	// Ошибка отрицательного остатка на складе.
	ErrQuantityNegative = errors.New("quantity must be non-negative")

	// Ошибка отсутствующего покупателя у заказа.
	ErrOrderCustomerRequired = errors.New("order customer_id is required")
	// Ошибка отсутствующего адреса доставки у заказа.
	ErrOrderAddressRequired = errors.New("order address_id is required")
	// Ошибка при некорректном количестве в позиции заказа (<= 0).
	ErrOrderItemQtyInvalid = errors.New("order item quantity must be greater than zero")
	// Ошибка при неизвестном статусе заказа.
	ErrOrderStatusInvalid = errors.New("order status is invalid")

	// Ошибка пустого внешнего идентификатора покупателя.
	ErrCustomerSubRequired = errors.New("customer sub is required")
	// ErrCustomerSubTaken возвращается, если sub уже занят другим покупателем.
	ErrCustomerSubTaken = errors.New("customer sub is already taken")
	// Ошибка, если адрес не привязан к покупателю.
	ErrAddressCustomerRequired = errors.New("address customer_id is required")
	// Ошибка пустой первой строки адреса.
	ErrAddressLineRequired = errors.New("address line 1 is required")

	// Ошибка неизвестной категории справочного значения.
	ErrReferenceTypeInvalid = errors.New("reference data type is invalid")
	// Ошибка пустого текста справочного значения.
	ErrReferenceTextRequired = errors.New("reference data text is required")
	// ErrReferenceTypeMismatch возвращается, когда идентификатор указывает
	// на справочное значение другой категории.
	ErrReferenceTypeMismatch = errors.New("reference data type mismatch")

	// Ошибка пустого correlation id корзины.
	ErrCartCorrelationRequired = errors.New("cart correlation_id is required")
	// Ошибка при некорректном количестве в позиции корзины (<= 0).
	ErrCartItemQtyInvalid = errors.New("cart item quantity must be greater than zero")
	// ErrCartNoPurchasableItems возвращается при оформлении корзины без
	// позиций, отмеченных к покупке.
	ErrCartNoPurchasableItems = errors.New("cart has no items marked for purchase")

	// Ошибка пустого названия книги в оффере.
	ErrOfferBookNameRequired = errors.New("offer book name is required")
	// Ошибка отсутствующего продавца у оффера.
	ErrOfferCustomerRequired = errors.New("offer customer_id is required")
	// Ошибка при неизвестном статусе оффера.
	ErrOfferStatusInvalid = errors.New("offer status is invalid")
	// ErrOfferAlreadyDecided возвращается при повторном approve/reject.
	ErrOfferAlreadyDecided = errors.New("offer is already approved or rejected")

	// ErrInsufficientStock — политика checkout: заказ отклоняется, если
	// запрошено больше, чем есть на складе.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrBookNotFound возвращается, если книга не найдена в репозитории.
	ErrBookNotFound = errors.New("book not found")
	// ErrCustomerNotFound возвращается, если покупатель не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrAddressNotFound возвращается, если адрес не найден.
	ErrAddressNotFound = errors.New("address not found")
	// ErrReferenceDataNotFound возвращается, если справочное значение не найдено.
	ErrReferenceDataNotFound = errors.New("reference data item not found")
	// ErrOrderNotFound возвращается, если заказ не найден.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOfferNotFound возвращается, если оффер не найден.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrCartNotFound возвращается, если корзина не найдена.
	ErrCartNotFound = errors.New("shopping cart not found")

	// ErrOrderVersionConflict сигнализирует о конфликте версий при сохранении заказа.
	ErrOrderVersionConflict = errors.New("order version conflict")
	// ErrOrderTransitionInvalid возвращается при недопустимом переходе статуса заказа.
	ErrOrderTransitionInvalid = errors.New("order status transition is not allowed")

	// ErrIdempotencyKeyRequired — пустой idempotency-key.
	ErrIdempotencyKeyRequired = errors.New("idempotency key is required")
	// ErrIdempotencyRequestHashRequired — пустой хеш запроса.
	ErrIdempotencyRequestHashRequired = errors.New("idempotency request hash is required")
	// ErrIdempotencyKeyAlreadyExists — ключ уже зарегистрирован.
	ErrIdempotencyKeyAlreadyExists = errors.New("idempotency key already exists")
	// ErrIdempotencyHashMismatch — ключ переиспользован с другим телом запроса.
	ErrIdempotencyHashMismatch = errors.New("idempotency request hash mismatch")
	// ErrIdempotencyKeyNotFound — запись по ключу не найдена.
	ErrIdempotencyKeyNotFound = errors.New("idempotency key not found")

	// ErrOutboxPublish — ошибка при публикации сообщения из outbox.
	ErrOutboxPublish = errors.New("outbox publish failed")
)

// IsNotFound проверяет, относится ли ошибка к классу «не найдено».
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrBookNotFound, ErrCustomerNotFound, ErrAddressNotFound,
		ErrReferenceDataNotFound, ErrOrderNotFound, ErrOfferNotFound,
		ErrCartNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsValidation проверяет, является ли ошибка ошибкой валидации.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsVersionConflict проверяет, является ли ошибка конфликтом версий.
func IsVersionConflict(err error) bool {
	return errors.Is(err, ErrOrderVersionConflict)
}

// validationError объединяет причины с маркером ErrValidation, чтобы
// вызывающий код мог проверять и класс ошибки, и конкретную причину.
func validationError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, 0, len(errs)+1)
	joined = append(joined, ErrValidation)
	joined = append(joined, errs...)
	return errors.Join(joined...)
}
