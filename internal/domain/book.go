package domain

import "strings"

// LowBookThreshold — порог, ниже которого (включительно) книга считается
// заканчивающейся на складе.
const LowBookThreshold = 5

// Book — позиция каталога с изменяемым складским остатком.
// Цена хранится в минимальных денежных единицах (центах).
type Book struct {
	Entity

	Name   string
	Author string
	ISBN   string
	// Year — год издания; 0 означает «не указан».
	Year int32

	PublisherID PublisherID
	BookTypeID  BookTypeID
	GenreID     GenreID
	ConditionID ConditionID

	PriceMinor int64
	Quantity   int32

	Summary       string
	CoverImageURL string
}

// BookParams — аргументы конструктора книги.
type BookParams struct {
	Name   string
	Author string
	ISBN   string
	Year   int32

	PublisherID PublisherID
	BookTypeID  BookTypeID
	GenreID     GenreID
	ConditionID ConditionID

	PriceMinor int64
	Quantity   int32

	Summary       string
	CoverImageURL string
}

// NewBook создаёт книгу и валидирует аргументы. Отрицательные цена или
// остаток отклоняются на этапе конструирования. Строковые поля сохраняются
// как переданы, без нормализации.
func NewBook(p BookParams) (Book, error) {
	book := Book{
		Entity:        NewEntity(),
		Name:          p.Name,
		Author:        p.Author,
		ISBN:          p.ISBN,
		Year:          p.Year,
		PublisherID:   p.PublisherID,
		BookTypeID:    p.BookTypeID,
		GenreID:       p.GenreID,
		ConditionID:   p.ConditionID,
		PriceMinor:    p.PriceMinor,
		Quantity:      p.Quantity,
		Summary:       p.Summary,
		CoverImageURL: p.CoverImageURL,
	}
	if errs := book.Validate(); len(errs) > 0 {
		return Book{}, validationError(errs)
	}
	return book, nil
}

// Validate проверяет базовые инварианты книги и возвращает список замечаний.
func (b *Book) Validate() []error {
	var errs []error

	if strings.TrimSpace(b.Name) == "" {
		errs = append(errs, ErrBookNameRequired)
	}
	if strings.TrimSpace(b.Author) == "" {
		errs = append(errs, ErrBookAuthorRequired)
	}
	if strings.TrimSpace(b.ISBN) == "" {
		errs = append(errs, ErrBookISBNRequired)
	}
	if b.PriceMinor < 0 {
		errs = append(errs, ErrPriceNegative)
	}
	if b.Quantity < 0 {
		errs = append(errs, ErrQuantityNegative)
	}

	return errs
}

// IsInStock сообщает, есть ли книга в наличии.
func (b *Book) IsInStock() bool {
	return b.Quantity > 0
}

// IsLowInStock сообщает, что остаток не превышает LowBookThreshold.
// Книга с нулевым остатком одновременно out-of-stock и low-in-stock.
func (b *Book) IsLowInStock() bool {
	return b.Quantity <= LowBookThreshold
}

// ReduceStockLevel списывает остаток, ограничивая его снизу нулём.
// Списание больше остатка не считается ошибкой: остаток становится 0.
func (b *Book) ReduceStockLevel(quantity int32) {
	b.Quantity = max(b.Quantity-quantity, 0)
}
