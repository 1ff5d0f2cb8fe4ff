package domain

import "strings"

// OfferStatus описывает стадию одобрения предложения продавца.
type OfferStatus string

const (
	// OfferStatusPendingApproval — оффер подан и ожидает решения. Единственный
	// начальный статус.
	OfferStatusPendingApproval OfferStatus = "pending_approval"
	// OfferStatusApproved — оффер принят; книга добавлена в каталог.
	OfferStatusApproved OfferStatus = "approved"
	// OfferStatusRejected — оффер отклонён.
	OfferStatusRejected OfferStatus = "rejected"
)

// Valid проверяет, что статус относится к поддерживаемым значениям.
func (s OfferStatus) Valid() bool {
	switch s {
	case OfferStatusPendingApproval, OfferStatusApproved, OfferStatusRejected:
		return true
	default:
		return false
	}
}

// Offer — предложение продавца выкупить у него книгу. Структурно повторяет
// каталожные атрибуты Book, но живёт в собственном workflow одобрения.
type Offer struct {
	Entity

	CustomerID int64
	BookName   string
	Author     string
	ISBN       string

	GenreID     GenreID
	ConditionID ConditionID
	PublisherID PublisherID
	BookTypeID  BookTypeID

	PriceMinor    int64
	Summary       string
	FrontImageURL string

	Status OfferStatus
	// Comment — решение модератора (причина отказа и т.п.).
	Comment string
}

// OfferParams — аргументы конструктора оффера.
type OfferParams struct {
	CustomerID int64
	BookName   string
	Author     string
	ISBN       string

	GenreID     GenreID
	ConditionID ConditionID
	PublisherID PublisherID
	BookTypeID  BookTypeID

	PriceMinor    int64
	Summary       string
	FrontImageURL string
}

// NewOffer создаёт оффер в статусе PendingApproval.
func NewOffer(p OfferParams) (Offer, error) {
	offer := Offer{
		Entity:        NewEntity(),
		CustomerID:    p.CustomerID,
		BookName:      p.BookName,
		Author:        p.Author,
		ISBN:          p.ISBN,
		GenreID:       p.GenreID,
		ConditionID:   p.ConditionID,
		PublisherID:   p.PublisherID,
		BookTypeID:    p.BookTypeID,
		PriceMinor:    p.PriceMinor,
		Summary:       p.Summary,
		FrontImageURL: p.FrontImageURL,
		Status:        OfferStatusPendingApproval,
	}
	if errs := offer.Validate(); len(errs) > 0 {
		return Offer{}, validationError(errs)
	}
	return offer, nil
}

// Validate проверяет базовые инварианты оффера.
func (o *Offer) Validate() []error {
	var errs []error

	if o.CustomerID <= 0 {
		errs = append(errs, ErrOfferCustomerRequired)
	}
	if strings.TrimSpace(o.BookName) == "" {
		errs = append(errs, ErrOfferBookNameRequired)
	}
	if o.PriceMinor < 0 {
		errs = append(errs, ErrPriceNegative)
	}
	if !o.Status.Valid() {
		errs = append(errs, ErrOfferStatusInvalid)
	}

	return errs
}

// Approve переводит оффер в Approved. Решение принимается один раз.
func (o *Offer) Approve(comment string) error {
	if o.Status != OfferStatusPendingApproval {
		return ErrOfferAlreadyDecided
	}
	o.Status = OfferStatusApproved
	o.Comment = comment
	return nil
}

// Reject переводит оффер в Rejected. Решение принимается один раз.
func (o *Offer) Reject(comment string) error {
	if o.Status != OfferStatusPendingApproval {
		return ErrOfferAlreadyDecided
	}
	o.Status = OfferStatusRejected
	o.Comment = comment
	return nil
}

// ToBookParams собирает параметры книги из одобренного оффера:
// выкупленный экземпляр попадает в каталог в количестве одной штуки.
func (o *Offer) ToBookParams() BookParams {
	return BookParams{
		Name:          o.BookName,
		Author:        o.Author,
		ISBN:          o.ISBN,
		PublisherID:   o.PublisherID,
		BookTypeID:    o.BookTypeID,
		GenreID:       o.GenreID,
		ConditionID:   o.ConditionID,
		PriceMinor:    o.PriceMinor,
		Quantity:      1,
		Summary:       o.Summary,
		CoverImageURL: o.FrontImageURL,
	}
}
