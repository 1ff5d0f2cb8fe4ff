package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

func makeOffer(t *testing.T) domain.Offer {
	t.Helper()
	offer, err := domain.NewOffer(domain.OfferParams{
		CustomerID:  5,
		BookName:    "Neuromancer",
		Author:      "William Gibson",
		ISBN:        "978-0441569595",
		GenreID:     1,
		ConditionID: 2,
		PublisherID: 3,
		BookTypeID:  4,
		PriceMinor:  850,
	})
	if err != nil {
		t.Fatalf("NewOffer: %v", err)
	}
	return offer
}

func TestNewOfferDefaults(t *testing.T) {
	offer := makeOffer(t)
	if offer.Status != domain.OfferStatusPendingApproval {
		t.Fatalf("status = %q, want %q", offer.Status, domain.OfferStatusPendingApproval)
	}

	// Переданные значения сохраняются без нормализации.
	padded, err := domain.NewOffer(domain.OfferParams{
		CustomerID: 5,
		BookName:   " Neuromancer ",
		Author:     " William Gibson ",
		ISBN:       " 978-0441569595 ",
		PriceMinor: 850,
	})
	if err != nil {
		t.Fatalf("NewOffer with padded fields: %v", err)
	}
	if padded.BookName != " Neuromancer " || padded.Author != " William Gibson " || padded.ISBN != " 978-0441569595 " {
		t.Fatalf("padded fields must round-trip unmodified: %+v", padded)
	}
}

func TestNewOfferValidation(t *testing.T) {
	if _, err := domain.NewOffer(domain.OfferParams{BookName: "x", PriceMinor: 100}); !errors.Is(err, domain.ErrOfferCustomerRequired) {
		t.Fatalf("expected ErrOfferCustomerRequired, got %v", err)
	}
	if _, err := domain.NewOffer(domain.OfferParams{CustomerID: 1, PriceMinor: 100}); !errors.Is(err, domain.ErrOfferBookNameRequired) {
		t.Fatalf("expected ErrOfferBookNameRequired, got %v", err)
	}
	if _, err := domain.NewOffer(domain.OfferParams{CustomerID: 1, BookName: "x", PriceMinor: -1}); !errors.Is(err, domain.ErrPriceNegative) {
		t.Fatalf("expected ErrPriceNegative, got %v", err)
	}
}

func TestOfferApprovalFlow(t *testing.T) {
	offer := makeOffer(t)

	if err := offer.Approve("good copy"); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	if offer.Status != domain.OfferStatusApproved || offer.Comment != "good copy" {
		t.Fatalf("unexpected offer after approve: %+v", offer)
	}

	// Решение принимается один раз.
	if err := offer.Reject("changed my mind"); !errors.Is(err, domain.ErrOfferAlreadyDecided) {
		t.Fatalf("expected ErrOfferAlreadyDecided, got %v", err)
	}
	if err := offer.Approve("again"); !errors.Is(err, domain.ErrOfferAlreadyDecided) {
		t.Fatalf("expected ErrOfferAlreadyDecided, got %v", err)
	}
}

func TestOfferRejectFlow(t *testing.T) {
	offer := makeOffer(t)

	if err := offer.Reject("damaged"); err != nil {
		t.Fatalf("Reject: %v", err)
	}
	if offer.Status != domain.OfferStatusRejected || offer.Comment != "damaged" {
		t.Fatalf("unexpected offer after reject: %+v", offer)
	}
}

func TestOfferToBookParams(t *testing.T) {
	offer := makeOffer(t)
	params := offer.ToBookParams()

	if params.Name != offer.BookName || params.Author != offer.Author || params.ISBN != offer.ISBN {
		t.Fatalf("unexpected book identity: %+v", params)
	}
	if params.PriceMinor != offer.PriceMinor {
		t.Fatalf("price = %d, want %d", params.PriceMinor, offer.PriceMinor)
	}
	if params.Quantity != 1 {
		t.Fatalf("quantity = %d, want 1 (a single bought-back copy)", params.Quantity)
	}
	if params.GenreID != offer.GenreID || params.ConditionID != offer.ConditionID {
		t.Fatalf("reference ids must carry over: %+v", params)
	}
}
