package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/bookstore/internal/domain"
)

func TestReferenceDataTypeValid(t *testing.T) {
	valid := []domain.ReferenceDataType{
		domain.ReferenceDataTypeGenre,
		domain.ReferenceDataTypeCondition,
		domain.ReferenceDataTypePublisher,
		domain.ReferenceDataTypeBookType,
	}
	for _, dt := range valid {
		if !dt.Valid() {
			t.Errorf("type %q must be valid", dt)
		}
	}
	if domain.ReferenceDataType("author").Valid() {
		t.Error("unknown type must be invalid")
	}
}

func TestNewReferenceDataItem(t *testing.T) {
	item, err := domain.NewReferenceDataItem(domain.ReferenceDataTypeGenre, "Science Fiction")
	if err != nil {
		t.Fatalf("NewReferenceDataItem: %v", err)
	}
	if item.DataType != domain.ReferenceDataTypeGenre || item.Text != "Science Fiction" {
		t.Fatalf("unexpected item: %+v", item)
	}

	// Переданный текст сохраняется без нормализации.
	padded, err := domain.NewReferenceDataItem(domain.ReferenceDataTypeGenre, " Science Fiction ")
	if err != nil {
		t.Fatalf("NewReferenceDataItem with padded text: %v", err)
	}
	if padded.Text != " Science Fiction " {
		t.Fatalf("padded text must round-trip unmodified: %q", padded.Text)
	}

	if _, err := domain.NewReferenceDataItem(domain.ReferenceDataTypeGenre, "  "); !errors.Is(err, domain.ErrReferenceTextRequired) {
		t.Fatalf("expected ErrReferenceTextRequired, got %v", err)
	}
	if _, err := domain.NewReferenceDataItem("bogus", "x"); !errors.Is(err, domain.ErrReferenceTypeInvalid) {
		t.Fatalf("expected ErrReferenceTypeInvalid, got %v", err)
	}
}

func TestReferenceDataItemMatches(t *testing.T) {
	item, err := domain.NewReferenceDataItem(domain.ReferenceDataTypeCondition, "Like New")
	if err != nil {
		t.Fatalf("NewReferenceDataItem: %v", err)
	}

	if !item.Matches(domain.ReferenceDataTypeCondition) {
		t.Fatal("item must match its own category")
	}
	if item.Matches(domain.ReferenceDataTypeGenre) {
		t.Fatal("condition item must not match genre category")
	}
}
