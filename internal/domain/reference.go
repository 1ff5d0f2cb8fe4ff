package domain

import "strings"

// ReferenceDataType — закрытый набор категорий справочных значений.
type ReferenceDataType string

const (
	// ReferenceDataTypeGenre — жанр книги.
	ReferenceDataTypeGenre ReferenceDataType = "genre"
	// ReferenceDataTypeCondition — состояние экземпляра (new, used и т.д.).
	ReferenceDataTypeCondition ReferenceDataType = "condition"
	// ReferenceDataTypePublisher — издательство.
	ReferenceDataTypePublisher ReferenceDataType = "publisher"
	// ReferenceDataTypeBookType — тип издания (hardcover, paperback и т.д.).
	ReferenceDataTypeBookType ReferenceDataType = "book_type"
)

// Valid проверяет, что категория относится к поддерживаемым значениям.
func (t ReferenceDataType) Valid() bool {
	switch t {
	case ReferenceDataTypeGenre, ReferenceDataTypeCondition,
		ReferenceDataTypePublisher, ReferenceDataTypeBookType:
		return true
	default:
		return false
	}
}

// Типизированные идентификаторы справочных значений. Отдельный тип на
// категорию не даёт перепутать жанр с издательством на уровне компиляции.
type (
	// GenreID ссылается на ReferenceDataItem категории genre.
	GenreID int64
	// ConditionID ссылается на ReferenceDataItem категории condition.
	ConditionID int64
	// PublisherID ссылается на ReferenceDataItem категории publisher.
	PublisherID int64
	// BookTypeID ссылается на ReferenceDataItem категории book_type.
	BookTypeID int64
)

// ReferenceDataItem — именованное значение в одной из фиксированных категорий.
// Книги и офферы ссылаются на него по идентификатору вместо свободного текста.
type ReferenceDataItem struct {
	Entity

	// DataType фиксируется при создании и дальше не меняется.
	DataType ReferenceDataType
	Text     string
}

// NewReferenceDataItem создаёт справочное значение с валидацией категории и текста.
func NewReferenceDataItem(dataType ReferenceDataType, text string) (ReferenceDataItem, error) {
	item := ReferenceDataItem{
		Entity:   NewEntity(),
		DataType: dataType,
		Text:     text,
	}
	if errs := item.Validate(); len(errs) > 0 {
		return ReferenceDataItem{}, validationError(errs)
	}
	return item, nil
}

// Validate проверяет базовые инварианты справочного значения.
func (i *ReferenceDataItem) Validate() []error {
	var errs []error

	if !i.DataType.Valid() {
		errs = append(errs, ErrReferenceTypeInvalid)
	}
	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, ErrReferenceTextRequired)
	}

	return errs
}

// Matches сообщает, относится ли значение к ожидаемой категории. Коллаборатор,
// резолвящий идентификаторы, обязан проверять это при присвоении ссылок.
func (i *ReferenceDataItem) Matches(expected ReferenceDataType) bool {
	return i.DataType == expected
}
