package domain

import "time"

// SystemActor — значение CreatedBy по умолчанию, когда сущность создаётся
// не от имени конкретного пользователя.
const SystemActor = "System"

// Entity содержит идентичность и аудит-метаданные, общие для всех
// персистентных сущностей магазина.
type Entity struct {
	// ID — суррогатный идентификатор; 0 означает «ещё не сохранена».
	ID int64
	// CreatedBy фиксирует, кто создал запись.
	CreatedBy string
	// CreatedOn — момент создания; не меняется после создания.
	CreatedOn time.Time
	// UpdatedOn обновляется слоем хранения при каждой мутации.
	UpdatedOn time.Time
}

// NewEntity возвращает базовую сущность с заполненными аудит-полями.
func NewEntity() Entity {
	now := time.Now().UTC()
	return Entity{
		CreatedBy: SystemActor,
		CreatedOn: now,
		UpdatedOn: now,
	}
}

// IsNew сообщает, сохранялась ли сущность ранее: новая iff ID == 0.
func (e *Entity) IsNew() bool {
	return e.ID == 0
}

// Touch обновляет UpdatedOn. Вызывается слоем хранения перед записью.
func (e *Entity) Touch() {
	e.UpdatedOn = time.Now().UTC()
}
