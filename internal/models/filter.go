package models

// RationFilter — параметры фильтрации списка рационов, которые передаются
// в слой доступа к данным. Поле со значением nil означает отсутствие фильтра
// по этому атрибуту; пустой фильтр возвращает все рационы.
type RationFilter struct {
	Name       *string
	Prize      *float64
	CreatedBy  *string
	WorkCenter *string
	Sold       *bool
}

// DummyRationFilter используется для приёма фильтра из JSON-запроса.
// В JSON опущенные поля остаются nil и отбрасываются перед запросом к хранилищу.
type DummyRationFilter struct {
	Name       *string  `json:"name,omitempty"`
	Prize      *float64 `json:"prize,omitempty"`
	CreatedBy  *string  `json:"createdBy,omitempty" validate:"omitempty,uuid"`
	WorkCenter *string  `json:"workCenter,omitempty" validate:"omitempty,uuid"`
	Sold       *bool    `json:"sold,omitempty"`
}
