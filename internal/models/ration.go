package models

import "time"

// Ration представляет собой основную модель рациона,
// используемую в бизнес-логике и хранилище.
//
// Поле BuyedBy равно nil до продажи. Переход sold=false -> true одноразовый,
// операции обратной продажи не существует.
type Ration struct {
	UID           string     // Уникальный идентификатор рациона
	Name          string     // Название рациона
	Prize         float64    // Цена рациона
	Photo         string     // Ссылка на фото, по умолчанию "#"
	CreatedBy     string     // UID пользователя-создателя
	BuyedBy       *string    // UID покупателя, nil пока не продан
	WorkCenterUID string     // UID воркцентра, к которому привязан рацион
	CreationDate  time.Time  // Дата создания
	Sold          bool       // Признак продажи
}

// DummyRation используется для приёма данных из JSON-запроса на создание рационов.
//
// Верхняя граница количества проверяется бизнес-логикой, а не валидатором:
// превышение квоты — доменная ошибка, а не ошибка типа.
type DummyRation struct {
	Name            string  `json:"name" validate:"required"`               // Название рациона
	Prize           float64 `json:"prize" validate:"required,gt=0"`         // Цена (>0)
	WorkCenterID    string  `json:"workCenterId" validate:"required,uuid"`  // Воркцентр, в котором создаются рационы
	NumberOfRations int     `json:"numberOfRations" validate:"required,gt=0"` // Количество создаваемых записей
}

// RationView — публичная проекция рациона для выдачи списков.
// Признак продажи и покупатель наружу не отдаются.
type RationView struct {
	Photo        string    `json:"photo"`
	RationID     string    `json:"rationId"`
	Prize        float64   `json:"prize"`
	CreatedBy    string    `json:"createdBy"`
	CreationDate time.Time `json:"creationDate"`
	Name         string    `json:"name"`
	WorkCenter   string    `json:"workCenter"`
}
