package models

// WorkCenter представляет воркцентр — место, к которому приписываются
// пользователи и в рамках которого создаются рационы.
// После создания запись не изменяется.
type WorkCenter struct {
	UID     string `json:"uid"`
	Name    string `json:"name"` // Имя воркцентра (уникальное)
	Address string `json:"address"`
	City    string `json:"city"`
}

// DummyWorkCenter используется для приёма данных из JSON-запроса на создание воркцентра.
type DummyWorkCenter struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
}
