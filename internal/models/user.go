// Package models содержит доменные структуры маркетплейса рационов,
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
//
// Списки созданных, купленных и проданных рационов не хранятся на
// пользователе: они выводятся из таблицы rations по ссылкам created_by и
// buyed_by, наружу отдаются только их размеры (см. UserInfo).
type User struct {
	UID           string    // Уникальный идентификатор пользователя
	Name          string    // Отображаемое имя
	Username      string    // Имя пользователя (уникальное)
	PasswordHash  string    // Хэш пароля пользователя
	Photo         string    // Ссылка на фото, по умолчанию "#"
	WorkCenterUID *string   // Воркцентр пользователя, nil до назначения
	CreatedAt     time.Time // Дата регистрации
}

// UserInfo — публичная сводка о пользователе: имя, воркцентр (если назначен)
// и размеры списков рационов.
type UserInfo struct {
	Name           string      `json:"name"`
	WorkCenter     *WorkCenter `json:"workCenter,omitempty"`
	CreatedRations int         `json:"createdRations"`
	BuyedRations   int         `json:"buyedRations"`
	SoldRations    int         `json:"soldRations"`
}

// RationCounts — размеры списков рационов пользователя, считаются хранилищем.
type RationCounts struct {
	Created int
	Buyed   int
	Sold    int
}
