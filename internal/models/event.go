package models

// RationSoldEvent — сообщение о продаже рациона, публикуемое в брокер
// уведомлений и потребляемое воркером-отправителем.
//
// Username используется как адрес получателя: при регистрации в качестве
// имени пользователя ожидается адрес электронной почты.
type RationSoldEvent struct {
	RationUID      string  `json:"rationUid"`
	RationName     string  `json:"rationName"`
	Prize          float64 `json:"prize"`
	SellerName     string  `json:"sellerName"`
	SellerUsername string  `json:"sellerUsername"`
}
