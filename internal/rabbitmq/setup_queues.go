package rabbitmq

// QueueConfig описывает очередь и ключ маршрутизации, которым она привязана к обменнику.
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// RationSoldQueue — очередь уведомлений о продаже рационов.
const RationSoldQueue = "notifications.ration_sold"

// RationSoldRoutingKey — ключ маршрутизации событий продажи.
const RationSoldRoutingKey = "ration.sold"

// GetNotificationQueues возвращает очереди, потребляемые воркером-отправителем.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: RationSoldQueue, RoutingKey: RationSoldRoutingKey},
	}
}
