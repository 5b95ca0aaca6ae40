package notifier

import "errors"

var (
	// ErrPublish возвращается при ошибке публикации задания в брокер.
	// Ошибка логируется вызывающим кодом и никогда не влияет на судьбу
	// уже зафиксированного бронирования.
	ErrPublish = errors.New("notifier: failed to publish job")

	// ErrConnect возвращается при ошибке подключения к брокеру
	ErrConnect = errors.New("notifier: failed to connect to broker")
)
