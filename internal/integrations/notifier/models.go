package notifier

// Job задание на отправку уведомления о бронировании.
// Контракт с внешним диспетчером доставки: полезная нагрузка непрозрачна
// для ядра, семантика доставки at-least-once/best-effort на стороне
// потребителя очереди.
type Job struct {
	ReservationID    int64             `json:"reservation_id"`
	RecipientContact string            `json:"recipient_contact"`
	TemplateKey      string            `json:"template_key"`
	Data             map[string]string `json:"data"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
