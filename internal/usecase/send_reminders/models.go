package send_reminders

// DeliveryResult итог доставки одного напоминания
type DeliveryResult struct {
	AppointmentID int64  // ID записи
	Sent          bool   // true, если вебхук принял напоминание
	Error         string // текст ошибки доставки, пустой при успехе
}

// Response итоги рассылки напоминаний
type Response struct {
	Total   int              // сколько записей на завтра
	Sent    int              // сколько напоминаний доставлено
	Failed  int              // сколько доставок не удалось
	Results []DeliveryResult // поштучные итоги в порядке записей
}
