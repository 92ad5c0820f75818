package confirm_appointment

// Request модель запроса на подтверждение ожидающей заявки
type Request struct {
	PendingID int64 // ID ожидающей заявки
	StaffID   int64 // ID мастера, выбранного администратором
}
