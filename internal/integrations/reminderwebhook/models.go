package reminderwebhook

// Payload тело напоминания, отправляемое на внешний вебхук
type Payload struct {
	ClientName    string `json:"client_name"`
	ClientContact string `json:"client_contact"`
	Time          string `json:"time"`
}
