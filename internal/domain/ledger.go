package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EntryDirection direction of a ledger entry
type EntryDirection string

const (
	DirectionCredit EntryDirection = "credit"
	DirectionDebit  EntryDirection = "debit"
)

// ledgerNamespace namespace for deterministic ledger entry IDs
var ledgerNamespace = uuid.MustParse("5a1c9d4e-8f22-4b71-b0c3-2d9e6a47f013")

// LedgerEntryID derives the ledger entry ID for an appointment.
// The same appointment always maps to the same entry ID, which lets
// cancellation find and remove the entry without storing a back-reference.
func LedgerEntryID(appointmentID int64) uuid.UUID {
	return uuid.NewSHA1(ledgerNamespace, []byte(fmt.Sprintf("appointment:%d", appointmentID)))
}

// LedgerEntry one recorded financial event (transaction)
type LedgerEntry struct {
	ID            uuid.UUID
	Date          time.Time
	Description   string
	Direction     EntryDirection
	Amount        float64
	AppointmentID *int64 // set for appointment-derived income events

	CreatedAt time.Time
}

// SignedAmount returns the amount with its sign applied:
// credits are positive, debits negative
func (e *LedgerEntry) SignedAmount() float64 {
	if e.Direction == DirectionDebit {
		return -e.Amount
	}
	return e.Amount
}
