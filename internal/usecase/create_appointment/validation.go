package create_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceName == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}

	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}

	if len(req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	if req.ClientContact == "" {
		return fmt.Errorf("%w: clientContact is required", ErrInvalidInput)
	}

	if len(req.ClientContact) > domain.MaxContactLength {
		return fmt.Errorf("%w: clientContact is too long", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	return nil
}

// confirmParams собирает параметры подтверждения для менеджера жизненного цикла
func confirmParams(staffID, serviceID int64, req *Request) appointments.ConfirmParams {
	return appointments.ConfirmParams{
		StaffID:       staffID,
		ServiceID:     serviceID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		ClientName:    req.ClientName,
		ClientContact: req.ClientContact,
	}
}
