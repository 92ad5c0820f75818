package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	ledgerRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/ledger"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
)

// Service обновляет продажи мастеров и кассовую книгу.
// Вызывается менеджером жизненного цикла внутри его транзакции, поэтому
// чтение-изменение-запись продаж и баланса сериализуются на уровне БД.
type Service struct {
	staffRepo  StaffRepository
	ledgerRepo LedgerRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса продаж
func NewService(staffRepo StaffRepository, ledgerRepo LedgerRepository, logger Logger) *Service {
	return &Service{
		staffRepo:  staffRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

// Apply пересчитывает продажи мастера: salesValue += price при подтверждении,
// salesValue -= price при отмене. Процент выполнения плана пересчитывается
// и сознательно не ограничивается диапазоном [0, 100].
func (s *Service) Apply(ctx context.Context, staffID int64, price float64, op domain.SalesOperation) (*domain.StaffMember, error) {
	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Apply: failed to get staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: Apply - get staff: %v", ErrInternal, err)
	}

	switch op {
	case domain.SalesAdd:
		member.SalesValue += price
	case domain.SalesSubtract:
		member.SalesValue -= price
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidOperation, op)
	}

	member.SalesGoalPercentage = domain.GoalPercentage(member.SalesValue, member.SalesTarget)

	if err := s.staffRepo.UpdateSales(ctx, staffID, member.SalesValue, member.SalesGoalPercentage); err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("Apply: failed to update sales for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: Apply - update sales: %v", ErrInternal, err)
	}

	s.logger.Info("Apply: staff=%d op=%s sales=%.2f goal=%d%%",
		staffID, op, member.SalesValue, member.SalesGoalPercentage)

	return member, nil
}

// Credit добавляет приход в кассовую книгу за подтвержденную запись
// и увеличивает баланс кассы на ту же сумму
func (s *Service) Credit(ctx context.Context, appointmentID int64, date time.Time, description string, amount float64) error {
	entry := &domain.LedgerEntry{
		ID:            domain.LedgerEntryID(appointmentID),
		Date:          date,
		Description:   description,
		Direction:     domain.DirectionCredit,
		Amount:        amount,
		AppointmentID: &appointmentID,
	}

	if err := s.ledgerRepo.CreateEntry(ctx, entry); err != nil {
		s.logger.Error("Credit: failed to create ledger entry for appointment=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Credit - create entry: %v", ErrInternal, err)
	}

	if err := s.ledgerRepo.AdjustBalance(ctx, amount); err != nil {
		s.logger.Error("Credit: failed to adjust cash balance for appointment=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Credit - adjust balance: %v", ErrInternal, err)
	}

	s.logger.Info("Credit: appointment=%d amount=%.2f recorded", appointmentID, amount)
	return nil
}

// Reverse удаляет приход за отмененную запись и уменьшает баланс кассы.
// Запись находится по детерминированному ID, выведенному из ID записи клиента.
func (s *Service) Reverse(ctx context.Context, appointmentID int64, amount float64) error {
	entryID := domain.LedgerEntryID(appointmentID)

	if err := s.ledgerRepo.DeleteEntry(ctx, entryID); err != nil {
		if errors.Is(err, ledgerRepo.ErrEntryNotFound) {
			return ErrEntryNotFound
		}
		s.logger.Error("Reverse: failed to delete ledger entry for appointment=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Reverse - delete entry: %v", ErrInternal, err)
	}

	if err := s.ledgerRepo.AdjustBalance(ctx, -amount); err != nil {
		s.logger.Error("Reverse: failed to adjust cash balance for appointment=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Reverse - adjust balance: %v", ErrInternal, err)
	}

	s.logger.Info("Reverse: appointment=%d amount=%.2f reversed", appointmentID, amount)
	return nil
}
