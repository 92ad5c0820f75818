package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	pendingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/pending"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	salesService "github.com/m04kA/SMC-SalonService/internal/service/sales"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// ConfirmParams параметры подтверждения записи.
// FromPendingID заполняется при подтверждении ожидающей заявки -
// она удаляется в той же транзакции.
type ConfirmParams struct {
	StaffID       int64
	ServiceID     int64
	Date          time.Time
	StartTime     types.TimeString
	ClientName    string
	ClientContact string
	FromPendingID *int64
}

// Service менеджер жизненного цикла записей: pending -> confirmed -> (deleted).
// Каждая операция - один атомарный пакет побочных эффектов: запись, ожидающая
// заявка, продажи мастера и кассовая книга меняются в одной транзакции,
// либо не меняются вовсе.
type Service struct {
	appointmentRepo AppointmentRepository
	pendingRepo     PendingRepository
	serviceRepo     ServiceRepository
	sales           SalesUpdater
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр менеджера жизненного цикла
func NewService(
	appointmentRepo AppointmentRepository,
	pendingRepo PendingRepository,
	serviceRepo ServiceRepository,
	sales SalesUpdater,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		pendingRepo:     pendingRepo,
		serviceRepo:     serviceRepo,
		sales:           sales,
		txManager:       txManager,
		logger:          logger,
	}
}

// Confirm подтверждает запись: сохраняет ее, удаляет исходную ожидающую
// заявку (если была), прибавляет продажи мастеру и фиксирует приход в кассе.
func (s *Service) Confirm(ctx context.Context, params ConfirmParams) (*domain.Appointment, error) {
	var result *domain.Appointment

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Услуга и мастер могли быть удалены коллабораторами между шагами -
		// проверяем перед каждой финансовой операцией
		svc, err := s.serviceRepo.GetByID(txCtx, params.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				s.logger.Warn("Confirm: service id=%d vanished", params.ServiceID)
				return ErrDataIntegrity
			}
			s.logger.Error("Confirm: failed to get service id=%d: %v", params.ServiceID, err)
			return fmt.Errorf("%w: Confirm - get service: %v", ErrInternal, err)
		}

		if params.FromPendingID != nil {
			// Блокирующее чтение: конкурентные подтверждение и отклонение
			// одной заявки не пройдут одновременно
			if _, err := s.pendingRepo.GetByID(txCtx, *params.FromPendingID); err != nil {
				if errors.Is(err, pendingRepo.ErrPendingNotFound) {
					return ErrPendingNotFound
				}
				s.logger.Error("Confirm: failed to get pending id=%d: %v", *params.FromPendingID, err)
				return fmt.Errorf("%w: Confirm - get pending: %v", ErrInternal, err)
			}
		}

		appt := &domain.Appointment{
			StaffID:       params.StaffID,
			ServiceID:     params.ServiceID,
			Date:          params.Date,
			StartTime:     params.StartTime,
			ClientName:    params.ClientName,
			ClientContact: params.ClientContact,
			// Денормализация данных услуги: отмена вернет ровно ту цену,
			// которая была зафиксирована при подтверждении
			ServiceName:     svc.Name,
			ServicePrice:    svc.Price,
			DurationMinutes: svc.DurationMinutes,
		}

		created, err := s.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			s.logger.Error("Confirm: failed to create appointment: %v", err)
			return fmt.Errorf("%w: Confirm - create appointment: %v", ErrInternal, err)
		}

		if params.FromPendingID != nil {
			if err := s.pendingRepo.Delete(txCtx, *params.FromPendingID); err != nil {
				if errors.Is(err, pendingRepo.ErrPendingNotFound) {
					return ErrPendingNotFound
				}
				s.logger.Error("Confirm: failed to delete pending id=%d: %v", *params.FromPendingID, err)
				return fmt.Errorf("%w: Confirm - delete pending: %v", ErrInternal, err)
			}
		}

		if _, err := s.sales.Apply(txCtx, params.StaffID, svc.Price, domain.SalesAdd); err != nil {
			if errors.Is(err, salesService.ErrStaffNotFound) {
				s.logger.Warn("Confirm: staff id=%d vanished", params.StaffID)
				return ErrDataIntegrity
			}
			return fmt.Errorf("%w: Confirm - apply sales: %v", ErrInternal, err)
		}

		description := fmt.Sprintf("%s - %s", svc.Name, params.ClientName)
		if err := s.sales.Credit(txCtx, created.ID, params.Date, description, svc.Price); err != nil {
			return fmt.Errorf("%w: Confirm - credit ledger: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Confirm: appointment id=%d confirmed for staff=%d on %s %s",
		result.ID, result.StaffID, result.Date.Format(domain.DateFormat), result.StartTime)

	return result, nil
}

// RejectPending отклоняет ожидающую заявку. Финансовых следов нет -
// по заявке ничего не начислялось.
func (s *Service) RejectPending(ctx context.Context, id int64) error {
	if err := s.pendingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pendingRepo.ErrPendingNotFound) {
			return ErrPendingNotFound
		}
		s.logger.Error("RejectPending: failed to delete pending id=%d: %v", id, err)
		return fmt.Errorf("%w: RejectPending - delete pending: %v", ErrInternal, err)
	}

	s.logger.Info("RejectPending: pending appointment id=%d rejected", id)
	return nil
}

// Cancel отменяет подтвержденную запись: удаляет ее, вычитает продажи
// мастера и снимает приход из кассы. Все в одной транзакции.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		appt, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Cancel: failed to get appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - get appointment: %v", ErrInternal, err)
		}

		if err := s.appointmentRepo.Delete(txCtx, id); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Cancel: failed to delete appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - delete appointment: %v", ErrInternal, err)
		}

		if _, err := s.sales.Apply(txCtx, appt.StaffID, appt.ServicePrice, domain.SalesSubtract); err != nil {
			if errors.Is(err, salesService.ErrStaffNotFound) {
				s.logger.Warn("Cancel: staff id=%d vanished", appt.StaffID)
				return ErrDataIntegrity
			}
			return fmt.Errorf("%w: Cancel - apply sales: %v", ErrInternal, err)
		}

		if err := s.sales.Reverse(txCtx, id, appt.ServicePrice); err != nil {
			if errors.Is(err, salesService.ErrEntryNotFound) {
				s.logger.Warn("Cancel: ledger entry for appointment id=%d vanished", id)
				return ErrDataIntegrity
			}
			return fmt.Errorf("%w: Cancel - reverse ledger: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("Cancel: appointment id=%d cancelled", id)
	return nil
}

// ListPending возвращает все ожидающие заявки
func (s *Service) ListPending(ctx context.Context) ([]*domain.PendingAppointment, error) {
	pendings, err := s.pendingRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}
	return pendings, nil
}

// ListByDate возвращает подтвержденные записи на дату
func (s *Service) ListByDate(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	appts, err := s.appointmentRepo.ListByDate(ctx, date)
	if err != nil {
		s.logger.Error("ListByDate: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListByDate - repository error: %v", ErrInternal, err)
	}
	return appts, nil
}
