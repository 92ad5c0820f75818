package confirm_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	pendingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/pending"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

// UseCase use case подтверждения ожидающей заявки выбранным мастером
type UseCase struct {
	pendingRepo   PendingRepository
	serviceRepo   ServiceRepository
	staffRepo     StaffRepository
	availability  AvailabilityChecker
	rotation      RotationQueue
	lifecycle     LifecycleManager
	txManager     TransactionManager
	requeueManual bool
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// requeueOnManualAssign управляет ротацией очереди при ручном назначении.
func NewUseCase(
	pendingRepo PendingRepository,
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	availability AvailabilityChecker,
	rotation RotationQueue,
	lifecycle LifecycleManager,
	txManager TransactionManager,
	requeueOnManualAssign bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		pendingRepo:   pendingRepo,
		serviceRepo:   serviceRepo,
		staffRepo:     staffRepo,
		availability:  availability,
		rotation:      rotation,
		lifecycle:     lifecycle,
		txManager:     txManager,
		requeueManual: requeueOnManualAssign,
		logger:        logger,
	}
}

// Execute выполняет use case подтверждения заявки.
// Недоступность мастера не понижает заявку обратно, причина возвращается
// администратору для выбора другого мастера или времени.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Appointment, error) {
	uc.logger.Info("ConfirmAppointment: pending=%d, staff=%d", req.PendingID, req.StaffID)

	// 1. Валидация входных данных
	if req.PendingID <= 0 {
		return nil, fmt.Errorf("%w: pendingID must be positive", ErrInvalidInput)
	}
	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	var result *domain.Appointment

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Заявка с блокировкой: конкурентное отклонение не пройдет параллельно
		pending, err := uc.pendingRepo.GetByID(txCtx, req.PendingID)
		if err != nil {
			if errors.Is(err, pendingRepo.ErrPendingNotFound) {
				uc.logger.Warn("ConfirmAppointment: pending id=%d not found", req.PendingID)
				return ErrPendingNotFound
			}
			uc.logger.Error("ConfirmAppointment: failed to get pending id=%d: %v", req.PendingID, err)
			return fmt.Errorf("%w: failed to get pending: %v", ErrInternal, err)
		}

		// 3. Услуга заявки, могла быть удалена после создания заявки
		service, err := uc.serviceRepo.GetByID(txCtx, pending.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("ConfirmAppointment: service id=%d vanished", pending.ServiceID)
				return ErrDataIntegrity
			}
			uc.logger.Error("ConfirmAppointment: failed to get service id=%d: %v", pending.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		// 4. Мастер и проверка квалификации
		staff, err := uc.staffRepo.GetByID(txCtx, req.StaffID)
		if err != nil {
			if errors.Is(err, staffRepo.ErrStaffNotFound) {
				uc.logger.Warn("ConfirmAppointment: staff id=%d not found", req.StaffID)
				return ErrStaffNotFound
			}
			uc.logger.Error("ConfirmAppointment: failed to get staff id=%d: %v", req.StaffID, err)
			return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}

		if staff.RoleID != service.RoleID {
			uc.logger.Warn("ConfirmAppointment: staff id=%d role=%d does not match service role=%d",
				staff.ID, staff.RoleID, service.RoleID)
			return ErrStaffNotQualified
		}

		// 5. Доступность слота
		check, err := uc.availability.Check(txCtx, staff.ID, pending.Date, pending.StartTime, service.DurationMinutes)
		if err != nil {
			uc.logger.Error("ConfirmAppointment: availability check failed for staff=%d: %v", staff.ID, err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if !check.Available {
			uc.logger.Warn("ConfirmAppointment: staff id=%d unavailable: %s", staff.ID, check.Reason)
			return fmt.Errorf("%w: %s", ErrSlotUnavailable, check.Reason)
		}

		// 6. Подтверждение с удалением заявки и финансовыми эффектами
		created, err := uc.lifecycle.Confirm(txCtx, appointments.ConfirmParams{
			StaffID:       staff.ID,
			ServiceID:     service.ID,
			Date:          pending.Date,
			StartTime:     pending.StartTime,
			ClientName:    pending.ClientName,
			ClientContact: pending.ClientContact,
			FromPendingID: ptr.Ptr(pending.ID),
		})
		if err != nil {
			if errors.Is(err, appointments.ErrPendingNotFound) {
				return ErrPendingNotFound
			}
			if errors.Is(err, appointments.ErrDataIntegrity) {
				return ErrDataIntegrity
			}
			return err
		}

		// 7. Ручное назначение двигает очередь только при включенной настройке
		if uc.requeueManual {
			if err := uc.rotation.Requeue(txCtx, staff.ID); err != nil {
				uc.logger.Error("ConfirmAppointment: requeue failed for staff=%d: %v", staff.ID, err)
				return fmt.Errorf("%w: requeue failed: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmAppointment: pending id=%d confirmed as appointment id=%d with staff=%d",
		req.PendingID, result.ID, result.StaffID)

	return result, nil
}
