package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
)

// UseCase use case создания записи: разрешение заявки в confirmed,
// pending или pending_fallback
type UseCase struct {
	serviceRepo   ServiceRepository
	staffRepo     StaffRepository
	clientRepo    ClientRepository
	pendingRepo   PendingRepository
	settingsRepo  SettingsRepository
	availability  AvailabilityChecker
	rotation      RotationQueue
	lifecycle     LifecycleManager
	txManager     TransactionManager
	requeueManual bool
	logger        Logger
}

// NewUseCase создает новый экземпляр use case.
// requeueOnManualAssign управляет ротацией очереди при ручном выборе мастера.
func NewUseCase(
	serviceRepo ServiceRepository,
	staffRepo StaffRepository,
	clientRepo ClientRepository,
	pendingRepo PendingRepository,
	settingsRepo SettingsRepository,
	availability AvailabilityChecker,
	rotation RotationQueue,
	lifecycle LifecycleManager,
	txManager TransactionManager,
	requeueOnManualAssign bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		serviceRepo:   serviceRepo,
		staffRepo:     staffRepo,
		clientRepo:    clientRepo,
		pendingRepo:   pendingRepo,
		settingsRepo:  settingsRepo,
		availability:  availability,
		rotation:      rotation,
		lifecycle:     lifecycle,
		txManager:     txManager,
		requeueManual: requeueOnManualAssign,
		logger:        logger,
	}
}

// Execute выполняет use case создания записи.
// Подбор мастера, запись и побочные эффекты идут в одной сериализуемой
// транзакции: проверка доступности и вставка записи образуют критическую
// секцию по (мастер, дата), иначе два конкурентных запроса обнаружат один
// и тот же свободный слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%q, date=%s, time=%s, contact=%s",
		req.ServiceName, req.Date.Format(domain.DateFormat), req.StartTime, req.ClientContact)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга по названию
	service, err := uc.serviceRepo.GetByName(ctx, req.ServiceName)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service %q not found", req.ServiceName)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service %q: %v", req.ServiceName, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 3. Клиент по контакту: создаем нового или обновляем имя существующего
	if err := uc.resolveClient(ctx, req.ClientName, req.ClientContact); err != nil {
		return nil, err
	}

	// 4. Ручной режим: заявка всегда уходит на подтверждение,
	// даже если свободные мастера есть
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	if settings.ManualSelection {
		pending, err := uc.createPending(ctx, service.ID, req)
		if err != nil {
			return nil, err
		}
		uc.logger.Info("CreateAppointment: manual selection mode, pending id=%d created", pending.ID)
		return &Response{Status: StatusPending, Pending: pending}, nil
	}

	// 5. Ручной выбор мастера
	if req.StaffID != nil {
		return uc.resolveManual(ctx, service, req)
	}

	// 6. Автоподбор по очереди ротации
	return uc.resolveAuto(ctx, service, req)
}

// resolveManual обрабатывает заявку с явно выбранным мастером.
// Недоступность не понижает заявку до pending, а возвращается вызывающей
// стороне с причиной.
func (uc *UseCase) resolveManual(ctx context.Context, service *domain.Service, req *Request) (*Response, error) {
	staff, err := uc.staffRepo.GetByID(ctx, *req.StaffID)
	if err != nil {
		if errors.Is(err, staffRepo.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", *req.StaffID)
			return nil, ErrStaffNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", *req.StaffID, err)
		return nil, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}

	if staff.RoleID != service.RoleID {
		uc.logger.Warn("CreateAppointment: staff id=%d role=%d does not match service role=%d",
			staff.ID, staff.RoleID, service.RoleID)
		return nil, ErrStaffNotQualified
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		check, err := uc.availability.Check(txCtx, staff.ID, req.Date, req.StartTime, service.DurationMinutes)
		if err != nil {
			uc.logger.Error("CreateAppointment: availability check failed for staff=%d: %v", staff.ID, err)
			return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
		}
		if !check.Available {
			uc.logger.Warn("CreateAppointment: staff id=%d unavailable: %s", staff.ID, check.Reason)
			return fmt.Errorf("%w: %s", ErrSlotUnavailable, check.Reason)
		}

		created, err := uc.lifecycle.Confirm(txCtx, confirmParams(staff.ID, service.ID, req))
		if err != nil {
			return err
		}

		if uc.requeueManual {
			if err := uc.rotation.Requeue(txCtx, staff.ID); err != nil {
				uc.logger.Error("CreateAppointment: requeue failed for staff=%d: %v", staff.ID, err)
				return fmt.Errorf("%w: requeue failed: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: confirmed id=%d with manually selected staff=%d", result.ID, result.StaffID)
	return &Response{Status: StatusConfirmed, Appointment: result}, nil
}

// resolveAuto подбирает мастера по очереди ротации: first-fit по порядку
// кандидатов, без балансировки нагрузки сверх порядка очереди.
func (uc *UseCase) resolveAuto(ctx context.Context, service *domain.Service, req *Request) (*Response, error) {
	eligible, err := uc.staffRepo.ListByRole(ctx, service.RoleID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to list staff for role=%d: %v", service.RoleID, err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}
	if len(eligible) == 0 {
		uc.logger.Warn("CreateAppointment: no staff qualified for service id=%d", service.ID)
		return nil, ErrNoEligibleStaff
	}

	eligibleIDs := make([]int64, 0, len(eligible))
	for _, m := range eligible {
		eligibleIDs = append(eligibleIDs, m.ID)
	}

	var (
		confirmed *domain.Appointment
		fallback  *domain.PendingAppointment
	)

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		candidates, err := uc.rotation.CandidateOrder(txCtx, eligibleIDs)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to order candidates: %v", err)
			return fmt.Errorf("%w: failed to order candidates: %v", ErrInternal, err)
		}

		// Занятость кандидата не ошибка, пробуем следующего
		for _, staffID := range candidates {
			check, err := uc.availability.Check(txCtx, staffID, req.Date, req.StartTime, service.DurationMinutes)
			if err != nil {
				uc.logger.Error("CreateAppointment: availability check failed for staff=%d: %v", staffID, err)
				return fmt.Errorf("%w: availability check failed: %v", ErrInternal, err)
			}
			if !check.Available {
				uc.logger.Info("CreateAppointment: staff id=%d unavailable (%s), trying next", staffID, check.Reason)
				continue
			}

			created, err := uc.lifecycle.Confirm(txCtx, confirmParams(staffID, service.ID, req))
			if err != nil {
				return err
			}

			if err := uc.rotation.Requeue(txCtx, staffID); err != nil {
				uc.logger.Error("CreateAppointment: requeue failed for staff=%d: %v", staffID, err)
				return fmt.Errorf("%w: requeue failed: %v", ErrInternal, err)
			}

			confirmed = created
			return nil
		}

		// Все кандидаты заняты: сохраняем заявку, исход не ошибочный
		pending, err := uc.createPending(txCtx, service.ID, req)
		if err != nil {
			return err
		}
		fallback = pending
		return nil
	})
	if err != nil {
		return nil, err
	}

	if confirmed != nil {
		uc.logger.Info("CreateAppointment: confirmed id=%d, auto-assigned staff=%d", confirmed.ID, confirmed.StaffID)
		return &Response{Status: StatusConfirmed, Appointment: confirmed}, nil
	}

	uc.logger.Info("CreateAppointment: all candidates busy, pending id=%d created", fallback.ID)
	return &Response{
		Status:  StatusPendingFallback,
		Message: "no staff member is available at the requested time, the booking is saved for manual assignment",
		Pending: fallback,
	}, nil
}

// resolveClient находит клиента по контакту или создает нового.
// При смене имени у существующего контакта имя обновляется на месте.
func (uc *UseCase) resolveClient(ctx context.Context, name, contact string) error {
	client, err := uc.clientRepo.GetByContact(ctx, contact)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			if _, err := uc.clientRepo.Create(ctx, &domain.Client{Name: name, Contact: contact}); err != nil {
				// Гонка двух заявок с одним контактом: клиент уже создан
				if errors.Is(err, clientRepo.ErrContactTaken) {
					return nil
				}
				uc.logger.Error("CreateAppointment: failed to create client: %v", err)
				return fmt.Errorf("%w: failed to create client: %v", ErrInternal, err)
			}
			return nil
		}
		uc.logger.Error("CreateAppointment: failed to get client by contact: %v", err)
		return fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	if client.Name != name {
		if err := uc.clientRepo.UpdateName(ctx, client.ID, name); err != nil {
			uc.logger.Error("CreateAppointment: failed to update client name: %v", err)
			return fmt.Errorf("%w: failed to update client name: %v", ErrInternal, err)
		}
	}

	return nil
}

// createPending сохраняет ожидающую заявку без назначенного мастера
func (uc *UseCase) createPending(ctx context.Context, serviceID int64, req *Request) (*domain.PendingAppointment, error) {
	pending, err := uc.pendingRepo.Create(ctx, &domain.PendingAppointment{
		ServiceID:     serviceID,
		Date:          req.Date,
		StartTime:     req.StartTime,
		ClientName:    req.ClientName,
		ClientContact: req.ClientContact,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create pending appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create pending appointment: %v", ErrInternal, err)
	}
	return pending, nil
}
