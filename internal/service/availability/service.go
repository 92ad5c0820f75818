package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Причины недоступности, отдаются вызывающей стороне как диагностика
const (
	ReasonNoSchedule    = "no schedule defined"
	ReasonNotWorkingDay = "not a working day"
)

// Result результат проверки доступности слота
type Result struct {
	Available bool
	Reason    string // заполнен, когда Available == false
}

// Service проверяет доступность мастера на слот.
// Три проверки по порядку, каждая со своей причиной отказа:
// пересечение с записями, пересечение с блокировками, попадание в рабочие часы.
// Пропуск любой из них допускает двойное бронирование или запись вне смены.
type Service struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(appointmentRepo AppointmentRepository, scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		logger:          logger,
	}
}

// Check проверяет, свободен ли мастер на слот (date, start, durationMinutes).
// Проверки останавливаются на первом нарушении.
func (s *Service) Check(ctx context.Context, staffID int64, date time.Time, start types.TimeString, durationMinutes int) (*Result, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidSlot)
	}

	slot, err := domain.NewInterval(start, durationMinutes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	// 1. Пересечение с подтвержденными записями
	appointments, err := s.appointmentRepo.ListByStaffAndDate(ctx, staffID, date)
	if err != nil {
		s.logger.Error("Check: failed to load appointments for staff=%d date=%s: %v",
			staffID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Check - load appointments: %v", ErrInternal, err)
	}

	for _, appt := range appointments {
		occupied, err := appt.Interval()
		if err != nil {
			// Запись с нечитаемым временем не должна молча пропускаться
			s.logger.Error("Check: appointment id=%d has invalid time %q: %v", appt.ID, appt.StartTime, err)
			return nil, fmt.Errorf("%w: Check - appointment id=%d interval: %v", ErrInternal, appt.ID, err)
		}
		if slot.Overlaps(occupied) {
			return &Result{
				Available: false,
				Reason:    fmt.Sprintf("already booked from %s to %s", occupied.Start, occupied.End),
			}, nil
		}
	}

	// 2. Пересечение с блокировками (отгулами)
	blocks, err := s.scheduleRepo.ListBlocks(ctx, staffID, date)
	if err != nil {
		s.logger.Error("Check: failed to load blocks for staff=%d date=%s: %v",
			staffID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Check - load blocks: %v", ErrInternal, err)
	}

	for _, block := range blocks {
		if slot.Overlaps(block.Interval()) {
			return &Result{
				Available: false,
				Reason:    fmt.Sprintf("time off from %s to %s", block.StartTime, block.EndTime),
			}, nil
		}
	}

	// 3. Попадание в рабочие часы
	ws, err := s.scheduleRepo.GetByStaffID(ctx, staffID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return &Result{Available: false, Reason: ReasonNoSchedule}, nil
		}
		s.logger.Error("Check: failed to load work schedule for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: Check - load work schedule: %v", ErrInternal, err)
	}

	hours, ok := ws.HoursFor(date)
	if !ok || !hours.IsWorking() {
		return &Result{Available: false, Reason: ReasonNotWorkingDay}, nil
	}

	if !hours.Interval().Contains(slot) {
		return &Result{
			Available: false,
			Reason:    fmt.Sprintf("outside working hours (%s-%s)", hours.Start, hours.End),
		}, nil
	}

	return &Result{Available: true}, nil
}
