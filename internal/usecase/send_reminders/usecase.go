package send_reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/reminderwebhook"
)

// UseCase use case рассылки напоминаний о завтрашних записях
type UseCase struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	webhook         WebhookClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	webhook WebhookClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		webhook:         webhook,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет рассылку напоминаний.
// Ошибка доставки одного напоминания не прерывает остальные,
// поштучные итоги собираются в ответ. Повторных попыток нет.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("SendReminders: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	if settings.ReminderURL == nil || *settings.ReminderURL == "" {
		uc.logger.Warn("SendReminders: reminder URL is not configured")
		return nil, ErrReminderURLNotSet
	}

	now := uc.timeProvider.Now()
	tomorrow := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, 1)

	appointments, err := uc.appointmentRepo.ListByDate(ctx, tomorrow)
	if err != nil {
		uc.logger.Error("SendReminders: failed to list appointments for %s: %v",
			tomorrow.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	uc.logger.Info("SendReminders: %d appointments on %s", len(appointments), tomorrow.Format(domain.DateFormat))

	resp := &Response{
		Total:   len(appointments),
		Results: make([]DeliveryResult, 0, len(appointments)),
	}

	for _, appt := range appointments {
		payload := reminderwebhook.Payload{
			ClientName:    appt.ClientName,
			ClientContact: appt.ClientContact,
			Time:          appt.StartTime.String(),
		}

		result := DeliveryResult{AppointmentID: appt.ID}
		if err := uc.webhook.Send(ctx, *settings.ReminderURL, payload); err != nil {
			result.Error = err.Error()
			resp.Failed++
		} else {
			result.Sent = true
			resp.Sent++
		}
		resp.Results = append(resp.Results, result)
	}

	uc.logger.Info("SendReminders: sent=%d failed=%d", resp.Sent, resp.Failed)
	return resp, nil
}
