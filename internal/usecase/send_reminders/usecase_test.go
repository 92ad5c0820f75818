package send_reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/reminderwebhook"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeAppointmentRepo struct {
	byDate map[string][]*domain.Appointment
}

func (f *fakeAppointmentRepo) ListByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	return f.byDate[date.Format(domain.DateFormat)], nil
}

type fakeSettingsRepo struct {
	settings domain.AppSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.AppSettings, error) {
	copied := f.settings
	return &copied, nil
}

type fakeWebhook struct {
	failFor  map[string]bool
	payloads []reminderwebhook.Payload
	urls     []string
}

func (f *fakeWebhook) Send(_ context.Context, url string, payload reminderwebhook.Payload) error {
	f.urls = append(f.urls, url)
	if f.failFor[payload.ClientContact] {
		return errors.New("connection refused")
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestExecute_SendsForTomorrowOnly(t *testing.T) {
	appts := &fakeAppointmentRepo{byDate: map[string][]*domain.Appointment{
		"2025-10-15": {
			{ID: 1, ClientName: "Анна", ClientContact: "+7 900 000-00-01", StartTime: types.TimeString("14:00")},
			{ID: 2, ClientName: "Борис", ClientContact: "+7 900 000-00-02", StartTime: types.TimeString("16:30")},
		},
		"2025-10-16": {
			{ID: 3, ClientName: "Вера", ClientContact: "+7 900 000-00-03", StartTime: types.TimeString("10:00")},
		},
	}}
	webhook := &fakeWebhook{}
	uc := NewUseCase(appts, &fakeSettingsRepo{settings: domain.AppSettings{
		ReminderURL: ptr.Ptr("https://hooks.example.com/reminders"),
	}}, webhook, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 14, 9, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Sent)
	assert.Equal(t, 0, resp.Failed)

	require.Len(t, webhook.payloads, 2)
	assert.Equal(t, "Анна", webhook.payloads[0].ClientName)
	assert.Equal(t, "14:00", webhook.payloads[0].Time)
	assert.Equal(t, "https://hooks.example.com/reminders", webhook.urls[0])
}

func TestExecute_PartialFailure(t *testing.T) {
	appts := &fakeAppointmentRepo{byDate: map[string][]*domain.Appointment{
		"2025-10-15": {
			{ID: 1, ClientName: "Анна", ClientContact: "+7 900 000-00-01", StartTime: types.TimeString("14:00")},
			{ID: 2, ClientName: "Борис", ClientContact: "+7 900 000-00-02", StartTime: types.TimeString("16:30")},
		},
	}}
	webhook := &fakeWebhook{failFor: map[string]bool{"+7 900 000-00-01": true}}
	uc := NewUseCase(appts, &fakeSettingsRepo{settings: domain.AppSettings{
		ReminderURL: ptr.Ptr("https://hooks.example.com/reminders"),
	}}, webhook, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 14, 9, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, 1, resp.Sent)
	assert.Equal(t, 1, resp.Failed)

	require.Len(t, resp.Results, 2)
	assert.False(t, resp.Results[0].Sent)
	assert.Contains(t, resp.Results[0].Error, "connection refused")
	assert.True(t, resp.Results[1].Sent)
	assert.Empty(t, resp.Results[1].Error)
}

func TestExecute_NoReminderURL(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeSettingsRepo{}, &fakeWebhook{}, nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrReminderURLNotSet)
}

func TestExecute_EmptyDay(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{byDate: map[string][]*domain.Appointment{}},
		&fakeSettingsRepo{settings: domain.AppSettings{ReminderURL: ptr.Ptr("https://hooks.example.com/reminders")}},
		&fakeWebhook{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 10, 14, 9, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Results)
}
