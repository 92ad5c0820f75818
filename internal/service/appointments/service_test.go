package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	pendingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/pending"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	salesService "github.com/m04kA/SMC-SalonService/internal/service/sales"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
	nextID       int64
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[int64]*domain.Appointment), nextID: 1}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	copied := *appt
	copied.ID = f.nextID
	f.nextID++
	f.appointments[copied.ID] = &copied
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) ListByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.Date.Equal(date) {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(f.appointments, id)
	return nil
}

type fakePendingRepo struct {
	pendings map[int64]*domain.PendingAppointment
}

func (f *fakePendingRepo) GetByID(_ context.Context, id int64) (*domain.PendingAppointment, error) {
	p, ok := f.pendings[id]
	if !ok {
		return nil, pendingRepo.ErrPendingNotFound
	}
	return p, nil
}

func (f *fakePendingRepo) List(_ context.Context) ([]*domain.PendingAppointment, error) {
	var result []*domain.PendingAppointment
	for _, p := range f.pendings {
		result = append(result, p)
	}
	return result, nil
}

func (f *fakePendingRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.pendings[id]; !ok {
		return pendingRepo.ErrPendingNotFound
	}
	delete(f.pendings, id)
	return nil
}

type fakeServiceRepo struct {
	services map[int64]*domain.Service
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

// fakeSales записывает все вызовы, чтобы проверить состав транзакции
type fakeSales struct {
	staff        map[int64]*domain.StaffMember
	applied      []string
	credits      map[int64]float64
	reverseCalls []int64
}

func newFakeSales(staff map[int64]*domain.StaffMember) *fakeSales {
	return &fakeSales{staff: staff, credits: make(map[int64]float64)}
}

func (f *fakeSales) Apply(_ context.Context, staffID int64, price float64, op domain.SalesOperation) (*domain.StaffMember, error) {
	m, ok := f.staff[staffID]
	if !ok {
		return nil, salesService.ErrStaffNotFound
	}
	switch op {
	case domain.SalesAdd:
		m.SalesValue += price
	case domain.SalesSubtract:
		m.SalesValue -= price
	}
	m.SalesGoalPercentage = domain.GoalPercentage(m.SalesValue, m.SalesTarget)
	f.applied = append(f.applied, string(op))
	return m, nil
}

func (f *fakeSales) Credit(_ context.Context, appointmentID int64, _ time.Time, _ string, amount float64) error {
	f.credits[appointmentID] = amount
	return nil
}

func (f *fakeSales) Reverse(_ context.Context, appointmentID int64, _ float64) error {
	if _, ok := f.credits[appointmentID]; !ok {
		return salesService.ErrEntryNotFound
	}
	delete(f.credits, appointmentID)
	f.reverseCalls = append(f.reverseCalls, appointmentID)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func haircut() *domain.Service {
	return &domain.Service{ID: 10, Name: "Стрижка", Price: 90, DurationMinutes: 45, RoleID: 1}
}

func confirmParams() ConfirmParams {
	return ConfirmParams{
		StaffID:       1,
		ServiceID:     10,
		Date:          time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("14:00"),
		ClientName:    "Анна",
		ClientContact: "+7 900 000-00-01",
	}
}

func TestConfirm_BundlesSideEffects(t *testing.T) {
	appts := newFakeAppointmentRepo()
	sales := newFakeSales(map[int64]*domain.StaffMember{
		1: {ID: 1, SalesValue: 4800, SalesTarget: 6000, SalesGoalPercentage: 80},
	})
	svc := NewService(appts, &fakePendingRepo{pendings: map[int64]*domain.PendingAppointment{}},
		&fakeServiceRepo{services: map[int64]*domain.Service{10: haircut()}},
		sales, passthroughTxManager{}, nopLogger{})

	created, err := svc.Confirm(context.Background(), confirmParams())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "Стрижка", created.ServiceName)
	assert.Equal(t, 90.0, created.ServicePrice)
	assert.Equal(t, 45, created.DurationMinutes)

	assert.Equal(t, 4890.0, sales.staff[1].SalesValue)
	assert.Equal(t, 82, sales.staff[1].SalesGoalPercentage)
	assert.Equal(t, 90.0, sales.credits[created.ID])
}

func TestConfirm_FromPendingDeletesPending(t *testing.T) {
	pendings := &fakePendingRepo{pendings: map[int64]*domain.PendingAppointment{
		7: {ID: 7, ServiceID: 10, ClientName: "Анна"},
	}}
	sales := newFakeSales(map[int64]*domain.StaffMember{1: {ID: 1, SalesTarget: 6000}})
	svc := NewService(newFakeAppointmentRepo(), pendings,
		&fakeServiceRepo{services: map[int64]*domain.Service{10: haircut()}},
		sales, passthroughTxManager{}, nopLogger{})

	params := confirmParams()
	params.FromPendingID = ptr.Ptr(int64(7))

	_, err := svc.Confirm(context.Background(), params)
	require.NoError(t, err)
	assert.Empty(t, pendings.pendings)
}

func TestConfirm_PendingMissing(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), &fakePendingRepo{pendings: map[int64]*domain.PendingAppointment{}},
		&fakeServiceRepo{services: map[int64]*domain.Service{10: haircut()}},
		newFakeSales(map[int64]*domain.StaffMember{1: {ID: 1}}), passthroughTxManager{}, nopLogger{})

	params := confirmParams()
	params.FromPendingID = ptr.Ptr(int64(404))

	_, err := svc.Confirm(context.Background(), params)
	assert.ErrorIs(t, err, ErrPendingNotFound)
}

func TestConfirm_ServiceVanished(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), &fakePendingRepo{pendings: map[int64]*domain.PendingAppointment{}},
		&fakeServiceRepo{services: map[int64]*domain.Service{}},
		newFakeSales(map[int64]*domain.StaffMember{1: {ID: 1}}), passthroughTxManager{}, nopLogger{})

	_, err := svc.Confirm(context.Background(), confirmParams())
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestConfirm_StaffVanished(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), &fakePendingRepo{pendings: map[int64]*domain.PendingAppointment{}},
		&fakeServiceRepo{services: map[int64]*domain.Service{10: haircut()}},
		newFakeSales(map[int64]*domain.StaffMember{}), passthroughTxManager{}, nopLogger{})

	_, err := svc.Confirm(context.Background(), confirmParams())
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestCancel_RestoresSalesAndLedger(t *testing.T) {
	appts := newFakeAppointmentRepo()
	sales := newFakeSales(map[int64]*domain.StaffMember{
		1: {ID: 1, SalesValue: 4800, SalesTarget: 6000, SalesGoalPercentage: 80},
	})
	svc := NewService(appts, &fakePendingRepo{pendings: map[int64]*domain.PendingAppointment{}},
		&fakeServiceRepo{services: map[int64]*domain.Service{10: haircut()}},
		sales, passthroughTxManager{}, nopLogger{})

	created, err := svc.Confirm(context.Background(), confirmParams())
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(context.Background(), created.ID))

	assert.Empty(t, appts.appointments)
	assert.Equal(t, 4800.0, sales.staff[1].SalesValue)
	assert.Equal(t, 80, sales.staff[1].SalesGoalPercentage)
	assert.Empty(t, sales.credits)
	assert.Equal(t, []int64{created.ID}, sales.reverseCalls)
}

func TestCancel_UsesRecordedPrice(t *testing.T) {
	// Цена услуги выросла после подтверждения, отмена должна вернуть
	// ту цену, что была зафиксирована в записи
	appts := newFakeAppointmentRepo()
	services := &fakeServiceRepo{services: map[int64]*domain.Service{10: haircut()}}
	sales := newFakeSales(map[int64]*domain.StaffMember{1: {ID: 1, SalesTarget: 6000}})
	svc := NewService(appts, &fakePendingRepo{pendings: map[int64]*domain.PendingAppointment{}},
		services, sales, passthroughTxManager{}, nopLogger{})

	created, err := svc.Confirm(context.Background(), confirmParams())
	require.NoError(t, err)

	services.services[10].Price = 120

	require.NoError(t, svc.Cancel(context.Background(), created.ID))
	assert.Equal(t, 0.0, sales.staff[1].SalesValue)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeAppointmentRepo(), &fakePendingRepo{pendings: map[int64]*domain.PendingAppointment{}},
		&fakeServiceRepo{services: map[int64]*domain.Service{}},
		newFakeSales(nil), passthroughTxManager{}, nopLogger{})

	err := svc.Cancel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestRejectPending(t *testing.T) {
	pendings := &fakePendingRepo{pendings: map[int64]*domain.PendingAppointment{
		7: {ID: 7, ServiceID: 10},
	}}
	svc := NewService(newFakeAppointmentRepo(), pendings,
		&fakeServiceRepo{services: map[int64]*domain.Service{}},
		newFakeSales(nil), passthroughTxManager{}, nopLogger{})

	require.NoError(t, svc.RejectPending(context.Background(), 7))
	assert.Empty(t, pendings.pendings)

	err := svc.RejectPending(context.Background(), 7)
	assert.ErrorIs(t, err, ErrPendingNotFound)
}
