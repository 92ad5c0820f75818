package confirm_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	pendingRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/pending"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/availability"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

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

type fakeStaffRepo struct {
	members map[int64]*domain.StaffMember
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id int64) (*domain.StaffMember, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, staffRepo.ErrStaffNotFound
	}
	return m, nil
}

type fakeAvailability struct {
	busy map[int64]string
}

func (f *fakeAvailability) Check(_ context.Context, staffID int64, _ time.Time, _ types.TimeString, _ int) (*availability.Result, error) {
	if reason, ok := f.busy[staffID]; ok {
		return &availability.Result{Available: false, Reason: reason}, nil
	}
	return &availability.Result{Available: true}, nil
}

type fakeRotation struct {
	requeued []int64
}

func (f *fakeRotation) Requeue(_ context.Context, staffID int64) error {
	f.requeued = append(f.requeued, staffID)
	return nil
}

type fakeLifecycle struct {
	confirmed []appointments.ConfirmParams
}

func (f *fakeLifecycle) Confirm(_ context.Context, params appointments.ConfirmParams) (*domain.Appointment, error) {
	f.confirmed = append(f.confirmed, params)
	return &domain.Appointment{ID: 100, StaffID: params.StaffID, ServiceID: params.ServiceID}, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	pendings *fakePendingRepo
	services *fakeServiceRepo
	staff    *fakeStaffRepo
	avail    *fakeAvailability
	rotation *fakeRotation
	life     *fakeLifecycle
}

func newFixture() *fixture {
	return &fixture{
		pendings: &fakePendingRepo{pendings: map[int64]*domain.PendingAppointment{
			7: {
				ID:            7,
				ServiceID:     10,
				Date:          time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
				StartTime:     types.TimeString("14:00"),
				ClientName:    "Анна",
				ClientContact: "+7 900 000-00-01",
			},
		}},
		services: &fakeServiceRepo{services: map[int64]*domain.Service{
			10: {ID: 10, Name: "Стрижка", Price: 90, DurationMinutes: 45, RoleID: 1},
		}},
		staff: &fakeStaffRepo{members: map[int64]*domain.StaffMember{
			1: {ID: 1, RoleID: 1},
			3: {ID: 3, RoleID: 2},
		}},
		avail:    &fakeAvailability{busy: map[int64]string{}},
		rotation: &fakeRotation{},
		life:     &fakeLifecycle{},
	}
}

func (fx *fixture) usecase(requeueManual bool) *UseCase {
	return NewUseCase(fx.pendings, fx.services, fx.staff, fx.avail,
		fx.rotation, fx.life, passthroughTxManager{}, requeueManual, nopLogger{})
}

func TestExecute_ConfirmsPending(t *testing.T) {
	fx := newFixture()

	appt, err := fx.usecase(false).Execute(context.Background(), &Request{PendingID: 7, StaffID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(1), appt.StaffID)
	require.Len(t, fx.life.confirmed, 1)
	params := fx.life.confirmed[0]
	assert.Equal(t, "Анна", params.ClientName)
	require.NotNil(t, params.FromPendingID)
	assert.Equal(t, int64(7), *params.FromPendingID)
	assert.Empty(t, fx.rotation.requeued)
}

func TestExecute_RequeueOnManualAssignEnabled(t *testing.T) {
	fx := newFixture()

	_, err := fx.usecase(true).Execute(context.Background(), &Request{PendingID: 7, StaffID: 1})
	require.NoError(t, err)

	assert.Equal(t, []int64{1}, fx.rotation.requeued)
}

func TestExecute_StaffBusyReturnsReason(t *testing.T) {
	fx := newFixture()
	fx.avail.busy[1] = "already booked from 14:00 to 14:45"

	_, err := fx.usecase(false).Execute(context.Background(), &Request{PendingID: 7, StaffID: 1})
	require.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Contains(t, err.Error(), "already booked from 14:00 to 14:45")
	assert.Empty(t, fx.life.confirmed)
}

func TestExecute_StaffNotQualified(t *testing.T) {
	fx := newFixture()

	_, err := fx.usecase(false).Execute(context.Background(), &Request{PendingID: 7, StaffID: 3})
	assert.ErrorIs(t, err, ErrStaffNotQualified)
}

func TestExecute_PendingNotFound(t *testing.T) {
	fx := newFixture()

	_, err := fx.usecase(false).Execute(context.Background(), &Request{PendingID: 404, StaffID: 1})
	assert.ErrorIs(t, err, ErrPendingNotFound)
}

func TestExecute_StaffNotFound(t *testing.T) {
	fx := newFixture()

	_, err := fx.usecase(false).Execute(context.Background(), &Request{PendingID: 7, StaffID: 99})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_ServiceVanished(t *testing.T) {
	fx := newFixture()
	delete(fx.services.services, 10)

	_, err := fx.usecase(false).Execute(context.Background(), &Request{PendingID: 7, StaffID: 1})
	assert.ErrorIs(t, err, ErrDataIntegrity)
}

func TestExecute_Validation(t *testing.T) {
	fx := newFixture()
	uc := fx.usecase(false)

	_, err := uc.Execute(context.Background(), &Request{PendingID: 0, StaffID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{PendingID: 7, StaffID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
