package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	clientRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/client"
	serviceRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/service"
	staffRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/staff"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/availability"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeServiceRepo struct {
	services map[string]*domain.Service
}

func (f *fakeServiceRepo) GetByName(_ context.Context, name string) (*domain.Service, error) {
	svc, ok := f.services[name]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeStaffRepo struct {
	members []*domain.StaffMember
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id int64) (*domain.StaffMember, error) {
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, staffRepo.ErrStaffNotFound
}

func (f *fakeStaffRepo) ListByRole(_ context.Context, roleID int64) ([]*domain.StaffMember, error) {
	var result []*domain.StaffMember
	for _, m := range f.members {
		if m.RoleID == roleID {
			result = append(result, m)
		}
	}
	return result, nil
}

type fakeClientRepo struct {
	clients     map[string]*domain.Client
	nameUpdates []string
	nextID      int64
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[string]*domain.Client), nextID: 1}
}

func (f *fakeClientRepo) GetByContact(_ context.Context, contact string) (*domain.Client, error) {
	c, ok := f.clients[contact]
	if !ok {
		return nil, clientRepo.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClientRepo) Create(_ context.Context, client *domain.Client) (*domain.Client, error) {
	if _, ok := f.clients[client.Contact]; ok {
		return nil, clientRepo.ErrContactTaken
	}
	copied := *client
	copied.ID = f.nextID
	f.nextID++
	f.clients[client.Contact] = &copied
	return &copied, nil
}

func (f *fakeClientRepo) UpdateName(_ context.Context, id int64, name string) error {
	for _, c := range f.clients {
		if c.ID == id {
			c.Name = name
			f.nameUpdates = append(f.nameUpdates, name)
			return nil
		}
	}
	return clientRepo.ErrClientNotFound
}

type fakePendingRepo struct {
	created []*domain.PendingAppointment
	nextID  int64
}

func (f *fakePendingRepo) Create(_ context.Context, p *domain.PendingAppointment) (*domain.PendingAppointment, error) {
	f.nextID++
	copied := *p
	copied.ID = f.nextID
	f.created = append(f.created, &copied)
	return &copied, nil
}

type fakeSettingsRepo struct {
	settings domain.AppSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (*domain.AppSettings, error) {
	copied := f.settings
	return &copied, nil
}

// fakeAvailability отвечает "занят" для мастеров из busy
type fakeAvailability struct {
	busy    map[int64]string
	checked []int64
}

func (f *fakeAvailability) Check(_ context.Context, staffID int64, _ time.Time, _ types.TimeString, _ int) (*availability.Result, error) {
	f.checked = append(f.checked, staffID)
	if reason, ok := f.busy[staffID]; ok {
		return &availability.Result{Available: false, Reason: reason}, nil
	}
	return &availability.Result{Available: true}, nil
}

type fakeRotation struct {
	queue    []int64
	requeued []int64
}

func (f *fakeRotation) CandidateOrder(_ context.Context, eligible []int64) ([]int64, error) {
	inQueue := make(map[int64]bool)
	var result []int64
	for _, id := range f.queue {
		for _, e := range eligible {
			if id == e {
				result = append(result, id)
				inQueue[id] = true
			}
		}
	}
	for _, e := range eligible {
		if !inQueue[e] {
			result = append(result, e)
		}
	}
	return result, nil
}

func (f *fakeRotation) Requeue(_ context.Context, staffID int64) error {
	f.requeued = append(f.requeued, staffID)
	return nil
}

type fakeLifecycle struct {
	confirmed []appointments.ConfirmParams
	nextID    int64
}

func (f *fakeLifecycle) Confirm(_ context.Context, params appointments.ConfirmParams) (*domain.Appointment, error) {
	f.nextID++
	f.confirmed = append(f.confirmed, params)
	return &domain.Appointment{
		ID:        f.nextID,
		StaffID:   params.StaffID,
		ServiceID: params.ServiceID,
		Date:      params.Date,
		StartTime: params.StartTime,
	}, nil
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
	services *fakeServiceRepo
	staff    *fakeStaffRepo
	clients  *fakeClientRepo
	pendings *fakePendingRepo
	settings *fakeSettingsRepo
	avail    *fakeAvailability
	rotation *fakeRotation
	life     *fakeLifecycle
}

func newFixture() *fixture {
	return &fixture{
		services: &fakeServiceRepo{services: map[string]*domain.Service{
			"Стрижка": {ID: 10, Name: "Стрижка", Price: 90, DurationMinutes: 45, RoleID: 1},
		}},
		staff: &fakeStaffRepo{members: []*domain.StaffMember{
			{ID: 1, Name: "Мария", RoleID: 1},
			{ID: 2, Name: "Ольга", RoleID: 1},
			{ID: 3, Name: "Ирина", RoleID: 2},
		}},
		clients:  newFakeClientRepo(),
		pendings: &fakePendingRepo{},
		settings: &fakeSettingsRepo{},
		avail:    &fakeAvailability{busy: map[int64]string{}},
		rotation: &fakeRotation{queue: []int64{1, 2}},
		life:     &fakeLifecycle{},
	}
}

func (fx *fixture) usecase(requeueManual bool) *UseCase {
	return NewUseCase(fx.services, fx.staff, fx.clients, fx.pendings, fx.settings,
		fx.avail, fx.rotation, fx.life, passthroughTxManager{}, requeueManual, nopLogger{})
}

func request() *Request {
	return &Request{
		ServiceName:   "Стрижка",
		Date:          time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     types.TimeString("14:00"),
		ClientName:    "Анна",
		ClientContact: "+7 900 000-00-01",
	}
}

func TestExecute_AutoAssignFirstCandidate(t *testing.T) {
	fx := newFixture()
	resp, err := fx.usecase(false).Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, resp.Status)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, int64(1), resp.Appointment.StaffID)
	assert.Equal(t, []int64{1}, fx.rotation.requeued)
	assert.Empty(t, fx.pendings.created)

	// Клиент создан по контакту
	require.Contains(t, fx.clients.clients, "+7 900 000-00-01")
	assert.Equal(t, "Анна", fx.clients.clients["+7 900 000-00-01"].Name)
}

func TestExecute_AutoAssignSkipsBusyCandidate(t *testing.T) {
	fx := newFixture()
	fx.avail.busy[1] = "already booked from 14:00 to 14:45"

	resp, err := fx.usecase(false).Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, resp.Status)
	assert.Equal(t, int64(2), resp.Appointment.StaffID)
	assert.Equal(t, []int64{1, 2}, fx.avail.checked)
	assert.Equal(t, []int64{2}, fx.rotation.requeued)
}

func TestExecute_ExhaustionFallback(t *testing.T) {
	fx := newFixture()
	fx.avail.busy[1] = "already booked from 14:00 to 14:45"
	fx.avail.busy[2] = "not a working day"

	resp, err := fx.usecase(false).Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, StatusPendingFallback, resp.Status)
	assert.NotEmpty(t, resp.Message)
	require.NotNil(t, resp.Pending)
	assert.Equal(t, int64(10), resp.Pending.ServiceID)
	assert.Empty(t, fx.life.confirmed)
	assert.Empty(t, fx.rotation.requeued)
}

func TestExecute_ManualSelectionMode(t *testing.T) {
	fx := newFixture()
	fx.settings.settings.ManualSelection = true

	resp, err := fx.usecase(false).Execute(context.Background(), request())
	require.NoError(t, err)

	// Свободные мастера есть, но заявка все равно уходит на подтверждение
	assert.Equal(t, StatusPending, resp.Status)
	require.NotNil(t, resp.Pending)
	assert.Empty(t, fx.avail.checked)
	assert.Empty(t, fx.life.confirmed)
}

func TestExecute_ManualStaffPath(t *testing.T) {
	fx := newFixture()
	req := request()
	req.StaffID = ptr.Ptr(int64(2))

	resp, err := fx.usecase(false).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, resp.Status)
	assert.Equal(t, int64(2), resp.Appointment.StaffID)
	// Ручное назначение не двигает очередь ротации
	assert.Empty(t, fx.rotation.requeued)
}

func TestExecute_ManualStaffRequeueEnabled(t *testing.T) {
	fx := newFixture()
	req := request()
	req.StaffID = ptr.Ptr(int64(2))

	resp, err := fx.usecase(true).Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, StatusConfirmed, resp.Status)
	assert.Equal(t, []int64{2}, fx.rotation.requeued)
}

func TestExecute_ManualStaffBusyReturnsReason(t *testing.T) {
	fx := newFixture()
	fx.avail.busy[2] = "time off from 13:00 to 16:00"
	req := request()
	req.StaffID = ptr.Ptr(int64(2))

	_, err := fx.usecase(false).Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotUnavailable)
	// Ручная заявка не понижается до pending, причина уходит вызывающему
	assert.Contains(t, err.Error(), "time off from 13:00 to 16:00")
	assert.Empty(t, fx.pendings.created)
}

func TestExecute_ManualStaffNotQualified(t *testing.T) {
	fx := newFixture()
	req := request()
	req.StaffID = ptr.Ptr(int64(3)) // roleID=2, услуга требует roleID=1

	_, err := fx.usecase(false).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotQualified)
}

func TestExecute_ManualStaffNotFound(t *testing.T) {
	fx := newFixture()
	req := request()
	req.StaffID = ptr.Ptr(int64(99))

	_, err := fx.usecase(false).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	fx := newFixture()
	req := request()
	req.ServiceName = "Маникюр"

	_, err := fx.usecase(false).Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_NoEligibleStaff(t *testing.T) {
	fx := newFixture()
	fx.staff.members = []*domain.StaffMember{{ID: 3, RoleID: 2}}

	_, err := fx.usecase(false).Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrNoEligibleStaff)
}

func TestExecute_ClientNameUpdatedOnMismatch(t *testing.T) {
	fx := newFixture()
	fx.clients.clients["+7 900 000-00-01"] = &domain.Client{ID: 5, Name: "Аня", Contact: "+7 900 000-00-01"}
	fx.clients.nextID = 6

	_, err := fx.usecase(false).Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, []string{"Анна"}, fx.clients.nameUpdates)
	assert.Equal(t, "Анна", fx.clients.clients["+7 900 000-00-01"].Name)
}

func TestExecute_Validation(t *testing.T) {
	fx := newFixture()
	uc := fx.usecase(false)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"empty service name", func(r *Request) { r.ServiceName = "" }},
		{"empty client name", func(r *Request) { r.ClientName = "" }},
		{"empty contact", func(r *Request) { r.ClientContact = "" }},
		{"zero date", func(r *Request) { r.Date = time.Time{} }},
		{"zero start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }},
		{"non-positive staff id", func(r *Request) { r.StaffID = ptr.Ptr(int64(0)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
