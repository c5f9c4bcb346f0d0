package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnayak/carshare/internal/domain"
	"github.com/rnayak/carshare/internal/repo"
	"github.com/rnayak/carshare/internal/service"
)

// ---- mock repos ------------------------------------------------------------

// mockCarRepo is a hand-written test double for repo.CarRepo.
// Set only the method fields your test needs.
type mockCarRepo struct {
	create  func(ctx context.Context, car domain.Car) (domain.Car, error)
	getByID func(ctx context.Context, id int64) (domain.Car, error)
	list    func(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error)
	update  func(ctx context.Context, car domain.Car) (domain.Car, error)
	delete  func(ctx context.Context, id int64) error
}

func (m *mockCarRepo) Create(ctx context.Context, car domain.Car) (domain.Car, error) {
	return m.create(ctx, car)
}
func (m *mockCarRepo) GetByID(ctx context.Context, id int64) (domain.Car, error) {
	return m.getByID(ctx, id)
}
func (m *mockCarRepo) List(ctx context.Context, filter domain.CarFilter) ([]domain.Car, error) {
	return m.list(ctx, filter)
}
func (m *mockCarRepo) Update(ctx context.Context, car domain.Car) (domain.Car, error) {
	return m.update(ctx, car)
}
func (m *mockCarRepo) Delete(ctx context.Context, id int64) error {
	return m.delete(ctx, id)
}

// compile-time check: mockCarRepo must satisfy repo.CarRepo.
var _ repo.CarRepo = (*mockCarRepo)(nil)

// mockTripRepo is a hand-written test double for repo.TripRepo.
type mockTripRepo struct {
	create      func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	listByCarID func(ctx context.Context, carID int64) ([]domain.Trip, error)
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) ListByCarID(ctx context.Context, carID int64) ([]domain.Trip, error) {
	if m.listByCarID != nil {
		return m.listByCarID(ctx, carID)
	}
	return nil, nil
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validCar() domain.Car {
	return domain.Car{Size: "m", Doors: 4}
}

// ---- Create ----------------------------------------------------------------

func TestCarService_Create_AppliesDefaults(t *testing.T) {
	var captured domain.Car
	svc := service.NewCarService(
		&mockCarRepo{
			create: func(_ context.Context, c domain.Car) (domain.Car, error) {
				captured = c
				c.ID = 1
				return c, nil
			},
		},
		&mockTripRepo{},
	)

	got, err := svc.Create(context.Background(), validCar())

	require.NoError(t, err)
	assert.Equal(t, "electric", captured.Fuel)
	assert.Equal(t, "auto", captured.Transmission)
	assert.Equal(t, int64(1), got.ID)
}

func TestCarService_Create_KeepsProvidedFields(t *testing.T) {
	svc := service.NewCarService(
		&mockCarRepo{
			create: func(_ context.Context, c domain.Car) (domain.Car, error) {
				return c, nil
			},
		},
		&mockTripRepo{},
	)

	input := domain.Car{Size: "xl", Doors: 6, Fuel: "hybrid", Transmission: "manual"}
	got, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "hybrid", got.Fuel)
	assert.Equal(t, "manual", got.Transmission)
}

func TestCarService_Create_SizeRequired(t *testing.T) {
	svc := service.NewCarService(&mockCarRepo{}, &mockTripRepo{})

	input := validCar()
	input.Size = "   "

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCarService_Create_DoorsMustBePositive(t *testing.T) {
	svc := service.NewCarService(&mockCarRepo{}, &mockTripRepo{})

	input := validCar()
	input.Doors = 0

	_, err := svc.Create(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCarService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db exploded")
	svc := service.NewCarService(
		&mockCarRepo{
			create: func(_ context.Context, _ domain.Car) (domain.Car, error) {
				return domain.Car{}, repoErr
			},
		},
		&mockTripRepo{},
	)

	_, err := svc.Create(context.Background(), validCar())

	assert.ErrorIs(t, err, repoErr)
}

// ---- List ------------------------------------------------------------------

func TestCarService_List_OK(t *testing.T) {
	cars := []domain.Car{{ID: 1, Size: "s"}, {ID: 2, Size: "m"}}
	svc := service.NewCarService(
		&mockCarRepo{
			list: func(_ context.Context, _ domain.CarFilter) ([]domain.Car, error) {
				return cars, nil
			},
		},
		&mockTripRepo{},
	)

	got, err := svc.List(context.Background(), domain.CarFilter{})

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestCarService_List_PassesFilter(t *testing.T) {
	var captured domain.CarFilter
	svc := service.NewCarService(
		&mockCarRepo{
			list: func(_ context.Context, f domain.CarFilter) ([]domain.Car, error) {
				captured = f
				return nil, nil
			},
		},
		&mockTripRepo{},
	)

	_, err := svc.List(context.Background(), domain.CarFilter{Size: "xl", MinDoors: 4})

	require.NoError(t, err)
	assert.Equal(t, "xl", captured.Size)
	assert.Equal(t, 4, captured.MinDoors)
}

func TestCarService_List_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewCarService(
		&mockCarRepo{
			list: func(_ context.Context, _ domain.CarFilter) ([]domain.Car, error) {
				return nil, nil
			},
		},
		&mockTripRepo{},
	)

	got, err := svc.List(context.Background(), domain.CarFilter{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- GetByID ---------------------------------------------------------------

func TestCarService_GetByID_AssemblesTrips(t *testing.T) {
	trips := []domain.Trip{{ID: 10, CarID: 1}, {ID: 11, CarID: 1}}
	svc := service.NewCarService(
		&mockCarRepo{
			getByID: func(_ context.Context, id int64) (domain.Car, error) {
				return domain.Car{ID: id, Size: "m"}, nil
			},
		},
		&mockTripRepo{
			listByCarID: func(_ context.Context, carID int64) ([]domain.Trip, error) {
				assert.Equal(t, int64(1), carID)
				return trips, nil
			},
		},
	)

	car, got, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), car.ID)
	assert.Len(t, got, 2)
}

func TestCarService_GetByID_TripsNeverNil(t *testing.T) {
	svc := service.NewCarService(
		&mockCarRepo{
			getByID: func(_ context.Context, id int64) (domain.Car, error) {
				return domain.Car{ID: id}, nil
			},
		},
		&mockTripRepo{},
	)

	_, trips, err := svc.GetByID(context.Background(), 1)

	require.NoError(t, err)
	assert.NotNil(t, trips)
	assert.Empty(t, trips)
}

func TestCarService_GetByID_NotFound(t *testing.T) {
	svc := service.NewCarService(
		&mockCarRepo{
			getByID: func(_ context.Context, _ int64) (domain.Car, error) {
				return domain.Car{}, domain.ErrNotFound
			},
		},
		&mockTripRepo{},
	)

	_, _, err := svc.GetByID(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Update ----------------------------------------------------------------

func TestCarService_Update_OK(t *testing.T) {
	svc := service.NewCarService(
		&mockCarRepo{
			update: func(_ context.Context, c domain.Car) (domain.Car, error) {
				return c, nil
			},
		},
		&mockTripRepo{},
	)

	input := validCar()
	input.ID = 1
	input.Size = "xl"

	got, trips, err := svc.Update(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "xl", got.Size)
	assert.NotNil(t, trips)
}

func TestCarService_Update_AppliesDefaults(t *testing.T) {
	var captured domain.Car
	svc := service.NewCarService(
		&mockCarRepo{
			update: func(_ context.Context, c domain.Car) (domain.Car, error) {
				captured = c
				return c, nil
			},
		},
		&mockTripRepo{},
	)

	input := validCar()
	input.ID = 1

	_, _, err := svc.Update(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "electric", captured.Fuel)
	assert.Equal(t, "auto", captured.Transmission)
}

func TestCarService_Update_ValidationFails(t *testing.T) {
	svc := service.NewCarService(&mockCarRepo{}, &mockTripRepo{})

	input := validCar()
	input.ID = 1
	input.Size = ""

	_, _, err := svc.Update(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCarService_Update_NotFound(t *testing.T) {
	svc := service.NewCarService(
		&mockCarRepo{
			update: func(_ context.Context, _ domain.Car) (domain.Car, error) {
				return domain.Car{}, domain.ErrNotFound
			},
		},
		&mockTripRepo{},
	)

	input := validCar()
	input.ID = 42

	_, _, err := svc.Update(context.Background(), input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- Delete ----------------------------------------------------------------

func TestCarService_Delete_OK(t *testing.T) {
	svc := service.NewCarService(
		&mockCarRepo{
			delete: func(_ context.Context, _ int64) error { return nil },
		},
		&mockTripRepo{},
	)

	err := svc.Delete(context.Background(), 1)

	require.NoError(t, err)
}

func TestCarService_Delete_NotFound(t *testing.T) {
	svc := service.NewCarService(
		&mockCarRepo{
			delete: func(_ context.Context, _ int64) error { return domain.ErrNotFound },
		},
		&mockTripRepo{},
	)

	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCarService_Delete_Conflict(t *testing.T) {
	svc := service.NewCarService(
		&mockCarRepo{
			delete: func(_ context.Context, _ int64) error { return domain.ErrConflict },
		},
		&mockTripRepo{},
	)

	err := svc.Delete(context.Background(), 1)

	assert.ErrorIs(t, err, domain.ErrConflict)
}
