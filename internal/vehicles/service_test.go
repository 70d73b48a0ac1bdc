package vehicles

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sewakita/sewakita-backend/internal/availability"
	apperrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/enums"
)

type stubBookedLister struct {
	ids            []uuid.UUID
	gotWindow      *availability.Interval
	gotExcludeItem *uuid.UUID
}

func (s *stubBookedLister) BookedVehicleIDs(ctx context.Context, window availability.Interval, excludeOrderID *uuid.UUID) ([]uuid.UUID, error) {
	s.gotWindow = &window
	s.gotExcludeItem = excludeOrderID
	return s.ids, nil
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestServiceListAvailableSuppressesBookedVehicles(t *testing.T) {
	db := setupVehiclesTestDB(t)
	ids := defaultCatalog(t, db)

	lister := &stubBookedLister{ids: []uuid.UUID{ids["toyota-avanza"]}}
	svc, err := NewService(NewRepository(db), lister)
	require.NoError(t, err)

	window, err := availability.NewInterval(day(t, "2024-06-01"), day(t, "2024-06-04"))
	require.NoError(t, err)

	result, _, err := svc.ListAvailable(context.Background(), ListQuery{
		Window: &window,
		Filter: ListFilter{OnlyAvailable: true},
	})
	require.NoError(t, err)
	require.NotNil(t, lister.gotWindow)

	slugs := make([]string, 0, len(result.Vehicles))
	for _, v := range result.Vehicles {
		slugs = append(slugs, v.Slug)
	}
	assert.NotContains(t, slugs, "toyota-avanza")
	assert.Contains(t, slugs, "honda-crv")
	// generally unavailable vehicles stay hidden regardless of the window
	assert.NotContains(t, slugs, "daihatsu-gran-max")
}

func TestServiceListAvailableWithoutWindowSkipsOrderQuery(t *testing.T) {
	db := setupVehiclesTestDB(t)
	defaultCatalog(t, db)

	lister := &stubBookedLister{ids: []uuid.UUID{uuid.New()}}
	svc, err := NewService(NewRepository(db), lister)
	require.NoError(t, err)

	result, page, err := svc.ListAvailable(context.Background(), ListQuery{})
	require.NoError(t, err)
	assert.Nil(t, lister.gotWindow)
	assert.Len(t, result.Vehicles, 4)
	assert.Equal(t, int64(4), page.TotalItems)
}

func TestServiceGetBySlug(t *testing.T) {
	db := setupVehiclesTestDB(t)
	defaultCatalog(t, db)
	svc, err := NewService(NewRepository(db), &stubBookedLister{})
	require.NoError(t, err)

	vehicle, err := svc.GetBySlug(context.Background(), "honda-crv")
	require.NoError(t, err)
	assert.Equal(t, "Honda CR-V", vehicle.Name)

	_, err = svc.GetBySlug(context.Background(), "tidak-ada")
	require.Error(t, err)
	appErr := apperrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code())
}

func TestServiceCreateMapsUniqueViolations(t *testing.T) {
	db := setupVehiclesTestDB(t)
	defaultCatalog(t, db)
	svc, err := NewService(NewRepository(db), &stubBookedLister{})
	require.NoError(t, err)

	input := CreateVehicleInput{
		OwnerID:          uuid.New(),
		Name:             "Avanza Kedua",
		Slug:             "toyota-avanza",
		Type:             enums.VehicleTypeMPV,
		Capacity:         7,
		TransmissionType: enums.TransmissionManual,
		FuelType:         enums.FuelTypeBensin,
		DailyRate:        300_000,
		MainImageURL:     "https://img.example.com/avanza2.jpg",
		IsAvailable:      true,
		LicensePlate:     "B 7777 ZZZ",
		City:             "Jakarta",
	}
	_, err = svc.Create(context.Background(), input)
	require.Error(t, err)
	appErr := apperrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code())
}

func TestServiceCreateWithImages(t *testing.T) {
	db := setupVehiclesTestDB(t)
	svc, err := NewService(NewRepository(db), &stubBookedLister{})
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), CreateVehicleInput{
		OwnerID:          uuid.New(),
		Name:             "Suzuki Ertiga",
		Slug:             "suzuki-ertiga",
		Type:             enums.VehicleTypeMPV,
		Capacity:         7,
		TransmissionType: enums.TransmissionAutomatic,
		FuelType:         enums.FuelTypeBensin,
		DailyRate:        320_000,
		MainImageURL:     "https://img.example.com/ertiga.jpg",
		IsAvailable:      true,
		LicensePlate:     "D 1122 AB",
		City:             "Bandung",
		ImageURLs: []string{
			"https://img.example.com/ertiga-1.jpg",
			"https://img.example.com/ertiga-2.jpg",
		},
	})
	require.NoError(t, err)
	assert.Len(t, created.Images, 2)

	loaded, err := svc.GetBySlug(context.Background(), "suzuki-ertiga")
	require.NoError(t, err)
	assert.Len(t, loaded.Images, 2)
}

func TestServiceUpdateAndDelete(t *testing.T) {
	db := setupVehiclesTestDB(t)
	ids := defaultCatalog(t, db)
	svc, err := NewService(NewRepository(db), &stubBookedLister{})
	require.NoError(t, err)
	ctx := context.Background()

	rate := int64(425_000)
	available := false
	updated, err := svc.Update(ctx, ids["honda-crv"], UpdateVehicleInput{
		DailyRate:   &rate,
		IsAvailable: &available,
	})
	require.NoError(t, err)
	assert.Equal(t, rate, updated.DailyRate)
	assert.False(t, updated.IsAvailable)

	require.NoError(t, svc.Delete(ctx, ids["honda-crv"]))

	err = svc.Delete(ctx, ids["honda-crv"])
	require.Error(t, err)
	appErr := apperrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code())
}
