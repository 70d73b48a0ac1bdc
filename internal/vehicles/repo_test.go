package vehicles

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sewakita/sewakita-backend/pkg/db/models"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
)

func setupVehiclesTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{`
CREATE TABLE vehicles (
  id TEXT PRIMARY KEY,
  owner_id TEXT NOT NULL,
  name TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  description TEXT,
  type TEXT NOT NULL,
  capacity INTEGER NOT NULL,
  transmission_type TEXT NOT NULL,
  fuel_type TEXT NOT NULL,
  daily_rate INTEGER NOT NULL,
  late_fee_per_day INTEGER NOT NULL DEFAULT 0,
  main_image_url TEXT NOT NULL,
  is_available INTEGER NOT NULL DEFAULT 1,
  license_plate TEXT NOT NULL UNIQUE,
  city TEXT NOT NULL,
  address TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`, `
CREATE TABLE vehicle_images (
  id TEXT PRIMARY KEY,
  vehicle_id TEXT NOT NULL,
  image_url TEXT NOT NULL,
  alt_text TEXT,
  created_at DATETIME
);`}

	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

type vehicleSeed struct {
	name         string
	slug         string
	vehicleType  enums.VehicleType
	transmission enums.TransmissionType
	fuel         enums.FuelType
	plate        string
	available    bool
}

func seedCatalog(t *testing.T, db *gorm.DB, seeds []vehicleSeed) map[string]uuid.UUID {
	t.Helper()
	ids := make(map[string]uuid.UUID, len(seeds))
	for _, s := range seeds {
		vehicle := &models.Vehicle{
			ID:               uuid.New(),
			OwnerID:          uuid.New(),
			Name:             s.name,
			Slug:             s.slug,
			Type:             s.vehicleType,
			Capacity:         5,
			TransmissionType: s.transmission,
			FuelType:         s.fuel,
			DailyRate:        350_000,
			MainImageURL:     "https://img.example.com/" + s.slug + ".jpg",
			IsAvailable:      s.available,
			LicensePlate:     s.plate,
			City:             "Jakarta",
		}
		require.NoError(t, db.Create(vehicle).Error)
		ids[s.slug] = vehicle.ID
	}
	return ids
}

func defaultCatalog(t *testing.T, db *gorm.DB) map[string]uuid.UUID {
	return seedCatalog(t, db, []vehicleSeed{
		{"Toyota Avanza", "toyota-avanza", enums.VehicleTypeMPV, enums.TransmissionManual, enums.FuelTypeBensin, "B 1234 ABC", true},
		{"Honda CR-V", "honda-crv", enums.VehicleTypeSUV, enums.TransmissionAutomatic, enums.FuelTypeBensin, "B 5678 DEF", true},
		{"Hyundai Ioniq 5", "hyundai-ioniq-5", enums.VehicleTypeSUV, enums.TransmissionAutomatic, enums.FuelTypeListrik, "B 9012 GHI", true},
		{"Daihatsu Gran Max", "daihatsu-gran-max", enums.VehicleTypeMinibus, enums.TransmissionManual, enums.FuelTypeBensin, "B 3456 JKL", false},
	})
}

func TestListFiltersByAttributes(t *testing.T) {
	db := setupVehiclesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	defaultCatalog(t, db)

	suv := enums.VehicleTypeSUV
	rows, total, err := repo.List(ctx, ListFilter{Type: &suv})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)

	listrik := enums.FuelTypeListrik
	rows, total, err = repo.List(ctx, ListFilter{Type: &suv, Fuel: &listrik})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "hyundai-ioniq-5", rows[0].Slug)

	manual := enums.TransmissionManual
	rows, total, err = repo.List(ctx, ListFilter{Transmission: &manual, OnlyAvailable: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "toyota-avanza", rows[0].Slug)
}

func TestListSearchIsCaseInsensitive(t *testing.T) {
	db := setupVehiclesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	defaultCatalog(t, db)

	rows, _, err := repo.List(ctx, ListFilter{Search: "avanza"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Toyota Avanza", rows[0].Name)

	// matches license plate too
	rows, _, err = repo.List(ctx, ListFilter{Search: "b 5678"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Honda CR-V", rows[0].Name)

	rows, _, err = repo.List(ctx, ListFilter{Search: "tidak-ada"})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListExcludesIDs(t *testing.T) {
	db := setupVehiclesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	ids := defaultCatalog(t, db)

	rows, total, err := repo.List(ctx, ListFilter{
		ExcludeIDs: []uuid.UUID{ids["toyota-avanza"], ids["honda-crv"]},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, row := range rows {
		assert.NotEqual(t, ids["toyota-avanza"], row.ID)
		assert.NotEqual(t, ids["honda-crv"], row.ID)
	}
}

func TestListPagination(t *testing.T) {
	db := setupVehiclesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	defaultCatalog(t, db)

	rows, total, err := repo.List(ctx, ListFilter{Pagination: pagination.Params{Page: 1, Limit: 3}})
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, rows, 3)

	rows, _, err = repo.List(ctx, ListFilter{Pagination: pagination.Params{Page: 2, Limit: 3}})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFindBySlugLoadsImages(t *testing.T) {
	db := setupVehiclesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	ids := defaultCatalog(t, db)

	image := &models.VehicleImage{
		ID:        uuid.New(),
		VehicleID: ids["toyota-avanza"],
		ImageURL:  "https://img.example.com/avanza-interior.jpg",
	}
	require.NoError(t, db.Create(image).Error)

	vehicle, err := repo.FindBySlug(ctx, "toyota-avanza")
	require.NoError(t, err)
	require.Len(t, vehicle.Images, 1)
	assert.Equal(t, image.ImageURL, vehicle.Images[0].ImageURL)

	_, err = repo.FindBySlug(ctx, "tidak-ada")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCreatePersistsUnavailableFlag(t *testing.T) {
	db := setupVehiclesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Vehicle{
		ID:               uuid.New(),
		OwnerID:          uuid.New(),
		Name:             "Suzuki Ertiga",
		Slug:             "suzuki-ertiga",
		Type:             enums.VehicleTypeMPV,
		Capacity:         7,
		TransmissionType: enums.TransmissionManual,
		FuelType:         enums.FuelTypeBensin,
		DailyRate:        275_000,
		MainImageURL:     "https://img.example.com/ertiga.jpg",
		IsAvailable:      false,
		LicensePlate:     "B 8888 ERT",
		City:             "Jakarta",
	})
	require.NoError(t, err)
	assert.False(t, created.IsAvailable)

	stored, err := repo.FindBySlug(ctx, "suzuki-ertiga")
	require.NoError(t, err)
	assert.False(t, stored.IsAvailable)
}

func TestCreateDuplicateSlugFails(t *testing.T) {
	db := setupVehiclesTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	defaultCatalog(t, db)

	_, err := repo.Create(ctx, &models.Vehicle{
		ID:               uuid.New(),
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
	})
	require.Error(t, err)
}
