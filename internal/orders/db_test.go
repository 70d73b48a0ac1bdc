package orders

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sewakita/sewakita-backend/pkg/db/models"
	"github.com/sewakita/sewakita-backend/pkg/enums"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ddl := []string{`
CREATE TABLE users (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'CUSTOMER',
  is_verified_by_admin INTEGER NOT NULL DEFAULT 0,
  last_login_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`, `
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
);`, `
CREATE TABLE orders (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  vehicle_id TEXT NOT NULL,
  start_date DATETIME NOT NULL,
  end_date DATETIME NOT NULL,
  rental_days INTEGER NOT NULL,
  total_price INTEGER NOT NULL,
  deposit_amount INTEGER NOT NULL DEFAULT 0,
  remaining_amount INTEGER NOT NULL DEFAULT 0,
  payment_method TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'PENDING_REVIEW',
  admin_notes TEXT,
  pickup_location TEXT NOT NULL DEFAULT '',
  return_location TEXT NOT NULL DEFAULT '',
  created_at DATETIME,
  updated_at DATETIME
);`}

	for _, stmt := range ddl {
		require.NoError(t, db.Exec(stmt).Error)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New(),
		Name:         "Budi Santoso",
		Email:        uuid.NewString() + "@example.com",
		PasswordHash: "hash",
		Role:         enums.RoleCustomer,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedVehicle(t *testing.T, db *gorm.DB, ownerID uuid.UUID, dailyRate int64) *models.Vehicle {
	t.Helper()
	vehicle := &models.Vehicle{
		ID:               uuid.New(),
		OwnerID:          ownerID,
		Name:             "Toyota Avanza",
		Slug:             "toyota-avanza-" + uuid.NewString()[:8],
		Type:             enums.VehicleTypeMPV,
		Capacity:         7,
		TransmissionType: enums.TransmissionManual,
		FuelType:         enums.FuelTypeBensin,
		DailyRate:        dailyRate,
		MainImageURL:     "https://img.example.com/avanza.jpg",
		IsAvailable:      true,
		LicensePlate:     "B " + uuid.NewString()[:4] + " XY",
		City:             "Jakarta",
	}
	require.NoError(t, db.Create(vehicle).Error)
	return vehicle
}

func seedOrder(t *testing.T, db *gorm.DB, userID, vehicleID uuid.UUID, start, end time.Time, status enums.OrderStatus) *models.Order {
	t.Helper()
	order := &models.Order{
		ID:              uuid.New(),
		UserID:          userID,
		VehicleID:       vehicleID,
		StartDate:       start,
		EndDate:         end,
		RentalDays:      1,
		TotalPrice:      350_000,
		DepositAmount:   0,
		RemainingAmount: 350_000,
		PaymentMethod:   enums.PaymentMethodCashOnPickup,
		Status:          status,
		PickupLocation:  "Kantor Jakarta",
		ReturnLocation:  "Kantor Jakarta",
	}
	require.NoError(t, db.Create(order).Error)
	return order
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}
