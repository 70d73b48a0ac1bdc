package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/sewakita/sewakita-backend/internal/availability"
	"github.com/sewakita/sewakita-backend/pkg/config"
	"github.com/sewakita/sewakita-backend/pkg/db"
	"github.com/sewakita/sewakita-backend/pkg/db/models"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	"github.com/sewakita/sewakita-backend/pkg/logger"
	"github.com/sewakita/sewakita-backend/pkg/security"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	seeder := &seeder{db: dbClient.DB(), cfg: cfg.Password, logg: logg}
	if err := seeder.run(ctx); err != nil {
		logg.Error(ctx, "seeding failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "seeding finished")
}

type seeder struct {
	db   *gorm.DB
	cfg  config.PasswordConfig
	logg *logger.Logger
}

func (s *seeder) run(ctx context.Context) error {
	admin, err := s.ensureUser(ctx, "Admin User", "admin@example.com", "admin123", enums.RoleAdmin, true)
	if err != nil {
		return err
	}
	owner, err := s.ensureUser(ctx, "Owner User", "owner@example.com", "owner123", enums.RoleOwner, true)
	if err != nil {
		return err
	}
	customer, err := s.ensureUser(ctx, "Customer User", "customer@example.com", "customer123", enums.RoleCustomer, false)
	if err != nil {
		return err
	}
	_ = admin

	avanzaDesc := "Mobil keluarga yang nyaman dan irit, cocok untuk perjalanan jauh maupun dalam kota."
	avanza, err := s.ensureVehicle(ctx, &models.Vehicle{
		OwnerID:          owner.ID,
		Name:             "Toyota Avanza 2023",
		Slug:             "toyota-avanza-2023",
		Description:      &avanzaDesc,
		Type:             enums.VehicleTypeMPV,
		Capacity:         7,
		TransmissionType: enums.TransmissionAutomatic,
		FuelType:         enums.FuelTypeBensin,
		DailyRate:        350_000,
		LateFeePerDay:    100_000,
		MainImageURL:     "/images/avanza.jpg",
		IsAvailable:      true,
		LicensePlate:     "B 1234 SWK",
		City:             "Jakarta",
	}, []models.VehicleImage{
		{ImageURL: "/images/avanza-interior.jpg", AltText: strPtr("Interior Toyota Avanza")},
		{ImageURL: "/images/avanza-rear.jpg", AltText: strPtr("Belakang Toyota Avanza")},
	})
	if err != nil {
		return err
	}

	crvDesc := "SUV premium dengan desain sporty dan interior mewah."
	_, err = s.ensureVehicle(ctx, &models.Vehicle{
		OwnerID:          owner.ID,
		Name:             "Honda CR-V 2022",
		Slug:             "honda-crv-2022",
		Description:      &crvDesc,
		Type:             enums.VehicleTypeSUV,
		Capacity:         5,
		TransmissionType: enums.TransmissionAutomatic,
		FuelType:         enums.FuelTypeBensin,
		DailyRate:        600_000,
		LateFeePerDay:    150_000,
		MainImageURL:     "/images/crv.jpg",
		IsAvailable:      true,
		LicensePlate:     "B 5678 SWK",
		City:             "Jakarta",
	}, []models.VehicleImage{
		{ImageURL: "/images/crv-interior.jpg", AltText: strPtr("Interior Honda CR-V")},
		{ImageURL: "/images/crv-side.jpg", AltText: strPtr("Sisi Honda CR-V")},
	})
	if err != nil {
		return err
	}

	return s.ensureSampleOrder(ctx, customer, avanza)
}

func (s *seeder) ensureUser(ctx context.Context, name, email, password string, role enums.Role, verified bool) (*models.User, error) {
	var existing models.User
	err := s.db.WithContext(ctx).First(&existing, "email = ?", email).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := security.HashPassword(password, s.cfg)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:                uuid.New(),
		Name:              name,
		Email:             email,
		PasswordHash:      hash,
		Role:              role,
		IsVerifiedByAdmin: verified,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	s.logg.Info(s.logg.WithField(ctx, "email", email), "user seeded")
	return user, nil
}

func (s *seeder) ensureVehicle(ctx context.Context, vehicle *models.Vehicle, images []models.VehicleImage) (*models.Vehicle, error) {
	var existing models.Vehicle
	err := s.db.WithContext(ctx).First(&existing, "slug = ?", vehicle.Slug).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	vehicle.ID = uuid.New()
	for i := range images {
		images[i].ID = uuid.New()
		images[i].VehicleID = vehicle.ID
	}
	vehicle.Images = images
	if err := s.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return nil, err
	}
	s.logg.Info(s.logg.WithField(ctx, "slug", vehicle.Slug), "vehicle seeded")
	return vehicle, nil
}

func (s *seeder) ensureSampleOrder(ctx context.Context, customer *models.User, vehicle *models.Vehicle) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Order{}).
		Where("user_id = ?", customer.ID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	start := availability.NormalizeDate(time.Now().AddDate(0, 0, 7))
	end := start.AddDate(0, 0, 3)
	quote, err := availability.ComputeQuote(vehicle.DailyRate, start, end, vehicle.DailyRate*3*30/100)
	if err != nil {
		return err
	}

	notes := "Initial test order for Avanza by Customer User."
	order := &models.Order{
		ID:              uuid.New(),
		UserID:          customer.ID,
		VehicleID:       vehicle.ID,
		StartDate:       start,
		EndDate:         end,
		RentalDays:      quote.RentalDays,
		TotalPrice:      quote.TotalPrice,
		DepositAmount:   quote.DepositAmount,
		RemainingAmount: quote.RemainingAmount,
		PaymentMethod:   enums.PaymentMethodBankTransferManual,
		Status:          enums.OrderStatusPendingReview,
		AdminNotes:      &notes,
		PickupLocation:  "Kantor Jakarta",
		ReturnLocation:  "Kantor Jakarta",
	}
	if err := s.db.WithContext(ctx).Create(order).Error; err != nil {
		return err
	}
	s.logg.Info(s.logg.WithField(ctx, "order_id", order.ID.String()), "sample order seeded")
	return nil
}

func strPtr(v string) *string {
	return &v
}
