package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sewakita/sewakita-backend/internal/availability"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
)

func window(t *testing.T, start, end string) availability.Interval {
	t.Helper()
	interval, err := availability.NewInterval(day(t, start), day(t, end))
	require.NoError(t, err)
	return interval
}

func TestFindConflictingOverlapCases(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedUser(t, db)
	vehicle := seedVehicle(t, db, user.ID, 350_000)
	seedOrder(t, db, user.ID, vehicle.ID, day(t, "2024-01-10"), day(t, "2024-01-15"), enums.OrderStatusApproved)

	cases := []struct {
		name       string
		start, end string
		conflicts  int
	}{
		{"disjoint before", "2024-01-01", "2024-01-05", 0},
		{"disjoint after", "2024-01-20", "2024-01-25", 0},
		{"contained", "2024-01-11", "2024-01-13", 1},
		{"covering", "2024-01-05", "2024-01-20", 1},
		{"shared boundary day", "2024-01-15", "2024-01-20", 1},
		{"shared start boundary", "2024-01-05", "2024-01-10", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conflicts, err := repo.FindConflicting(ctx, vehicle.ID, window(t, tc.start, tc.end), nil)
			require.NoError(t, err)
			assert.Len(t, conflicts, tc.conflicts)
		})
	}
}

func TestFindConflictingIgnoresNonBlockingStatuses(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedUser(t, db)
	vehicle := seedVehicle(t, db, user.ID, 350_000)

	for _, status := range enums.NonBlockingOrderStatuses {
		seedOrder(t, db, user.ID, vehicle.ID, day(t, "2024-01-10"), day(t, "2024-01-20"), status)
	}

	conflicts, err := repo.FindConflicting(ctx, vehicle.ID, window(t, "2024-01-12", "2024-01-18"), nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// a blocking order in the same window still conflicts
	seedOrder(t, db, user.ID, vehicle.ID, day(t, "2024-01-10"), day(t, "2024-01-20"), enums.OrderStatusActive)
	conflicts, err = repo.FindConflicting(ctx, vehicle.ID, window(t, "2024-01-12", "2024-01-18"), nil)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestFindConflictingExcludesSelf(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedUser(t, db)
	vehicle := seedVehicle(t, db, user.ID, 350_000)
	existing := seedOrder(t, db, user.ID, vehicle.ID, day(t, "2024-01-10"), day(t, "2024-01-15"), enums.OrderStatusApproved)

	conflicts, err := repo.FindConflicting(ctx, vehicle.ID, window(t, "2024-01-10", "2024-01-15"), &existing.ID)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	conflicts, err = repo.FindConflicting(ctx, vehicle.ID, window(t, "2024-01-10", "2024-01-15"), nil)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestFindConflictingScopedToVehicle(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedUser(t, db)
	vehicleA := seedVehicle(t, db, user.ID, 350_000)
	vehicleB := seedVehicle(t, db, user.ID, 500_000)
	seedOrder(t, db, user.ID, vehicleA.ID, day(t, "2024-01-10"), day(t, "2024-01-15"), enums.OrderStatusApproved)

	conflicts, err := repo.FindConflicting(ctx, vehicleB.ID, window(t, "2024-01-10", "2024-01-15"), nil)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestBookedVehicleIDs(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedUser(t, db)
	booked := seedVehicle(t, db, user.ID, 350_000)
	canceled := seedVehicle(t, db, user.ID, 400_000)
	free := seedVehicle(t, db, user.ID, 450_000)

	seedOrder(t, db, user.ID, booked.ID, day(t, "2024-01-10"), day(t, "2024-01-15"), enums.OrderStatusPaid)
	seedOrder(t, db, user.ID, canceled.ID, day(t, "2024-01-10"), day(t, "2024-01-15"), enums.OrderStatusCanceled)

	ids, err := repo.BookedVehicleIDs(ctx, window(t, "2024-01-12", "2024-01-18"), nil)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{booked.ID}, ids)
	assert.NotContains(t, ids, canceled.ID)
	assert.NotContains(t, ids, free.ID)
}

func TestBookedVehicleIDsExcludesOrder(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	user := seedUser(t, db)
	vehicle := seedVehicle(t, db, user.ID, 350_000)
	existing := seedOrder(t, db, user.ID, vehicle.ID, day(t, "2024-01-10"), day(t, "2024-01-15"), enums.OrderStatusApproved)

	ids, err := repo.BookedVehicleIDs(ctx, window(t, "2024-01-10", "2024-01-15"), &existing.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListByUser(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db)
	bob := seedUser(t, db)
	vehicle := seedVehicle(t, db, alice.ID, 350_000)

	seedOrder(t, db, alice.ID, vehicle.ID, day(t, "2024-01-01"), day(t, "2024-01-03"), enums.OrderStatusCompleted)
	seedOrder(t, db, alice.ID, vehicle.ID, day(t, "2024-02-01"), day(t, "2024-02-03"), enums.OrderStatusApproved)
	seedOrder(t, db, bob.ID, vehicle.ID, day(t, "2024-03-01"), day(t, "2024-03-03"), enums.OrderStatusApproved)

	rows, total, err := repo.ListByUser(ctx, alice.ID, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, alice.ID, row.UserID)
	}
}

func TestDeleteMissingOrder(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	require.Error(t, err)
}
