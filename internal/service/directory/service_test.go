package directory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StaffBooking/internal/infra/storage/memory"
	"github.com/m04kA/SMC-StaffBooking/pkg/logger"
)

func TestService_ListStoresAndStaff(t *testing.T) {
	storage := memory.New()
	shinjuku := storage.AddStore("Shinjuku")
	storage.AddStore("Akihabara")
	u1 := storage.AddUser("u1", "", false)
	u2 := storage.AddUser("u2", "", false)
	storage.AddStaff("Tanaka", shinjuku.ID, u1.ID)
	storage.AddStaff("Ito", shinjuku.ID, u2.ID)

	svc := NewService(storage.Stores(), storage.StaffRepo(), logger.NewNop())
	ctx := context.Background()

	stores, err := svc.ListStores(ctx)
	require.NoError(t, err)
	require.Len(t, stores, 2)
	assert.Equal(t, "Akihabara", stores[0].Name)
	assert.Equal(t, "Shinjuku", stores[1].Name)

	list, err := svc.ListStaff(ctx, shinjuku.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shinjuku", list.Store.Name)
	require.Len(t, list.Staff, 2)
	assert.Equal(t, "Ito", list.Staff[0].Name)
	assert.Equal(t, "Tanaka", list.Staff[1].Name)

	_, err = svc.ListStaff(ctx, 9999)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}
