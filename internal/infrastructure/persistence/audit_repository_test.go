package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/producao/backend/internal/domain/audit"
	"github.com/producao/backend/internal/domain/shared"
	"github.com/producao/backend/internal/domain/tracking"
)

func setupAuditDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&audit.Entry{}))
	return db
}

func TestAuditRepositoryAppendAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewGormAuditRepository(setupAuditDB(t))

	actor := uint(7)
	entry := &audit.Entry{
		ActorID:    &actor,
		Action:     audit.ActionCreateRecord,
		EntityType: tracking.EntityLoss,
		EntityID:   12,
		Detail:     audit.Detail{"quantity": 3.5, "loss_type": "MASSA"},
		IPAddress:  "10.0.0.8",
		UserAgent:  "tester/1.0",
	}
	require.NoError(t, repo.Append(ctx, entry))
	require.NotZero(t, entry.ID)

	entries, total, err := repo.FindPage(ctx, shared.Filter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, entries, 1)

	got := entries[0]
	require.NotNil(t, got.ActorID)
	assert.Equal(t, uint(7), *got.ActorID)
	assert.Equal(t, audit.ActionCreateRecord, got.Action)
	assert.Equal(t, tracking.EntityLoss, got.EntityType)
	assert.Equal(t, uint(12), got.EntityID)
	assert.Equal(t, "MASSA", got.Detail["loss_type"])
	assert.Equal(t, "10.0.0.8", got.IPAddress)
}

func TestAuditRepositoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	db := setupAuditDB(t)
	repo := NewGormAuditRepository(db)

	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Append(ctx, &audit.Entry{
			Action:     audit.ActionUpdateRecord,
			EntityType: tracking.EntityProduction,
			EntityID:   uint(i + 1),
			CreatedAt:  base.Add(time.Duration(i) * time.Hour),
		}))
	}

	entries, total, err := repo.FindPage(ctx, shared.Filter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, entries, 2)
	assert.Equal(t, uint(3), entries[0].EntityID)
	assert.Equal(t, uint(2), entries[1].EntityID)

	entries, _, err = repo.FindPage(ctx, shared.Filter{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, uint(1), entries[0].EntityID)
}

func TestAuditRepositoryNilActor(t *testing.T) {
	ctx := context.Background()
	repo := NewGormAuditRepository(setupAuditDB(t))

	require.NoError(t, repo.Append(ctx, &audit.Entry{
		Action:     audit.ActionDeleteRecord,
		EntityType: tracking.EntityError,
		EntityID:   1,
	}))

	entries, _, err := repo.FindPage(ctx, shared.Filter{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].ActorID)
	assert.Nil(t, entries[0].Detail)
}
