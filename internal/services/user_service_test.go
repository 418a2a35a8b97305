package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFindByEmailNotFound(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	_, err := svc.FindByEmail(context.Background(), "nadie@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateReturnsFullRow(t *testing.T) {
	svc := NewUserService(setupTestDB(t))

	picture := "https://example.com/ana.png"
	user, err := svc.Create(context.Background(), "Ana", "ana@example.com", &picture)
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)
	require.NotNil(t, user.Picture)
	assert.Equal(t, picture, *user.Picture)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestCreateDuplicateEmailConflicts(t *testing.T) {
	svc := NewUserService(setupTestDB(t))
	ctx := context.Background()

	_, err := svc.Create(ctx, "Ana", "ana@example.com", nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Otra Ana", "ana@example.com", nil)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestGoogleLoginCreatesThenFinds(t *testing.T) {
	svc := NewUserService(setupTestDB(t))
	ctx := context.Background()

	first, err := svc.GoogleLogin(ctx, "luis@example.com", "Luis", nil)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	// Second login with the same email must return the same row unchanged,
	// even when the profile fields differ.
	second, err := svc.GoogleLogin(ctx, "luis@example.com", "Luis Alberto", nil)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Luis", second.Name)
}

func TestGoogleLoginRecoversFromConflict(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	// Simulate losing the race: the row appears between lookup and insert.
	existing, err := svc.Create(ctx, "Eva", "eva@example.com", nil)
	require.NoError(t, err)

	user, err := svc.GoogleLogin(ctx, "eva@example.com", "Eva Otra", nil)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, "Eva", user.Name)
}
