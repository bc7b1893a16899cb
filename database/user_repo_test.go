package database

import (
	"testing"

	"github.com/altos-estudio/altos-backend/errs"
	"github.com/altos-estudio/altos-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_Add(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)

	user := models.User{
		Email:    "admin@altos.uy",
		Name:     "Admin",
		Password: "hash",
		Role:     models.RoleAdmin,
	}
	require.NoError(t, repo.Add(&user))
	assert.NotEqual(t, uuid.Nil, user.ID)

	duplicate := models.User{Email: "admin@altos.uy", Name: "Other", Password: "hash2", Role: models.RoleAdmin}
	assert.ErrorIs(t, repo.Add(&duplicate), errs.ErrEmailTaken)
}

func TestUserRepo_FindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)

	require.NoError(t, repo.Add(&models.User{
		Email:    "estudio@altos.uy",
		Name:     "Estudio",
		Password: "hash",
		Role:     models.RoleAdmin,
	}))

	found, err := repo.FindByEmail("estudio@altos.uy")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Estudio", found.Name)

	missing, err := repo.FindByEmail("nadie@altos.uy")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserRepo_UpdatePassword(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepo(db)

	user := models.User{Email: "clave@altos.uy", Name: "Clave", Password: "old", Role: models.RoleAdmin}
	require.NoError(t, repo.Add(&user))

	require.NoError(t, repo.UpdatePassword(user.ID, "new"))

	stored, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "new", stored.Password)
}

func TestSeed(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Seed(db, "admin@altos.uy", "secret123"))

	categories, err := NewCategoryRepo(db).FindAll()
	require.NoError(t, err)
	assert.Len(t, categories, 4)

	tags, err := NewTagRepo(db).FindAll()
	require.NoError(t, err)
	require.Len(t, tags, 5)
	assert.Equal(t, 0, tags[0].Order)

	admin, err := NewUserRepo(db).FindByEmail("admin@altos.uy")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	t.Run("reseeding leaves existing rows alone", func(t *testing.T) {
		require.NoError(t, Seed(db, "admin@altos.uy", "otherpass"))

		categories, err := NewCategoryRepo(db).FindAll()
		require.NoError(t, err)
		assert.Len(t, categories, 4)

		after, err := NewUserRepo(db).FindByEmail("admin@altos.uy")
		require.NoError(t, err)
		assert.Equal(t, admin.Password, after.Password)
	})
}
