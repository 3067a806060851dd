package dao

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserDAO_EmailUniqueAmongActive(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(testDB)

	first, err := d.Insert(ctx, User{
		Username: "ada",
		Email:    "unique-active@example.com",
		Password: "hash",
	})
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	_, err = d.Insert(ctx, User{
		Username: "impostor",
		Email:    "unique-active@example.com",
		Password: "hash",
	})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	// A deactivated account frees its email for re-registration.
	require.NoError(t, d.Deactivate(ctx, first.ID))

	second, err := d.Insert(ctx, User{
		Username: "ada-again",
		Email:    "unique-active@example.com",
		Password: "hash",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	found, err := d.FindByEmail(ctx, "unique-active@example.com")
	require.NoError(t, err)
	assert.Equal(t, second.ID, found.ID)
}

func TestUserDAO_DeactivatedHiddenFromReads(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(testDB)

	user, err := d.Insert(ctx, User{
		Username: "ghost",
		Email:    "ghost@example.com",
		Password: "hash",
	})
	require.NoError(t, err)

	require.NoError(t, d.Deactivate(ctx, user.ID))

	_, err = d.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = d.FindByEmail(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	// Deactivation is terminal; a second attempt finds no active row.
	assert.ErrorIs(t, d.Deactivate(ctx, user.ID), ErrUserNotFound)
}

func TestUserDAO_Search(t *testing.T) {
	ctx := context.Background()
	d := NewUserDAO(testDB)

	_, err := d.Insert(ctx, User{
		Username:  "searchable",
		Email:     "searchable@example.com",
		Password:  "hash",
		FirstName: "Grace",
		LastName:  "Hopper",
	})
	require.NoError(t, err)

	byName, err := d.Search(ctx, "grace", 0, 10)
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "searchable", byName[0].Username)

	none, err := d.Search(ctx, "no-such-person", 0, 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}
