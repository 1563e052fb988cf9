//go:build unit

package commands_test

import (
	"context"
	"testing"

	"neko-hotel/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerFixture(t *testing.T) (*memStore, commands.CustomerCommands) {
	t.Helper()
	store := newMemStore()
	return store, commands.NewCustomerUseCase(newFakeUoW(store), testClock)
}

func TestCustomerCommands(t *testing.T) {
	t.Run("create and update", func(t *testing.T) {
		store, uc := newCustomerFixture(t)

		created, err := uc.CreateCustomer(context.Background(), commands.CustomerInput{
			FullName: "Hana Sato",
			Email:    "hana@example.com",
			Phone:    "090-1234-5678",
		})
		require.NoError(t, err)
		require.Len(t, store.customers, 1)

		updated, err := uc.UpdateCustomer(context.Background(), created.ID(), commands.CustomerInput{
			FullName: "Hana Tanaka",
			Email:    "hana@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID(), updated.ID())
		assert.Equal(t, "Hana Tanaka", store.customers[created.ID()].FullName())
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, uc := newCustomerFixture(t)

		_, err := uc.CreateCustomer(context.Background(), commands.CustomerInput{
			FullName: "Hana Sato", Email: "hana@example.com",
		})
		require.NoError(t, err)

		_, err = uc.CreateCustomer(context.Background(), commands.CustomerInput{
			FullName: "Another Person", Email: "HANA@example.com",
		})
		assert.ErrorIs(t, err, commands.ErrDuplicateEmail)
	})

	t.Run("cats belong to a real customer", func(t *testing.T) {
		store, uc := newCustomerFixture(t)

		owner, err := uc.CreateCustomer(context.Background(), commands.CustomerInput{FullName: "Hana Sato"})
		require.NoError(t, err)

		cat, err := uc.AddCat(context.Background(), owner.ID(), commands.CatInput{Name: "Mochi", Breed: "Munchkin"})
		require.NoError(t, err)
		assert.Equal(t, owner.ID(), cat.OwnerID())
		require.Len(t, store.cats, 1)

		_, err = uc.AddCat(context.Background(), uuid.New(), commands.CatInput{Name: "Stray"})
		assert.ErrorIs(t, err, commands.ErrCustomerNotFound)

		require.NoError(t, uc.RemoveCat(context.Background(), owner.ID(), cat.ID()))
		assert.Empty(t, store.cats)

		// A cat ID under a different owner is treated as missing
		err = uc.RemoveCat(context.Background(), owner.ID(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrCatNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		store, uc := newCustomerFixture(t)

		owner, err := uc.CreateCustomer(context.Background(), commands.CustomerInput{FullName: "Hana Sato"})
		require.NoError(t, err)

		require.NoError(t, uc.DeleteCustomer(context.Background(), owner.ID()))
		assert.Empty(t, store.customers)

		assert.ErrorIs(t, uc.DeleteCustomer(context.Background(), owner.ID()), commands.ErrCustomerNotFound)
	})
}
