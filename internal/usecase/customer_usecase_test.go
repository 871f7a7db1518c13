package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/inventory-backend/internal/domain"
	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerUCFixture(t *testing.T) (*CustomerUseCase, *fakeCustomerRepo, *fakeDB) {
	t.Helper()

	alice, err := domain.NewCustomer(1, "Alice", "alice@example.com")
	require.NoError(t, err)

	repo := newFakeCustomerRepo(alice)
	db := newFakeDB()
	uc := NewCustomerUC(repo, db, noopLogger{})
	return uc, repo, db
}

func TestCustomerUC_CreateCustomer(t *testing.T) {
	uc, repo, db := newCustomerUCFixture(t)

	info, err := uc.CreateCustomer(context.Background(), &CreateCustomerReq{
		Name:  "Bob",
		Email: "bob@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), info.ID)
	assert.Equal(t, "Bob", info.Name)
	assert.Equal(t, 1, db.tx.commits)
	assert.NotNil(t, repo.customers[2])
}

func TestCustomerUC_CreateCustomer_InvalidEmail(t *testing.T) {
	uc, repo, db := newCustomerUCFixture(t)

	_, err := uc.CreateCustomer(context.Background(), &CreateCustomerReq{
		Name:  "Bob",
		Email: "not-an-email",
	})
	require.ErrorIs(t, err, e.ErrInvalidEmail)

	assert.Len(t, repo.customers, 1, "невалидный покупатель не должен сохраняться")
	assert.Zero(t, db.tx.commits)
}

func TestCustomerUC_CreateCustomer_EmptyName(t *testing.T) {
	uc, _, _ := newCustomerUCFixture(t)

	_, err := uc.CreateCustomer(context.Background(), &CreateCustomerReq{
		Name:  "   ",
		Email: "bob@example.com",
	})
	require.ErrorIs(t, err, e.ErrCustomerNameRequired)
}

func TestCustomerUC_CreateCustomer_DuplicateEmail(t *testing.T) {
	uc, _, db := newCustomerUCFixture(t)

	_, err := uc.CreateCustomer(context.Background(), &CreateCustomerReq{
		Name:  "Alice Clone",
		Email: "alice@example.com",
	})
	require.ErrorIs(t, err, e.ErrEmailAlreadyExists)
	assert.Equal(t, 1, db.tx.rollbacks)
}

func TestCustomerUC_UpdateCustomer(t *testing.T) {
	uc, repo, _ := newCustomerUCFixture(t)

	info, err := uc.UpdateCustomer(context.Background(), &UpdateCustomerReq{
		ID:    1,
		Name:  "Alice Smith",
		Email: "alice.smith@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", info.Name)
	assert.Equal(t, "alice.smith@example.com", repo.customers[1].Email)
}

func TestCustomerUC_UpdateCustomer_NotFound(t *testing.T) {
	uc, _, _ := newCustomerUCFixture(t)

	_, err := uc.UpdateCustomer(context.Background(), &UpdateCustomerReq{
		ID:    99,
		Name:  "Ghost",
		Email: "ghost@example.com",
	})
	require.ErrorIs(t, err, e.ErrCustomerNotFound)
}

func TestCustomerUC_GetCustomer(t *testing.T) {
	uc, _, _ := newCustomerUCFixture(t)

	info, err := uc.GetCustomer(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Alice", info.Name)

	_, err = uc.GetCustomer(context.Background(), 99)
	require.ErrorIs(t, err, e.ErrCustomerNotFound)
}

func TestCustomerUC_DeleteCustomer(t *testing.T) {
	uc, repo, _ := newCustomerUCFixture(t)

	require.NoError(t, uc.DeleteCustomer(context.Background(), 1))
	assert.Empty(t, repo.customers)

	err := uc.DeleteCustomer(context.Background(), 1)
	require.ErrorIs(t, err, e.ErrCustomerNotFound)
}

func TestCustomerUC_ListCustomers(t *testing.T) {
	uc, _, _ := newCustomerUCFixture(t)

	_, err := uc.CreateCustomer(context.Background(), &CreateCustomerReq{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	infos, err := uc.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "Alice", infos[0].Name)
	assert.Equal(t, "Bob", infos[1].Name)
}
