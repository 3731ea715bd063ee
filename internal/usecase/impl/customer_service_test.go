package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"
)

func createTestCustomerService(t *testing.T) (usecase.CustomerUsecase, *fakeCustomerRepo) {
	t.Helper()

	repo := newFakeCustomerRepo()
	service := NewCustomerService(CustomerServiceParams{
		CustomerRepo: repo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, repo
}

func testCustomerInput() *usecase.CustomerInput {
	return &usecase.CustomerInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Email:       "ada@example.com",
		PhoneNumber: "+44 1234 567890",
		Gender:      "female",
		FileName:    "portrait.png",
		FilePath:    "https://cdn.example.com/portrait.png",
	}
}

func TestCustomerService_CreateAndGet(t *testing.T) {
	service, _ := createTestCustomerService(t)

	created, err := service.Create(context.Background(), testCustomerInput())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", fetched.FirstName)
	assert.Equal(t, "portrait.png", fetched.File.FileName)
}

func TestCustomerService_Get_NotFound(t *testing.T) {
	service, _ := createTestCustomerService(t)

	_, err := service.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_Update_ReplacesAllFields(t *testing.T) {
	service, _ := createTestCustomerService(t)

	created, err := service.Create(context.Background(), testCustomerInput())
	require.NoError(t, err)

	input := testCustomerInput()
	input.FirstName = "Grace"
	input.Email = "grace@example.com"

	updated, err := service.Update(context.Background(), created.ID, input)
	require.NoError(t, err)
	assert.Equal(t, "Grace", updated.FirstName)
	assert.Equal(t, "grace@example.com", updated.Email)
	assert.Equal(t, created.ID, updated.ID)
}

func TestCustomerService_Delete(t *testing.T) {
	service, _ := createTestCustomerService(t)

	created, err := service.Create(context.Background(), testCustomerInput())
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID))
	assert.ErrorIs(t, service.Delete(context.Background(), created.ID), domainerrors.ErrCustomerNotFound)
}

func TestCustomerService_List_AppliesFilter(t *testing.T) {
	service, _ := createTestCustomerService(t)

	first := testCustomerInput()
	_, err := service.Create(context.Background(), first)
	require.NoError(t, err)

	second := testCustomerInput()
	second.FirstName = "Grace"
	second.Email = "grace@example.com"
	_, err = service.Create(context.Background(), second)
	require.NoError(t, err)

	// Case-insensitive partial match.
	customers, err := service.List(context.Background(), &usecase.ListCustomersInput{FirstName: "gra"})
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Grace", customers[0].FirstName)

	all, err := service.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
