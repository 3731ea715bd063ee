package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/repository"
	"backoffice/internal/usecase"
)

// customerService implements the CustomerUsecase interface over the customer
// repository.
type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for customerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	CustomerRepo repository.CustomerRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: params.CustomerRepo,
		logger:       params.Logger,
	}
}

func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *customerService) Create(ctx context.Context, input *usecase.CustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		Gender:      input.Gender,
		File: entity.FileRef{
			FileName: input.FileName,
			FilePath: input.FilePath,
		},
	}

	if err := srv.customerRepo.Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	srv.log(ctx).Debug("Customer created", slog.String("customerID", customer.ID))

	return customer, nil
}

func (srv *customerService) Get(ctx context.Context, id string) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "failed to get customer")
		}

		return nil, errors.Wrap(err, "failed to get customer")
	}

	return customer, nil
}

func (srv *customerService) List(ctx context.Context, input *usecase.ListCustomersInput) ([]*entity.Customer, error) {
	filter := repository.CustomerFilter{}
	if input != nil {
		filter.FirstName = input.FirstName
		filter.LastName = input.LastName
		filter.Email = input.Email
	}

	customers, err := srv.customerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

func (srv *customerService) Update(ctx context.Context, id string, input *usecase.CustomerInput) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCustomerNotFound, "failed to update customer")
		}

		return nil, errors.Wrap(err, "failed to update customer")
	}

	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.Email = input.Email
	customer.PhoneNumber = input.PhoneNumber
	customer.Gender = input.Gender
	customer.File = entity.FileRef{
		FileName: input.FileName,
		FilePath: input.FilePath,
	}

	if err := srv.customerRepo.Update(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}

	srv.log(ctx).Debug("Customer updated", slog.String("customerID", customer.ID))

	return customer, nil
}

func (srv *customerService) Delete(ctx context.Context, id string) error {
	if err := srv.customerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return errors.Wrap(domainerrors.ErrCustomerNotFound, "failed to delete customer")
		}

		return errors.Wrap(err, "failed to delete customer")
	}

	return nil
}
