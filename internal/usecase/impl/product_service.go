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

// productService implements the ProductUsecase interface over the product
// repository.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) Create(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	product := &entity.Product{
		Name:        input.Name,
		Brand:       input.Brand,
		Price:       input.Price,
		Negotiable:  input.Negotiable,
		Description: input.Description,
		File: entity.FileRef{
			FileName: input.FileName,
			FilePath: input.FilePath,
		},
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.String("productID", product.ID), slog.String("brand", product.Brand))

	return product, nil
}

func (srv *productService) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "failed to get product")
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// List filters the catalogue and decorates the page with two counts: how many
// products match the name/brand/price filters regardless of dates, and how
// many of those were added inside the filter's date window.
func (srv *productService) List(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ListProductsOutput, error) {
	filter := repository.ProductFilter{}
	if input != nil {
		filter.Name = input.Name
		filter.Brand = input.Brand
		filter.MinPrice = input.MinPrice
	}

	total, err := srv.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	if input != nil {
		from, to, err := parseDateRange(&usecase.DateRangeInput{
			StartDate: input.StartDate,
			EndDate:   input.EndDate,
		})
		if err != nil {
			return nil, err
		}
		filter.From = from
		filter.To = to
	}

	products, err := srv.productRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	fresh, err := srv.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count new products")
	}

	return &usecase.ListProductsOutput{
		Products:      products,
		TotalProducts: total,
		NewProducts:   fresh,
	}, nil
}

func (srv *productService) Update(ctx context.Context, id string, input *usecase.ProductInput) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "failed to update product")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	product.Name = input.Name
	product.Brand = input.Brand
	product.Price = input.Price
	product.Negotiable = input.Negotiable
	product.Description = input.Description
	product.File = entity.FileRef{
		FileName: input.FileName,
		FilePath: input.FilePath,
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Debug("Product updated", slog.String("productID", product.ID))

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, id string) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrProductNotFound, "failed to delete product")
		}

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}
