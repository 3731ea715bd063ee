package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "backoffice/internal/delivery/context"
	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/domain/money"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
	"backoffice/internal/usecase"
)

// orderService implements the OrderUsecase interface: invoice CRUD, the
// order-total calculation at checkout and the two sales reports. The reports
// group in memory over a filtered repository query, so they carry no
// store-specific aggregation.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	clock       service.Clock
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create places an order. The total is computed here, once, from the line
// items and stored alongside them; readers trust the stored snapshot.
func (srv *orderService) Create(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	srv.log(ctx).Info("Placing order", slog.String("invoiceID", input.InvoiceID), slog.Int("lineItems", len(input.Products)))

	if len(input.Products) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "order requires at least one line item")
	}

	items := make([]entity.LineItem, 0, len(input.Products))
	var total float64
	for _, item := range input.Products {
		lineTotal, err := money.LineTotal(item.Quantity, item.Price)
		if err != nil {
			srv.log(ctx).Warn("Rejecting order with non-numeric line item", slog.String("productID", item.ProductID), slog.Any("error", err))

			return nil, errors.Wrap(err, "failed to compute order total")
		}
		total += lineTotal

		items = append(items, entity.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order := &entity.Order{
		Name:       input.Name,
		Email:      input.Email,
		Address:    input.Address,
		InvoiceID:  input.InvoiceID,
		UserID:     input.UserID,
		Products:   items,
		OrderTotal: money.FormatCurrency(total),
		Status:     entity.OrderStatusPending,
		OrderDate:  srv.clock.Now(),
	}

	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	srv.log(ctx).Debug("Order placed", slog.String("orderID", order.ID), slog.String("orderTotal", order.OrderTotal))

	return order, nil
}

// Get retrieves a single order by id.
func (srv *orderService) Get(ctx context.Context, id string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "failed to get order")
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// List returns orders, optionally bounded by creation date.
func (srv *orderService) List(ctx context.Context, input *usecase.DateRangeInput) ([]*entity.Order, error) {
	from, to, err := parseDateRange(input)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindAll(ctx, repository.OrderFilter{From: from, To: to})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// Update replaces the top-level fields of an order. Line items and the
// stored total are immutable after creation and are carried over unchanged.
func (srv *orderService) Update(ctx context.Context, id string, input *usecase.UpdateOrderInput) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrOrderNotFound, "failed to update order")
		}

		return nil, errors.Wrap(err, "failed to update order")
	}

	order.Name = input.Name
	order.Email = input.Email
	order.Address = input.Address
	order.Status = input.Status

	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.log(ctx).Debug("Order updated", slog.String("orderID", order.ID), slog.String("status", order.Status))

	return order, nil
}

// Delete removes an order.
func (srv *orderService) Delete(ctx context.Context, id string) error {
	if err := srv.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return errors.Wrap(domainerrors.ErrOrderNotFound, "failed to delete order")
		}

		return errors.Wrap(err, "failed to delete order")
	}

	return nil
}

// TotalSales sums the stored totals of completed orders in the range, along
// with the subset created today. An empty result set is a zero report, not an
// error.
func (srv *orderService) TotalSales(ctx context.Context, input *usecase.DateRangeInput) (*usecase.SalesSummary, error) {
	from, to, err := parseDateRange(input)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindAll(ctx, repository.OrderFilter{
		Status: entity.OrderStatusCompleted,
		From:   from,
		To:     to,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query completed orders")
	}

	now := srv.clock.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	summary := &usecase.SalesSummary{}
	var total, today float64
	for _, order := range orders {
		amount, err := money.ParseCurrency(order.OrderTotal)
		if err != nil {
			// A stored total that does not parse is surfaced, not summed as NaN.
			return nil, errors.Wrapf(err, "stored total of order %s is not numeric", order.ID)
		}

		total += amount
		summary.CompletedOrders++

		if !order.OrderDate.Before(startOfToday) {
			today += amount
			summary.TodayOrders++
		}
	}

	summary.TotalSales = money.FormatCurrency(total)
	summary.TodaySales = money.FormatCurrency(today)

	srv.log(ctx).Debug("Total sales computed", slog.String("totalSales", summary.TotalSales), slog.Int("completedOrders", summary.CompletedOrders))

	return summary, nil
}

// ProductSales groups every line item of every order in range by product,
// accumulating units ordered and revenue, joined with the product catalogue
// for display names. Rows are sorted by revenue descending; ties keep their
// encounter order. Line items whose product no longer exists are dropped.
func (srv *orderService) ProductSales(ctx context.Context, input *usecase.DateRangeInput) ([]*usecase.ProductSales, error) {
	from, to, err := parseDateRange(input)
	if err != nil {
		return nil, err
	}

	orders, err := srv.orderRepo.FindAll(ctx, repository.OrderFilter{From: from, To: to})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query orders")
	}

	type accumulator struct {
		totalOrdered int
		totalSales   float64
	}

	totals := make(map[string]*accumulator)
	var productOrder []string // first-encounter order of product ids

	for _, order := range orders {
		for _, item := range order.Products {
			quantity, err := money.ParseQuantity(item.Quantity)
			if err != nil {
				return nil, errors.Wrapf(err, "order %s has a non-numeric quantity", order.ID)
			}
			unitPrice, err := money.ParseCurrency(item.Price)
			if err != nil {
				return nil, errors.Wrapf(err, "order %s has a non-numeric price", order.ID)
			}

			acc, ok := totals[item.ProductID]
			if !ok {
				acc = &accumulator{}
				totals[item.ProductID] = acc
				productOrder = append(productOrder, item.ProductID)
			}
			acc.totalOrdered += quantity
			acc.totalSales += float64(quantity) * unitPrice
		}
	}

	type row struct {
		sales   *usecase.ProductSales
		revenue float64
	}

	rows := make([]row, 0, len(productOrder))
	for _, productID := range productOrder {
		product, err := srv.productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				// No catalogue entry to join against; skip the row.
				srv.log(ctx).Warn("Skipping sales row for missing product", slog.String("productID", productID))

				continue
			}

			return nil, errors.Wrap(err, "failed to load product for sales report")
		}

		acc := totals[productID]
		rows = append(rows, row{
			sales: &usecase.ProductSales{
				ProductID:    productID,
				ProductName:  product.Name,
				Price:        product.Price,
				TotalOrdered: acc.totalOrdered,
				TotalSales:   money.FormatCurrency(acc.totalSales),
			},
			revenue: acc.totalSales,
		})
	}

	// Stable keeps encounter order for equal revenue.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].revenue > rows[j].revenue
	})

	results := make([]*usecase.ProductSales, 0, len(rows))
	for _, r := range rows {
		results = append(results, r.sales)
	}

	return results, nil
}

// parseDateRange turns the optional report bounds into time values. The end
// bound is pushed to the last instant of its day so a same-day range covers
// the whole day.
func parseDateRange(input *usecase.DateRangeInput) (*time.Time, *time.Time, error) {
	if input == nil {
		return nil, nil, nil
	}

	var from, to *time.Time

	if input.StartDate != "" {
		start, err := parseDate(input.StartDate)
		if err != nil {
			return nil, nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid startDate %q", input.StartDate)
		}
		from = &start
	}

	if input.EndDate != "" {
		end, err := parseDate(input.EndDate)
		if err != nil {
			return nil, nil, errors.Wrapf(domainerrors.ErrValidationFailed, "invalid endDate %q", input.EndDate)
		}
		end = endOfDay(end)
		to = &end
	}

	return from, to, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}

	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// endOfDay normalizes a date to 23:59:59.999 local time.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
