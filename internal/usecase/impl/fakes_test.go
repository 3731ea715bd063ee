package impl

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/domain/entity"
	"backoffice/internal/domain/repository"
	"backoffice/internal/domain/service"
)

// In-memory collaborators for the service tests. Each fake keeps just enough
// state to exercise the business rules; error injection fields simulate the
// failure paths.

type fakeUserRepo struct {
	users     map[string]*entity.User // keyed by id
	nextID    int
	createErr error
	updateErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if user, ok := r.users[id]; ok {
		clone := *user
		return &clone, nil
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if r.createErr != nil {
		return r.createErr
	}

	r.nextID++
	user.ID = "user-" + strconv.Itoa(r.nextID)
	clone := *user
	r.users[user.ID] = &clone

	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}

	clone := *user
	r.users[user.ID] = &clone

	return nil
}

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	nextID    int
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[string]*entity.Customer)}
}

func (r *fakeCustomerRepo) FindByID(_ context.Context, id string) (*entity.Customer, error) {
	if customer, ok := r.customers[id]; ok {
		clone := *customer
		return &clone, nil
	}

	return nil, repository.ErrCustomerNotFound
}

func (r *fakeCustomerRepo) FindAll(_ context.Context, filter repository.CustomerFilter) ([]*entity.Customer, error) {
	contains := func(haystack, needle string) bool {
		return needle == "" || strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	var result []*entity.Customer
	for _, customer := range r.customers {
		if contains(customer.FirstName, filter.FirstName) &&
			contains(customer.LastName, filter.LastName) &&
			contains(customer.Email, filter.Email) {
			clone := *customer
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (r *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	r.nextID++
	customer.ID = "customer-" + strconv.Itoa(r.nextID)
	clone := *customer
	r.customers[customer.ID] = &clone

	return nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	if _, ok := r.customers[customer.ID]; !ok {
		return repository.ErrCustomerNotFound
	}

	clone := *customer
	r.customers[customer.ID] = &clone

	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.customers[id]; !ok {
		return repository.ErrCustomerNotFound
	}

	delete(r.customers, id)

	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) FindByID(_ context.Context, id string) (*entity.Product, error) {
	if product, ok := r.products[id]; ok {
		clone := *product
		return &clone, nil
	}

	return nil, repository.ErrProductNotFound
}

func (r *fakeProductRepo) matches(product *entity.Product, filter repository.ProductFilter) bool {
	if filter.Name != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.Name)) {
		return false
	}
	if filter.Brand != "" && !strings.Contains(strings.ToLower(product.Brand), strings.ToLower(filter.Brand)) {
		return false
	}
	// Lexicographic $gte, like the document store applies to price strings.
	if filter.MinPrice != "" && product.Price < filter.MinPrice {
		return false
	}
	if filter.From != nil && product.CreatedAt.Before(*filter.From) {
		return false
	}
	if filter.To != nil && product.CreatedAt.After(*filter.To) {
		return false
	}

	return true
}

func (r *fakeProductRepo) FindAll(_ context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var result []*entity.Product
	for _, product := range r.products {
		if r.matches(product, filter) {
			clone := *product
			result = append(result, &clone)
		}
	}

	return result, nil
}

func (r *fakeProductRepo) Count(_ context.Context, filter repository.ProductFilter) (int64, error) {
	var count int64
	for _, product := range r.products {
		if r.matches(product, filter) {
			count++
		}
	}

	return count, nil
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.nextID++
	product.ID = "product-" + strconv.Itoa(r.nextID)
	clone := *product
	r.products[product.ID] = &clone

	return nil
}

func (r *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	if _, ok := r.products[product.ID]; !ok {
		return repository.ErrProductNotFound
	}

	clone := *product
	r.products[product.ID] = &clone

	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return repository.ErrProductNotFound
	}

	delete(r.products, id)

	return nil
}

type fakeOrderRepo struct {
	orders []*entity.Order
	nextID int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{}
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id string) (*entity.Order, error) {
	for _, order := range r.orders {
		if order.ID == id {
			clone := *order
			return &clone, nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindAll(_ context.Context, filter repository.OrderFilter) ([]*entity.Order, error) {
	var result []*entity.Order
	for _, order := range r.orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		if filter.From != nil && order.OrderDate.Before(*filter.From) {
			continue
		}
		if filter.To != nil && order.OrderDate.After(*filter.To) {
			continue
		}

		clone := *order
		result = append(result, &clone)
	}

	return result, nil
}

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.nextID++
	order.ID = "order-" + strconv.Itoa(r.nextID)
	clone := *order
	r.orders = append(r.orders, &clone)

	return nil
}

func (r *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	for i, existing := range r.orders {
		if existing.ID == order.ID {
			clone := *order
			r.orders[i] = &clone
			return nil
		}
	}

	return repository.ErrOrderNotFound
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	for i, existing := range r.orders {
		if existing.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}

	return repository.ErrOrderNotFound
}

// stubHasher hashes by prefixing; good enough to verify what the service
// stores and compares.
type stubHasher struct {
	hashErr error
}

func (h *stubHasher) Hash(password string) (string, error) {
	if h.hashErr != nil {
		return "", h.hashErr
	}

	return "hashed:" + password, nil
}

func (h *stubHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

type stubTokenService struct {
	issueErr  error
	verifyErr error
}

func (s *stubTokenService) IssueAccess(userID string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "access-" + userID, nil
}

func (s *stubTokenService) IssueRefresh(userID string) (string, error) {
	if s.issueErr != nil {
		return "", s.issueErr
	}

	return "refresh-" + userID, nil
}

func (s *stubTokenService) Verify(tokenString string, kind service.TokenKind) (*service.Claims, error) {
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}

	prefix := "access-"
	if kind == service.TokenKindRefresh {
		prefix = "refresh-"
	}
	if !strings.HasPrefix(tokenString, prefix) {
		return nil, fmt.Errorf("token is not a %s", kind)
	}

	return &service.Claims{
		UserID: strings.TrimPrefix(tokenString, prefix),
		Kind:   kind,
	}, nil
}

type stubOTPGenerator struct {
	code string
	err  error
}

func (g *stubOTPGenerator) Generate() (string, error) {
	if g.err != nil {
		return "", g.err
	}

	return g.code, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

func (m *fakeMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	if m.sendErr != nil {
		return m.sendErr
	}

	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})

	return nil
}

// fixedClock always reports the same instant.
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}
