package usecase

import (
	"context"
	"fmt"
	"sync"

	"mobilicity/internal/domain/entity"
	"mobilicity/pkg/errors"
)

// In-memory repository fakes shared by the usecase tests.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) GetByEmailAndMethod(ctx context.Context, email, method string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email && user.Method == method {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ListByRole(ctx context.Context, role string, limit, offset int) ([]*entity.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.User
	for _, user := range r.users {
		if user.Role == role {
			copied := *user
			matched = append(matched, &copied)
		}
	}
	return matched, int64(len(matched)), nil
}

type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if category, ok := r.categories[id]; ok {
		return category, nil
	}
	return nil, errors.NotFound("Category", nil)
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	var all []*entity.Category
	for _, category := range r.categories {
		all = append(all, category)
	}
	return all, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	seq      int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == "" {
		r.seq++
		product.ID = fmt.Sprintf("product-%d", r.seq)
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product, ok := r.products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, errors.NotFound("Product", nil)
}

func (r *fakeProductRepo) ListBySeller(ctx context.Context, sellerEmail string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Product
	for _, product := range r.products {
		if product.SellerEmail == sellerEmail {
			copied := *product
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (r *fakeProductRepo) ListAvailableByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Product
	for _, product := range r.products {
		if product.CategoryID == categoryID && product.Available {
			copied := *product
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (r *fakeProductRepo) ListAdvertised(ctx context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Product
	for _, product := range r.products {
		if product.Advertised && product.Available {
			copied := *product
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (r *fakeProductRepo) SetAdvertised(ctx context.Context, id string, advertised bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Advertised = advertised
	return nil
}

func (r *fakeProductRepo) MarkUnavailable(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	product.Available = false
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*entity.Booking
	seq      int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: map[string]*entity.Booking{}}
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking.ID == "" {
		r.seq++
		booking.ID = fmt.Sprintf("booking-%d", r.seq)
	}
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if booking, ok := r.bookings[id]; ok {
		copied := *booking
		return &copied, nil
	}
	return nil, errors.NotFound("Booking", nil)
}

func (r *fakeBookingRepo) ExistsForBuyerAndProduct(ctx context.Context, buyerEmail, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, booking := range r.bookings {
		if booking.BuyerEmail == buyerEmail && booking.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) ListByBuyer(ctx context.Context, buyerEmail string) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Booking
	for _, booking := range r.bookings {
		if booking.BuyerEmail == buyerEmail {
			copied := *booking
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

func (r *fakeBookingRepo) MarkPaid(ctx context.Context, id, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return errors.NotFound("Booking", nil)
	}
	booking.Paid = true
	booking.TransactionID = transactionID
	return nil
}

func (r *fakeBookingRepo) DeleteCompetitors(ctx context.Context, productID, keepBuyerEmail string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deleted := 0
	for id, booking := range r.bookings {
		if booking.ProductID == productID && booking.BuyerEmail != keepBuyerEmail {
			delete(r.bookings, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *fakeBookingRepo) all() []*entity.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Booking
	for _, booking := range r.bookings {
		copied := *booking
		all = append(all, &copied)
	}
	return all
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments []*entity.Payment
	seq      int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if payment.ID == "" {
		r.seq++
		payment.ID = fmt.Sprintf("payment-%d", r.seq)
	}
	copied := *payment
	r.payments = append(r.payments, &copied)
	return nil
}

func (r *fakePaymentRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*entity.Payment
	for _, payment := range r.payments {
		if payment.ProductID == productID {
			copied := *payment
			matched = append(matched, &copied)
		}
	}
	return matched, nil
}

type fakeReportRepo struct {
	mu      sync.Mutex
	reports []*entity.Report
	seq     int
}

func newFakeReportRepo() *fakeReportRepo {
	return &fakeReportRepo{}
}

func (r *fakeReportRepo) Create(ctx context.Context, report *entity.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if report.ID == "" {
		r.seq++
		report.ID = fmt.Sprintf("report-%d", r.seq)
	}
	copied := *report
	r.reports = append(r.reports, &copied)
	return nil
}

func (r *fakeReportRepo) ExistsForBuyerAndProduct(ctx context.Context, buyerEmail, productID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, report := range r.reports {
		if report.BuyerEmail == buyerEmail && report.ProductID == productID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReportRepo) List(ctx context.Context) ([]*entity.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Report
	for _, report := range r.reports {
		copied := *report
		all = append(all, &copied)
	}
	return all, nil
}

type staticTokenIssuer struct {
	token string
}

func (s staticTokenIssuer) Generate(email string) (string, error) {
	return s.token, nil
}
