package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jgmedellin/coffee-shop-api/internal/core/domain"
)

// Map-backed repository stubs shared by the service tests.

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.nextID++
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.Email]; !ok {
		return nil, domain.ErrUserNotFound
	}
	r.users[user.Email] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int) error {
	for email, u := range r.users {
		if u.ID == id {
			delete(r.users, email)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

type stubProductRepo struct {
	products map[int]*domain.Product
	nextID   int
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int]*domain.Product), nextID: 1}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) CreateMany(_ context.Context, products []domain.Product) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		p.ID = r.nextID
		r.nextID++
		r.products[p.ID] = cloneProduct(&p)
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProductRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, p := range r.products {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int) (*domain.Product, error) {
	if p, ok := r.products[id]; ok {
		return cloneProduct(p), nil
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if _, ok := r.products[product.ID]; !ok {
		return nil, domain.ErrProductNotFound
	}
	r.products[product.ID] = cloneProduct(product)
	return cloneProduct(product), nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

type stubOrderRepo struct {
	orders map[string]*domain.Order
	seq    int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: make(map[string]*domain.Order)}
}

func cloneOrder(o *domain.Order) *domain.Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Products = append([]domain.OrderLine(nil), o.Products...)
	return &clone
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (*domain.Order, error) {
	copy := cloneOrder(order)
	r.seq++
	copy.ID = fmt.Sprintf("ord-%s", strconv.Itoa(r.seq))
	r.orders[copy.ID] = cloneOrder(copy)
	return copy, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	if o, ok := r.orders[id]; ok {
		return cloneOrder(o), nil
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]domain.Order, error) {
	out := make([]domain.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, *cloneOrder(o))
	}
	return out, nil
}

func (r *stubOrderRepo) FindByCustomerEmail(_ context.Context, email string) ([]domain.Order, error) {
	var out []domain.Order
	for _, o := range r.orders {
		if o.CustomerEmail == email {
			out = append(out, *cloneOrder(o))
		}
	}
	return out, nil
}

func (r *stubOrderRepo) Update(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if _, ok := r.orders[order.ID]; !ok {
		return nil, domain.ErrOrderNotFound
	}
	r.orders[order.ID] = cloneOrder(order)
	return cloneOrder(order), nil
}

func (r *stubOrderRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.orders[id]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.orders, id)
	return nil
}

func (r *stubOrderRepo) DeleteByCustomerEmail(_ context.Context, email string) (int64, error) {
	var n int64
	for id, o := range r.orders {
		if o.CustomerEmail == email {
			delete(r.orders, id)
			n++
		}
	}
	return n, nil
}

type stubCache struct {
	products    []domain.Product
	warm        bool
	sets        int
	invalidates int
}

func (c *stubCache) Get(_ context.Context) ([]domain.Product, bool) {
	if !c.warm {
		return nil, false
	}
	return c.products, true
}

func (c *stubCache) Set(_ context.Context, products []domain.Product) {
	c.products = products
	c.warm = true
	c.sets++
}

func (c *stubCache) Invalidate(_ context.Context) {
	c.products = nil
	c.warm = false
	c.invalidates++
}
