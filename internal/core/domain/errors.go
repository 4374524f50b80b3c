package domain

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")

	ErrProductExists   = errors.New("product already exists")
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateNames  = errors.New("duplicate product names in request")

	ErrOrderNotFound     = errors.New("order not found")
	ErrNoOrders          = errors.New("no orders found")
	ErrNoUsableProducts  = errors.New("no valid products found for the given ids")
	ErrOrderCustomer     = errors.New("order customer not found")
	ErrInvalidOrderState = errors.New("invalid order status")
)
