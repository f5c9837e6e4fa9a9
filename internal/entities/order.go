package entities

import "time"

// OrderStatus is kept open-ended: the order service may introduce new states
// and the storefront must still render them.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Cancellable reports whether a customer may still cancel an order in this state.
func (s OrderStatus) Cancellable() bool {
	return s == OrderStatusPending
}

type Order struct {
	ID              string
	Status          OrderStatus
	CreatedAt       time.Time
	ShippingAddress ShippingAddress
	Items           []OrderItem
	Subtotal        float64
	ShippingCost    float64
	Tax             float64
	TotalAmount     float64
}

type ShippingAddress struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

type OrderItem struct {
	ID       string
	Product  Product
	Price    float64
	Quantity int
}

type Product struct {
	Name  string
	Image string
}

// Clone returns a copy with its own Items slice, so callers can change the
// status or the items without touching the original.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	cp := *o
	cp.Items = append([]OrderItem(nil), o.Items...)
	return &cp
}
