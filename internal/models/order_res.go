package models

import (
	"time"

	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/entities"
)

// OrderRes mirrors the order API JSON document.
type OrderRes struct {
	ID              string             `json:"_id" validate:"required"`
	Status          string             `json:"status" validate:"required"`
	CreatedAt       time.Time          `json:"createdAt"`
	ShippingAddress ShippingAddressRes `json:"shippingAddress"`
	Items           []OrderItemRes     `json:"items" validate:"dive"`
	Subtotal        float64            `json:"subtotal"`
	ShippingCost    float64            `json:"shippingCost"`
	Tax             float64            `json:"tax"`
	TotalAmount     float64            `json:"totalAmount"`
}

type ShippingAddressRes struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type OrderItemRes struct {
	ID       string     `json:"_id"`
	Product  ProductRes `json:"product"`
	Price    float64    `json:"price" validate:"gte=0"`
	Quantity int        `json:"quantity" validate:"gte=0"`
}

type ProductRes struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

func (r *OrderRes) ToEntity() *entities.Order {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ID: it.ID,
			Product: entities.Product{
				Name:  it.Product.Name,
				Image: it.Product.Image,
			},
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	return &entities.Order{
		ID:        r.ID,
		Status:    entities.OrderStatus(r.Status),
		CreatedAt: r.CreatedAt,
		ShippingAddress: entities.ShippingAddress{
			Street:  r.ShippingAddress.Street,
			City:    r.ShippingAddress.City,
			State:   r.ShippingAddress.State,
			ZipCode: r.ShippingAddress.ZipCode,
			Country: r.ShippingAddress.Country,
		},
		Items:        items,
		Subtotal:     r.Subtotal,
		ShippingCost: r.ShippingCost,
		Tax:          r.Tax,
		TotalAmount:  r.TotalAmount,
	}
}
