package orderdetail

import (
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/entities"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/helpers"
	"github.com/RehanAthallahAzhar/tokohobby-storefront/internal/i18n"
)

const shortIDLength = 6

// Tone is the styling family of the status badge.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneNeutral  Tone = "neutral"
)

func StatusTone(s entities.OrderStatus) Tone {
	switch s {
	case entities.OrderStatusDelivered:
		return TonePositive
	case entities.OrderStatusCancelled:
		return ToneNegative
	default:
		return ToneNeutral
	}
}

type ViewModel struct {
	OrderID   string     `json:"orderId,omitempty"`
	Phase     string     `json:"phase"`
	Loading   bool       `json:"loading"`
	Condition string     `json:"condition,omitempty"`
	Message   string     `json:"message,omitempty"`
	Notice    string     `json:"notice,omitempty"`
	Order     *OrderView `json:"order,omitempty"`
}

type OrderView struct {
	ID          string         `json:"id"`
	Number      string         `json:"number"`
	PlacedOn    string         `json:"placedOn"`
	Status      string         `json:"status"`
	StatusLabel string         `json:"statusLabel"`
	StatusTone  Tone           `json:"statusTone"`
	Address     AddressView    `json:"shippingAddress"`
	Items       []ItemView     `json:"items"`
	Subtotal    string         `json:"subtotal"`
	Shipping    string         `json:"shipping"`
	Tax         string         `json:"tax"`
	Total       string         `json:"total"`
	Cancel      *CancelControl `json:"cancel,omitempty"`
}

type AddressView struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type ItemView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	LineTotal string `json:"lineTotal"`
}

// CancelControl is present only while the order can be cancelled.
type CancelControl struct {
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

// Snapshot renders the current state. Loading and failure states carry
// nothing but their indicator or message.
func (v *View) Snapshot() ViewModel {
	v.mu.Lock()
	defer v.mu.Unlock()

	vm := ViewModel{
		OrderID:   v.orderID,
		Phase:     v.phase.String(),
		Condition: v.condition.String(),
	}

	switch {
	case v.phase == PhaseLoading:
		vm.Loading = true
		vm.Condition = ""
	case v.phase == PhaseError:
		vm.Message = v.message
	case v.order == nil:
		vm.Message = v.message
	default:
		vm.Notice = v.notice
		vm.Order = renderOrder(v.order, v.tr, v.cancelling)
	}

	return vm
}

func renderOrder(o *entities.Order, tr i18n.Translator, cancelling bool) *OrderView {
	items := make([]ItemView, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemView{
			ID:        it.ID,
			Name:      it.Product.Name,
			Image:     it.Product.Image,
			Quantity:  it.Quantity,
			UnitPrice: helpers.FormatMoney(it.Price),
			LineTotal: helpers.LineTotal(it.Price, it.Quantity),
		})
	}

	ov := &OrderView{
		ID:          o.ID,
		Number:      helpers.ShortID(o.ID, shortIDLength),
		PlacedOn:    tr.FormatDate(o.CreatedAt),
		Status:      string(o.Status),
		StatusLabel: tr.Status(string(o.Status)),
		StatusTone:  StatusTone(o.Status),
		Address: AddressView{
			Street:  o.ShippingAddress.Street,
			City:    o.ShippingAddress.City,
			State:   o.ShippingAddress.State,
			ZipCode: o.ShippingAddress.ZipCode,
			Country: o.ShippingAddress.Country,
		},
		Items:    items,
		Subtotal: helpers.FormatMoney(o.Subtotal),
		Shipping: helpers.FormatMoney(o.ShippingCost),
		Tax:      helpers.FormatMoney(o.Tax),
		Total:    helpers.FormatMoney(o.TotalAmount),
	}

	if o.Status.Cancellable() {
		ov.Cancel = &CancelControl{Label: tr.T("cancelOrder"), Disabled: cancelling}
		if cancelling {
			ov.Cancel.Label = tr.T("cancelling")
		}
	}

	return ov
}
