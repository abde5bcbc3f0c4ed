package orders

import (
	"context"

	"remeralab.com/app/internal/shopapi"
	"remeralab.com/app/pkg/view"
)

type API interface {
	MyOrders(ctx context.Context, token string) ([]shopapi.Order, error)
	GetOrder(ctx context.Context, token, id string) (shopapi.Order, error)
	CancelOrder(ctx context.Context, token, id string) error
}

type Service struct {
	api      API
	currency string
}

func NewService(api API, currency string) *Service {
	return &Service{api: api, currency: currency}
}

func (s *Service) History(ctx context.Context, token string) ([]view.OrderSummary, error) {
	orders, err := s.api.MyOrders(ctx, token)
	if err != nil {
		return nil, err
	}

	out := make([]view.OrderSummary, 0, len(orders))
	for _, o := range orders {
		count := 0
		for _, it := range o.Items {
			count += it.Qty
		}
		out = append(out, view.OrderSummary{
			ID:            o.ID,
			Status:        o.Status,
			PaymentStatus: o.PaymentStatus,
			Total:         view.MoneyFromCents(o.TotalCents, s.currency),
			ItemCount:     count,
			CreatedAt:     o.CreatedAt,
		})
	}
	return out, nil
}

func (s *Service) Detail(ctx context.Context, token, id string) (view.OrderDetail, error) {
	o, err := s.api.GetOrder(ctx, token, id)
	if err != nil {
		return view.OrderDetail{}, err
	}
	return s.detail(o), nil
}

// Cancel cancels a pending order and returns its refreshed detail.
func (s *Service) Cancel(ctx context.Context, token, id string) (view.OrderDetail, error) {
	if err := s.api.CancelOrder(ctx, token, id); err != nil {
		return view.OrderDetail{}, err
	}
	return s.Detail(ctx, token, id)
}

func (s *Service) detail(o shopapi.Order) view.OrderDetail {
	lines := make([]view.OrderLine, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, view.OrderLine{
			ProductID: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			Qty:       it.Qty,
			UnitPrice: view.MoneyFromCents(it.PriceCents, s.currency),
			LineTotal: view.MoneyFromCents(it.PriceCents*int64(it.Qty), s.currency),
			IsCustom:  it.IsCustom,
			ImageURL:  it.ImageURL,
		})
	}
	return view.OrderDetail{
		ID:            o.ID,
		Status:        o.Status,
		PaymentStatus: o.PaymentStatus,
		PaymentMethod: o.PaymentMethod,
		Lines:         lines,
		Total:         view.MoneyFromCents(o.TotalCents, s.currency),
		Address: view.Address{
			Street:     o.ShippingAddress.Street,
			City:       o.ShippingAddress.City,
			Province:   o.ShippingAddress.Province,
			PostalCode: o.ShippingAddress.PostalCode,
		},
		Notes:      o.Notes,
		AdminNotes: o.AdminNotes,
		CreatedAt:  o.CreatedAt,
		CanCancel:  o.Status == "pending",
	}
}
