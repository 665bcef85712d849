package handler

import (
	"github.com/washline/laundry-system/internal/core/domain"
)

// --- Domain → HTTP response ---

func toOrderResponse(o *domain.Order) *orderResponse {
	if o == nil {
		return nil
	}
	resp := &orderResponse{
		ID:           o.ID,
		Customer:     o.Customer,
		CustomerName: o.CustomerName,
		Clothes:      o.Clothes,
		WashType:     o.WashType,
		ReturnTime:   o.ReturnTime,
		Status:       string(o.Status),
		Rider:        o.Rider,
		CreatedAt:    o.CreatedAt.UTC(),
	}
	for _, h := range o.StatusHistory {
		resp.StatusHistory = append(resp.StatusHistory, statusHistoryResponse{
			Status:    string(h.Status),
			Timestamp: h.Timestamp.UTC(),
		})
	}
	return resp
}

func toOrdersEnvelope(orders []*domain.Order) ordersEnvelope {
	items := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		items = append(items, *toOrderResponse(o))
	}
	return ordersEnvelope{Success: true, Orders: items}
}
