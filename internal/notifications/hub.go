package notifications

import (
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
)

// Hub bundles the standard set of listeners so the application layer can
// attach all of them to a new order in one call.
type Hub struct {
	Kitchen           *KitchenSubscriber
	Manager           *ManagerSubscriber
	Waiter            *WaiterSubscriber
	CustomerRelations *CustomerRelationsSubscriber
}

func NewHub() *Hub {
	return &Hub{
		Kitchen:           NewKitchenSubscriber(),
		Manager:           NewManagerSubscriber(),
		Waiter:            NewWaiterSubscriber(),
		CustomerRelations: NewCustomerRelationsSubscriber(),
	}
}

// AttachAll subscribes every listener to the order.
func (h *Hub) AttachAll(o *order.Order) {
	o.Attach(h.Kitchen)
	o.Attach(h.Manager)
	o.Attach(h.Waiter)
	o.Attach(h.CustomerRelations)
}
