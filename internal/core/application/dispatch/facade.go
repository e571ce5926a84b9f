// Package dispatch is the application layer. The Facade drives the order
// lifecycle end to end: seating guests, placing and pricing orders,
// assigning staff, moving orders through the kitchen, and settling payment.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/customer"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/staff"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/table"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/services"
	"github.com/Mearylis/Restaurant-Controller/internal/core/ports"
	"github.com/Mearylis/Restaurant-Controller/internal/notifications"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"
)

// firstOrderID is where the order number sequence starts.
const firstOrderID = 1001

var (
	// ErrTableNotOccupied means an order was placed for a table without a guest.
	ErrTableNotOccupied = errors.New("table is not occupied")

	// ErrOrderHasNoItems means an order was placed with an empty item list.
	ErrOrderHasNoItems = errors.New("order has no items")

	// ErrOrderNotPreparing means the order cannot be marked ready from its
	// current status.
	ErrOrderNotPreparing = errors.New("order is not being prepared")

	// ErrOrderNotReady means the order cannot be served from its current status.
	ErrOrderNotReady = errors.New("order is not ready")

	// ErrOrderNotServed means the order cannot be settled from its current status.
	ErrOrderNotServed = errors.New("order has not been served")

	// ErrPaymentDeclined means the gateway refused the charge.
	ErrPaymentDeclined = errors.New("payment was declined")
)

// Facade coordinates tables, staff, pricing, notifications, storage and
// payment for the full order lifecycle. It is safe for concurrent use.
type Facade struct {
	tables    *table.Registry
	directory *services.StaffDirectory
	store     ports.OrderStore
	gateway   ports.PaymentProcessor
	engine    services.PricingEngine
	hub       *notifications.Hub
	sequence  *kernel.OrderIDSequence
	logger    *slog.Logger

	mutex  sync.RWMutex
	policy services.PricingPolicy
}

func NewFacade(
	tables *table.Registry,
	directory *services.StaffDirectory,
	store ports.OrderStore,
	gateway ports.PaymentProcessor,
	hub *notifications.Hub,
	logger *slog.Logger,
) (*Facade, error) {
	if tables == nil {
		return nil, errs.NewValueIsRequiredError("tables")
	}
	if directory == nil {
		return nil, errs.NewValueIsRequiredError("directory")
	}
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	if gateway == nil {
		return nil, errs.NewValueIsRequiredError("gateway")
	}
	if hub == nil {
		return nil, errs.NewValueIsRequiredError("hub")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Facade{
		tables:    tables,
		directory: directory,
		store:     store,
		gateway:   gateway,
		engine:    services.NewPricingEngine(),
		hub:       hub,
		sequence:  kernel.NewOrderIDSequence(firstOrderID),
		logger:    logger,
		policy:    services.RegularPolicy{},
	}, nil
}

// Hub exposes the notification listeners for reporting.
func (f *Facade) Hub() *notifications.Hub {
	return f.hub
}

// Tables exposes the table registry.
func (f *Facade) Tables() *table.Registry {
	return f.tables
}

// Directory exposes the staff directory.
func (f *Facade) Directory() *services.StaffDirectory {
	return f.directory
}

// OccupyTable seats a guest at the table.
func (f *Facade) OccupyTable(number int, guest *customer.Customer) error {
	tbl, err := f.tables.ByNumber(number)
	if err != nil {
		return err
	}
	if err := tbl.Occupy(guest); err != nil {
		return err
	}
	f.logger.Info("table occupied",
		slog.Int("table", number),
		slog.String("guest", guest.Name()))
	return nil
}

// FreeTable releases the table regardless of its state.
func (f *Facade) FreeTable(number int) error {
	tbl, err := f.tables.ByNumber(number)
	if err != nil {
		return err
	}
	tbl.Free()
	f.logger.Info("table freed", slog.Int("table", number))
	return nil
}

// PlaceOrder creates an order for the guest seated at the table, prices it
// under the current policy and the guest's loyalty discount, assigns a
// waiter and a cook when available, and hands it to the kitchen.
func (f *Facade) PlaceOrder(
	tableNumber int,
	items []order.LineItem,
	instructions string,
) (*order.Order, error) {
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	tbl, err := f.tables.ByNumber(tableNumber)
	if err != nil {
		return nil, err
	}
	guest := tbl.Guest()
	if guest == nil {
		return nil, fmt.Errorf("table %d: %w", tableNumber, ErrTableNotOccupied)
	}

	id := f.sequence.Next()
	o, err := order.NewOrder(id, tableNumber, guest)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := o.AddItem(item); err != nil {
			return nil, err
		}
	}
	if instructions != "" {
		if err := o.SetSpecialInstructions(instructions); err != nil {
			return nil, err
		}
	}

	f.hub.AttachAll(o)

	total := f.engine.ComputeTotal(items, f.currentPolicy(), guest.LoyaltyDiscount())
	if err := o.SetTotal(total); err != nil {
		return nil, err
	}

	if !f.directory.AssignOrder(o, staff.Server) {
		f.logger.Warn("no waiter available", slog.String("orderId", id.String()))
	}
	if !f.directory.AssignOrder(o, staff.Cook) {
		f.logger.Warn("no cook available", slog.String("orderId", id.String()))
	}

	if err := tbl.AssignOrder(id); err != nil {
		return nil, err
	}
	if err := f.store.Add(o); err != nil {
		return nil, err
	}
	if err := o.ChangeStatus(order.Preparing); err != nil {
		return nil, err
	}

	f.logger.Info("order placed",
		slog.String("orderId", id.String()),
		slog.Int("table", tableNumber),
		slog.String("total", total.String()))
	return o, nil
}

// MarkOrderReady moves an order from Preparing to Ready.
func (f *Facade) MarkOrderReady(id kernel.OrderID) error {
	o, err := f.store.GetByID(id)
	if err != nil {
		return err
	}
	if o.Status() != order.Preparing {
		return fmt.Errorf("order %s is %s: %w", id, o.Status(), ErrOrderNotPreparing)
	}
	return o.ChangeStatus(order.Ready)
}

// MarkOrderServed moves an order from Ready to Served.
func (f *Facade) MarkOrderServed(id kernel.OrderID) error {
	o, err := f.store.GetByID(id)
	if err != nil {
		return err
	}
	if o.Status() != order.Ready {
		return fmt.Errorf("order %s is %s: %w", id, o.Status(), ErrOrderNotReady)
	}
	return o.ChangeStatus(order.Served)
}

// CompleteOrder settles a served order: it charges the guest, marks the
// order paid, releases the assigned staff, frees the table and credits
// loyalty points.
func (f *Facade) CompleteOrder(ctx context.Context, id kernel.OrderID, method string) error {
	o, err := f.store.GetByID(id)
	if err != nil {
		return err
	}
	if o.Status() != order.Served {
		return fmt.Errorf("order %s is %s: %w", id, o.Status(), ErrOrderNotServed)
	}

	approved, err := f.gateway.Process(ctx, o.Total(), method)
	if err != nil {
		return fmt.Errorf("process payment for order %s: %w", id, err)
	}
	if !approved {
		return fmt.Errorf("order %s: %w", id, ErrPaymentDeclined)
	}

	if err := o.ChangeStatus(order.Paid); err != nil {
		return err
	}

	f.directory.Release(o)

	if tbl, err := f.tables.ByNumber(o.TableNumber()); err == nil {
		tbl.Free()
	}

	if guest := o.Customer(); guest != nil {
		guest.AddOrderToHistory(id, o.Total())
	}

	f.logger.Info("order settled",
		slog.String("orderId", id.String()),
		slog.String("method", method),
		slog.String("total", o.Total().String()))
	return nil
}

// GetOrder returns the order with the given ID from either partition.
func (f *Facade) GetOrder(id kernel.OrderID) (*order.Order, error) {
	return f.store.GetByID(id)
}

// SetPricingPolicy switches the policy applied to new orders.
func (f *Facade) SetPricingPolicy(name string) error {
	policy, err := services.PolicyFromName(name)
	if err != nil {
		return err
	}
	f.mutex.Lock()
	f.policy = policy
	f.mutex.Unlock()
	f.logger.Info("pricing policy changed", slog.String("policy", policy.Description()))
	return nil
}

// PricingPolicy returns the policy currently applied to new orders.
func (f *Facade) PricingPolicy() services.PricingPolicy {
	return f.currentPolicy()
}

func (f *Facade) currentPolicy() services.PricingPolicy {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return f.policy
}

// Statistics bundles the figures the reporting endpoints expose.
type Statistics struct {
	Store ports.StoreStatistics
	Staff services.DirectoryStatistics
}

func (f *Facade) Statistics() Statistics {
	return Statistics{
		Store: f.store.Statistics(),
		Staff: f.directory.Statistics(),
	}
}
