package cmd

import (
	"log/slog"
	"os"

	httpadapter "github.com/Mearylis/Restaurant-Controller/internal/adapters/in/http"
	"github.com/Mearylis/Restaurant-Controller/internal/adapters/out/memory/orderstore"
	"github.com/Mearylis/Restaurant-Controller/internal/adapters/out/payment"
	"github.com/Mearylis/Restaurant-Controller/internal/core/application/dispatch"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/menu"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/staff"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/table"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/services"
	"github.com/Mearylis/Restaurant-Controller/internal/jobs"
	"github.com/Mearylis/Restaurant-Controller/internal/notifications"
)

// CompositionRoot wires every component of the application together.
type CompositionRoot struct {
	logger  *slog.Logger
	facade  *dispatch.Facade
	catalog *menu.Catalog
	store   *orderstore.Store
	jobs    *jobs.JobManager
}

func NewCompositionRoot(config Config) (*CompositionRoot, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	store := orderstore.NewStore()
	gateway := payment.NewStubGateway(config.PaymentDelay, logger)
	hub := notifications.NewHub()

	tables := table.NewRegistry()
	if err := seedTables(tables); err != nil {
		return nil, err
	}

	directory := services.NewStaffDirectory()
	if err := seedStaff(directory); err != nil {
		return nil, err
	}

	catalog := menu.NewCatalog()
	if err := seedMenu(catalog); err != nil {
		return nil, err
	}

	facade, err := dispatch.NewFacade(tables, directory, store, gateway, hub, logger)
	if err != nil {
		return nil, err
	}
	if config.DefaultPricingPolicy != "" {
		if err := facade.SetPricingPolicy(config.DefaultPricingPolicy); err != nil {
			return nil, err
		}
	}

	return &CompositionRoot{
		logger:  logger,
		facade:  facade,
		catalog: catalog,
		store:   store,
		jobs:    jobs.NewJobManager(store, logger),
	}, nil
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Facade() *dispatch.Facade {
	return c.facade
}

// CreateHTTPServer builds the HTTP adapter over the facade and the menu.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(c.facade, c.catalog)
}

// JobManager returns the scheduled background jobs.
func (c *CompositionRoot) JobManager() *jobs.JobManager {
	return c.jobs
}

// seedTables registers the floor plan: ten two-seat tables and five
// four-seat tables.
func seedTables(registry *table.Registry) error {
	for number := 1; number <= 10; number++ {
		tbl, err := table.NewTable(number, 2)
		if err != nil {
			return err
		}
		registry.Register(tbl)
	}
	for number := 11; number <= 15; number++ {
		tbl, err := table.NewTable(number, 4)
		if err != nil {
			return err
		}
		registry.Register(tbl)
	}
	return nil
}

// seedStaff registers the default roster.
func seedStaff(directory *services.StaffDirectory) error {
	roster := []struct {
		name string
		role staff.Role
	}{
		{"John Smith", staff.Server},
		{"Sarah Johnson", staff.Server},
		{"Maria Garcia", staff.Cook},
		{"David Lee", staff.Cook},
		{"Robert Brown", staff.Supervisor},
	}
	for _, entry := range roster {
		member, err := staff.NewStaffMember(kernel.NewStaffID(), entry.name, entry.role)
		if err != nil {
			return err
		}
		if err := directory.Register(member); err != nil {
			return err
		}
	}
	return nil
}

// seedMenu fills the catalog with the opening menu.
func seedMenu(catalog *menu.Catalog) error {
	dishes := []struct {
		name     string
		price    float64
		category string
	}{
		{"Tomato Soup", 10, "starter"},
		{"Caesar Salad", 12.5, "starter"},
		{"Ribeye Steak", 20, "main"},
		{"Grilled Salmon", 18, "main"},
		{"Margherita Pizza", 14, "main"},
		{"Tiramisu", 8, "dessert"},
		{"Espresso", 3, "drink"},
	}
	for _, entry := range dishes {
		dish, err := menu.NewDish(entry.name, kernel.MoneyFromFloat(entry.price), entry.category)
		if err != nil {
			return err
		}
		catalog.Add(dish)
	}
	return nil
}
