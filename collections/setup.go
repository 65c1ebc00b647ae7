package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures all dashboard collections: the
// subsidiary/client/campus/staff directories, the service catalog, deals,
// and the quote aggregate with its owned line collections.
func Setup(app *pocketbase.PocketBase) {
	companies := ensureCollection(app, "companies", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "legal_name", Required: false})
		c.Fields.Add(&core.BoolField{Name: "active"})
	})

	clients := ensureCollection(app, "clients", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "company",
			Required:     false,
			CollectionId: companies.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact_name", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	campuses := ensureCollection(app, "campuses", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
	})

	staff := ensureCollection(app, "staff", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "role",
			Required:  true,
			Values:    []string{"teacher", "coordinator"},
			MaxSelect: 1,
		})
		// Directory default for coordinators; teacher rates are always
		// entered per quote.
		c.Fields.Add(&core.NumberField{Name: "daily_rate", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
	})

	serviceCatalog := ensureCollection(app, "service_catalog", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "time_basis",
			Required:  true,
			Values:    []string{"one_off", "per_day", "per_night", "per_workday"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.NumberField{Name: "default_cost", Required: false})
		// Map of campus id -> unit price override.
		c.Fields.Add(&core.JSONField{Name: "campus_costs", MaxSize: 51200})
		c.Fields.Add(&core.BoolField{Name: "is_default"})
	})

	deals := ensureCollection(app, "deals", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "company",
			Required:     false,
			CollectionId: companies.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "client",
			Required:     false,
			CollectionId: clients.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  false,
			Values:    []string{"open", "won", "lost"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	quotes := ensureCollection(app, "quotes", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:         "company",
			Required:     false,
			CollectionId: companies.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "client",
			Required:     false,
			CollectionId: clients.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "campus",
			Required:     false,
			CollectionId: campuses.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "deal",
			Required:     false,
			CollectionId: deals.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.DateField{Name: "arrival_date", Required: false})
		c.Fields.Add(&core.DateField{Name: "departure_date", Required: false})
		c.Fields.Add(&core.NumberField{Name: "participant_count", Required: false})
		// List of weekday labels counting as workdays for this program.
		c.Fields.Add(&core.JSONField{Name: "active_workdays", MaxSize: 2048})
		c.Fields.Add(&core.NumberField{Name: "teaching_hours", Required: false})
		c.Fields.Add(&core.NumberField{Name: "manual_price", Required: false})
		c.Fields.Add(&core.TextField{Name: "notes", Required: false})

		// Summary snapshot, written on every save. Downstream consumers
		// (share view, deal aggregation) read these stored figures and
		// never recompute them.
		c.Fields.Add(&core.NumberField{Name: "calendar_days", Required: false})
		c.Fields.Add(&core.NumberField{Name: "workdays", Required: false})
		c.Fields.Add(&core.NumberField{Name: "base_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "total_internal_cost", Required: false})
		c.Fields.Add(&core.NumberField{Name: "cost_per_participant", Required: false})
		c.Fields.Add(&core.NumberField{Name: "net_profit", Required: false})
		c.Fields.Add(&core.NumberField{Name: "profit_margin", Required: false})
		c.Fields.Add(&core.JSONField{Name: "breakdown", MaxSize: 102400})

		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "quote_services", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "service",
			Required:     false,
			CollectionId: serviceCatalog.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "time_basis",
			Required:  true,
			Values:    []string{"one_off", "per_day", "per_night", "per_workday"},
			MaxSelect: 1,
		})
		// Campus-resolved unit cost, re-resolved when the quote's campus
		// changes.
		c.Fields.Add(&core.NumberField{Name: "cost_price", Required: false})
		c.Fields.Add(&core.BoolField{Name: "enabled"})
		c.Fields.Add(&core.BoolField{Name: "is_default"})
		// 0 means no override (full participant count).
		c.Fields.Add(&core.NumberField{Name: "participant_override", Required: false})
	})

	ensureCollection(app, "quote_teachers", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "staff",
			Required:     false,
			CollectionId: staff.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		// Always entered manually on the quote, defaults to 0 until priced.
		c.Fields.Add(&core.NumberField{Name: "hourly_rate", Required: false})
	})

	ensureCollection(app, "quote_coordinators", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "staff",
			Required:     false,
			CollectionId: staff.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		// Copied from the staff directory at assignment time, frozen after.
		c.Fields.Add(&core.NumberField{Name: "daily_rate", Required: false})
		c.Fields.Add(&core.BoolField{Name: "enabled"})
	})

	ensureCollection(app, "quote_other_costs", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "quote",
			Required:      true,
			CollectionId:  quotes.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "amount", Required: false})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
