package collections

import (
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type companyDef struct {
	name      string
	legalName string
}

type campusDef struct {
	name string
	city string
}

type clientDef struct {
	name        string
	contactName string
	email       string
	phone       string
}

type staffDef struct {
	name      string
	role      string
	dailyRate float64
	email     string
}

type catalogDef struct {
	sortOrder   int
	name        string
	description string
	timeBasis   string
	defaultCost float64
	// city keys resolved to campus record ids at seed time
	campusCosts map[string]float64
	isDefault   bool
}

var seedCompanies = []companyDef{
	{name: "Al Noor Education Group", legalName: "Al Noor Education Holding LLC"},
	{name: "Horizon Language Institute", legalName: "Horizon Language Institute FZ-LLC"},
}

var seedCampuses = []campusDef{
	{name: "Dubai Knowledge Park", city: "Dubai"},
	{name: "Abu Dhabi Corniche", city: "Abu Dhabi"},
}

var seedClients = []clientDef{
	{name: "Lycée Jean Mermoz", contactName: "C. Dubois", email: "c.dubois@mermoz.example", phone: "+33 1 42 68 53 00"},
	{name: "Staatliche Realschule München", contactName: "H. Weber", email: "weber@rsm.example", phone: "+49 89 233 96440"},
	{name: "Tashkent International School", contactName: "D. Karimova", email: "dkarimova@tis.example", phone: "+998 71 291 96 70"},
}

var seedStaff = []staffDef{
	{name: "A. Haddad", role: "teacher", email: "a.haddad@alnoor.example"},
	{name: "M. Petrova", role: "teacher", email: "m.petrova@alnoor.example"},
	{name: "J. Okafor", role: "teacher", email: "j.okafor@alnoor.example"},
	{name: "S. Rahman", role: "coordinator", dailyRate: 250, email: "s.rahman@alnoor.example"},
	{name: "L. Fernandes", role: "coordinator", dailyRate: 300, email: "l.fernandes@alnoor.example"},
}

var seedCatalog = []catalogDef{
	{sortOrder: 1, name: "Accommodation", description: "Shared room, half board", timeBasis: "per_night", defaultCost: 110,
		campusCosts: map[string]float64{"Dubai": 120, "Abu Dhabi": 95}, isDefault: true},
	{sortOrder: 2, name: "Lunch", description: "Campus canteen lunch on teaching days", timeBasis: "per_workday", defaultCost: 50,
		campusCosts: map[string]float64{"Abu Dhabi": 45}, isDefault: true},
	{sortOrder: 3, name: "Welcome Pack", description: "Materials, lanyard, city card", timeBasis: "one_off", defaultCost: 15, isDefault: true},
	{sortOrder: 4, name: "Daily Transport", description: "Hotel to campus shuttle", timeBasis: "per_day", defaultCost: 18,
		campusCosts: map[string]float64{"Dubai": 22}, isDefault: true},
	{sortOrder: 5, name: "Museum Trip", description: "Guided museum excursion", timeBasis: "one_off", defaultCost: 20},
	{sortOrder: 6, name: "Desert Safari", description: "Evening desert excursion with dinner", timeBasis: "one_off", defaultCost: 75},
}

// Seed populates the directories, the service catalog and one worked
// example quote. It is safe to call on every startup because it returns
// early if any company records already exist.
func Seed(app *pocketbase.PocketBase) error {
	companiesCol, err := app.FindCollectionByNameOrId("companies")
	if err != nil {
		return fmt.Errorf("seed: could not find companies collection: %w", err)
	}
	existing, err := app.FindAllRecords(companiesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query companies: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: companies collection is empty – inserting seed data …")

	cols := map[string]*core.Collection{}
	for _, name := range []string{
		"campuses", "clients", "staff", "service_catalog", "deals",
		"quotes", "quote_services", "quote_teachers", "quote_coordinators", "quote_other_costs",
	} {
		c, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			return fmt.Errorf("seed: could not find %s collection: %w", name, err)
		}
		cols[name] = c
	}

	// ── companies ────────────────────────────────────────────────────
	var companyIDs []string
	for _, d := range seedCompanies {
		r := core.NewRecord(companiesCol)
		r.Set("name", d.name)
		r.Set("legal_name", d.legalName)
		r.Set("active", true)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save company %q: %w", d.name, err)
		}
		companyIDs = append(companyIDs, r.Id)
	}

	// ── campuses (city -> id for catalog cost resolution) ────────────
	campusIDByCity := map[string]string{}
	for _, d := range seedCampuses {
		r := core.NewRecord(cols["campuses"])
		r.Set("name", d.name)
		r.Set("city", d.city)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save campus %q: %w", d.name, err)
		}
		campusIDByCity[d.city] = r.Id
	}

	// ── clients ──────────────────────────────────────────────────────
	var clientIDs []string
	for _, d := range seedClients {
		r := core.NewRecord(cols["clients"])
		r.Set("company", companyIDs[0])
		r.Set("name", d.name)
		r.Set("contact_name", d.contactName)
		r.Set("email", d.email)
		r.Set("phone", d.phone)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save client %q: %w", d.name, err)
		}
		clientIDs = append(clientIDs, r.Id)
	}

	// ── staff ────────────────────────────────────────────────────────
	staffIDByName := map[string]string{}
	for _, d := range seedStaff {
		r := core.NewRecord(cols["staff"])
		r.Set("name", d.name)
		r.Set("role", d.role)
		r.Set("daily_rate", d.dailyRate)
		r.Set("email", d.email)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save staff %q: %w", d.name, err)
		}
		staffIDByName[d.name] = r.Id
	}

	// ── service catalog ──────────────────────────────────────────────
	var catalogRecords []*core.Record
	for _, d := range seedCatalog {
		costs := map[string]float64{}
		for city, price := range d.campusCosts {
			if id, ok := campusIDByCity[city]; ok {
				costs[id] = price
			}
		}
		r := core.NewRecord(cols["service_catalog"])
		r.Set("sort_order", d.sortOrder)
		r.Set("name", d.name)
		r.Set("description", d.description)
		r.Set("time_basis", d.timeBasis)
		r.Set("default_cost", d.defaultCost)
		r.Set("campus_costs", costs)
		r.Set("is_default", d.isDefault)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save catalog service %q: %w", d.name, err)
		}
		catalogRecords = append(catalogRecords, r)
	}

	// ── deal ─────────────────────────────────────────────────────────
	deal := core.NewRecord(cols["deals"])
	deal.Set("company", companyIDs[0])
	deal.Set("client", clientIDs[0])
	deal.Set("name", "Mermoz Spring Programs 2026")
	deal.Set("status", "open")
	if err := app.Save(deal); err != nil {
		return fmt.Errorf("seed: save deal: %w", err)
	}

	// ── worked example quote ─────────────────────────────────────────
	dubaiCampus := campusIDByCity["Dubai"]

	quote := core.NewRecord(cols["quotes"])
	quote.Set("company", companyIDs[0])
	quote.Set("client", clientIDs[0])
	quote.Set("campus", dubaiCampus)
	quote.Set("deal", deal.Id)
	quote.Set("name", "Spring Intensive 2026")
	quote.Set("arrival_date", "2026-03-01 00:00:00.000Z")
	quote.Set("departure_date", "2026-03-07 00:00:00.000Z")
	quote.Set("participant_count", 12)
	quote.Set("active_workdays", services.DefaultWorkdays())
	quote.Set("teaching_hours", 6)
	quote.Set("manual_price", 950)
	if err := app.Save(quote); err != nil {
		return fmt.Errorf("seed: save quote: %w", err)
	}

	input := services.QuoteInput{
		ArrivalDate:               time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		DepartureDate:             time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC),
		ParticipantCount:          12,
		ActiveWorkdays:            services.DefaultWorkdays(),
		StandardTeachingHours:     6,
		ManualPricePerParticipant: 950,
	}

	// One quote service line per catalog entry, cost resolved for the
	// quote's campus; defaults enabled, optional extras off.
	for i, cat := range catalogRecords {
		costs := map[string]float64{}
		if err := cat.UnmarshalJSONField("campus_costs", &costs); err != nil {
			return fmt.Errorf("seed: decode campus_costs for %q: %w", cat.GetString("name"), err)
		}
		costPrice := services.ResolveCampusCost(costs, dubaiCampus, cat.GetFloat("default_cost"))
		isDefault := cat.GetBool("is_default")

		r := core.NewRecord(cols["quote_services"])
		r.Set("quote", quote.Id)
		r.Set("service", cat.Id)
		r.Set("sort_order", i+1)
		r.Set("name", cat.GetString("name"))
		r.Set("description", cat.GetString("description"))
		r.Set("time_basis", cat.GetString("time_basis"))
		r.Set("cost_price", costPrice)
		r.Set("enabled", isDefault)
		r.Set("is_default", isDefault)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: save quote service %q: %w", cat.GetString("name"), err)
		}

		if isDefault {
			input.Services = append(input.Services, services.ServiceInput{
				ServiceID: cat.Id,
				Name:      cat.GetString("name"),
				TimeBasis: services.TimeBasis(cat.GetString("time_basis")),
				CostPrice: costPrice,
				Enabled:   true,
				IsDefault: true,
			})
		}
	}

	teacher := core.NewRecord(cols["quote_teachers"])
	teacher.Set("quote", quote.Id)
	teacher.Set("staff", staffIDByName["A. Haddad"])
	teacher.Set("sort_order", 1)
	teacher.Set("name", "A. Haddad")
	teacher.Set("hourly_rate", 100)
	if err := app.Save(teacher); err != nil {
		return fmt.Errorf("seed: save quote teacher: %w", err)
	}
	input.Teachers = append(input.Teachers, services.TeacherInput{Name: "A. Haddad", HourlyRate: 100})

	coordinator := core.NewRecord(cols["quote_coordinators"])
	coordinator.Set("quote", quote.Id)
	coordinator.Set("staff", staffIDByName["S. Rahman"])
	coordinator.Set("sort_order", 1)
	coordinator.Set("name", "S. Rahman")
	coordinator.Set("daily_rate", 250) // copied from directory, frozen on the quote
	coordinator.Set("enabled", true)
	if err := app.Save(coordinator); err != nil {
		return fmt.Errorf("seed: save quote coordinator: %w", err)
	}
	input.Coordinators = append(input.Coordinators, services.CoordinatorInput{Name: "S. Rahman", DailyRate: 250, Enabled: true})

	otherCost := core.NewRecord(cols["quote_other_costs"])
	otherCost.Set("quote", quote.Id)
	otherCost.Set("sort_order", 1)
	otherCost.Set("name", "Venue Insurance")
	otherCost.Set("amount", 300)
	if err := app.Save(otherCost); err != nil {
		return fmt.Errorf("seed: save quote other cost: %w", err)
	}
	input.OtherCosts = append(input.OtherCosts, services.CostLine{Name: "Venue Insurance", Cost: 300})

	SnapshotSummary(quote, services.ComputeSummary(input))
	if err := app.Save(quote); err != nil {
		return fmt.Errorf("seed: save quote snapshot: %w", err)
	}

	log.Println("seed: done")
	return nil
}
