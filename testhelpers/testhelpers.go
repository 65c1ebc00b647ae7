// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCompany creates a company (subsidiary) record and returns it.
func CreateTestCompany(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("companies")
	if err != nil {
		t.Fatalf("failed to find companies collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("active", true)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test company: %v", err)
	}

	return record
}

// CreateTestClient creates a client record linked to a company.
func CreateTestClient(t *testing.T, app *pocketbase.PocketBase, companyID, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("clients")
	if err != nil {
		t.Fatalf("failed to find clients collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("name", name)
	record.Set("contact_name", "Test Contact")
	record.Set("email", "contact@client.example")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test client: %v", err)
	}

	return record
}

// CreateTestCampus creates a campus record.
func CreateTestCampus(t *testing.T, app *pocketbase.PocketBase, name, city string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("campuses")
	if err != nil {
		t.Fatalf("failed to find campuses collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("city", city)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test campus: %v", err)
	}

	return record
}

// CreateTestStaff creates a staff directory record.
func CreateTestStaff(t *testing.T, app *pocketbase.PocketBase, name, role string, dailyRate float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("staff")
	if err != nil {
		t.Fatalf("failed to find staff collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("role", role)
	record.Set("daily_rate", dailyRate)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test staff: %v", err)
	}

	return record
}

// CreateTestCatalogService creates a service_catalog record.
func CreateTestCatalogService(t *testing.T, app *pocketbase.PocketBase, sortOrder int, name, timeBasis string, defaultCost float64, isDefault bool, campusCosts map[string]float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("service_catalog")
	if err != nil {
		t.Fatalf("failed to find service_catalog collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("sort_order", sortOrder)
	record.Set("name", name)
	record.Set("time_basis", timeBasis)
	record.Set("default_cost", defaultCost)
	record.Set("is_default", isDefault)
	if campusCosts != nil {
		record.Set("campus_costs", campusCosts)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test catalog service: %v", err)
	}

	return record
}

// CreateTestQuote creates a quote record linked to a company and client.
func CreateTestQuote(t *testing.T, app *pocketbase.PocketBase, companyID, clientID, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		t.Fatalf("failed to find quotes collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("client", clientID)
	record.Set("name", name)
	record.Set("participant_count", 10)
	record.Set("active_workdays", []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"})
	record.Set("teaching_hours", 6)
	record.Set("arrival_date", "2026-03-01 00:00:00.000Z")
	record.Set("departure_date", "2026-03-07 00:00:00.000Z")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote: %v", err)
	}

	return record
}

// CreateTestQuoteService creates a quote_services line record.
func CreateTestQuoteService(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, name, timeBasis string, costPrice float64, enabled, isDefault bool) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_services")
	if err != nil {
		t.Fatalf("failed to find quote_services collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("name", name)
	record.Set("time_basis", timeBasis)
	record.Set("cost_price", costPrice)
	record.Set("enabled", enabled)
	record.Set("is_default", isDefault)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote service: %v", err)
	}

	return record
}

// CreateTestQuoteTeacher creates a quote_teachers record.
func CreateTestQuoteTeacher(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, name string, hourlyRate float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_teachers")
	if err != nil {
		t.Fatalf("failed to find quote_teachers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("name", name)
	record.Set("hourly_rate", hourlyRate)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote teacher: %v", err)
	}

	return record
}

// CreateTestQuoteCoordinator creates a quote_coordinators record.
func CreateTestQuoteCoordinator(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, name string, dailyRate float64, enabled bool) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_coordinators")
	if err != nil {
		t.Fatalf("failed to find quote_coordinators collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("name", name)
	record.Set("daily_rate", dailyRate)
	record.Set("enabled", enabled)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test quote coordinator: %v", err)
	}

	return record
}

// CreateTestOtherCost creates a quote_other_costs record.
func CreateTestOtherCost(t *testing.T, app *pocketbase.PocketBase, quoteID string, sortOrder int, name string, amount float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("quote_other_costs")
	if err != nil {
		t.Fatalf("failed to find quote_other_costs collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("quote", quoteID)
	record.Set("sort_order", sortOrder)
	record.Set("name", name)
	record.Set("amount", amount)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test other cost: %v", err)
	}

	return record
}

// CreateTestDeal creates a deal record linked to a company and client.
func CreateTestDeal(t *testing.T, app *pocketbase.PocketBase, companyID, clientID, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("deals")
	if err != nil {
		t.Fatalf("failed to find deals collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("company", companyID)
	record.Set("client", clientID)
	record.Set("name", name)
	record.Set("status", "open")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test deal: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertHXRedirect checks that the response has an HX-Redirect header with the expected URL.
func AssertHXRedirect(t *testing.T, headerVal, expectedURL string) {
	t.Helper()

	if headerVal != expectedURL {
		t.Errorf("expected HX-Redirect %q, got %q", expectedURL, headerVal)
	}
}

// AssertHTMLNotContains checks that body contains none of the fragments.
func AssertHTMLNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected HTML to not contain %q, but it was found", frag)
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
