package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
)

// MigrateOrphanQuotesToCompany finds quote records that have no subsidiary
// assigned (created before the multi-company split) and attaches them to
// the first active company. Safe to call on every startup -- returns early
// if nothing to migrate.
func MigrateOrphanQuotesToCompany(app *pocketbase.PocketBase) error {
	quotesCol, err := app.FindCollectionByNameOrId("quotes")
	if err != nil {
		return fmt.Errorf("migrate: could not find quotes collection: %w", err)
	}

	orphanQuotes, err := app.FindRecordsByFilter(
		quotesCol,
		"company = ''",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query orphan quotes: %w", err)
	}

	if len(orphanQuotes) == 0 {
		return nil
	}

	fallback, err := app.FindFirstRecordByFilter("companies", "active = true")
	if err != nil {
		return fmt.Errorf("migrate: no active company to attach %d orphan quote(s) to: %w", len(orphanQuotes), err)
	}

	log.Printf("migrate: found %d orphan quote(s) without a company -- attaching to %q...\n",
		len(orphanQuotes), fallback.GetString("name"))

	for _, quote := range orphanQuotes {
		quote.Set("company", fallback.Id)
		if err := app.Save(quote); err != nil {
			log.Printf("migrate: failed to attach quote %q (%s): %v\n", quote.GetString("name"), quote.Id, err)
			continue
		}
	}

	log.Println("migrate: orphan quote migration complete.")
	return nil
}
