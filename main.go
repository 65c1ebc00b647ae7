package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"seminarops/collections"
	"seminarops/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateOrphanQuotesToCompany(app); err != nil {
			log.Printf("Warning: company migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// Apply active company middleware globally
		se.Router.BindFunc(handlers.ActiveCompanyMiddleware(app))

		// Company activation (brand switcher)
		se.Router.POST("/companies/{id}/activate", handlers.HandleCompanyActivate(app))
		se.Router.POST("/companies/deactivate", handlers.HandleCompanyDeactivate(app))

		// Quote CRUD
		se.Router.GET("/quotes", handlers.HandleQuoteList(app))
		se.Router.GET("/quotes/create", handlers.HandleQuoteCreateForm(app))
		se.Router.POST("/quotes", handlers.HandleQuoteCreate(app))
		se.Router.GET("/quotes/{id}/edit", handlers.HandleQuoteEdit(app))
		se.Router.POST("/quotes/{id}/save", handlers.HandleQuoteSave(app))
		se.Router.DELETE("/quotes/{id}", handlers.HandleQuoteDelete(app))

		// Live summary recompute (no persistence)
		se.Router.POST("/quotes/{id}/summary", handlers.HandleQuoteSummary(app))

		// Staffing and overhead lines
		se.Router.POST("/quotes/{id}/teachers", handlers.HandleQuoteTeacherAdd(app))
		se.Router.DELETE("/quotes/{id}/teachers/{teacherId}", handlers.HandleQuoteTeacherRemove(app))
		se.Router.POST("/quotes/{id}/other-costs", handlers.HandleQuoteOtherCostAdd(app))

		// Share view and exports (snapshot consumers)
		se.Router.GET("/quotes/{id}/share", handlers.HandleQuoteShare(app))
		se.Router.GET("/quotes/{id}/export/excel", handlers.HandleQuoteExportExcel(app))
		se.Router.GET("/quotes/{id}/export/pdf", handlers.HandleQuoteExportPDF(app))

		// Deals
		se.Router.GET("/deals", handlers.HandleDealList(app))
		se.Router.POST("/deals", handlers.HandleDealCreate(app))
		se.Router.GET("/deals/{id}", handlers.HandleDealView(app))
		se.Router.POST("/deals/{id}/status", handlers.HandleDealStatus(app))

		// Clients
		se.Router.GET("/clients", handlers.HandleClientList(app))
		se.Router.POST("/clients", handlers.HandleClientCreate(app))
		se.Router.DELETE("/clients/{id}", handlers.HandleClientDelete(app))

		// Redirect home to quotes list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quotes")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
