package handler

import (
	"net/http"

	"github.com/maridopro/pricing-api/infrastructure/integrator/referenceprices"
	"github.com/maridopro/pricing-api/internal/api/handler/router"
	"github.com/maridopro/pricing-api/internal/document"
	"github.com/maridopro/pricing-api/internal/usecases/backup"
	"github.com/maridopro/pricing-api/internal/usecases/catalog"
	"github.com/maridopro/pricing-api/internal/usecases/history"
	"github.com/maridopro/pricing-api/internal/usecases/identifying"
	"github.com/maridopro/pricing-api/internal/usecases/pricing"
	"github.com/maridopro/pricing-api/internal/usecases/settings"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Identity(service identifying.IdentityService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Settings(service settings.SettingsService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/settings",
			Method:  http.MethodGet,
			Handler: GetSettings(service),
		},
		{
			Path:    "/v1/settings",
			Method:  http.MethodPut,
			Handler: UpdateSettings(service),
		},
		{
			Path:    "/v1/settings/reset",
			Method:  http.MethodPost,
			Handler: ResetSettings(service),
		},
	}
}

func Catalog(service catalog.CatalogService, references referenceprices.Fetcher) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/catalog",
			Method:  http.MethodGet,
			Handler: ListCatalog(service),
		},
		{
			Path:    "/v1/catalog",
			Method:  http.MethodPost,
			Handler: AddCatalogEntry(service),
		},
		{
			Path:    "/v1/catalog/:id",
			Method:  http.MethodDelete,
			Handler: RemoveCatalogEntry(service),
		},
		{
			Path:    "/v1/catalog/suggestions",
			Method:  http.MethodGet,
			Handler: GetSuggestions(service),
		},
		{
			Path:    "/v1/reference-prices",
			Method:  http.MethodGet,
			Handler: GetReferencePrices(references),
		},
	}
}

func Quotes(
	calculator pricing.Calculator,
	settingsService settings.SettingsService,
	identityService identifying.IdentityService,
	generator document.Generator,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/quotes/compute",
			Method:  http.MethodPost,
			Handler: ComputeQuote(calculator, settingsService),
		},
		{
			Path:    "/v1/quotes/document",
			Method:  http.MethodPost,
			Handler: QuoteDocument(calculator, settingsService, identityService, generator),
		},
		{
			Path:    "/v1/quotes/share-message",
			Method:  http.MethodPost,
			Handler: ShareMessage(calculator, settingsService),
		},
	}
}

func History(
	service history.HistoryService,
	calculator pricing.Calculator,
	settingsService settings.SettingsService,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/history",
			Method:  http.MethodGet,
			Handler: ListHistory(service),
		},
		{
			Path:    "/v1/history",
			Method:  http.MethodPost,
			Handler: SaveQuote(service, calculator, settingsService),
		},
		{
			Path:    "/v1/history",
			Method:  http.MethodDelete,
			Handler: ClearHistory(service),
		},
	}
}

func Backup(service backup.BackupService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/backup/export",
			Method:  http.MethodGet,
			Handler: ExportBackup(service),
		},
		{
			Path:    "/v1/backup/import",
			Method:  http.MethodPost,
			Handler: ImportBackup(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
