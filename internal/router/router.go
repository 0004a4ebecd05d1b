package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	docs "github.com/hoa-ledger/backend/api"
	"github.com/hoa-ledger/backend/internal/config"
	"github.com/hoa-ledger/backend/internal/controllers"
	"github.com/hoa-ledger/backend/internal/controllers/healthz"
	"github.com/hoa-ledger/backend/internal/httperror"
	"github.com/hoa-ledger/backend/internal/httputil"
	"github.com/hoa-ledger/backend/internal/metrics"
	"github.com/hoa-ledger/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time with -ldflags "-X github.com/hoa-ledger/backend/internal/router.version=...".
var version = "0.0.0"

// Config sets up the router and its middlewares.
//
// The returned teardown function must be called when the router is not
// used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	url := cfg.BaseURL()

	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(metrics.Middleware())
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, httperror.NewFromString("this HTTP method is not allowed for the endpoint you called"))
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, httperror.NewFromString("there is no endpoint at this path"))
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			ExposeHeaders:    []string{"Content-Disposition"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", url.String()).Str("Host", url.Host).Str("Path", url.Path).Msg("Router")
	log.Info().Str("version", version).Msg("Router")

	controllers.ReportFetchTimeout = cfg.ReportFetchTimeout
	controllers.ReportAllowPrivateHosts = cfg.ReportAllowPrivateHosts

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "HOA Ledger"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for HOA Ledger. Tracks owner payments, budget income and expenses of property associations and prints payment reports."

	teardown := func() {
		metrics.Unregister()
	}

	err := metrics.Register()
	if err != nil {
		return nil, teardown, err
	}

	return r, teardown, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in
// Separating this from Config() allows us to attach it to different
// paths for different use cases, e.g. behind a reverse proxy path.
func AttachRoutes(group *gin.RouterGroup, cfg config.Config) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthz.RegisterRoutes(group.Group("/healthz"))
	controllers.RegisterBudgetIncomeRoutes(group.Group("/budget-income"))
	controllers.RegisterIncomeRoutes(group.Group("/income"))
	controllers.RegisterOutcomeRoutes(group.Group("/outcome"))
	controllers.RegisterCategoryRoutes(group.Group("/category"))
	controllers.RegisterPropertyInformationRoutes(group.Group("/property-information"))
	controllers.RegisterCommitteeRoutes(group.Group("/committee"))
	controllers.RegisterUnitRoutes(group.Group("/units"))
	controllers.RegisterBudgetRoutes(group.Group("/budget"))
	controllers.RegisterPrintRoutes(group.Group("/print"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs                string `json:"docs" example:"https://example.com/api/docs/index.html"`                     // Swagger API documentation
	Healthz             string `json:"healthz" example:"https://example.com/api/healthz"`                          // Healthz endpoint
	Version             string `json:"version" example:"https://example.com/api/version"`                          // Endpoint returning the version of the backend
	Metrics             string `json:"metrics" example:"https://example.com/api/metrics"`                          // Endpoint returning Prometheus metrics
	Categories          string `json:"categories" example:"https://example.com/api/category/getAll"`               // List of categories
	Income              string `json:"income" example:"https://example.com/api/income/getAll"`                     // List of income entries
	BudgetIncome        string `json:"budgetIncome" example:"https://example.com/api/budget-income/getAll"`        // List of budget income entries
	Outcome             string `json:"outcome" example:"https://example.com/api/outcome/getAll"`                   // List of outcome entries
	PropertyInformation string `json:"propertyInformation" example:"https://example.com/api/property-information"` // Property information endpoints
	Committee           string `json:"committee" example:"https://example.com/api/committee"`                      // Committee endpoints
	Units               string `json:"units" example:"https://example.com/api/units"`                              // Unit endpoints
	Budgets             string `json:"budgets" example:"https://example.com/api/budget"`                           // Budget endpoints
	Print               string `json:"print" example:"https://example.com/api/print"`                              // Report endpoints
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:                url + "/docs/index.html",
			Healthz:             url + "/healthz",
			Version:             url + "/version",
			Metrics:             url + "/metrics",
			Categories:          url + "/category/getAll",
			Income:              url + "/income/getAll",
			BudgetIncome:        url + "/budget-income/getAll",
			Outcome:             url + "/outcome/getAll",
			PropertyInformation: url + "/property-information",
			Committee:           url + "/committee",
			Units:               url + "/units",
			Budgets:             url + "/budget",
			Print:               url + "/print",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"` // Data object for the version endpoint
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}
