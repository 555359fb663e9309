package infra

import (
	"errors"
	"net/http"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/auth"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/cache"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/config"
	convErrors "github.com/developer-sourabh28/VISA-CRM-sub000/internal/errors"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/handlers"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/middleware"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/repository"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/service"
	"github.com/developer-sourabh28/VISA-CRM-sub000/internal/validation"
	"github.com/developer-sourabh28/VISA-CRM-sub000/pkg/db/transactor"
)

// Router wires both store stacks: v1 runs the conversion engine on
// PostgreSQL, v2 on MongoDB. Team members stay in PostgreSQL for both, the
// staff module owns them there.
func Router(pgPool *pgxpool.Pool, mongoClient *mongo.Client, redisClient *redis.Client, authCfg config.AuthCfg) (*echo.Echo, error) {
	e := echo.New()
	e.HTTPErrorHandler = httpErrorHandler(e)

	echoValidator, err := validation.Echo()
	if err != nil {
		return nil, err
	}
	e.Validator = echoValidator

	// Transactors
	trx := transactor.NewPgxTransactor(pgPool)

	// Middleware
	jwtValidator := auth.NewJwtValidator(authCfg.SigningMethod, authCfg.PublicKey)
	authorizeMw := middleware.Authorize(jwtValidator)

	// Repositories
	teamRepo := repository.NewPostgresTeamMemberRepository(pgPool)
	pgEnquiryRepo := repository.NewPostgresEnquiryRepository(trx)
	pgClientRepo := repository.NewPostgresClientRepository(trx)
	mongoEnquiryRepo := repository.NewMongoEnquiryRepository(mongoClient)
	mongoClientRepo := repository.NewMongoClientRepository(mongoClient)

	// Cache
	clientCache := cache.NewRedisClientCache(redisClient)

	// Services
	teamSvc := service.NewTeamMemberService(teamRepo)

	matcherV1 := service.NewIdentityMatcher(pgClientRepo)
	convSvcV1 := service.NewConversionService(pgEnquiryRepo, pgClientRepo, teamRepo, matcherV1, clientCache, trx)
	enquirySvcV1 := service.NewEnquiryService(pgEnquiryRepo)
	clientSvcV1 := service.NewClientService(pgClientRepo, clientCache)

	matcherV2 := service.NewIdentityMatcher(mongoClientRepo)
	convSvcV2 := service.NewConversionService(mongoEnquiryRepo, mongoClientRepo, teamRepo, matcherV2, clientCache, transactor.Nop())
	enquirySvcV2 := service.NewEnquiryService(mongoEnquiryRepo)
	clientSvcV2 := service.NewClientService(mongoClientRepo, clientCache)

	// Handlers
	teamHandler := handlers.NewTeamMemberHTTPHandler(teamSvc)
	enquiryHandlerV1 := handlers.NewEnquiryHTTPHandler(enquirySvcV1)
	convHandlerV1 := handlers.NewConversionHTTPHandler(convSvcV1)
	clientHandlerV1 := handlers.NewClientHTTPHandler(clientSvcV1)
	enquiryHandlerV2 := handlers.NewEnquiryHTTPHandler(enquirySvcV2)
	convHandlerV2 := handlers.NewConversionHTTPHandler(convSvcV2)
	clientHandlerV2 := handlers.NewClientHTTPHandler(clientSvcV2)

	// API routes
	api := e.Group("/api")

	api.GET("/v1/team-members", teamHandler.GetAll, authorizeMw)

	v1 := api.Group("/v1", authorizeMw)
	registerConversionAPI(v1, enquiryHandlerV1, convHandlerV1, clientHandlerV1)

	v2 := api.Group("/v2", authorizeMw)
	registerConversionAPI(v2, enquiryHandlerV2, convHandlerV2, clientHandlerV2)

	return e, nil
}

func registerConversionAPI(g *echo.Group, enquiryHandler *handlers.EnquiryHTTPHandler, convHandler *handlers.ConversionHTTPHandler, clientHandler *handlers.ClientHTTPHandler) {
	g.GET("/enquiries", enquiryHandler.GetAll)
	g.GET("/enquiries/:id", enquiryHandler.Get)
	g.POST("/enquiries", enquiryHandler.Post)

	g.GET("/enquiries/:id/duplicate", convHandler.CheckDuplicate)
	g.POST("/enquiries/:id/convert", convHandler.Convert)
	g.POST("/enquiries/:id/reconcile", convHandler.Reconcile)

	g.GET("/clients", clientHandler.GetAll)
	g.GET("/clients/:id", clientHandler.Get)
}

// httpErrorHandler maps the conversion error taxonomy to HTTP statuses. The
// typed errors marshal themselves, so retryable outcomes reach the caller
// with an explicit retryable flag.
func httpErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		c.Logger().Error(err.Error())

		var validationErr *convErrors.ValidationErr
		var payloadErr *validation.PayloadError
		var notFoundErr *convErrors.EntryNotFoundErr
		var convertedErr *convErrors.AlreadyConvertedErr
		var assignmentErr *convErrors.AssignmentRequiredErr
		var unresolvedErr *convErrors.ConflictUnresolvedErr
		var transportErr *convErrors.TransportErr

		switch {
		case errors.As(err, &validationErr):
			err = respond(c, http.StatusBadRequest, validationErr)
		case errors.As(err, &payloadErr):
			err = respond(c, http.StatusBadRequest, payloadErr)
		case errors.As(err, &notFoundErr):
			err = respond(c, http.StatusNotFound, echo.Map{"message": notFoundErr.Error()})
		case errors.As(err, &convertedErr):
			err = respond(c, http.StatusConflict, convertedErr)
		case errors.As(err, &assignmentErr):
			err = respond(c, http.StatusUnprocessableEntity, echo.Map{"message": assignmentErr.Error()})
		case errors.As(err, &unresolvedErr):
			err = respond(c, http.StatusConflict, unresolvedErr)
		case errors.As(err, &transportErr):
			err = respond(c, http.StatusServiceUnavailable, transportErr)
		default:
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		if err != nil {
			logrus.Errorf("failed to write error response - %v", err)
		}
	}
}

func respond(c echo.Context, status int, body any) error {
	if c.Response().Committed {
		return nil
	}
	return c.JSON(status, body)
}
