package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/leadsfynder/leadsfynder-api/internal/observability"
	apperrors "github.com/leadsfynder/leadsfynder-api/pkg/util"
)

// MiddlewareConfig controls the global middleware chain.
type MiddlewareConfig struct {
	RequestTimeout time.Duration
	SentryEnabled  bool
}

// RegisterMiddlewares attaches global middlewares: permissive CORS, request
// timeout, error handling and request logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, cfg MiddlewareConfig) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Content-Type,Authorization,X-Requested-With,Accept,Origin",
	}))
	if cfg.SentryEnabled {
		app.Use(sentryfiber.New(sentryfiber.Options{Repanic: true}))
	}
	if cfg.RequestTimeout > 0 {
		app.Use(requestTimeoutMiddleware(cfg.RequestTimeout))
	}
	// The request logger wraps the error mapper so it observes the mapped
	// status code, not the pre-error 200.
	app.Use(observability.RequestLogger(logger))
	app.Use(errorHandlingMiddleware(logger, cfg.SentryEnabled))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, sentryEnabled bool) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError("", nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				observability.RecordError(c.Method(), c.Path(), domainErr.Code)

				response := fiber.Map{
					"success": false,
					"message": domainErr.Message,
					"error":   domainErr.Code,
				}
				if len(domainErr.Details) > 0 {
					response["details"] = domainErr.Details
				}
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.String("path", c.Path()), zap.Error(domainErr))
					if sentryEnabled {
						sentry.CaptureException(domainErr)
					}
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}
