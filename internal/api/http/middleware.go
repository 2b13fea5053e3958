package http

import (
	"context"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/spec-kit/product-catalog/internal/observability"
	apperrors "github.com/spec-kit/product-catalog/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, timeout time.Duration) {
	if timeout > 0 {
		app.Use(requestTimeoutMiddleware(timeout))
	}
	app.Use(cors.New(cors.Config{AllowOrigins: "*"}))
	// the logger wraps error handling so it sees the rendered status code
	app.Use(observability.RequestLogger(logger, metrics))
	app.Use(errorHandlingMiddleware(logger, metrics))
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

// errorHandlingMiddleware renders DomainErrors: field failures as
// {"errors": [...]}, everything else as {"message": ...} plus an optional
// upstream "code". Panics become a generic 500.
func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				if metrics != nil {
					code := domainErr.Code
					if code == "" {
						code = strconv.Itoa(domainErr.HTTPStatus)
					}
					metrics.RecordError(c.Path(), c.Method(), code)
				}

				var response interface{}
				if len(domainErr.Fields) > 0 {
					response = fiber.Map{"errors": domainErr.Fields}
				} else if domainErr.Code != "" {
					response = fiber.Map{"message": domainErr.Message, "code": domainErr.Code}
				} else {
					response = fiber.Map{"message": domainErr.Message}
				}

				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(response)
				err = nil
			}
		}()
		return c.Next()
	}
}
