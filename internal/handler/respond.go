package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"mall-storefront/internal/client"
	"mall-storefront/internal/service"
)

// outOfStockMessage is shown for domain 404s, distinct from generic
// transport failures.
const outOfStockMessage = "This product is out of stock or no longer available, please try another product"

const genericFailureMessage = "Something went wrong, please try again later."

// respond mirrors the upstream envelope shape so the presentation layer
// consumes one format end to end.
func respond(c echo.Context, code int, data any, message string) error {
	return c.JSON(code, echo.Map{
		"statusCode": code,
		"data":       data,
		"message":    message,
	})
}

// respondError maps the error taxonomy: validation errors carry the field
// map, envelope failures surface the server message verbatim, not-found
// gets the dedicated message, and transport failures get the generic one.
func respondError(c echo.Context, err error) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"statusCode": http.StatusBadRequest,
			"errors":     validationErr.Fields,
			"message":    "Please correct the highlighted fields",
		})
	}

	if errors.Is(err, service.ErrLoginRequired) {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"statusCode": http.StatusUnauthorized,
			"message":    "login required",
			"redirectTo": "/login",
		})
	}

	if errors.Is(err, client.ErrNotFound) {
		return respond(c, http.StatusNotFound, nil, outOfStockMessage)
	}

	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return respond(c, apiErr.StatusCode, nil, apiErr.Message)
	}

	return respond(c, http.StatusBadGateway, nil, genericFailureMessage)
}
