package http

import (
	"fmt"

	"enquiry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// pathUUID binds a simple style uuid path parameter.
func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	var raw uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return requireUUID(name, raw)
}

// queryParam binds an optional form style query parameter; dest is left nil
// when the parameter is absent.
func queryParam[T any](ctx echo.Context, name string, dest **T) error {
	if err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest); err != nil {
		return fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return nil
}

func queryUUID(ctx echo.Context, name string) (*kernel.UUID, error) {
	var raw *uuid.UUID
	if err := queryParam(ctx, name, &raw); err != nil {
		return nil, err
	}
	return toOptionalUUID(raw)
}
