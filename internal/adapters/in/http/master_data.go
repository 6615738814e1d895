package http

import (
	"net/http"

	"enquiry/internal/core/application/usecases/commands"
	"enquiry/internal/core/application/usecases/queries"
	"enquiry/internal/core/domain/model/catalog"
	"enquiry/internal/core/domain/model/kernel"
	"enquiry/internal/core/domain/model/partner"

	"github.com/labstack/echo/v4"
)

// CreatePartner handles POST /api/v1/partners.
func (s *Server) CreatePartner(ctx echo.Context) error {
	var body NewPartner
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreatePartnerCommand(id, body.Name, body.Email, partner.Type(body.Type))
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.CreatePartner.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// ListPartners handles GET /api/v1/partners.
func (s *Server) ListPartners(ctx echo.Context) error {
	partners, err := s.h.ListPartners.Handle(ctx.Request().Context(), queries.NewListPartnersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Partner, len(partners))
	for i, p := range partners {
		response[i] = Partner{ID: p.ID.Bytes(), Name: p.Name, Email: p.Email, Type: p.Type}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateTax handles POST /api/v1/taxes.
func (s *Server) CreateTax(ctx echo.Context) error {
	var body NewTax
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateTaxCommand(id, catalog.TaxParams{
		Name:         body.Name,
		AmountType:   catalog.AmountType(body.AmountType),
		Amount:       body.Amount,
		PriceInclude: body.PriceInclude,
		TypeTaxUse:   catalog.TaxUse(body.TypeTaxUse),
		Sequence:     body.Sequence,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.CreateTax.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// ListTaxes handles GET /api/v1/taxes?typeTaxUse=sale.
func (s *Server) ListTaxes(ctx echo.Context) error {
	var use *string
	if err := queryParam(ctx, "typeTaxUse", &use); err != nil {
		return badRequest(ctx, err.Error())
	}

	var filter *catalog.TaxUse
	if use != nil {
		u := catalog.TaxUse(*use)
		filter = &u
	}
	query, err := queries.NewListTaxesQuery(filter)
	if err != nil {
		return s.fail(ctx, err)
	}

	taxes, err := s.h.ListTaxes.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Tax, len(taxes))
	for i, t := range taxes {
		response[i] = Tax{
			ID:           t.ID.Bytes(),
			Name:         t.Name,
			AmountType:   t.AmountType,
			Amount:       t.Amount,
			PriceInclude: t.PriceInclude,
			TypeTaxUse:   t.TypeTaxUse,
			Sequence:     t.Sequence,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products. saleOk defaults to true.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body NewProduct
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	taxIDs, err := toUUIDs(body.TaxIDs)
	if err != nil {
		return s.fail(ctx, err)
	}
	saleOK := true
	if body.SaleOK != nil {
		saleOK = *body.SaleOK
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(id, catalog.ProductParams{
		DefaultCode: body.DefaultCode,
		Name:        body.Name,
		ListPrice:   body.ListPrice,
		UoM:         body.UoM,
		TaxIDs:      taxIDs,
		SaleOK:      saleOK,
	})
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.CreateProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, Created{ID: id.Bytes()})
}

// ListProducts handles GET /api/v1/products?saleOk=true.
func (s *Server) ListProducts(ctx echo.Context) error {
	var saleOnly *bool
	if err := queryParam(ctx, "saleOk", &saleOnly); err != nil {
		return badRequest(ctx, err.Error())
	}

	products, err := s.h.ListProducts.Handle(ctx.Request().Context(),
		queries.NewListProductsQuery(saleOnly != nil && *saleOnly))
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			ID:          p.ID.Bytes(),
			DefaultCode: p.DefaultCode,
			Name:        p.Name,
			DisplayName: p.DisplayName,
			ListPrice:   p.ListPrice,
			UoM:         p.UoM,
			TaxIDs:      fromUUIDs(p.TaxIDs),
			SaleOK:      p.SaleOK,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}
