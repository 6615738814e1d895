package postgres

import (
	"enquiry/internal/adapters/out/postgres/enquiryrepo"
	"enquiry/internal/adapters/out/postgres/masterdatarepo"
	"enquiry/internal/adapters/out/postgres/saleorderrepo"
	"enquiry/internal/adapters/out/postgres/wizardrepo"

	"gorm.io/gorm"
)

// Models lists every table owned by the service.
func Models() []any {
	return []any{
		&masterdatarepo.PartnerDTO{},
		&masterdatarepo.ProductDTO{},
		&masterdatarepo.TaxDTO{},
		&enquiryrepo.EnquiryDTO{},
		&enquiryrepo.EnquiryLineDTO{},
		&saleorderrepo.SaleOrderDTO{},
		&saleorderrepo.SaleOrderLineDTO{},
		&wizardrepo.SaleLineWizardDTO{},
		&wizardrepo.ProductAddWizardDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// TableNames are the tables created by Migrate, children first.
var TableNames = []string{
	"enquiry_lines",
	"enquiries",
	"sale_order_lines",
	"sale_orders",
	"sale_line_wizards",
	"product_add_wizards",
	"products",
	"taxes",
	"partners",
}
