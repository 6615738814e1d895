// Package sequencerepo draws document numbers from PostgreSQL sequences.
package sequencerepo

import (
	"context"
	"fmt"
	"strings"

	"enquiry/internal/core/domain/model/enquiry"
	"enquiry/internal/core/domain/model/saleorder"
	"enquiry/internal/pkg/errs"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Format describes how the values of one sequence are rendered.
type Format struct {
	Prefix  string
	Padding int
}

// DefaultFormats are the document sequences known to the service.
var DefaultFormats = map[string]Format{
	enquiry.NumberSequenceCode:   {Prefix: "ENQ", Padding: 5},
	saleorder.NumberSequenceCode: {Prefix: "S", Padding: 5},
}

// PostgresSequenceGenerator implements SequenceGenerator. The database
// sequence is created the first time a code is used.
type PostgresSequenceGenerator struct {
	db      *gorm.DB
	formats map[string]Format
}

func NewPostgresSequenceGenerator(db *gorm.DB, formats map[string]Format) *PostgresSequenceGenerator {
	if formats == nil {
		formats = DefaultFormats
	}
	return &PostgresSequenceGenerator{db: db, formats: formats}
}

func (g *PostgresSequenceGenerator) NextValue(ctx context.Context, code string) (string, error) {
	format, ok := g.formats[code]
	if !ok {
		return "", errs.NewValueIsInvalidError("sequence code")
	}

	name := pq.QuoteIdentifier(SequenceName(code))
	db := g.db.WithContext(ctx)

	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS " + name).Error; err != nil {
		return "", errors.Wrapf(err, "create sequence %s", code)
	}

	var value int64
	if err := db.Raw("SELECT nextval(?::regclass)", name).Scan(&value).Error; err != nil {
		return "", errors.Wrapf(err, "next value of sequence %s", code)
	}

	return fmt.Sprintf("%s%0*d", format.Prefix, format.Padding, value), nil
}

// SequenceName maps a sequence code to a database identifier.
func SequenceName(code string) string {
	return "seq_" + strings.NewReplacer(".", "_", "-", "_").Replace(code)
}
