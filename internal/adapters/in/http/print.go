package http

import (
	"net/http"

	"enquiry/internal/core/application/usecases/queries"
	"enquiry/internal/core/domain/model/orderline"

	"github.com/flosch/pongo2"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const enquiryPrintTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Enquiry {{ enquiry.Name }}</title>
<style>
body { font-family: sans-serif; }
table { border-collapse: collapse; width: 100%; }
th, td { padding: 4px 8px; border-bottom: 1px solid #ddd; }
td.amount, th.amount { text-align: right; }
tr.section td { font-weight: bold; background: #f3f3f3; }
tr.note td { font-style: italic; }
</style>
</head>
<body>
<h1>Enquiry {{ enquiry.Name }}</h1>
<p>
Customer: {{ enquiry.PartnerName }}{% if enquiry.Email %} &lt;{{ enquiry.Email }}&gt;{% endif %}<br>
Date: {{ enquiry.Date }}<br>
State: {{ enquiry.State }}
</p>
<table>
<thead>
<tr><th>Description</th><th class="amount">Quantity</th><th>Unit</th><th class="amount">Unit Price</th><th class="amount">Subtotal</th></tr>
</thead>
<tbody>
{% for line in lines %}{% if line.Section %}<tr class="section"><td colspan="5">{{ line.Name }}</td></tr>
{% elif line.Note %}<tr class="note"><td colspan="5">{{ line.Name }}</td></tr>
{% else %}<tr><td>{{ line.Name }}</td><td class="amount">{{ line.Quantity }}</td><td>{{ line.UoM }}</td><td class="amount">{{ line.PriceUnit }}</td><td class="amount">{{ line.Subtotal }}</td></tr>
{% endif %}{% endfor %}</tbody>
</table>
<table>
<tr><td>Untaxed Amount</td><td class="amount">{{ enquiry.AmountUntaxed }}</td></tr>
{% for tax in taxes %}<tr><td>{{ tax.Name }}</td><td class="amount">{{ tax.Amount }}</td></tr>
{% endfor %}<tr><td><strong>Total</strong></td><td class="amount"><strong>{{ enquiry.AmountTotal }}</strong></td></tr>
</table>
</body>
</html>
`

type printHeader struct {
	Name          string
	PartnerName   string
	Email         string
	Date          string
	State         string
	AmountUntaxed string
	AmountTotal   string
}

type printLine struct {
	Section   bool
	Note      bool
	Name      string
	Quantity  string
	UoM       string
	PriceUnit string
	Subtotal  string
}

type printTax struct {
	Name   string
	Amount string
}

// PrintEnquiry handles GET /api/v1/enquiries/{enquiryId}/print.
func (s *Server) PrintEnquiry(ctx echo.Context) error {
	id, err := pathUUID(ctx, "enquiryId")
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	view, err := s.enquiryView(ctx, id)
	if err != nil {
		return s.fail(ctx, err)
	}

	html, err := s.renderEnquiry(view)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.HTML(http.StatusOK, html)
}

func (s *Server) renderEnquiry(view queries.EnquiryView) (string, error) {
	money := view.Currency.Format

	lines := make([]printLine, 0, len(view.Lines))
	for _, l := range view.Lines {
		lines = append(lines, printLine{
			Section:   l.DisplayType == string(orderline.DisplaySection),
			Note:      l.DisplayType == string(orderline.DisplayNote),
			Name:      l.Name,
			Quantity:  l.Quantity.String(),
			UoM:       l.UoM,
			PriceUnit: money(l.PriceUnit),
			Subtotal:  money(l.PriceSubtotal),
		})
	}
	taxes := make([]printTax, 0, len(view.TaxTotals))
	for _, t := range view.TaxTotals {
		taxes = append(taxes, printTax{Name: t.Name, Amount: money(t.Amount)})
	}

	html, err := s.print.Execute(pongo2.Context{
		"enquiry": printHeader{
			Name:          view.Name,
			PartnerName:   view.PartnerName,
			Email:         view.Email,
			Date:          view.DateOrder.Format("2006-01-02 15:04"),
			State:         view.State,
			AmountUntaxed: money(view.AmountUntaxed),
			AmountTotal:   money(view.AmountTotal),
		},
		"lines": lines,
		"taxes": taxes,
	})
	if err != nil {
		return "", errors.Wrapf(err, "render enquiry %s", view.ID)
	}
	return html, nil
}
