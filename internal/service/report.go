package service

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/oxygenfit/salesconsole/internal/domain/quote"
	ierr "github.com/oxygenfit/salesconsole/internal/errors"
)

// QuoteSummary is the flattened, display-ready form of a quotation. Every
// field is already a string so the plain-text summary round-trips
// literally through ParseSummary.
type QuoteSummary struct {
	Date        string `json:"date"`
	Client      string `json:"client"`
	Item        string `json:"item"`
	Plan        string `json:"plan"`
	UnitPrice   string `json:"unit_price"`
	Quantity    string `json:"quantity"`
	Subtotal    string `json:"subtotal"`
	Credit      string `json:"credit"`
	AfterCredit string `json:"after_credit"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
}

// summaryFields fixes the field order and labels of the text summary.
// ParseSummary depends on this exact order.
var summaryFields = []struct {
	label string
	get   func(s *QuoteSummary) *string
}{
	{"日期 / Date", func(s *QuoteSummary) *string { return &s.Date }},
	{"客户 / Client", func(s *QuoteSummary) *string { return &s.Client }},
	{"项目 / Item", func(s *QuoteSummary) *string { return &s.Item }},
	{"方案 / Plan", func(s *QuoteSummary) *string { return &s.Plan }},
	{"单价 / Unit Price", func(s *QuoteSummary) *string { return &s.UnitPrice }},
	{"课时 / Sessions", func(s *QuoteSummary) *string { return &s.Quantity }},
	{"方案小计 / Subtotal", func(s *QuoteSummary) *string { return &s.Subtotal }},
	{"抵扣 / Credit", func(s *QuoteSummary) *string { return &s.Credit }},
	{"抵扣后 / After Credit", func(s *QuoteSummary) *string { return &s.AfterCredit }},
	{"税费 / Tax (13%)", func(s *QuoteSummary) *string { return &s.Tax }},
	{"含税总计 / Total", func(s *QuoteSummary) *string { return &s.Total }},
}

const summaryTitle = "OxygenFit 报价单 / Quotation"

type ReportService interface {
	Summarize(q *quote.Quotation) *QuoteSummary
	RenderSummary(q *quote.Quotation) string
	ParseSummary(text string) (*QuoteSummary, error)
	RenderPrintable(q *quote.Quotation) (string, error)
}

type reportService struct {
	ServiceParams
}

func NewReportService(params ServiceParams) ReportService {
	return &reportService{ServiceParams: params}
}

func (s *reportService) Summarize(q *quote.Quotation) *QuoteSummary {
	totals := q.Totals()

	client := q.ClientName
	if client == "" {
		client = "-"
	}
	item := q.ItemNameZh
	if q.ItemNameEn != "" {
		item = item + " / " + q.ItemNameEn
	}

	return &QuoteSummary{
		Date:        q.QuoteDate.Format("2006-01-02"),
		Client:      client,
		Item:        item,
		Plan:        totals.PlanLabel,
		UnitPrice:   totals.UnitPrice.String(),
		Quantity:    strconv.Itoa(totals.Quantity),
		Subtotal:    totals.Subtotal.String(),
		Credit:      totals.Credit.String(),
		AfterCredit: totals.AfterCredit.String(),
		Tax:         totals.Tax.String(),
		Total:       totals.Total.String(),
	}
}

// RenderSummary produces the clipboard text: a title, a rule, then the
// eleven fields in fixed order as "label: value" lines.
func (s *reportService) RenderSummary(q *quote.Quotation) string {
	summary := s.Summarize(q)

	var b strings.Builder
	b.WriteString(summaryTitle)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", 32))
	b.WriteString("\n")
	for _, field := range summaryFields {
		b.WriteString(field.label)
		b.WriteString(": ")
		b.WriteString(*field.get(summary))
		b.WriteString("\n")
	}
	return b.String()
}

// ParseSummary recovers the literal field values from a rendered summary.
// Field lines must appear in the rendered order; unknown lines (title,
// rules) are skipped.
func (s *reportService) ParseSummary(text string) (*QuoteSummary, error) {
	summary := &QuoteSummary{}
	lines := strings.Split(text, "\n")

	next := 0
	for _, line := range lines {
		if next >= len(summaryFields) {
			break
		}
		field := summaryFields[next]
		if !strings.HasPrefix(line, field.label+": ") {
			continue
		}
		*field.get(summary) = strings.TrimPrefix(line, field.label+": ")
		next++
	}

	if next < len(summaryFields) {
		return nil, ierr.NewError("malformed quote summary").
			WithHint("Summary is missing fields or out of order").
			WithReportableDetails(map[string]any{
				"expected_field": summaryFields[next].label,
			}).
			Mark(ierr.ErrValidation)
	}
	return summary, nil
}

var printableTemplate = template.Must(template.New("printable").Parse(`<!DOCTYPE html>
<html lang="zh">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: "Helvetica Neue", "PingFang SC", sans-serif; margin: 2rem; color: #111; }
h1 { font-size: 1.25rem; border-bottom: 2px solid #111; padding-bottom: .5rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
td { border: 1px solid #ccc; padding: .5rem .75rem; }
td.label { width: 40%; color: #555; }
tr.total td { font-weight: 700; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table>
{{range .Rows}}<tr{{if .Total}} class="total"{{end}}><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type printableRow struct {
	Label string
	Value string
	Total bool
}

type printableData struct {
	Title string
	Rows  []printableRow
}

// RenderPrintable produces a self-contained HTML document with the same
// fields in the same order as the text summary
func (s *reportService) RenderPrintable(q *quote.Quotation) (string, error) {
	summary := s.Summarize(q)

	data := printableData{Title: summaryTitle}
	for i, field := range summaryFields {
		data.Rows = append(data.Rows, printableRow{
			Label: field.label,
			Value: *field.get(summary),
			Total: i == len(summaryFields)-1,
		})
	}

	var b strings.Builder
	if err := printableTemplate.Execute(&b, data); err != nil {
		return "", ierr.WithError(err).
			WithHint("Failed to render printable quote").
			Mark(ierr.ErrSystem)
	}
	return b.String(), nil
}
