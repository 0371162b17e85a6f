package iiko

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/pizzayolo/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// OLAPParams describes one query against /resto/api/reports/olap. The
// endpoint takes day-first dates, repeated groupRow/agr keys, and arbitrary
// filter pairs such as ("Account.Group", "LIABILITIES").
type OLAPParams struct {
	Report     string
	From       time.Time
	To         time.Time
	GroupRows  []string
	Aggregates []string
	Filters    [][2]string
}

// OLAPRow is one row of an OLAP report keyed by column name. Numeric cells
// are decoded into decimal.Decimal, everything else stays a string.
type OLAPRow map[string]any

// Decimal reads a cell as a decimal, treating absent or non-numeric cells as
// zero. OLAP money columns arrive with either dot or comma separators.
func (r OLAPRow) Decimal(column string) decimal.Decimal {
	v, ok := r[column]
	if !ok || v == nil {
		return decimal.Zero
	}
	switch value := v.(type) {
	case decimal.Decimal:
		return value
	case string:
		d, err := decimal.NewFromString(strings.ReplaceAll(value, ",", "."))
		if err != nil {
			return decimal.Zero
		}
		return d
	case float64:
		return decimal.NewFromFloat(value)
	}
	return decimal.Zero
}

// String reads a cell as text.
func (r OLAPRow) String(column string) string {
	v, ok := r[column]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// OLAPTransactions runs an OLAP report and normalizes the response. The
// server answers with XML or JSON depending on its version; both shapes are
// accepted.
func (c *Client) OLAPTransactions(ctx context.Context, p OLAPParams) ([]OLAPRow, error) {
	params := url.Values{}
	params.Set("report", p.Report)
	params.Set("from", p.From.Format(validator.LayoutErpDate))
	params.Set("to", p.To.Format(validator.LayoutErpDate))
	for _, g := range p.GroupRows {
		params.Add("groupRow", g)
	}
	for _, a := range p.Aggregates {
		params.Add("agr", a)
	}
	for _, f := range p.Filters {
		params.Add(f[0], f[1])
	}

	body, contentType, err := c.get(ctx, "/resto/api/reports/olap", params)
	if err != nil {
		return nil, err
	}

	switch {
	case strings.HasPrefix(contentType, "application/json"):
		return parseOLAPJSON(body)
	case strings.HasPrefix(contentType, "application/xml"), strings.HasPrefix(contentType, "text/xml"), contentType == "":
		return ParseOLAPXML(body)
	default:
		return nil, fmt.Errorf("%w: olap report has content type %q", settlement.ErrDataFormat, contentType)
	}
}

type olapXMLDoc struct {
	Rows []olapXMLRow `xml:"r"`
}

type olapXMLRow struct {
	Cells []olapXMLCell `xml:",any"`
}

type olapXMLCell struct {
	XMLName xml.Name
	Value   string `xml:",chardata"`
}

// ParseOLAPXML decodes the <r><Column>value</Column>...</r> report shape,
// auto-casting numeric cells.
func ParseOLAPXML(body []byte) ([]OLAPRow, error) {
	var doc olapXMLDoc
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: olap xml: %v", settlement.ErrDataFormat, err)
	}

	rows := make([]OLAPRow, 0, len(doc.Rows))
	for _, r := range doc.Rows {
		row := make(OLAPRow, len(r.Cells))
		for _, cell := range r.Cells {
			row[cell.XMLName.Local] = autoCast(cell.Value)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseOLAPJSON(body []byte) ([]OLAPRow, error) {
	var payload struct {
		Data []map[string]any `json:"data"`
		Rows []map[string]any `json:"rows"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: olap json: %v", settlement.ErrDataFormat, err)
	}

	raw := payload.Data
	if len(raw) == 0 {
		raw = payload.Rows
	}

	rows := make([]OLAPRow, 0, len(raw))
	for _, m := range raw {
		rows = append(rows, OLAPRow(m))
	}
	return rows, nil
}

// autoCast turns a numeric-looking cell into a decimal, keeping everything
// else as trimmed text.
func autoCast(text string) any {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if d, err := decimal.NewFromString(strings.ReplaceAll(trimmed, ",", ".")); err == nil {
		return d
	}
	return trimmed
}
