package iiko

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"time"

	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
	"github.com/pizzayolo/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type attendanceXML struct {
	XMLName     xml.Name        `xml:"attendances"`
	Attendances []attendanceRow `xml:"attendance"`
}

type attendanceRow struct {
	EmployeeID   string `xml:"employeeId"`
	ShiftID      string `xml:"shiftId"`
	DepartmentID string `xml:"departmentId"`
	DateFrom     string `xml:"dateFrom"`
	DateTo       string `xml:"dateTo"`
}

// FetchAttendance returns one AttendanceRecord per employee per worked shift
// inside the period. Hours are derived from the clock-in/clock-out pair; a
// record whose bounds coincide is a scheduled-but-unworked shift and is kept
// with zero hours. A shift spanning midnight belongs to its clock-in date,
// matching how cash shifts are dated, so the two sources join on the same key.
func (c *Client) FetchAttendance(ctx context.Context, period settlement.Period) ([]settlement.AttendanceRecord, error) {
	params := url.Values{}
	params.Set("from", period.From.Format(validator.LayoutISODate))
	params.Set("to", period.To.Format(validator.LayoutISODate))

	body, _, err := c.get(ctx, "/resto/api/employees/attendance/", params)
	if err != nil {
		return nil, err
	}

	var doc attendanceXML
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: attendance payload: %v", settlement.ErrDataFormat, err)
	}

	records := make([]settlement.AttendanceRecord, 0, len(doc.Attendances))
	for _, row := range doc.Attendances {
		if row.EmployeeID == "" || row.ShiftID == "" {
			return nil, fmt.Errorf("%w: attendance row missing employee or shift id", settlement.ErrDataFormat)
		}

		start, err := parseErpTime(row.DateFrom)
		if err != nil {
			return nil, fmt.Errorf("%w: attendance for %s: %v", settlement.ErrDataFormat, row.EmployeeID, err)
		}
		end, err := parseErpTime(row.DateTo)
		if err != nil {
			return nil, fmt.Errorf("%w: attendance for %s: %v", settlement.ErrDataFormat, row.EmployeeID, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("%w: attendance for %s ends before it starts", settlement.ErrDataFormat, row.EmployeeID)
		}

		hours := decimal.NewFromFloat(end.Sub(start).Hours()).Round(4)

		records = append(records, settlement.AttendanceRecord{
			EmployeeID: row.EmployeeID,
			ShiftID:    row.ShiftID,
			StoreID:    row.DepartmentID,
			Date:       time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
			Hours:      hours,
		})
	}

	return records, nil
}
