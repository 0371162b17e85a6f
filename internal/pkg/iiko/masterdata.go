package iiko

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/pizzayolo/backoffice-go/internal/domain/settlement"
)

// ErpEmployee is one row of the ERP employee directory.
type ErpEmployee struct {
	ID         string
	FirstName  string
	LastName   string
	Department string
	Deleted    bool
}

// FullName joins the name parts the way the roster displays them.
func (e ErpEmployee) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(e.FirstName) + " " + strings.TrimSpace(e.LastName))
}

// ErpStore is one sales point from the corporation directory.
type ErpStore struct {
	ID   string
	Name string
	Type string
}

type employeesXML struct {
	XMLName   xml.Name         `xml:"employees"`
	Employees []employeeXMLRow `xml:"employee"`
}

type employeeXMLRow struct {
	ID             string `xml:"id"`
	FirstName      string `xml:"firstName"`
	LastName       string `xml:"lastName"`
	MainDepartment string `xml:"mainRoleCode"`
	Deleted        bool   `xml:"deleted"`
}

// FetchEmployees pulls the full employee directory. Deleted employees are
// kept so sync can deactivate them locally.
func (c *Client) FetchEmployees(ctx context.Context) ([]ErpEmployee, error) {
	body, _, err := c.get(ctx, "/resto/api/employees", url.Values{})
	if err != nil {
		return nil, err
	}

	var doc employeesXML
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: employees payload: %v", settlement.ErrDataFormat, err)
	}

	employees := make([]ErpEmployee, 0, len(doc.Employees))
	for _, row := range doc.Employees {
		if row.ID == "" {
			return nil, fmt.Errorf("%w: employee row without id", settlement.ErrDataFormat)
		}
		employees = append(employees, ErpEmployee{
			ID:         row.ID,
			FirstName:  row.FirstName,
			LastName:   row.LastName,
			Department: row.MainDepartment,
			Deleted:    row.Deleted,
		})
	}
	return employees, nil
}

type storesXML struct {
	XMLName xml.Name      `xml:"corporateItemDtoes"`
	Stores  []storeXMLRow `xml:"corporateItemDto"`
}

type storeXMLRow struct {
	ID   string `xml:"id"`
	Name string `xml:"name"`
	Type string `xml:"type"`
}

// FetchStores pulls the corporation store directory.
func (c *Client) FetchStores(ctx context.Context) ([]ErpStore, error) {
	body, _, err := c.get(ctx, "/resto/api/corporation/stores", url.Values{})
	if err != nil {
		return nil, err
	}

	var doc storesXML
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: stores payload: %v", settlement.ErrDataFormat, err)
	}

	stores := make([]ErpStore, 0, len(doc.Stores))
	for _, row := range doc.Stores {
		if row.ID == "" {
			return nil, fmt.Errorf("%w: store row without id", settlement.ErrDataFormat)
		}
		stores = append(stores, ErpStore{ID: row.ID, Name: row.Name, Type: row.Type})
	}
	return stores, nil
}
