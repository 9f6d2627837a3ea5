package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) FetchPayroll(ctx context.Context, page, perPage int) (ListResult[Payroll], error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/payroll", pageQuery(page, perPage), nil, &raw); err != nil {
		return ListResult[Payroll]{}, err
	}
	return DecodeList[Payroll](raw)
}

func (c *Client) SearchPayroll(ctx context.Context, query string, page, perPage int) (ListResult[Payroll], error) {
	q := pageQuery(page, perPage)
	q.Set("search_query", query)
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/payroll/search", q, nil, &raw); err != nil {
		return ListResult[Payroll]{}, err
	}
	return DecodeList[Payroll](raw)
}

func (c *Client) AddPayroll(ctx context.Context, row Payroll) (*Payroll, error) {
	var out Payroll
	if err := c.doJSON(ctx, http.MethodPost, "/payroll/add", nil, row, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePayroll(ctx context.Context, id int, row Payroll) error {
	if err := checkID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPut, "/payroll/update/"+strconv.Itoa(id), nil, row, nil)
}

func (c *Client) DeletePayroll(ctx context.Context, id int) error {
	if err := checkID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, "/payroll/delete/"+strconv.Itoa(id), nil, nil, nil)
}

// SendSalaryNotification asks the backend to email payslips for the given
// month. monthStr is YYYY-MM or YYYY-MM-DD.
func (c *Client) SendSalaryNotification(ctx context.Context, monthStr string) error {
	q := url.Values{}
	q.Set("month_str", monthStr)
	return c.doJSON(ctx, http.MethodPost, "/notifications/email-salary-notification", q, nil, nil)
}
