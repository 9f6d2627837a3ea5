package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) FetchHRReport(ctx context.Context) (*HRReport, error) {
	var out HRReport
	if err := c.doJSON(ctx, http.MethodGet, "/reports/hr", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchPayrollReport(ctx context.Context) (*PayrollReport, error) {
	var out PayrollReport
	if err := c.doJSON(ctx, http.MethodGet, "/reports/payroll", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchDividendReport(ctx context.Context, year int) (*DividendReport, error) {
	if year <= 0 {
		return nil, fmt.Errorf("invalid year %d: must be positive", year)
	}
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	var out DividendReport
	if err := c.doJSON(ctx, http.MethodGet, "/reports/dividend", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FetchDashboard(ctx context.Context, role string) (*Dashboard, error) {
	var out Dashboard
	if err := c.doJSON(ctx, http.MethodGet, "/dashboard/"+url.PathEscape(role), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
