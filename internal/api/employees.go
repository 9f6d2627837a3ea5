package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

const (
	StatusActive  = "Active"
	StatusOnLeave = "On Leave"
)

func pageQuery(page, perPage int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("per_page", strconv.Itoa(perPage))
	return q
}

func (c *Client) FetchEmployees(ctx context.Context, page, perPage int) (ListResult[Employee], error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/employees", pageQuery(page, perPage), nil, &raw); err != nil {
		return ListResult[Employee]{}, err
	}
	return DecodeList[Employee](raw)
}

func (c *Client) SearchEmployees(ctx context.Context, query string, page, perPage int) (ListResult[Employee], error) {
	q := pageQuery(page, perPage)
	q.Set("search_query", query)
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/employees/search", q, nil, &raw); err != nil {
		return ListResult[Employee]{}, err
	}
	return DecodeList[Employee](raw)
}

func (c *Client) GetEmployeeDetails(ctx context.Context, id int) (*Employee, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var out Employee
	if err := c.doJSON(ctx, http.MethodGet, "/employees/details/"+strconv.Itoa(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddEmployee(ctx context.Context, emp Employee) (*Employee, error) {
	var out Employee
	if err := c.doJSON(ctx, http.MethodPost, "/employees/add", nil, emp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEmployee(ctx context.Context, id int, emp Employee) error {
	if err := checkID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPut, "/employees/update/"+strconv.Itoa(id), nil, emp, nil)
}

func (c *Client) DeleteEmployee(ctx context.Context, id int) error {
	if err := checkID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, "/employees/delete/"+strconv.Itoa(id), nil, nil, nil)
}
