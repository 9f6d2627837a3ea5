package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

func (c *Client) FetchDepartments(ctx context.Context) (ListResult[Department], error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/departments", nil, nil, &raw); err != nil {
		return ListResult[Department]{}, err
	}
	return DecodeList[Department](raw)
}

func (c *Client) AddDepartment(ctx context.Context, dep Department) (*Department, error) {
	var out Department
	if err := c.doJSON(ctx, http.MethodPost, "/departments/add", nil, dep, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateDepartment(ctx context.Context, id int, dep Department) error {
	if err := checkID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPut, "/departments/update/"+strconv.Itoa(id), nil, dep, nil)
}

func (c *Client) DeleteDepartment(ctx context.Context, id int) error {
	if err := checkID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, "/departments/delete/"+strconv.Itoa(id), nil, nil, nil)
}
