package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

func (c *Client) FetchPositions(ctx context.Context) (ListResult[Position], error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/positions", nil, nil, &raw); err != nil {
		return ListResult[Position]{}, err
	}
	return DecodeList[Position](raw)
}

// FetchPositionDistribution loads the per-department headcount for one
// position. Pages fetch this lazily when a row is expanded.
func (c *Client) FetchPositionDistribution(ctx context.Context, id int) ([]PositionDistribution, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/positions/distribution/"+strconv.Itoa(id), nil, nil, &raw); err != nil {
		return nil, err
	}
	result, err := DecodeList[PositionDistribution](raw)
	if err != nil {
		return nil, err
	}
	return result.Items, nil
}

func (c *Client) AddPosition(ctx context.Context, pos Position) (*Position, error) {
	var out Position
	if err := c.doJSON(ctx, http.MethodPost, "/positions/add", nil, pos, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdatePosition(ctx context.Context, id int, pos Position) error {
	if err := checkID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPut, "/positions/update/"+strconv.Itoa(id), nil, pos, nil)
}

func (c *Client) DeletePosition(ctx context.Context, id int) error {
	if err := checkID(id); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodDelete, "/positions/delete/"+strconv.Itoa(id), nil, nil, nil)
}
