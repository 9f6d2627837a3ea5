package api

import (
	"encoding/json"
	"fmt"
)

// ListResult is the single normalized form for every list endpoint. The
// backend answers with a bare array, `{items, total}`, `{data, total}`, or a
// full envelope; callers only ever see this.
type ListResult[T any] struct {
	Items    []T
	Total    int
	HasTotal bool
}

type listEnvelope struct {
	Items    json.RawMessage `json:"items"`
	Data     json.RawMessage `json:"data"`
	Total    *int            `json:"total"`
	Metadata *struct {
		TotalItems *int `json:"total_items"`
		Total      *int `json:"total"`
	} `json:"metadata"`
}

// DecodeList normalizes the three list response shapes into one.
func DecodeList[T any](raw json.RawMessage) (ListResult[T], error) {
	var result ListResult[T]
	if len(raw) == 0 {
		result.Items = []T{}
		return result, nil
	}

	// Bare array first: the cheapest and most common shape.
	if err := json.Unmarshal(raw, &result.Items); err == nil {
		if result.Items == nil {
			result.Items = []T{}
		}
		return result, nil
	}

	var env listEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return result, fmt.Errorf("unrecognized list response: %w", err)
	}

	payload := env.Items
	if len(payload) == 0 {
		payload = env.Data
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &result.Items); err != nil {
			return result, fmt.Errorf("decode list items: %w", err)
		}
	}
	if result.Items == nil {
		result.Items = []T{}
	}

	switch {
	case env.Total != nil:
		result.Total = *env.Total
		result.HasTotal = true
	case env.Metadata != nil && env.Metadata.TotalItems != nil:
		result.Total = *env.Metadata.TotalItems
		result.HasTotal = true
	case env.Metadata != nil && env.Metadata.Total != nil:
		result.Total = *env.Metadata.Total
		result.HasTotal = true
	}
	return result, nil
}

func (r ListResult[T]) Len() int {
	return len(r.Items)
}

// EffectiveTotal is the advertised total, or the item count for endpoints
// that never report one.
func (r ListResult[T]) EffectiveTotal() int {
	if r.HasTotal {
		return r.Total
	}
	return len(r.Items)
}
