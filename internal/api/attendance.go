package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
)

// FetchAttendance lists monthly attendance rows. searchDate filters on the
// attendance month (YYYY-MM), employeeID narrows to one employee; both are
// optional.
func (c *Client) FetchAttendance(ctx context.Context, page, perPage int, searchDate string, employeeID int) (ListResult[AttendanceRecord], error) {
	q := pageQuery(page, perPage)
	if searchDate != "" {
		q.Set("search_date", searchDate)
	}
	if employeeID > 0 {
		q.Set("employee_id", strconv.Itoa(employeeID))
	}
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/payroll/attendance", q, nil, &raw); err != nil {
		return ListResult[AttendanceRecord]{}, err
	}
	return DecodeList[AttendanceRecord](raw)
}
