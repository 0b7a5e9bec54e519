package response

import "clinic-scheduler/internal/usecase/queries"

type AppointmentListResponse struct {
	Appointments []*queries.AppointmentView `json:"appointments"`
	NextCursor   string                     `json:"next_cursor,omitempty"`
}

func FromAppointmentList(items []*queries.AppointmentView, next *queries.Cursor) *AppointmentListResponse {
	if items == nil {
		items = []*queries.AppointmentView{}
	}
	res := &AppointmentListResponse{Appointments: items}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}
