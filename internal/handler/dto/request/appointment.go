package request

import "clinic-scheduler/internal/domain/appointment"

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *UpdateStatusRequest) ToDomain() (appointment.Status, error) {
	return appointment.NewStatus(r.Status)
}
