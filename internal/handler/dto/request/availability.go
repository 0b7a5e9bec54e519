package request

import (
	"clinic-scheduler/internal/domain/availability"
)

// TemplateRequest is validated by the domain so the rejected field can be
// reported back.
type TemplateRequest struct {
	Weekdays     []int  `json:"weekdays"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	SlotDuration int    `json:"slot_duration"`
}

func (r *TemplateRequest) ToDomain() (availability.Template, error) {
	return availability.NewTemplate(r.Weekdays, r.StartTime, r.EndTime, r.SlotDuration)
}

type SelectSlotRequest struct {
	SlotID int64 `json:"slot_id" binding:"required,gt=0"`
}

type BookSlotRequest struct {
	PatientID *int64 `json:"patient_id" binding:"omitempty,gt=0"`
}
