package dto

type AddServiceRequest struct {
	Type        string `json:"type" validate:"required,oneof=Bus Train"`
	Name        string `json:"name" validate:"notblank"`
	Source      string `json:"source" validate:"notblank"`
	Destination string `json:"destination" validate:"notblank"`
	DepartTime  string `json:"depart_time" validate:"notblank"`
	SeatsTotal  int    `json:"seats_total" validate:"gte=0,lte=2147483647"`
}
