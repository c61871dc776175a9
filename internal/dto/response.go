package dto

import (
	"github.com/Eursukkul/transit-booking/internal/models"
)

// UnknownServiceName labels bookings whose service no longer exists.
const UnknownServiceName = "Deleted/Unknown"

type BookingView struct {
	BookingID     int    `json:"booking_id"`
	ServiceID     int    `json:"service_id"`
	ServiceName   string `json:"service_name"`
	PassengerName string `json:"passenger_name"`
	SeatsBooked   int    `json:"seats_booked"`
	Contact       string `json:"contact"`
}

// ToBookingView resolves the booking's service name; svc may be nil.
func ToBookingView(b models.Booking, svc *models.Service) BookingView {
	name := UnknownServiceName
	if svc != nil {
		name = svc.Name
	}
	return BookingView{
		BookingID:     b.BookingID,
		ServiceID:     b.ServiceID,
		ServiceName:   name,
		PassengerName: b.PassengerName,
		SeatsBooked:   b.SeatsBooked,
		Contact:       b.Contact,
	}
}

// BookingEvent is the payload of booking.created and booking.cancelled.
type BookingEvent struct {
	BookingID      int    `json:"booking_id"`
	ServiceID      int    `json:"service_id"`
	PassengerName  string `json:"passenger_name"`
	SeatsBooked    int    `json:"seats_booked"`
	SeatsAvailable *int   `json:"seats_available,omitempty"`
}

func ToBookingEvent(b models.Booking, svc *models.Service) BookingEvent {
	ev := BookingEvent{
		BookingID:     b.BookingID,
		ServiceID:     b.ServiceID,
		PassengerName: b.PassengerName,
		SeatsBooked:   b.SeatsBooked,
	}
	if svc != nil {
		avail := svc.SeatsAvailable
		ev.SeatsAvailable = &avail
	}
	return ev
}

// ServiceEvent is the payload of service.added.
type ServiceEvent struct {
	ID             int    `json:"id"`
	Type           string `json:"type"`
	Name           string `json:"name"`
	Source         string `json:"source"`
	Destination    string `json:"destination"`
	DepartTime     string `json:"depart_time"`
	SeatsTotal     int    `json:"seats_total"`
	SeatsAvailable int    `json:"seats_available"`
}

func ToServiceEvent(s models.Service) ServiceEvent {
	return ServiceEvent{
		ID:             s.ID,
		Type:           string(s.Type),
		Name:           s.Name,
		Source:         s.Source,
		Destination:    s.Destination,
		DepartTime:     s.DepartTime,
		SeatsTotal:     s.SeatsTotal,
		SeatsAvailable: s.SeatsAvailable,
	}
}
