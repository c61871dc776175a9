package models

// Booking is a passenger's reservation of SeatsBooked seats on one service.
// ServiceID is a weak reference: the service may no longer exist.
type Booking struct {
	BookingID     int    `gorm:"column:booking_id;primaryKey;autoIncrement:false" json:"booking_id"`
	ServiceID     int    `gorm:"column:service_id;not null;index" json:"service_id"`
	PassengerName string `gorm:"column:passenger_name;not null" json:"passenger_name"`
	SeatsBooked   int    `gorm:"column:seats_booked;not null" json:"seats_booked"`
	Contact       string `gorm:"column:contact;not null" json:"contact"`
}

// BookingCounter persists the next booking id for the postgres backend.
type BookingCounter struct {
	Name string `gorm:"column:name;primaryKey;type:varchar(32)"`
	Next int    `gorm:"column:next_value;not null"`
}

const BookingCounterName = "booking"
