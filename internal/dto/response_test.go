package dto

import (
	"testing"

	"github.com/Eursukkul/transit-booking/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBookingView(t *testing.T) {
	b := models.Booking{BookingID: 1, ServiceID: 1, PassengerName: "Alice", SeatsBooked: 5, Contact: "a@x.com"}
	svc := &models.Service{ID: 1, Name: "CityExpress-101"}

	v := ToBookingView(b, svc)

	assert.Equal(t, "CityExpress-101", v.ServiceName)
	assert.Equal(t, 5, v.SeatsBooked)
}

func TestToBookingView_DanglingService(t *testing.T) {
	v := ToBookingView(models.Booking{BookingID: 2, ServiceID: 77}, nil)

	assert.Equal(t, UnknownServiceName, v.ServiceName)
	assert.Equal(t, 77, v.ServiceID)
}

func TestToBookingEvent(t *testing.T) {
	b := models.Booking{BookingID: 3, ServiceID: 1, SeatsBooked: 2}

	ev := ToBookingEvent(b, &models.Service{ID: 1, SeatsAvailable: 38})
	require.NotNil(t, ev.SeatsAvailable)
	assert.Equal(t, 38, *ev.SeatsAvailable)

	ev = ToBookingEvent(b, nil)
	assert.Nil(t, ev.SeatsAvailable)
}
