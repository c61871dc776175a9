package ledger

import (
	"testing"

	"github.com/Eursukkul/transit-booking/internal/models"
	"github.com/stretchr/testify/assert"
)

func sampleService() *models.Service {
	return &models.Service{
		ID:             1,
		Type:           models.ServiceTypeBus,
		Name:           "CityExpress-101",
		SeatsTotal:     40,
		SeatsAvailable: 40,
	}
}

func TestReserve_Success(t *testing.T) {
	svc := sampleService()

	err := Reserve(svc, 5)

	assert.NoError(t, err)
	assert.Equal(t, 35, svc.SeatsAvailable)
}

func TestReserve_AllRemainingSeats(t *testing.T) {
	svc := sampleService()

	assert.NoError(t, Reserve(svc, 40))
	assert.Equal(t, 0, svc.SeatsAvailable)
}

func TestReserve_InvalidQuantity(t *testing.T) {
	for _, count := range []int{0, -1, 41, 999} {
		svc := sampleService()

		err := Reserve(svc, count)

		assert.ErrorIs(t, err, models.ErrInvalidQuantity, "count %d", count)
		assert.Equal(t, 40, svc.SeatsAvailable, "count %d", count)
	}
}

func TestRelease_RestoresReservedSeats(t *testing.T) {
	svc := sampleService()
	assert.NoError(t, Reserve(svc, 12))

	Release(svc, 12)

	assert.Equal(t, 40, svc.SeatsAvailable)
}

func TestRelease_NoUpperBound(t *testing.T) {
	svc := sampleService()

	Release(svc, 3)

	assert.Equal(t, 43, svc.SeatsAvailable)
}

func TestRelease_NonPositiveIsNoop(t *testing.T) {
	svc := sampleService()

	Release(svc, 0)
	Release(svc, -4)

	assert.Equal(t, 40, svc.SeatsAvailable)
}

func TestAudit_Consistent(t *testing.T) {
	services := []models.Service{
		{ID: 1, SeatsTotal: 40, SeatsAvailable: 35},
		{ID: 2, SeatsTotal: 30, SeatsAvailable: 30},
	}
	bookings := []models.Booking{
		{BookingID: 1, ServiceID: 1, SeatsBooked: 3},
		{BookingID: 2, ServiceID: 1, SeatsBooked: 2},
		{BookingID: 3, ServiceID: 99, SeatsBooked: 7},
	}

	assert.Empty(t, Audit(services, bookings))
}

func TestAudit_ReportsDrift(t *testing.T) {
	services := []models.Service{
		{ID: 1, SeatsTotal: 40, SeatsAvailable: 40},
		{ID: 2, SeatsTotal: 30, SeatsAvailable: 30},
	}
	bookings := []models.Booking{
		{BookingID: 1, ServiceID: 1, SeatsBooked: 5},
	}

	got := Audit(services, bookings)

	assert.Len(t, got, 1)
	assert.Equal(t, Discrepancy{ServiceID: 1, SeatsTotal: 40, SeatsAvailable: 40, SeatsBooked: 5}, got[0])
	assert.Contains(t, got[0].String(), "service 1")
}
