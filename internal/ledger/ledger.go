// Package ledger keeps Service.SeatsAvailable consistent with the bookings
// held against it.
package ledger

import (
	"fmt"

	"github.com/Eursukkul/transit-booking/internal/models"
)

// Reserve takes count seats from svc. It fails without touching svc when
// count is not positive or exceeds what is available.
func Reserve(svc *models.Service, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: must book at least one seat, got %d", models.ErrInvalidQuantity, count)
	}
	if count > svc.SeatsAvailable {
		return fmt.Errorf("%w: %d requested, %d available", models.ErrInvalidQuantity, count, svc.SeatsAvailable)
	}
	svc.SeatsAvailable -= count
	return nil
}

// Release gives back seats previously reserved on svc. It does not cap at
// SeatsTotal: a cancellation always restores exactly what it held.
func Release(svc *models.Service, count int) {
	if count <= 0 {
		return
	}
	svc.SeatsAvailable += count
}

// Discrepancy describes a service whose seat counts don't add up.
type Discrepancy struct {
	ServiceID      int
	SeatsTotal     int
	SeatsAvailable int
	SeatsBooked    int
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("service %d: booked %d + available %d != total %d",
		d.ServiceID, d.SeatsBooked, d.SeatsAvailable, d.SeatsTotal)
}

// Audit checks booked + available == total for every service. Bookings
// pointing at unknown services are ignored.
func Audit(services []models.Service, bookings []models.Booking) []Discrepancy {
	booked := make(map[int]int, len(services))
	for _, b := range bookings {
		booked[b.ServiceID] += b.SeatsBooked
	}

	var out []Discrepancy
	for _, s := range services {
		if booked[s.ID]+s.SeatsAvailable != s.SeatsTotal {
			out = append(out, Discrepancy{
				ServiceID:      s.ID,
				SeatsTotal:     s.SeatsTotal,
				SeatsAvailable: s.SeatsAvailable,
				SeatsBooked:    booked[s.ID],
			})
		}
	}
	return out
}
