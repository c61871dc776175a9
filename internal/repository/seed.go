package repository

import "github.com/Eursukkul/transit-booking/internal/models"

// DefaultServices is the reseed set used when no services are persisted.
func DefaultServices() []models.Service {
	return []models.Service{
		{ID: 1, Type: models.ServiceTypeBus, Name: "CityExpress-101", Source: "Chandigarh", Destination: "Delhi", DepartTime: "07:00", SeatsTotal: 40, SeatsAvailable: 40},
		{ID: 2, Type: models.ServiceTypeBus, Name: "InterCity-202", Source: "Panchkula", Destination: "Ambala", DepartTime: "10:30", SeatsTotal: 30, SeatsAvailable: 30},
		{ID: 3, Type: models.ServiceTypeTrain, Name: "Express-Rajdhani", Source: "Chandigarh", Destination: "Mumbai", DepartTime: "18:45", SeatsTotal: 200, SeatsAvailable: 200},
		{ID: 4, Type: models.ServiceTypeTrain, Name: "Passenger-301", Source: "Delhi", Destination: "Jaipur", DepartTime: "13:00", SeatsTotal: 120, SeatsAvailable: 120},
	}
}
