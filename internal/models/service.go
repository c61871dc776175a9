package models

type ServiceType string

const (
	ServiceTypeBus   ServiceType = "Bus"
	ServiceTypeTrain ServiceType = "Train"
)

// Service is a schedulable bus or train run with a fixed seat capacity.
// SeatsAvailable is only changed through the ledger package.
type Service struct {
	ID             int         `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Type           ServiceType `gorm:"column:type;type:varchar(16);not null" json:"type"`
	Name           string      `gorm:"column:name;not null" json:"name"`
	Source         string      `gorm:"column:source;not null" json:"source"`
	Destination    string      `gorm:"column:destination;not null" json:"destination"`
	DepartTime     string      `gorm:"column:depart_time;not null" json:"depart_time"`
	SeatsTotal     int         `gorm:"column:seats_total;not null" json:"seats_total"`
	SeatsAvailable int         `gorm:"column:seats_available;not null" json:"seats_available"`
}
