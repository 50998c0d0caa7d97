package entities

import "time"

// The types below are read-only views of records owned by other parts of the
// salon backend. The lifecycle only needs them to validate references when a
// service detail is created.

// Employee is a user that renders services. RoleID is resolved through an
// injected role resolver, never compared against constants.
type Employee struct {
	ID     int64
	RoleID int64
}

// Service is a catalog service ("servicio").
type Service struct {
	ID int64
}

// Appointment is the parent booking ("servicio cliente") of service details.
type Appointment struct {
	ID       int64
	ClientID int64
	Date     time.Time
}
