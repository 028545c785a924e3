package models

import "errors"

var (
	// ErrNotFound signals a missing station, user or payment. Handlers map
	// it to 404.
	ErrNotFound = errors.New("not found")

	// ErrNoAvailability signals that a station has no FREE power bank to
	// reserve. Handlers map it to 400.
	ErrNoAvailability = errors.New("no free power banks available at this station")
)
