package ulid

import (
	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string. Used for run IDs and request IDs.
var NewULID = func() string {
	return ulid.Make().String()
}
