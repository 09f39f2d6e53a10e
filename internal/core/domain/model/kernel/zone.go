package kernel

import (
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrZoneIsNotConstructed indicates that a Zone was not created through NewZone.
var ErrZoneIsNotConstructed = errs.NewValueIsRequiredError("Zone must be created via NewZone")

// Zone is the coarse location bucket used to match riders to vendor delivery
// tasks. A rider only sees pending tasks whose vendor zone equals the rider's
// registered zone; there is no distance ranking below this granularity.
//
// Zone names are case-insensitive and stored upper-cased. The zero value is
// invalid; construct through NewZone.
type Zone struct {
	name string

	guard guard.ConstructorGuard
}

// NewZone creates a Zone from its name. The name must be non-blank;
// surrounding whitespace is trimmed and the name is upper-cased so that
// "north" and "North" denote the same zone.
func NewZone(name string) (Zone, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return Zone{}, errs.NewValueIsRequiredError("zone")
	}

	return Zone{
		name:  name,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Zone was created through NewZone.
func (z Zone) Validate() error {
	return z.guard.Validate(ErrZoneIsNotConstructed)
}

// Name returns the normalized zone name.
func (z Zone) Name() string {
	return z.name
}

// String implements fmt.Stringer.
func (z Zone) String() string {
	return z.name
}

// IsEqual reports whether two zones denote the same bucket.
func (z Zone) IsEqual(other Zone) bool {
	return z.name == other.name
}
