package logbook

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thanhpk/randstr"
)

// Clock abstracts time retrieval so business logic is deterministic in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// IDGenerator abstracts unique ID generation so tests are deterministic.
type IDGenerator interface {
	New() string
}

// UUIDGenerator produces random UUIDs. Used for flight entry ids.
type UUIDGenerator struct{}

func (UUIDGenerator) New() string { return uuid.New().String() }

// exportTokenLength is the number of alphanumeric characters in an export id.
// Collisions are treated as overwhelmingly improbable, not impossible.
const exportTokenLength = 8

// ExportTokenGenerator produces short uppercase alphanumeric tokens for
// export ids.
type ExportTokenGenerator struct{}

func (ExportTokenGenerator) New() string {
	return strings.ToUpper(randstr.String(exportTokenLength))
}
