package toast

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
)

// IDGenerator produces toast identities.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs. It is the default.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// KSUIDGenerator issues K-sortable ids, which order by creation time.
type KSUIDGenerator struct{}

// NewID implements IDGenerator.
func (KSUIDGenerator) NewID() string {
	return ksuid.New().String()
}

// IDGeneratorFor returns the generator for a configured id format.
func IDGeneratorFor(format string) (IDGenerator, error) {
	switch format {
	case "", "uuid":
		return UUIDGenerator{}, nil
	case "ksuid":
		return KSUIDGenerator{}, nil
	default:
		return nil, fmt.Errorf("toast: unknown id format %q", format)
	}
}
