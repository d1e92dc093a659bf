package datasource

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/travel-atlas/pkg/models/domain"
)

var ErrUnknownDriver = errors.New("unknown data source driver")

// Opener opens a data source described by a profile
type Opener func(ctx context.Context, profile domain.Profile) (*Source, error)

// Registry manages data source openers keyed by driver name
type Registry interface {
	// Register adds a new driver opener
	Register(driver domain.Driver, opener Opener) error
	// Open creates a source for the profile's driver
	Open(ctx context.Context, profile domain.Profile) (*Source, error)
	// ListDrivers returns the registered drivers in name order
	ListDrivers() []domain.Driver
}

type registry struct {
	mu      sync.RWMutex
	openers map[domain.Driver]Opener
}

func NewRegistry() Registry {
	return &registry{
		openers: make(map[domain.Driver]Opener),
	}
}

// Default returns a registry with every built-in driver registered.
func Default() Registry {
	r := &registry{
		openers: map[domain.Driver]Opener{
			domain.DriverPostgres:   OpenPostgres,
			domain.DriverDuckDB:     OpenDuckDB,
			domain.DriverSnowflake:  OpenSnowflake,
			domain.DriverDatabricks: OpenDatabricks,
		},
	}
	return r
}

func (r *registry) Register(driver domain.Driver, opener Opener) error {
	if driver == "" {
		return fmt.Errorf("driver name cannot be empty")
	}
	if opener == nil {
		return fmt.Errorf("opener cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.openers[driver]; exists {
		return fmt.Errorf("driver %q is already registered", driver)
	}

	r.openers[driver] = opener
	return nil
}

func (r *registry) Open(ctx context.Context, profile domain.Profile) (*Source, error) {
	r.mu.RLock()
	opener, exists := r.openers[profile.Driver]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %q (profile %s)", ErrUnknownDriver, profile.Driver, profile.Name)
	}

	src, err := opener(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", profile, err)
	}
	return src, nil
}

func (r *registry) ListDrivers() []domain.Driver {
	r.mu.RLock()
	defer r.mu.RUnlock()

	drivers := make([]domain.Driver, 0, len(r.openers))
	for d := range r.openers {
		drivers = append(drivers, d)
	}
	sort.Slice(drivers, func(i, j int) bool { return drivers[i] < drivers[j] })
	return drivers
}
