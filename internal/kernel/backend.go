package kernel

import (
	"fmt"
	"log/slog"

	"github.com/dantte-lp/goribd/internal/rib"
)

// Backend names.
const (
	BackendNetlink = "netlink"
	BackendMemory  = "memory"
)

// Backend is a kernel forwarding table that also reports live link state.
type Backend interface {
	rib.Kernel
	rib.LinkStateSource
	Close() error
}

// Open creates the named backend. The table applies to netlink only.
func Open(name string, table int, logger *slog.Logger) (Backend, error) {
	switch name {
	case BackendNetlink, "":
		nl, err := NewNetlink(table, logger)
		if err != nil {
			return nil, err
		}
		return nl, nil
	case BackendMemory:
		return NewMemory(logger), nil
	default:
		return nil, fmt.Errorf("backend %q: %w", name, ErrInvalidBackend)
	}
}
