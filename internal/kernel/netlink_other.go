//go:build !linux

package kernel

import (
	"context"
	"log/slog"
	"net/netip"

	"github.com/dantte-lp/goribd/internal/rib"
)

// Netlink is unavailable outside Linux.
type Netlink struct{}

// NewNetlink always fails with ErrUnsupported.
func NewNetlink(int, *slog.Logger) (*Netlink, error) {
	return nil, ErrUnsupported
}

// Close implements io.Closer.
func (*Netlink) Close() error { return nil }

// Replace always fails with ErrUnsupported.
func (*Netlink) Replace(context.Context, netip.Prefix, []rib.NextHop) error {
	return ErrUnsupported
}

// Delete always fails with ErrUnsupported.
func (*Netlink) Delete(context.Context, netip.Prefix) error {
	return ErrUnsupported
}

// Routes always fails with ErrUnsupported.
func (*Netlink) Routes(context.Context) ([]rib.KernelRoute, error) {
	return nil, ErrUnsupported
}

// LinkStates always fails with ErrUnsupported.
func (*Netlink) LinkStates(context.Context) (map[string]bool, error) {
	return nil, ErrUnsupported
}
