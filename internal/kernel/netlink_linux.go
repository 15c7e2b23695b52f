//go:build linux

package kernel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/netip"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"github.com/dantte-lp/goribd/internal/rib"
)

// ownerProtocol marks routes written by this daemon.
const ownerProtocol = netlink.RouteProtocol(unix.RTPROT_ZEBRA)

// -------------------------------------------------------------------------
// Netlink: Linux kernel forwarding table
// -------------------------------------------------------------------------

// Netlink programs the Linux forwarding table over NETLINK_ROUTE. Routes
// are written with protocol RTPROT_ZEBRA into the configured table; only
// those routes are reported as owned.
type Netlink struct {
	handle *netlink.Handle
	table  int
	logger *slog.Logger
}

// NewNetlink opens a NETLINK_ROUTE handle. A zero table selects the main
// table.
func NewNetlink(table int, logger *slog.Logger) (*Netlink, error) {
	h, err := netlink.NewHandle(unix.NETLINK_ROUTE)
	if err != nil {
		return nil, fmt.Errorf("open netlink handle: %w", err)
	}
	if table == 0 {
		table = unix.RT_TABLE_MAIN
	}
	return &Netlink{
		handle: h,
		table:  table,
		logger: logger.With(
			slog.String("component", "kernel.netlink"),
			slog.Int("table", table),
		),
	}, nil
}

// Close releases the netlink socket.
func (n *Netlink) Close() error {
	n.handle.Close()
	return nil
}

// Replace installs or overwrites the route for prefix with an ECMP route
// over nhs.
func (n *Netlink) Replace(ctx context.Context, prefix netip.Prefix, nhs []rib.NextHop) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("replace %s: %w", prefix, err)
	}
	route, err := toNetlinkRoute(prefix, nhs, n.table, n.linkIndex)
	if err != nil {
		return fmt.Errorf("replace %s: %w", prefix, err)
	}
	if err := n.handle.RouteReplace(route); err != nil {
		return fmt.Errorf("replace %s: %w", prefix, err)
	}
	n.logger.Debug("route replaced",
		slog.String("prefix", prefix.String()),
		slog.Int("nexthops", len(nhs)),
	)
	return nil
}

// Delete removes the owned route for prefix. A route that is already gone
// is not an error.
func (n *Netlink) Delete(ctx context.Context, prefix netip.Prefix) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete %s: %w", prefix, err)
	}
	route := &netlink.Route{
		Dst:      prefixToIPNet(prefix),
		Family:   family(prefix.Addr()),
		Table:    n.table,
		Protocol: ownerProtocol,
	}
	if err := n.handle.RouteDel(route); err != nil && !errors.Is(err, unix.ESRCH) {
		return fmt.Errorf("delete %s: %w", prefix, err)
	}
	n.logger.Debug("route deleted", slog.String("prefix", prefix.String()))
	return nil
}

// Routes lists the unicast routes of the configured table. An interrupted
// dump is returned as an error so the caller retries with a consistent
// view.
func (n *Netlink) Routes(ctx context.Context) ([]rib.KernelRoute, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	names, err := n.linkNames()
	if err != nil {
		return nil, err
	}
	routes, err := n.handle.RouteListFiltered(netlink.FAMILY_ALL,
		&netlink.Route{Table: n.table}, netlink.RT_FILTER_TABLE)
	if err != nil {
		return nil, fmt.Errorf("list routes in table %d: %w", n.table, err)
	}

	out := make([]rib.KernelRoute, 0, len(routes))
	for i := range routes {
		if routes[i].Type != unix.RTN_UNICAST {
			continue
		}
		out = append(out, fromNetlinkRoute(&routes[i], names))
	}
	return out, nil
}

// LinkStates reports the operational state of every link.
func (n *Netlink) LinkStates(ctx context.Context) (map[string]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	links, err := n.handle.LinkList()
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	out := make(map[string]bool, len(links))
	for _, l := range links {
		attrs := l.Attrs()
		out[attrs.Name] = linkUp(attrs)
	}
	return out, nil
}

func (n *Netlink) linkIndex(name string) (int, error) {
	l, err := n.handle.LinkByName(name)
	if err != nil {
		var notFound netlink.LinkNotFoundError
		if errors.As(err, &notFound) {
			return 0, fmt.Errorf("%s: %w", name, ErrLinkNotFound)
		}
		return 0, fmt.Errorf("lookup link %s: %w", name, err)
	}
	return l.Attrs().Index, nil
}

func (n *Netlink) linkNames() (map[int]string, error) {
	links, err := n.handle.LinkList()
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	out := make(map[int]string, len(links))
	for _, l := range links {
		out[l.Attrs().Index] = l.Attrs().Name
	}
	return out, nil
}

// -------------------------------------------------------------------------
// Conversion
// -------------------------------------------------------------------------

// linkUp treats a link as up when it is administratively up and its
// operational state is up or not reported by the driver.
func linkUp(attrs *netlink.LinkAttrs) bool {
	if attrs.Flags&net.FlagUp == 0 {
		return false
	}
	return attrs.OperState == netlink.OperUp || attrs.OperState == netlink.OperUnknown
}

func family(addr netip.Addr) int {
	if addr.Is4() {
		return netlink.FAMILY_V4
	}
	return netlink.FAMILY_V6
}

func prefixToIPNet(p netip.Prefix) *net.IPNet {
	return &net.IPNet{
		IP:   p.Addr().AsSlice(),
		Mask: net.CIDRMask(p.Bits(), p.Addr().BitLen()),
	}
}

// toNetlinkRoute builds an owned route. A single next-hop is encoded in the
// route itself; several become a multipath route.
func toNetlinkRoute(prefix netip.Prefix, nhs []rib.NextHop, table int, linkIndex func(string) (int, error)) (*netlink.Route, error) {
	if len(nhs) == 0 {
		return nil, ErrNoNextHops
	}
	route := &netlink.Route{
		Dst:      prefixToIPNet(prefix),
		Family:   family(prefix.Addr()),
		Table:    table,
		Protocol: ownerProtocol,
		Type:     unix.RTN_UNICAST,
		Scope:    netlink.SCOPE_UNIVERSE,
	}

	if len(nhs) == 1 {
		nh := nhs[0]
		if nh.Kind() == rib.NextHopAddress {
			route.Gw = nh.Addr.AsSlice()
			return route, nil
		}
		idx, err := linkIndex(nh.Interface)
		if err != nil {
			return nil, err
		}
		route.LinkIndex = idx
		route.Scope = netlink.SCOPE_LINK
		return route, nil
	}

	for _, nh := range nhs {
		info := &netlink.NexthopInfo{}
		if nh.Kind() == rib.NextHopAddress {
			info.Gw = nh.Addr.AsSlice()
		} else {
			idx, err := linkIndex(nh.Interface)
			if err != nil {
				return nil, err
			}
			info.LinkIndex = idx
		}
		route.MultiPath = append(route.MultiPath, info)
	}
	return route, nil
}

// fromNetlinkRoute converts a kernel route. A gateway next-hop becomes an
// address next-hop; a gateway-less next-hop becomes an interface next-hop.
func fromNetlinkRoute(r *netlink.Route, names map[int]string) rib.KernelRoute {
	kr := rib.KernelRoute{
		Source: r.Protocol.String(),
		Owned:  r.Protocol == ownerProtocol,
	}
	if r.Dst != nil {
		if p, ok := ipNetToPrefix(r.Dst); ok {
			kr.Prefix = p
		}
	} else if r.Family == netlink.FAMILY_V6 {
		kr.Prefix = netip.PrefixFrom(netip.IPv6Unspecified(), 0)
	} else {
		kr.Prefix = netip.PrefixFrom(netip.IPv4Unspecified(), 0)
	}

	add := func(gw net.IP, linkIndex int) {
		if addr, ok := netip.AddrFromSlice(gw); ok {
			kr.NextHops = append(kr.NextHops, rib.AddrNextHop(addr))
			return
		}
		if name, ok := names[linkIndex]; ok {
			kr.NextHops = append(kr.NextHops, rib.IfaceNextHop(name))
		}
	}
	if len(r.MultiPath) > 0 {
		for _, info := range r.MultiPath {
			add(info.Gw, info.LinkIndex)
		}
		return kr
	}
	add(r.Gw, r.LinkIndex)
	return kr
}

func ipNetToPrefix(n *net.IPNet) (netip.Prefix, bool) {
	addr, ok := netip.AddrFromSlice(n.IP)
	if !ok {
		return netip.Prefix{}, false
	}
	ones, _ := n.Mask.Size()
	return netip.PrefixFrom(addr.Unmap(), ones).Masked(), true
}
