//go:build linux

package kernel

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"testing"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"github.com/dantte-lp/goribd/internal/rib"
)

func fakeLinkIndex(name string) (int, error) {
	switch name {
	case "eth1":
		return 11, nil
	case "eth2":
		return 12, nil
	default:
		return 0, fmt.Errorf("%s: %w", name, ErrLinkNotFound)
	}
}

func TestToNetlinkRouteSingleGateway(t *testing.T) {
	t.Parallel()

	r, err := toNetlinkRoute(netip.MustParsePrefix("10.1.0.0/16"),
		[]rib.NextHop{rib.AddrNextHop(netip.MustParseAddr("192.0.2.1"))}, 100, fakeLinkIndex)
	if err != nil {
		t.Fatalf("toNetlinkRoute: %v", err)
	}
	if r.Dst.String() != "10.1.0.0/16" || !r.Gw.Equal(net.ParseIP("192.0.2.1")) {
		t.Errorf("route = %s, want 10.1.0.0/16 via 192.0.2.1", r)
	}
	if r.Protocol != ownerProtocol || r.Table != 100 || r.Family != netlink.FAMILY_V4 {
		t.Errorf("protocol=%d table=%d family=%d", r.Protocol, r.Table, r.Family)
	}
}

func TestToNetlinkRouteDevice(t *testing.T) {
	t.Parallel()

	r, err := toNetlinkRoute(netip.MustParsePrefix("2001:db8::/32"),
		[]rib.NextHop{rib.IfaceNextHop("eth2")}, unix.RT_TABLE_MAIN, fakeLinkIndex)
	if err != nil {
		t.Fatalf("toNetlinkRoute: %v", err)
	}
	if r.LinkIndex != 12 || r.Scope != netlink.SCOPE_LINK || r.Family != netlink.FAMILY_V6 {
		t.Errorf("route = %s, want dev index 12 scope link", r)
	}
}

func TestToNetlinkRouteMultipath(t *testing.T) {
	t.Parallel()

	nhs := []rib.NextHop{
		rib.AddrNextHop(netip.MustParseAddr("192.0.2.1")),
		rib.IfaceNextHop("eth1"),
	}
	r, err := toNetlinkRoute(netip.MustParsePrefix("10.2.0.0/16"), nhs, unix.RT_TABLE_MAIN, fakeLinkIndex)
	if err != nil {
		t.Fatalf("toNetlinkRoute: %v", err)
	}
	if len(r.MultiPath) != 2 {
		t.Fatalf("MultiPath = %v, want 2 entries", r.MultiPath)
	}
	if !r.MultiPath[0].Gw.Equal(net.ParseIP("192.0.2.1")) || r.MultiPath[1].LinkIndex != 11 {
		t.Errorf("MultiPath = %v", r.MultiPath)
	}

	nhs = append(nhs, rib.IfaceNextHop("eth7"))
	if _, err := toNetlinkRoute(netip.MustParsePrefix("10.2.0.0/16"), nhs, unix.RT_TABLE_MAIN, fakeLinkIndex); !errors.Is(err, ErrLinkNotFound) {
		t.Errorf("unknown link: err = %v, want ErrLinkNotFound", err)
	}
	if _, err := toNetlinkRoute(netip.MustParsePrefix("10.2.0.0/16"), nil, unix.RT_TABLE_MAIN, fakeLinkIndex); !errors.Is(err, ErrNoNextHops) {
		t.Errorf("no next-hops: err = %v, want ErrNoNextHops", err)
	}
}

func TestFromNetlinkRoute(t *testing.T) {
	t.Parallel()

	names := map[int]string{11: "eth1", 12: "eth2"}
	_, dst, _ := net.ParseCIDR("10.3.0.0/16")

	owned := fromNetlinkRoute(&netlink.Route{
		Dst:      dst,
		Protocol: ownerProtocol,
		MultiPath: []*netlink.NexthopInfo{
			{Gw: net.ParseIP("192.0.2.1"), LinkIndex: 11},
			{LinkIndex: 12},
		},
	}, names)
	if !owned.Owned || owned.Prefix != netip.MustParsePrefix("10.3.0.0/16") {
		t.Errorf("owned route = %+v", owned)
	}
	want := []rib.NextHop{rib.AddrNextHop(netip.MustParseAddr("192.0.2.1")), rib.IfaceNextHop("eth2")}
	if len(owned.NextHops) != 2 || owned.NextHops[0] != want[0] || owned.NextHops[1] != want[1] {
		t.Errorf("next-hops = %v, want %v", owned.NextHops, want)
	}

	def := fromNetlinkRoute(&netlink.Route{
		Family:   netlink.FAMILY_V4,
		Gw:       net.ParseIP("192.0.2.254"),
		Protocol: netlink.RouteProtocol(unix.RTPROT_DHCP),
	}, names)
	if def.Owned || def.Prefix != netip.MustParsePrefix("0.0.0.0/0") {
		t.Errorf("default route = %+v", def)
	}
}

func TestLinkUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flags net.Flags
		oper  netlink.LinkOperState
		want  bool
	}{
		{net.FlagUp, netlink.OperUp, true},
		{net.FlagUp, netlink.OperUnknown, true},
		{net.FlagUp, netlink.OperDown, false},
		{0, netlink.OperUp, false},
	}
	for _, tt := range tests {
		if got := linkUp(&netlink.LinkAttrs{Flags: tt.flags, OperState: tt.oper}); got != tt.want {
			t.Errorf("linkUp(%v, %v) = %t, want %t", tt.flags, tt.oper, got, tt.want)
		}
	}
}
