package rib_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dantte-lp/goribd/internal/rib"
)

func TestTableAddRemove(t *testing.T) {
	t.Parallel()

	tbl := rib.NewTable()
	p := pfx("10.0.0.0/8")

	changed, err := tbl.AddRoute(p, rib.ProtocolStatic, 1, 0, addr("1.1.1.2"))
	if err != nil || !changed {
		t.Fatalf("first AddRoute = %t, %v; want true, nil", changed, err)
	}
	changed, err = tbl.AddRoute(p, rib.ProtocolStatic, 1, 0, addr("1.1.1.2"))
	if err != nil || changed {
		t.Fatalf("duplicate AddRoute = %t, %v; want false, nil", changed, err)
	}
	if _, err := tbl.AddRoute(p, rib.ProtocolStatic, 5, 0, dev("eth1")); !errors.Is(err, rib.ErrAttrConflict) {
		t.Fatalf("conflicting AddRoute: err = %v, want ErrAttrConflict", err)
	}
	if _, err := tbl.AddRoute(p, rib.ProtocolStatic, 1, 0, dev("eth1")); err != nil {
		t.Fatalf("AddRoute second next-hop: %v", err)
	}

	r, ok := tbl.Route(p, rib.ProtocolStatic)
	if !ok {
		t.Fatal("route missing")
	}
	if diff := cmp.Diff([]rib.NextHop{addr("1.1.1.2"), dev("eth1")}, r.NextHops, netipComparers); diff != "" {
		t.Errorf("next-hops mismatch (-want +got):\n%s", diff)
	}
	if got := tbl.PrefixesVia(dev("eth1")); len(got) != 1 || got[0] != p {
		t.Errorf("PrefixesVia(eth1) = %v, want [%s]", got, p)
	}

	if tbl.RemoveRoute(p, rib.ProtocolStatic, addr("9.9.9.9")) {
		t.Error("RemoveRoute of absent next-hop reported a change")
	}
	if !tbl.RemoveRoute(p, rib.ProtocolStatic, addr("1.1.1.2")) {
		t.Error("RemoveRoute reported no change")
	}
	if !tbl.RemoveRoute(p, rib.ProtocolStatic, dev("eth1")) {
		t.Error("RemoveRoute of last next-hop reported no change")
	}
	if tbl.Has(p) || tbl.Len() != 0 {
		t.Errorf("prefix not pruned: Has=%t Len=%d", tbl.Has(p), tbl.Len())
	}
	if got := tbl.NextHops(); len(got) != 0 {
		t.Errorf("next-hop index not pruned: %v", got)
	}
}

func TestTableSetRouteAttrs(t *testing.T) {
	t.Parallel()

	tbl := rib.NewTable()
	p := pfx("10.0.0.0/8")

	if _, err := tbl.SetRouteAttrs(p, rib.ProtocolBGP, 10, 0); !errors.Is(err, rib.ErrRouteNotFound) {
		t.Fatalf("SetRouteAttrs on missing route: err = %v, want ErrRouteNotFound", err)
	}
	_, _ = tbl.AddRoute(p, rib.ProtocolBGP, 20, 0, addr("1.1.1.2"))

	changed, err := tbl.SetRouteAttrs(p, rib.ProtocolBGP, 10, 7)
	if err != nil || !changed {
		t.Fatalf("SetRouteAttrs = %t, %v; want true, nil", changed, err)
	}
	r, _ := tbl.Route(p, rib.ProtocolBGP)
	if r.Distance != 10 || r.Metric != 7 {
		t.Errorf("route attrs = %d/%d, want 10/7", r.Distance, r.Metric)
	}
	if changed, _ := tbl.SetRouteAttrs(p, rib.ProtocolBGP, 10, 7); changed {
		t.Error("unchanged SetRouteAttrs reported a change")
	}
}

func TestTableReplaceAndWithdraw(t *testing.T) {
	t.Parallel()

	tbl := rib.NewTable()
	p := pfx("10.0.0.0/8")

	if !tbl.ReplaceRoute(p, rib.ProtocolBGP, 20, 0, []rib.NextHop{addr("1.1.1.2"), addr("1.1.1.2"), dev("eth2")}) {
		t.Fatal("ReplaceRoute creating a route reported no change")
	}
	first, _ := tbl.Route(p, rib.ProtocolBGP)
	if len(first.NextHops) != 2 {
		t.Errorf("next-hops = %v, want duplicates removed", first.NextHops)
	}

	if tbl.ReplaceRoute(p, rib.ProtocolBGP, 20, 0, []rib.NextHop{addr("1.1.1.2"), dev("eth2")}) {
		t.Error("identical ReplaceRoute reported a change")
	}
	if !tbl.ReplaceRoute(p, rib.ProtocolBGP, 20, 5, []rib.NextHop{dev("eth3")}) {
		t.Error("ReplaceRoute reported no change")
	}
	second, _ := tbl.Route(p, rib.ProtocolBGP)
	if second.Seq != first.Seq {
		t.Errorf("Seq = %d after replace, want %d", second.Seq, first.Seq)
	}
	if got := tbl.PrefixesVia(addr("1.1.1.2")); len(got) != 0 {
		t.Errorf("replaced next-hop still indexed: %v", got)
	}

	if !tbl.ReplaceRoute(p, rib.ProtocolBGP, 20, 5, nil) {
		t.Error("empty ReplaceRoute did not withdraw")
	}
	if tbl.Has(p) {
		t.Error("prefix present after withdraw by empty replace")
	}
	if tbl.WithdrawRoute(p, rib.ProtocolBGP) {
		t.Error("WithdrawRoute of absent route reported a change")
	}
}

func TestTableReplaceCreatesRoute(t *testing.T) {
	t.Parallel()

	tbl := rib.NewTable()
	p := pfx("10.9.0.0/16")
	if _, err := tbl.AddRoute(p, rib.ProtocolStatic, 1, 0, addr("1.1.1.2")); err != nil {
		t.Fatalf("AddRoute: %v", err)
	}

	nhs := []rib.NextHop{addr("2.2.2.2"), dev("eth3"), addr("2.2.2.2")}
	if !tbl.ReplaceRoute(p, rib.ProtocolBGP, 20, 7, nhs) {
		t.Fatal("ReplaceRoute creating a route reported no change")
	}
	nhs[0] = addr("9.9.9.9")

	r, ok := tbl.Route(p, rib.ProtocolBGP)
	if !ok {
		t.Fatal("route not created")
	}
	want := []rib.NextHop{addr("2.2.2.2"), dev("eth3")}
	if diff := cmp.Diff(want, r.NextHops, netipComparers); diff != "" {
		t.Errorf("next-hops mismatch (-want +got):\n%s", diff)
	}
	if r.Distance != 20 || r.Metric != 7 {
		t.Errorf("attrs = %d/%d, want 20/7", r.Distance, r.Metric)
	}
	static, _ := tbl.Route(p, rib.ProtocolStatic)
	if r.Seq <= static.Seq {
		t.Errorf("Seq = %d, want newer than %d", r.Seq, static.Seq)
	}
	for _, nh := range want {
		if got := tbl.PrefixesVia(nh); len(got) != 1 || got[0] != p {
			t.Errorf("PrefixesVia(%s) = %v, want [%s]", nh, got, p)
		}
	}
}

func TestTableReadsAreCopies(t *testing.T) {
	t.Parallel()

	tbl := rib.NewTable()
	p := pfx("10.0.0.0/8")
	_, _ = tbl.AddRoute(p, rib.ProtocolStatic, 1, 0, addr("1.1.1.2"))
	_, _ = tbl.AddRoute(p, rib.ProtocolBGP, 20, 0, addr("1.1.1.3"))

	routes := tbl.Routes(p)
	if len(routes) != 2 || routes[0].Protocol != rib.ProtocolStatic {
		t.Fatalf("Routes = %+v, want static then bgp", routes)
	}
	routes[0].NextHops[0] = dev("eth9")

	r, _ := tbl.Route(p, rib.ProtocolStatic)
	if r.NextHops[0] != addr("1.1.1.2") {
		t.Error("mutating a returned route changed the table")
	}

	counts := tbl.CountByProtocol()
	if counts[rib.ProtocolStatic] != 1 || counts[rib.ProtocolBGP] != 1 {
		t.Errorf("CountByProtocol = %v", counts)
	}
}

func TestTablePrefixOrder(t *testing.T) {
	t.Parallel()

	tbl := rib.NewTable()
	for _, s := range []string{"2001:db8::/32", "10.0.0.0/16", "10.0.0.0/8", "9.0.0.0/8"} {
		_, _ = tbl.AddRoute(pfx(s), rib.ProtocolStatic, 1, 0, dev("eth1"))
	}

	got := tbl.Prefixes()
	want := []string{"9.0.0.0/8", "10.0.0.0/8", "10.0.0.0/16", "2001:db8::/32"}
	if len(got) != len(want) {
		t.Fatalf("Prefixes = %v", got)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("Prefixes[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
