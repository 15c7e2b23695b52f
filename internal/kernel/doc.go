// Package kernel implements the kernel forwarding table backends used by the
// RIB engine and the link monitor that reports interface operational state.
//
// On Linux the netlink backend programs routes through NETLINK_ROUTE with
// github.com/vishvananda/netlink, marking every route it writes with
// RTPROT_ZEBRA so that ownership survives daemon restarts. The memory
// backend keeps the table in process and is used when no kernel access is
// available.
package kernel
