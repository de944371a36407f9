package main

import (
	"fmt"
	"io"

	"github.com/dep2p/go-sockprov/pkg/types"
)

// ============================================================================
//                              输出格式
// ============================================================================

func addrString(a interface {
	IsValid() bool
	String() string
}) string {
	if !a.IsValid() {
		return "(none)"
	}
	return a.String()
}

// printInfo 输出描述符摘要
func printInfo(w io.Writer, info *types.Info) {
	fmt.Fprintf(w, "provider: %s\n", types.ProviderName)
	if info.FabricAttr != nil {
		fmt.Fprintf(w, "    fabric: %s\n", info.FabricAttr.Name)
	}
	if info.DomainAttr != nil {
		fmt.Fprintf(w, "    domain: %s\n", info.DomainAttr.Name)
	}
	fmt.Fprintf(w, "    version: %s\n", types.FormatVersion(types.ProviderVersion))
	fmt.Fprintf(w, "    type: %s\n", info.EndpointType())
	if info.EPAttr != nil {
		fmt.Fprintf(w, "    protocol: %s\n", info.EPAttr.Protocol)
	}
}

// printInfoVerbose 输出描述符的完整属性
func printInfoVerbose(w io.Writer, info *types.Info) {
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "caps: [ %s ]\n", info.Caps)
	fmt.Fprintf(w, "addr_format: %s\n", info.AddrFormat)
	fmt.Fprintf(w, "src_addr: %s\n", addrString(info.SrcAddr))
	fmt.Fprintf(w, "dest_addr: %s\n", addrString(info.DestAddr))

	if tx := info.TxAttr; tx != nil {
		fmt.Fprintln(w, "tx_attr:")
		fmt.Fprintf(w, "    caps: [ %s ]\n", tx.Caps)
		fmt.Fprintf(w, "    inject_size: %d\n", tx.InjectSize)
		fmt.Fprintf(w, "    size: %d\n", tx.Size)
		fmt.Fprintf(w, "    iov_limit: %d\n", tx.IOVLimit)
		fmt.Fprintf(w, "    rma_iov_limit: %d\n", tx.RMAIOVLimit)
	}
	if rx := info.RxAttr; rx != nil {
		fmt.Fprintln(w, "rx_attr:")
		fmt.Fprintf(w, "    caps: [ %s ]\n", rx.Caps)
		fmt.Fprintf(w, "    total_buffered_recv: %d\n", rx.TotalBufferedRecv)
		fmt.Fprintf(w, "    size: %d\n", rx.Size)
		fmt.Fprintf(w, "    iov_limit: %d\n", rx.IOVLimit)
	}
	if ep := info.EPAttr; ep != nil {
		fmt.Fprintln(w, "ep_attr:")
		fmt.Fprintf(w, "    type: %s\n", ep.Type)
		fmt.Fprintf(w, "    protocol: %s\n", ep.Protocol)
		fmt.Fprintf(w, "    protocol_version: %d\n", ep.ProtocolVersion)
		fmt.Fprintf(w, "    max_msg_size: %d\n", ep.MaxMsgSize)
		fmt.Fprintf(w, "    tx_ctx_cnt: %d\n", ep.TxCtxCount)
		fmt.Fprintf(w, "    rx_ctx_cnt: %d\n", ep.RxCtxCount)
	}
	if dom := info.DomainAttr; dom != nil {
		fmt.Fprintln(w, "domain_attr:")
		fmt.Fprintf(w, "    name: %s\n", dom.Name)
		fmt.Fprintf(w, "    cq_cnt: %d\n", dom.CQCount)
		fmt.Fprintf(w, "    ep_cnt: %d\n", dom.EPCount)
		fmt.Fprintf(w, "    mr_key_size: %d\n", dom.MRKeySize)
	}
	if fab := info.FabricAttr; fab != nil {
		fmt.Fprintln(w, "fabric_attr:")
		fmt.Fprintf(w, "    name: %s\n", fab.Name)
		fmt.Fprintf(w, "    prov_name: %s\n", fab.ProvName)
		fmt.Fprintf(w, "    prov_version: %s\n", types.FormatVersion(fab.ProvVersion))
	}
}
