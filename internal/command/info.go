package command

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/sizzlecar/simple-redis/internal/resp"
)

// info builds the reply to the INFO command: a single bulk string with
// Redis's "# Section\r\nkey:value\r\n" layout. With no argument every
// section is returned; with a recognized section name only that slice
// is returned; an unrecognized name gets just its bare header, the way
// the original implementation routes INFO.
func (h *Handler) info(args [][]byte) resp.Frame {
	section := ""
	if len(args) > 0 {
		section = strings.ToLower(bs(args[0]))
	}

	var b strings.Builder
	switch section {
	case "", "server":
		h.writeServerSection(&b)
	case "clients":
		h.writeClientsSection(&b)
	case "memory":
		h.writeMemorySection(&b)
	case "stats":
		h.writeStatsSection(&b)
	case "keyspace":
		h.writeKeyspaceSection(&b)
	default:
		fmt.Fprintf(&b, "# %s\r\n", bs(args[0]))
		return resp.BulkStringFromString(b.String())
	}

	if section != "" {
		return resp.BulkStringFromString(b.String())
	}

	h.writeClientsSection(&b)
	h.writeMemorySection(&b)
	h.writeStatsSection(&b)
	h.writeKeyspaceSection(&b)
	return resp.BulkStringFromString(b.String())
}

func (h *Handler) writeServerSection(b *strings.Builder) {
	b.WriteString("# Server\r\n")
	fmt.Fprintf(b, "redis_version:7.4.0-simple\r\n")
	fmt.Fprintf(b, "redis_mode:standalone\r\n")
	fmt.Fprintf(b, "arch_bits:64\r\n")
	fmt.Fprintf(b, "process_id:%d\r\n", os.Getpid())
	fmt.Fprintf(b, "uptime_in_seconds:%d\r\n", int64(time.Since(h.StartTime).Seconds()))
	b.WriteString("\r\n")
}

func (h *Handler) writeClientsSection(b *strings.Builder) {
	b.WriteString("# Clients\r\n")
	fmt.Fprintf(b, "connected_clients:%d\r\n", h.Stats.ConnectionsReceived.Load())
	b.WriteString("\r\n")
}

func (h *Handler) writeMemorySection(b *strings.Builder) {
	b.WriteString("# Memory\r\n")
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Fprintf(b, "total_system_memory:%d\r\n", vm.Total)
		fmt.Fprintf(b, "used_system_memory:%d\r\n", vm.Used)
	}
	b.WriteString("\r\n")
}

func (h *Handler) writeStatsSection(b *strings.Builder) {
	b.WriteString("# Stats\r\n")
	fmt.Fprintf(b, "total_connections_received:%d\r\n", h.Stats.ConnectionsReceived.Load())
	fmt.Fprintf(b, "total_commands_processed:%d\r\n", h.Stats.CommandsExecuted.Load())
	b.WriteString("\r\n")
}

func (h *Handler) writeKeyspaceSection(b *strings.Builder) {
	b.WriteString("# Keyspace\r\n")
	fmt.Fprintf(b, "db0:keys=%d,expires=0,avg_ttl=0\r\n", h.Store.KeyCount())
}
