// Package logsink builds log entries and delivers them to the local
// collector daemon.
//
// Logger is the entry point for applications. Text entries are written with
// Write and Print, binary event entries with Event, TypedEvent, and
// StringEvent. Delivery is best-effort and at-most-once: the transport
// never blocks the caller, and an unreachable or overloaded collector
// yields an immediate error or a silent drop, never a stall.
//
// Entries are partitioned into channels (main, radio, events, system,
// crash). Most callers write to main; a legacy set of telephony tags is
// rerouted to the radio channel automatically.
package logsink
