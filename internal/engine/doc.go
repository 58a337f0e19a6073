// Package engine interprets the punch log.
//
// It answers three questions about a sequence of events: whether the user is
// currently punched in (CurrentState), which work intervals the log describes
// (Sessions), and what is wrong with it (Anomalies). Engine ties these to a
// store.Log and a Clock to record new punches.
//
// Pairing rules:
//   - each In opens a session, closed by the next Out
//   - a second In while a session is open is ignored; the earlier start wins
//   - an Out with no open session is ignored
//   - a trailing In yields an open session that ends at "now"
//
// Ignored events are never an error. Anomalies lists them so callers can warn.
package engine
