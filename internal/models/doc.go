// Package models defines the core domain models for Clubsheet.
//
// # Models
//
//   - Member: a club participant in the member directory
//   - Team: a named squad with titular and reserve roster entries
//   - RosterEntry: one named slot on a team, optionally linked to a Member
//   - Booking: a scheduled court/field reservation
//   - LedgerEntry: a cash movement (income, expense, or pending)
//   - CashState: the carried-over opening balance
//   - AppState: the full persisted snapshot of all of the above
//
// # Design Principles
//
//  1. **Weak references**: RosterEntry.MemberID is a plain string checked
//     for liveness at read time. Deleting a Member clears the reference on
//     every roster entry; it never deletes the entry itself.
//  2. **Closed enums**: position, status, and ledger kind values are typed
//     string constants. Unrecognized input is defaulted or rejected at the
//     boundary, never carried through the core.
//  3. **Avoid circular references**: relationships use ID strings, not
//     pointers.
package models
