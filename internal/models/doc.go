// Package models defines the core domain models for billsplit.
//
// The following models are actively used:
//   - Group: the active expense-sharing group and its members
//   - Expense: an applied expense, immutable once recorded
//   - Item: a single line item on an itemized expense
//   - Transaction: one payer-to-payee transfer in a settlement plan
//
// Members are identified by name strings (no user accounts). The engine
// tracks exactly one active group; creating a new group discards the old
// one's balances and expense log.
//
// # Design Principles
//
// 1. **Simplicity**: members are plain name strings
// 2. **Immutability**: an Expense is never mutated after it is recorded
// 3. **Ephemeral settlements**: Transactions are recomputed on demand and
// never stored
package models
