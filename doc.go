// Package rebalance provides the types and functions to value a simple
// investment portfolio and to plan the trades that bring it back to its
// target allocations.
//
// The core functionalities include:
//   - Valuation: the total value of the holdings at the current asset prices.
//   - Allocation: the share of the total value each holding represents,
//     rounded for display.
//   - Rebalancing: the signed share quantities to buy (positive) or sell
//     (negative) so that each asset reaches its target weight.
//
// A Portfolio is an immutable snapshot. Applying a rebalance produces a new
// Portfolio, the original one is left untouched.
//
// Arithmetic is exact decimal arithmetic, so that a rebalanced portfolio
// rebalances to zero.
//
// This package serves as the foundational logic for the `rebal` command-line
// tool.
package rebalance
