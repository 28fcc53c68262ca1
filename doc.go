// Package playerfolio provides the accounting core for a fantasy-sports
// player-share portfolio. It is designed to be local-first and auditable: the
// whole book lives in plain data files the user owns, and every derived
// number can be recomputed from the trade record.
//
// The core functionalities include:
//   - Position Ledger: the authoritative current state of every player
//     position (shares held, weighted-average cost, latest price, realised
//     P&L), maintained under the average-cost method.
//   - Trade Journal: an append-only record of every buy and sell with its
//     derived amounts, the replayable source of truth the ledger can be
//     rebuilt from.
//   - Aggregation: on-demand portfolio totals (cost basis, market value,
//     unrealised and realised P&L, ROI) and point-in-time snapshots for
//     historical charting.
//   - Data Persistence: encoding and decoding of the book to human-readable,
//     version-controllable JSONL files, plus partial-update imports and
//     price-feed extraction.
//
// This package serves as the foundational logic for the `pfs` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package playerfolio
