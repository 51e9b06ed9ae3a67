// Package finman provides the core of a local-first, multi-user personal
// finance manager. Each user owns a wallet: a running balance, an ordered
// history of income and expense operations, and a set of per-category
// spending budgets.
//
// The core functionalities include:
//   - Ledger Engine: the sole mutator of wallet state. It records incomes,
//     expenses and inter-user transfers, manages budgets, renames categories
//     and aggregates per-category and total statistics.
//   - Alert Evaluation: a stateless policy that, after each mutation, reports
//     budget overruns, near-limit spending and a negative net worth. Alerts
//     inform, they never block the mutation that triggered them.
//   - User Directory: the process-wide registry of users and credential
//     hashes, loaded from disk at startup and flushed explicitly.
//   - Data Persistence: encoding and decoding of wallets to and from
//     human-readable JSON documents, one file per user.
//
// This package serves as the foundational logic for the `fin` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package finman
