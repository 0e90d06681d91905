// Package idlefund detects idle cash in a personal account and ranks
// investment suggestions for it. It is designed to be local-first and
// auditable: the ledger file is the single source of truth, and every
// analysis is reproducible from it.
//
// The core functionalities include:
//   - Ledger Management: Recording all cash and security transactions
//     (buys, sells, dividends, deposits, withdrawals) in a chronological,
//     replayable record. Balances and holdings are derived, never stored.
//   - Spending Estimation: Bucketing cash deployment per day and ISO week
//     to estimate how much the account typically spends.
//   - Idle Funds Detection: Comparing the cash balance against a one-month
//     safety net and reporting the investable excess.
//   - Suggestion Ranking: Screening a global stock universe with live
//     market data, classifying risk, and ranking candidates by performance,
//     region and risk.
//   - News Sentiment: Grading recent articles about stocks and markets with
//     keyword analysis, used to annotate ranked suggestions.
//   - Data Persistence: Encoding and decoding the ledger to and from a
//     human-readable, version-controllable JSONL format.
//
// This package serves as the foundational logic for the `ifd` command-line
// tool.
package idlefund
