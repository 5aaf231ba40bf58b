// Package token turns raw configuration text into typed value entries.
//
// The scanner is a line-by-line state machine: group headers select a
// dotted namespace, assignments produce scalar entries, and bracketed
// arrays accumulate on an open-array stack until their matching close
// bracket, at which point the whole array is yielded as one entry.
// Every failure carries the line, column, and offending line text.
package token
