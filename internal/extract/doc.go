// Package extract recognizes single-line SQL insert statements and splits
// them into a table name, field names and raw value tokens.
//
// Only lines of the exact shape
//
//	insert into <table> (<fields>) values (<values>);
//
// are recognized. The keywords are matched case-sensitively, the single
// spaces around them are literal, and the trailing semicolon must end the
// line. Anything else (comments, DDL, blank lines, multi-line inserts) is
// reported as "no match" and is expected to be skipped by the caller.
//
// Value tokens are returned verbatim, quotes and escapes included. Use
// Unquote to obtain the decoded text of a quoted literal.
package extract
