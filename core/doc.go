// Package core provides the streaming primitives of the P3 decoder.
//
// The pipeline is built from three pull-based stages, each wrapping the
// previous one:
//
//   - [Scanner] - reads bytes through a one-byte lookahead, skips whitespace
//     and accumulates decimal digits into 32-bit values
//   - [Values] - a lazy stream of integers over a Scanner
//   - [Chunker] - groups a value stream into RGB [Triple] values
//
// No stage buffers more than a single pending byte, and no stage reads
// ahead of what its caller asks for.
//
// # Whitespace
//
// Only space (0x20) and line feed (0x0A) separate tokens. Tabs, carriage
// returns and comments are rejected as format errors.
//
// # Errors
//
// Every failure is an [Error] carrying a [Kind] and, where known, the byte
// offset. Use errors.Is with [ErrFormat], [ErrTruncated], [ErrOverflow],
// [ErrIO] or [ErrUnknown], or [KindOf], to branch on it. Once a stage has
// returned an error it is finished and yields nothing further.
//
// # Overflow
//
// Numbers larger than math.MaxUint32 fail with [ErrOverflow] instead of
// wrapping.
package core
