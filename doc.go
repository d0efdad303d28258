// Package inlinestr provides String, a UTF-8 string value that keeps short
// text inline and moves to a heap buffer only when it outgrows Capacity.
//
// A String is one of two variants:
//
//   - Inline: up to Capacity bytes stored inside the value itself. Creating,
//     viewing and appending within capacity does not allocate.
//   - Owned: a heap buffer owned by the value, grown in place by Append.
//
// New picks the variant from the input length. Append promotes an Inline
// value to Owned the first time the content no longer fits; the transition is
// one-way, an Owned value never returns to Inline.
//
// # Ownership
//
// A String behaves as a value. Assigning an Owned String to another variable
// shares the heap buffer until one of the copies appends: the first copy to
// grow the buffer does so in place, any other copy moves its content to a
// buffer of its own. Neither copy ever sees the other's appends.
//
// # Concurrency
//
// Concurrent reads are safe. Append must not run concurrently with any other
// use of the same value, or of a copy made by assignment; Clone values that
// are handed to other goroutines.
//
// Example:
//
//	s := inlinestr.New("Hello Rust! ")
//	s.Append("这是一个超过了三十个字节的很长很长的字符串")
//	fmt.Println(s.Variant(), s) // Owned Hello Rust! 这是...
package inlinestr
