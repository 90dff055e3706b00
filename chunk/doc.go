// Package chunk splits raw transcript text into overlapping fixed-size
// windows, the unit of embedding and retrieval.
//
// Splitting is a pure function of its inputs: the same text and options
// always yield the same windows in the same order. Consecutive windows
// overlap so that sentences straddling a window boundary remain intact in
// at least one window.
package chunk
