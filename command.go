// SPDX-License-Identifier: MIT

package brolz

// Command is an (insert_len, copy_len, distance) triple. CopyLen == 0
// marks a pure insert tail: the final command of a stream (appended by
// Engine.Process) has no copy. Generator.Generate does not emit one at a
// block boundary; it carries the pending literal run in InsertLen.
type Command struct {
	InsertLen int
	CopyLen   int
	Distance  int64
}
