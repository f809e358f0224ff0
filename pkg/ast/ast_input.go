// Package ast implements component D: the AST node model. A Document is an arena — it
// owns one Input byte buffer and per-kind slices of node structs; every cross-reference
// between nodes is an int index ("Ref") into one of those slices, never a pointer. This
// mirrors the teacher's ast.Document shape, visible in the retrieved
// v2/pkg/asttransform/baseschema.go and v2/pkg/engine/plan/*.go (Input.AppendInputBytes,
// RootNodes, ObjectTypeDefinitions, FieldDefinition, InputValueDefinition, ...).
package ast

import (
	"github.com/cespare/xxhash/v2"
)

// ByteSliceReference is a (start, end) offset pair into an Input's raw byte buffer —
// the arena's analogue of a sub-slice. It satisfies invariant 1 of §3: start <= end,
// both valid offsets into the source (or one past the end).
type ByteSliceReference struct {
	Start uint32
	End   uint32
}

// Length returns End - Start.
func (b ByteSliceReference) Length() uint32 {
	return b.End - b.Start
}

// Input owns the single immutable byte buffer backing an AST: the original source plus
// any bytes appended through AppendInputBytes (the parser appends the decoded contents
// of string values and descriptions this way). Sub-slicing a ByteSliceReference out of
// RawBytes is O(1); AppendInputBytes interns identical byte runs via an xxhash-keyed
// table so repeated identical appended contents share one ByteSliceReference instead of
// growing RawBytes for every occurrence. Names and other tokens referenced directly in
// the original source are never deduplicated (they're already free sub-slices);
// interning only applies to bytes appended after the source.
type Input struct {
	RawBytes []byte

	internTable map[uint64][]internedRange
}

type internedRange struct {
	hash uint64
	ref  ByteSliceReference
}

// ResetInputString re-initializes the Input with raw GraphQL source text. Used by
// astparser.Parser.Parse.
func (i *Input) ResetInputString(sourceText string) {
	i.ResetInputBytes([]byte(sourceText))
}

// ResetInputBytes re-initializes the Input with raw GraphQL source bytes.
func (i *Input) ResetInputBytes(sourceBytes []byte) {
	i.RawBytes = sourceBytes
	i.internTable = nil
}

// ByteSlice returns the raw bytes referenced by ref. The returned slice aliases
// RawBytes and must not be retained past the Input's lifetime (§5's lifetime
// contract).
func (i *Input) ByteSlice(ref ByteSliceReference) []byte {
	return i.RawBytes[ref.Start:ref.End]
}

// ByteSliceString is a convenience wrapper around ByteSlice that allocates a string
// copy; callers on a hot path should prefer ByteSlice.
func (i *Input) ByteSliceString(ref ByteSliceReference) string {
	return string(i.ByteSlice(ref))
}

// AppendInputBytes appends data to RawBytes, interning it against previously appended
// (not originally-lexed) ranges so builder-driven AST construction does not grow the
// buffer once per repeated literal (e.g. re-adding "String" as a type name for several
// built-in fields).
func (i *Input) AppendInputBytes(data []byte) ByteSliceReference {
	if i.internTable == nil {
		i.internTable = make(map[uint64][]internedRange)
	}

	h := xxhash.Sum64(data)
	for _, candidate := range i.internTable[h] {
		if bytesEqual(i.RawBytes[candidate.ref.Start:candidate.ref.End], data) {
			return candidate.ref
		}
	}

	start := uint32(len(i.RawBytes))
	i.RawBytes = append(i.RawBytes, data...)
	ref := ByteSliceReference{Start: start, End: uint32(len(i.RawBytes))}
	i.internTable[h] = append(i.internTable[h], internedRange{hash: h, ref: ref})
	return ref
}

// AppendInputString is the string-argument convenience form of AppendInputBytes.
func (i *Input) AppendInputString(data string) ByteSliceReference {
	return i.AppendInputBytes([]byte(data))
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for idx := range a {
		if a[idx] != b[idx] {
			return false
		}
	}
	return true
}
