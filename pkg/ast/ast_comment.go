package ast

// Comment is a leading comment cluster attached to a node, or left unattached in
// Document.UnattachedComments (invariant 7, §3). Its Value is the concatenation of the
// individual '#'-prefixed lines (without the '#'), joined by '\n', per the
// parse_comment() aggregation rule in §4.2.
type Comment struct {
	Value    string
	Location Location
}

// Description is the optional leading string (or block string) permitted before most
// type-system definitions (§4.5). IsBlockString records whether it was written with
// triple-quote syntax, which printers need to round-trip formatting faithfully.
type Description struct {
	Content       ByteSliceReference
	IsBlockString bool
	IsDefined     bool
	Location      Location
}
