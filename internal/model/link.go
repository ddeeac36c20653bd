package model

// RelationKind classifies a pairwise coreference annotation
type RelationKind string

const (
	KindIdent   RelationKind = "IDENT"   // Plain identity coreference
	KindAppos   RelationKind = "APPOS"   // Appositive phrase attached to a head
	KindAlias   RelationKind = "ALIAS"   // Alternate name for the same entity
	KindExappos RelationKind = "EXAPPOS" // Extended appositive (non-adjacent)
)

// RelationKinds lists every kind marker that can appear in a label slot.
// Relation labels share the per-token slot with mention labels and are told
// apart by containing one of these markers.
var RelationKinds = []RelationKind{KindIdent, KindAppos, KindAlias, KindExappos}

// Pair is an ordered pair of mention identifiers taken from a relation label
type Pair struct {
	A int
	B int
}

// Link is a typed pairwise relation between two mentions. Links are consumed
// entirely during clustering and filtering; they are never serialized.
type Link struct {
	Kind RelationKind
	Pair Pair
}
