package db

// WordRow is one exported frequency entry.
type WordRow struct {
	Lang  string
	Word  string
	Count int
	Rank  int
}

// PairRow is one exported sentence pair. Position is the 0-based index in
// ascending difficulty order.
type PairRow struct {
	SourceLang string
	TargetLang string
	Position   int
	SourceID   uint64
	TargetID   uint64
	SourceText string
	TargetText string
	Score      int
}
