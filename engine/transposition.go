package engine

import (
	"fmt"
	"unsafe"

	"github.com/dustin/go-humanize"
)

// Bound says how a stored score relates to the true value of the node.
type Bound int8

const (
	UpperBound Bound = iota // failed low: true score <= stored
	LowerBound              // failed high: true score >= stored
	Exact
)

type TTEntry struct {
	Hash  uint64
	Move  Move
	Depth int8
	Score int16
	Flag  Bound
	// occupied is false until the first Store, so an empty bucket never
	// matches the zero hash.
	occupied bool
}

// TransTable is a fixed-size, always-replace cache of search results keyed
// by position hash. It lives as long as its Searcher and is reused across
// decisions.
type TransTable struct {
	entries []TTEntry

	hits       uint64
	misses     uint64
	collisions uint64
	stores     uint64
}

// NewTransTable sizes the table to fit in the given number of megabytes.
func NewTransTable(megabytes int) *TransTable {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	count := uint64(megabytes) * 1024 * 1024 / entrySize
	if count == 0 {
		count = 1
	}
	return &TransTable{entries: make([]TTEntry, count)}
}

func (tt *TransTable) Capacity() int {
	return len(tt.entries)
}

// SizeBytes is the memory used by the entries.
func (tt *TransTable) SizeBytes() uint64 {
	return uint64(len(tt.entries)) * uint64(unsafe.Sizeof(TTEntry{}))
}

func (tt *TransTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.hits, tt.misses, tt.collisions, tt.stores = 0, 0, 0, 0
}

// Probe returns the bucket for hash. ok is false unless the bucket holds
// this exact hash; a different key in the bucket counts as a collision.
func (tt *TransTable) Probe(hash uint64) (entry *TTEntry, ok bool) {
	entry = &tt.entries[hash%uint64(len(tt.entries))]
	if entry.occupied && entry.Hash == hash {
		tt.hits++
		return entry, true
	}
	if entry.occupied {
		tt.collisions++
	} else {
		tt.misses++
	}
	return entry, false
}

// Lookup decides whether a probed entry can stand in for searching the node
// to depth within [alpha, beta]. Mate scores are converted back from
// node-relative to root-relative.
func (tt *TransTable) Lookup(entry *TTEntry, depth int8, ply int, alpha, beta int32) (score int32, usable bool) {
	if entry.Depth < depth {
		return 0, false
	}
	score = scoreFromTT(entry.Score, ply)
	switch entry.Flag {
	case Exact:
		return score, true
	case LowerBound:
		if score >= beta {
			return score, true
		}
	case UpperBound:
		if score <= alpha {
			return score, true
		}
	}
	return 0, false
}

// Store overwrites the bucket for hash unconditionally. depth is the number
// of plies that were still to be searched at the node.
func (tt *TransTable) Store(hash uint64, move Move, depth int8, ply int, score int32, flag Bound) {
	entry := &tt.entries[hash%uint64(len(tt.entries))]
	entry.Hash = hash
	entry.Move = move
	entry.Depth = depth
	entry.Score = scoreToTT(score, ply)
	entry.Flag = flag
	entry.occupied = true
	tt.stores++
}

// Mate scores are stored as distance from the node, not from the root.
func scoreToTT(score int32, ply int) int16 {
	if score >= MateThreshold {
		score += int32(ply)
	} else if score <= -MateThreshold {
		score -= int32(ply)
	}
	return int16(score)
}

func scoreFromTT(score int16, ply int) int32 {
	s := int32(score)
	if s >= MateThreshold {
		s -= int32(ply)
	} else if s <= -MateThreshold {
		s += int32(ply)
	}
	return s
}

func (tt *TransTable) Stats() string {
	return fmt.Sprintf("tt %s entries (%s): hits %s, misses %s, collisions %s, stores %s",
		humanize.Comma(int64(len(tt.entries))), humanize.IBytes(tt.SizeBytes()),
		humanize.Comma(int64(tt.hits)), humanize.Comma(int64(tt.misses)),
		humanize.Comma(int64(tt.collisions)), humanize.Comma(int64(tt.stores)))
}
