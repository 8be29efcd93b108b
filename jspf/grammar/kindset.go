package grammar

import (
	"github.com/SmileWuji/ImTiredOfJQ/jspf"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// KindSet is an ordered set of token kinds, as used for FIRST and FOLLOW sets.
type KindSet struct {
	set *treeset.Set
}

func kindComparator(k1, k2 interface{}) int {
	return utils.IntComparator(int(k1.(jspf.TokKind)), int(k2.(jspf.TokKind)))
}

// NewKindSet creates a set holding kinds.
func NewKindSet(kinds ...jspf.TokKind) *KindSet {
	s := &KindSet{set: treeset.NewWith(kindComparator)}
	s.Add(kinds...)
	return s
}

// Add inserts kinds and reports whether the set has grown.
func (s *KindSet) Add(kinds ...jspf.TokKind) bool {
	size := s.set.Size()
	for _, k := range kinds {
		s.set.Add(k)
	}
	return s.set.Size() > size
}

// Union inserts all kinds of other and reports whether the set has grown.
func (s *KindSet) Union(other *KindSet) bool {
	if other == nil {
		return false
	}
	return s.Add(other.Kinds()...)
}

// Contains is true if kind is a member of s.
func (s *KindSet) Contains(kind jspf.TokKind) bool {
	return s.set.Contains(kind)
}

// Intersects is true if s and other have a kind in common.
func (s *KindSet) Intersects(other *KindSet) bool {
	for _, k := range other.Kinds() {
		if s.Contains(k) {
			return true
		}
	}
	return false
}

// Kinds returns the members of s in ascending order.
func (s *KindSet) Kinds() []jspf.TokKind {
	values := s.set.Values()
	kinds := make([]jspf.TokKind, len(values))
	for i, v := range values {
		kinds[i] = v.(jspf.TokKind)
	}
	return kinds
}

// Size returns the number of members.
func (s *KindSet) Size() int {
	return s.set.Size()
}

// Equals is true if s and other have the same members.
func (s *KindSet) Equals(other *KindSet) bool {
	if s.Size() != other.Size() {
		return false
	}
	for _, k := range other.Kinds() {
		if !s.Contains(k) {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of s.
func (s *KindSet) Copy() *KindSet {
	return NewKindSet(s.Kinds()...)
}

func (s *KindSet) String() string {
	return jspf.KindList(s.Kinds())
}
