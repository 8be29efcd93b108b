package grammar

import "fmt"

// intMatrix is a sparse matrix of int32 values, stored as COO triplets sorted
// by (row, col). Every position holds either a single value or a pair, the
// second value of a pair marking a conflict.
//
//     M := newIntMatrix(7, 27, nullValue)
//     M.Add(2, 3, 4711)   // set a value
//     M.Add(2, 3, 123)    // add a second value
//     a, b := M.Values(2, 3)
type intMatrix struct {
	values  []triplet
	rowcnt  int
	colcnt  int
	nullval int32
}

type triplet struct {
	row, col int
	value    intPair
}

// we will store 2 int32 in one position
type intPair struct {
	a int32
	b int32
}

func (pr intPair) String() string {
	return fmt.Sprintf("[%d,%d]", pr.a, pr.b)
}

// nullValue is the empty-value of predict tables (min int32).
const nullValue = -2147483648

func newIntMatrix(m, n int, nullValue int32) *intMatrix {
	return &intMatrix{
		rowcnt:  m,
		colcnt:  n,
		nullval: nullValue,
	}
}

// ValueCount returns the number of positions set.
func (m *intMatrix) ValueCount() int {
	return len(m.values)
}

// Value returns the primary value at position (i,j), or the null value.
func (m *intMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j).
func (m *intMatrix) Values(i, j int) (int32, int32) {
	for _, t := range m.values {
		if !t.storedLeftOf(i, j) { // have skipped all lesser indices
			if t.storedAt(i, j) {
				return t.value.a, t.value.b
			}
			break
		}
	}
	return m.nullval, m.nullval
}

// Add stores a value at position (i,j). If a value is already present, value
// becomes the second value of the pair. A full pair keeps its first value and
// has its second value overwritten.
func (m *intMatrix) Add(i, j int, value int32) *intMatrix {
	if i < 0 || i >= m.rowcnt || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("matrix index (%d,%d) out of range %dx%d", i, j, m.rowcnt, m.colcnt))
	}
	at := 0 // will be position of new value
	for k, t := range m.values {
		if !t.storedLeftOf(i, j) {
			if t.storedAt(i, j) {
				v := &m.values[k].value
				if v.a == m.nullval {
					v.a = value
				} else {
					v.b = value
				}
				return m
			}
			break
		}
		at++
	}
	tnew := triplet{row: i, col: j, value: intPair{value, m.nullval}}
	m.values = append(m.values, tnew)    // make room
	copy(m.values[at+1:], m.values[at:]) // shift remainder one to the right
	m.values[at] = tnew
	return m
}

func (t *triplet) storedLeftOf(i, j int) bool {
	return t.row < i || t.row == i && t.col < j
}

func (t *triplet) storedAt(i, j int) bool {
	return t.row == i && t.col == j
}
