// table.go — the row-aligned input for the n-ary family.
//
// A Table is a stricter cousin of the recycled multi-input mappers: named
// or positional parallel columns of equal length, one row per call. Column
// lengths are validated at construction; there is no recycling here, so a
// mismatch is a *ShapeError, not a *RecycleError.
package seqfn

import "fmt"

// Table is a collection of equal-length parallel columns. Columns may carry
// names (all or none); rows are addressed by index.
type Table struct {
	names []string
	cols  []*Seq
}

// NewTable builds a positional table. All columns must share one length.
func NewTable(cols ...*Seq) (*Table, error) {
	if err := checkCols(cols); err != nil {
		return nil, err
	}
	return &Table{cols: cols}, nil
}

// NamedTable builds a table with one name per column.
func NamedTable(names []string, cols []*Seq) (*Table, error) {
	if len(names) != len(cols) {
		return nil, &ShapeError{Index: -1,
			Msg: fmt.Sprintf("%d names for %d columns", len(names), len(cols))}
	}
	if err := checkCols(cols); err != nil {
		return nil, err
	}
	return &Table{names: append([]string(nil), names...), cols: cols}, nil
}

func checkCols(cols []*Seq) error {
	if len(cols) == 0 {
		return nil
	}
	want := cols[0].Len()
	for i, c := range cols[1:] {
		if c.Len() != want {
			return &ShapeError{Index: i + 1,
				Msg: fmt.Sprintf("column length %d, want %d", c.Len(), want)}
		}
	}
	return nil
}

// Len is the row count.
func (t *Table) Len() int {
	if t == nil || len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Width is the column count.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}
	return len(t.cols)
}

// Col returns column j.
func (t *Table) Col(j int) *Seq { return t.cols[j] }

// ColName returns the name of column j, or "" for positional tables.
func (t *Table) ColName(j int) string {
	if t == nil || len(t.names) == 0 {
		return ""
	}
	return t.names[j]
}

// Row copies row i into a fresh argument slice, one value per column.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.cols))
	for j, c := range t.cols {
		row[j] = c.Elems[i]
	}
	return row
}

// Pmap invokes f once per row, spreading the row's values as individual
// positional arguments before the trailing constants, and collects the
// results.
func Pmap(t *Table, f Fn, extra ...Value) (*Seq, error) {
	g := f.Bind(extra...)
	out := &Seq{Elems: make([]Value, t.Len())}
	for i := 0; i < t.Len(); i++ {
		v, err := g.Call(t.Row(i)...)
		if err != nil {
			return nil, err
		}
		out.Elems[i] = v
	}
	return out, nil
}

// Pwalk is Pmap for side effects only; results are discarded and the table
// is returned unchanged.
func Pwalk(t *Table, f Fn, extra ...Value) (*Table, error) {
	g := f.Bind(extra...)
	for i := 0; i < t.Len(); i++ {
		if _, err := g.Call(t.Row(i)...); err != nil {
			return t, err
		}
	}
	return t, nil
}

// Modify applies the unary f to every cell and rebuilds the same tabular
// structure (column names and order preserved).
func (t *Table) Modify(f Fn, extra ...Value) (*Table, error) {
	g := f.Bind(extra...)
	cols := make([]*Seq, len(t.cols))
	for j, c := range t.cols {
		nc, err := Map(c, g)
		if err != nil {
			return nil, err
		}
		cols[j] = nc
	}
	out := &Table{cols: cols}
	if len(t.names) > 0 {
		out.names = append([]string(nil), t.names...)
	}
	return out, nil
}

// ModifyIf applies f only to the cells satisfying p, leaving the others in
// place; structure is preserved as in Modify.
func (t *Table) ModifyIf(p Fn, f Fn, extra ...Value) (*Table, error) {
	cols := make([]*Seq, len(t.cols))
	for j, c := range t.cols {
		nc, err := ModifyIf(c, p, f, extra...)
		if err != nil {
			return nil, err
		}
		cols[j] = nc
	}
	out := &Table{cols: cols}
	if len(t.names) > 0 {
		out.names = append([]string(nil), t.names...)
	}
	return out, nil
}
