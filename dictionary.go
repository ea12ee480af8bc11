package lz78

// An entry is one dictionary sequence, stored as the code of its prefix and
// the byte that extends it. Entry 0 is the empty sequence.
type entry struct {
	prefix Code
	last   byte
	length int
}

// A table holds dictionary entries indexed by code. Codes are assigned
// sequentially from 0, so a slice does the job of a map.
type table []entry

// expand appends the sequence for code to dst.
func (t table) expand(dst []byte, code Code) []byte {
	start := len(dst)
	end := start + t[code].length
	if end > cap(dst) {
		grown := make([]byte, end, 2*end)
		copy(grown, dst)
		dst = grown
	} else {
		dst = dst[:end]
	}
	for i := end - 1; code != 0; i-- {
		e := t[code]
		dst[i] = e.last
		code = e.prefix
	}
	return dst
}

func (t table) add(prefix Code, b byte) table {
	return append(t, entry{prefix: prefix, last: b, length: t[prefix].length + 1})
}

type edge struct {
	prefix Code
	b      byte
}

// encodeDictionary maps byte sequences to codes. It is a prefix tree whose
// nodes are codes: a sequence is found by following one edge per byte from
// the root (code 0). Because every sequence is inserted as a one-byte
// extension of a sequence already present, every prefix of a stored sequence
// is also stored.
type encodeDictionary struct {
	children map[edge]Code
	entries  table
}

func (d *encodeDictionary) reset() {
	d.children = make(map[edge]Code)
	d.entries = append(d.entries[:0], entry{})
}

// lookup returns the code of the sequence formed by appending b to the
// sequence for prefix.
func (d *encodeDictionary) lookup(prefix Code, b byte) (Code, bool) {
	c, ok := d.children[edge{prefix, b}]
	return c, ok
}

// insert stores prefix+b under code. Codes must be inserted in order.
func (d *encodeDictionary) insert(prefix Code, b byte, code Code) {
	d.children[edge{prefix, b}] = code
	d.entries = d.entries.add(prefix, b)
}

// len returns the number of entries, including the empty sequence.
func (d *encodeDictionary) len() int {
	return len(d.entries)
}

func (d *encodeDictionary) sequence(dst []byte, code Code) []byte {
	return d.entries.expand(dst, code)
}

// decodeDictionary maps codes back to byte sequences. It starts out holding
// only the empty sequence under code 0.
type decodeDictionary struct {
	entries table
}

func (d *decodeDictionary) reset() {
	d.entries = append(d.entries[:0], entry{})
}

func (d *decodeDictionary) contains(code Code) bool {
	return int(code) < len(d.entries)
}

// add stores the sequence for prefix followed by b under the next code.
func (d *decodeDictionary) add(prefix Code, b byte) {
	d.entries = d.entries.add(prefix, b)
}

func (d *decodeDictionary) len() int {
	return len(d.entries)
}

func (d *decodeDictionary) sequence(dst []byte, code Code) []byte {
	return d.entries.expand(dst, code)
}
