package bytecode

import "sync"

// StringRef is an index into a StringTable.
type StringRef uint32

// NoString terminates lists of string references.
const NoString StringRef = 0xffffffff

// StringTable interns strings referenced from code. Strings are never
// removed; the table lives as long as the code referencing it.
// A StringTable is safe for concurrent use.
type StringTable struct {
	mx    sync.RWMutex
	strs  []string
	index map[string]StringRef
}

// NewStringTable creates an empty string table.
func NewStringTable() *StringTable {
	return &StringTable{index: make(map[string]StringRef)}
}

// Intern returns the reference for s, adding it to the table if necessary.
func (st *StringTable) Intern(s string) StringRef {
	st.mx.RLock()
	ref, ok := st.index[s]
	st.mx.RUnlock()
	if ok {
		return ref
	}
	st.mx.Lock()
	defer st.mx.Unlock()
	if ref, ok = st.index[s]; ok { // interned concurrently
		return ref
	}
	ref = StringRef(len(st.strs))
	st.strs = append(st.strs, s)
	st.index[s] = ref
	return ref
}

// Lookup returns the string for a reference.
func (st *StringTable) Lookup(ref StringRef) (string, bool) {
	st.mx.RLock()
	defer st.mx.RUnlock()
	if int(ref) >= len(st.strs) {
		return "", false
	}
	return st.strs[ref], true
}

// Len returns the number of interned strings.
func (st *StringTable) Len() int {
	st.mx.RLock()
	defer st.mx.RUnlock()
	return len(st.strs)
}
