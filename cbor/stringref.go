package cbor

// stringrefEntry is one registered string in a dictionary, preserving
// whether it was read as a text string or a byte string so a later
// reference re-emits it through the right Visitor callback (spec §4.6).
type stringrefEntry struct {
	text     string
	bytes    []byte
	isText   bool
}

// stringrefDict is one namespace's ordered dictionary (spec §3). Entries
// are append-only; lookups are by position.
type stringrefDict struct {
	entries []stringrefEntry
}

func (d *stringrefDict) size() int { return len(d.entries) }

func (d *stringrefDict) get(index uint64) (stringrefEntry, bool) {
	if index >= uint64(len(d.entries)) {
		return stringrefEntry{}, false
	}
	return d.entries[index], true
}

func (d *stringrefDict) addText(s string) {
	d.entries = append(d.entries, stringrefEntry{text: s, isText: true})
}

func (d *stringrefDict) addBytes(b []byte) {
	cp := make([]byte, len(b))
	copy(cp, b)
	d.entries = append(d.entries, stringrefEntry{bytes: cp})
}

// stringrefStack is the parser-owned stack of active namespaces (spec
// §3). A namespace is pushed when a container is preceded by tag 256 and
// popped when that container ends.
type stringrefStack struct {
	dicts []*stringrefDict
}

func (s *stringrefStack) push() {
	s.dicts = append(s.dicts, &stringrefDict{})
}

func (s *stringrefStack) pop() {
	n := len(s.dicts)
	s.dicts = s.dicts[:n-1]
}

func (s *stringrefStack) active() *stringrefDict {
	if len(s.dicts) == 0 {
		return nil
	}
	return s.dicts[len(s.dicts)-1]
}

// minStringrefLen returns the minimum encoded length a string must have
// to be eligible for registration in a dictionary of the given current
// size (spec §3): 3 bytes when size < 24, 4 when < 256, 5 when < 65536,
// 7 when < 2^32, else 11.
func minStringrefLen(dictSize int) int {
	switch {
	case dictSize < 24:
		return 3
	case dictSize < 256:
		return 4
	case dictSize < 65536:
		return 5
	case dictSize < 1<<32:
		return 7
	default:
		return 11
	}
}

// maybeRegisterText registers s in dict if its encoded length (the UTF-8
// byte length, since that is what the wire actually spent) meets the
// threshold for dict's current size. Indefinite-length strings are never
// registered; callers only call this for definite-length reads.
func maybeRegisterText(dict *stringrefDict, s string) {
	if dict == nil {
		return
	}
	if len(s) >= minStringrefLen(dict.size()) {
		dict.addText(s)
	}
}

func maybeRegisterBytes(dict *stringrefDict, b []byte) {
	if dict == nil {
		return
	}
	if len(b) >= minStringrefLen(dict.size()) {
		dict.addBytes(b)
	}
}

// resolveStringref looks up index in dict, per spec §4.6. Callers only
// call this once a namespace is known to be active.
func resolveStringref(dict *stringrefDict, index uint64, offset int64) (stringrefEntry, error) {
	e, ok := dict.get(index)
	if !ok {
		return stringrefEntry{}, newParseError(KindStringrefTooLarge, offset, "")
	}
	return e, nil
}
