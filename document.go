package tickgraph

const (
	titleMarker      = "# "
	sectionMarker    = "## "
	subsectionMarker = "###     "
)

var subsections = []State{StateCompleted, StateWontDo, StateUndone}

// ParseEntries recognizes a TickTick summary and returns its title and every
// top-level entry, ordered by priority section, then status subsection, then
// document order.
func ParseEntries(input string) (string, []TaskEntry, error) {
	s := newScanner(input)

	if !s.literal(titleMarker) {
		return "", nil, s.err()
	}
	title, _ := s.until("")
	if !s.newline() {
		return "", nil, s.err()
	}
	s.filler()

	var entries []TaskEntry
	for _, priority := range Priorities {
		entries = append(entries, s.prioritySection(priority)...)
	}

	if !s.atEOF() {
		return "", nil, s.err()
	}
	return title, entries, nil
}

// Parse recognizes a TickTick summary and builds its task graph.
func Parse(input string, opts ...Option) (*TaskDb, error) {
	title, entries, err := ParseEntries(input)
	if err != nil {
		return nil, err
	}
	db := NewTaskDb(title, opts...)
	for _, entry := range entries {
		db.AddEntry(entry)
	}
	db.logSummary()
	return db, nil
}

// prioritySection parses an optional "## <priority>" section.
func (s *scanner) prioritySection(priority Priority) []TaskEntry {
	if !s.header(sectionMarker, priority.String()) {
		return nil
	}
	var entries []TaskEntry
	for _, state := range subsections {
		if s.header(subsectionMarker, state.String()) {
			entries = append(entries, s.entries(priority, state)...)
		}
	}
	return entries
}

// header matches marker, name and a newline, or nothing at all.
func (s *scanner) header(marker, name string) bool {
	mark := s.pos
	if s.literal(marker) && s.literal(name) && s.newline() {
		return true
	}
	s.pos = mark
	return false
}
