package docugen

import (
	"slices"
	"strings"
)

// Block is a raw documentation comment paired with the declaration line
// that follows it.
type Block struct {
	Declaration string   `json:"declaration"`
	Lines       []string `json:"lines"`
}

// BlockMap is an insertion-ordered mapping from declaration line to raw
// comment lines. Setting an existing declaration keeps its position and
// replaces its lines.
type BlockMap struct {
	blocks []Block
	index  map[string]int
}

// NewBlockMap returns an empty BlockMap.
func NewBlockMap() *BlockMap {
	return &BlockMap{index: make(map[string]int)}
}

// Set stores lines under the declaration line.
func (m *BlockMap) Set(declaration string, lines []string) {
	if i, ok := m.index[declaration]; ok {
		m.blocks[i].Lines = lines
		return
	}
	m.index[declaration] = len(m.blocks)
	m.blocks = append(m.blocks, Block{Declaration: declaration, Lines: lines})
}

// Get returns the comment lines stored for a declaration line.
func (m *BlockMap) Get(declaration string) ([]string, bool) {
	if m == nil {
		return nil, false
	}
	i, ok := m.index[declaration]
	if !ok {
		return nil, false
	}
	return m.blocks[i].Lines, true
}

// Len returns the number of blocks. A nil map has none.
func (m *BlockMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.blocks)
}

// Blocks returns the blocks in insertion order.
func (m *BlockMap) Blocks() []Block {
	if m == nil {
		return nil
	}
	return slices.Clone(m.blocks)
}

// ScanResult is the outcome of scanning one file.
type ScanResult struct {
	Blocks *BlockMap

	// Unterminated is the index of the first line of a comment block that
	// no declaration followed before the end of the file, or -1.
	Unterminated int
}

type scanPhase int

const (
	phaseIdle scanPhase = iota
	phaseOpen
	phaseClosed
)

// scanState tracks the comment block being collected. start is valid in
// phaseOpen and phaseClosed, end only in phaseClosed.
type scanState struct {
	phase scanPhase
	start int
	end   int
}

// next advances the state over trimmed line i and reports whether the line
// is the declaration that closes the current block.
func (s scanState) next(i int, line string) (scanState, bool) {
	if s.phase == phaseIdle && strings.Contains(line, DocStart) {
		s = scanState{phase: phaseOpen, start: i}
	}
	if s.phase != phaseIdle && strings.Contains(line, DocEnd) {
		s.phase = phaseClosed
		s.end = i
	}
	if s.phase == phaseClosed && containsAny(line, Keywords) {
		return s, true
	}
	return s, false
}

// ScanContent splits content on line feeds and scans it.
func ScanContent(content string) ScanResult {
	return ScanLines(strings.Split(content, "\n"))
}

// ScanLines pairs every documentation block with the first keyword-bearing
// line after its end delimiter. The stored block spans from the start
// delimiter line up to, but not including, the end delimiter line.
//
// Files without a line that is exactly the start delimiter yield no blocks.
func ScanLines(lines []string) ScanResult {
	result := ScanResult{Blocks: NewBlockMap(), Unterminated: -1}

	trimmed := make([]string, len(lines))
	for i, line := range lines {
		trimmed[i] = strings.TrimSpace(line)
	}
	if !slices.Contains(trimmed, DocStart) {
		return result
	}

	var state scanState
	for i, line := range trimmed {
		var closed bool
		state, closed = state.next(i, line)
		if !closed {
			continue
		}
		var block []string
		if state.end > state.start {
			block = slices.Clone(lines[state.start:state.end])
		}
		result.Blocks.Set(lines[i], block)
		state = scanState{}
	}

	if state.phase != phaseIdle {
		result.Unterminated = state.start
	}
	return result
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
