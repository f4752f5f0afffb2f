package minimax

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/domino14/inarow/board"
	"github.com/domino14/inarow/move"
)

// LogSearch is a struct meant for serializing to a log-file, for debug
// and other purposes. One is written per BestAction call.
type LogSearch struct {
	Depth      int            `yaml:"depth"`
	Position   []string       `yaml:"position"`
	Candidates []LogCandidate `yaml:"candidates"`
	Chosen     string         `yaml:"chosen"`
	Score      int            `yaml:"score"`
	Nodes      uint64         `yaml:"nodes"`
	CacheHits  uint64         `yaml:"cache_hits,omitempty"`
	CacheLen   int            `yaml:"cache_len,omitempty"`
}

// LogCandidate is a single root move and its score.
type LogCandidate struct {
	Move  string `yaml:"move"`
	Score int    `yaml:"score"`
}

func (s *Solver) writeSearchLog(depth int, b *board.GameBoard, candidates []move.Action,
	scores []int, bestIdx int, nodes uint64) error {

	logSearch := LogSearch{
		Depth:      depth,
		Position:   strings.Split(strings.TrimRight(b.ToDisplayText(false), "\n"), "\n"),
		Candidates: make([]LogCandidate, len(candidates)),
		Chosen:     candidates[bestIdx].ShortDescription(),
		Score:      scores[bestIdx],
		Nodes:      nodes,
	}
	for i, c := range candidates {
		logSearch.Candidates[i] = LogCandidate{Move: c.ShortDescription(), Score: scores[i]}
	}
	if s.cache != nil {
		st := s.cache.Stats()
		logSearch.CacheHits = st.Hits
		logSearch.CacheLen = st.Len
	}
	out, err := yaml.Marshal([]LogSearch{logSearch})
	if err != nil {
		return err
	}
	_, err = s.logStream.Write(out)
	return err
}
