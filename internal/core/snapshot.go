package core

// Phase is the engine state machine position.
type Phase string

const (
	PhaseRunning  Phase = "running"
	PhaseGameOver Phase = "game_over"
)

// Snapshot is a read-only copy of the engine state for renderers and APIs.
type Snapshot struct {
	Variant   string     `json:"variant"`
	BoardSize int        `json:"board_size"`
	Snake     []Cell     `json:"snake"`
	Food      Cell       `json:"food"`
	Direction Direction  `json:"direction"`
	Pending   Direction  `json:"pending"`
	Score     int        `json:"score"`
	Length    int        `json:"length"`
	Phase     Phase      `json:"phase"`
	Cause     DeathCause `json:"cause,omitempty"`
	Ticks     uint64     `json:"ticks"`
	SpeedMs   int64      `json:"speed_ms"`
	Paused    bool       `json:"paused"`
}

// Head returns the first snake cell, or the zero cell for an empty snapshot.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}
