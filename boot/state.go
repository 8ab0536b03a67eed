package boot

// State is a step of the boot sequence.
type State int

const (
	Idle State = iota
	SuperblockLoaded
	RootDirLoaded
	EntryMatched
	NoMatch
	TargetLoaded
	ExecutionTransferred
)

var stateNames = [...]string{
	Idle:                 "Idle",
	SuperblockLoaded:     "SuperblockLoaded",
	RootDirLoaded:        "RootDirLoaded",
	EntryMatched:         "EntryMatched",
	NoMatch:              "NoMatch",
	TargetLoaded:         "TargetLoaded",
	ExecutionTransferred: "ExecutionTransferred",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}
