package model

// TimeBlock buckets an agenda item into a named part of the day. The empty
// value means the item is unscheduled.
type TimeBlock string

const (
	BlockMorning   TimeBlock = "morning"
	BlockForenoon  TimeBlock = "forenoon"
	BlockAfternoon TimeBlock = "afternoon"
	BlockNight     TimeBlock = "night"
	BlockNone      TimeBlock = ""
)

// Blocks lists the scheduled blocks in display order.
var Blocks = []TimeBlock{BlockMorning, BlockForenoon, BlockAfternoon, BlockNight}

func (b TimeBlock) IsValid() bool {
	switch b {
	case BlockMorning, BlockForenoon, BlockAfternoon, BlockNight, BlockNone:
		return true
	default:
		return false
	}
}

// Rank orders blocks for display: morning first, unscheduled last.
func (b TimeBlock) Rank() int {
	switch b {
	case BlockMorning:
		return 0
	case BlockForenoon:
		return 1
	case BlockAfternoon:
		return 2
	case BlockNight:
		return 3
	default:
		return 4
	}
}
