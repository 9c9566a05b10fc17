package questionbank

// Topic identifies a safety knowledge area with its own template pool.
type Topic string

const (
	TopicOccupationalSafety Topic = "occupational-safety"
	TopicFirstAid           Topic = "first-aid"
	TopicFireSafety         Topic = "fire-safety"
	TopicWorkAtHeight       Topic = "work-at-height"
	TopicExplosives         Topic = "explosives"
	TopicUndergroundMining  Topic = "underground-mining"
	TopicOther              Topic = "other"
)

// DefaultTopic is used when a generation request omits the topic.
const DefaultTopic = TopicOccupationalSafety

// Topics lists every known topic in display order.
func Topics() []Topic {
	return []Topic{
		TopicOccupationalSafety,
		TopicFirstAid,
		TopicFireSafety,
		TopicWorkAtHeight,
		TopicExplosives,
		TopicUndergroundMining,
		TopicOther,
	}
}

// Known reports whether t is one of the enumerated topics.
func (t Topic) Known() bool {
	switch t {
	case TopicOccupationalSafety, TopicFirstAid, TopicFireSafety, TopicWorkAtHeight,
		TopicExplosives, TopicUndergroundMining, TopicOther:
		return true
	default:
		return false
	}
}

// Name returns the human-readable label for the topic.
func (t Topic) Name() string {
	switch t {
	case TopicOccupationalSafety:
		return "occupational safety"
	case TopicFirstAid:
		return "first aid"
	case TopicFireSafety:
		return "fire safety"
	case TopicWorkAtHeight:
		return "work at height"
	case TopicExplosives:
		return "blasting operations"
	case TopicUndergroundMining:
		return "underground mine workings"
	case TopicOther:
		return "other topics"
	default:
		return "general topics"
	}
}
