package pin

const (
	EnvEventTopicStatus     = "EVENT_TOPIC_PIN_STATUS"
	StatusEventTypePinned   = "PINNED"
	StatusEventTypeUnpinned = "UNPINNED"
)

type StatusEvent[E any] struct {
	CharacterId uint32 `json:"characterId"`
	LocationId  uint64 `json:"locationId"`
	Type        string `json:"type"`
	Body        E      `json:"body"`
}

type PinnedStatusEventBody struct {
}

type UnpinnedStatusEventBody struct {
}
