package tree

const (
	EnvCommandTopic     = "COMMAND_TOPIC_ASSET_TREE"
	CommandRequestBuild = "REQUEST_BUILD"
)

type Command[E any] struct {
	CharacterId uint32 `json:"characterId"`
	Type        string `json:"type"`
	Body        E      `json:"body"`
}

type RequestBuildCommandBody struct {
	Force bool `json:"force"`
}

const (
	EnvEventTopicStatus     = "EVENT_TOPIC_ASSET_TREE_STATUS"
	StatusEventTypeProgress = "PROGRESS"
	StatusEventTypeBuilt    = "BUILT"
	StatusEventTypeError    = "ERROR"
)

type StatusEvent[E any] struct {
	CharacterId uint32 `json:"characterId"`
	Type        string `json:"type"`
	Body        E      `json:"body"`
}

type ProgressStatusEventBody struct {
	Stage   string `json:"stage"`
	Page    int    `json:"page,omitempty"`
	Current int    `json:"current,omitempty"`
	Total   int    `json:"total,omitempty"`
}

type BuiltStatusEventBody struct {
	Roots uint32 `json:"roots"`
	Items uint32 `json:"items"`
}

type ErrorStatusEventBody struct {
	Error string `json:"error"`
}
