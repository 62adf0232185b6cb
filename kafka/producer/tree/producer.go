package tree

import (
	"atlas-assets/kafka/message/tree"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

func ProgressEventStatusProvider(characterId uint32, stage string, page int, current int, total int) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &tree.StatusEvent[tree.ProgressStatusEventBody]{
		CharacterId: characterId,
		Type:        tree.StatusEventTypeProgress,
		Body: tree.ProgressStatusEventBody{
			Stage:   stage,
			Page:    page,
			Current: current,
			Total:   total,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func BuiltEventStatusProvider(characterId uint32, roots uint32, items uint32) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &tree.StatusEvent[tree.BuiltStatusEventBody]{
		CharacterId: characterId,
		Type:        tree.StatusEventTypeBuilt,
		Body: tree.BuiltStatusEventBody{
			Roots: roots,
			Items: items,
		},
	}
	return producer.SingleMessageProvider(key, value)
}

func ErrorEventStatusProvider(characterId uint32, message string) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &tree.StatusEvent[tree.ErrorStatusEventBody]{
		CharacterId: characterId,
		Type:        tree.StatusEventTypeError,
		Body: tree.ErrorStatusEventBody{
			Error: message,
		},
	}
	return producer.SingleMessageProvider(key, value)
}
