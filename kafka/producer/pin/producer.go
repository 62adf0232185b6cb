package pin

import (
	"atlas-assets/kafka/message/pin"

	"github.com/Chronicle20/atlas-kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

func PinnedEventStatusProvider(characterId uint32, locationId uint64) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &pin.StatusEvent[pin.PinnedStatusEventBody]{
		CharacterId: characterId,
		LocationId:  locationId,
		Type:        pin.StatusEventTypePinned,
		Body:        pin.PinnedStatusEventBody{},
	}
	return producer.SingleMessageProvider(key, value)
}

func UnpinnedEventStatusProvider(characterId uint32, locationId uint64) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(characterId))
	value := &pin.StatusEvent[pin.UnpinnedStatusEventBody]{
		CharacterId: characterId,
		LocationId:  locationId,
		Type:        pin.StatusEventTypeUnpinned,
		Body:        pin.UnpinnedStatusEventBody{},
	}
	return producer.SingleMessageProvider(key, value)
}
