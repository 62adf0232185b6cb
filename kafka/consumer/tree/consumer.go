package tree

import (
	consumer2 "atlas-assets/kafka/consumer"
	tree2 "atlas-assets/kafka/message/tree"
	"atlas-assets/tree"
	"context"
	"errors"

	"github.com/Chronicle20/atlas-kafka/consumer"
	"github.com/Chronicle20/atlas-kafka/handler"
	"github.com/Chronicle20/atlas-kafka/message"
	"github.com/Chronicle20/atlas-kafka/topic"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func InitConsumers(l logrus.FieldLogger) func(func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
	return func(rf func(config consumer.Config, decorators ...model.Decorator[consumer.Config])) func(consumerGroupId string) {
		return func(consumerGroupId string) {
			rf(consumer2.NewConfig(l)("asset_tree_command")(tree2.EnvCommandTopic)(consumerGroupId), consumer.SetHeaderParsers(consumer.SpanHeaderParser, consumer.TenantHeaderParser))
		}
	}
}

func InitHandlers(l logrus.FieldLogger) func(db *gorm.DB) func(rf func(topic string, handler handler.Handler) (string, error)) {
	return func(db *gorm.DB) func(rf func(topic string, handler handler.Handler) (string, error)) {
		return func(rf func(topic string, handler handler.Handler) (string, error)) {
			var t string
			t, _ = topic.EnvProvider(l)(tree2.EnvCommandTopic)()
			_, _ = rf(t, message.AdaptHandler(message.PersistentConfig(handleRequestBuildCommand(db))))
		}
	}
}

func handleRequestBuildCommand(db *gorm.DB) message.Handler[tree2.Command[tree2.RequestBuildCommandBody]] {
	return func(l logrus.FieldLogger, ctx context.Context, c tree2.Command[tree2.RequestBuildCommandBody]) {
		if c.Type != tree2.CommandRequestBuild {
			return
		}
		_, err := tree.NewProcessor(l, ctx, db).BuildAndEmit(c.CharacterId, c.Body.Force, tree.KafkaProgressFunc(l, ctx, c.CharacterId))
		if err != nil && !errors.Is(err, tree.ErrBuildInProgress) {
			l.WithError(err).Errorf("Unable to build asset tree for character [%d].", c.CharacterId)
		}
	}
}
