package kafka

import (
	"Halcyon/internal/service"
	"context"
	"errors"
	log "log/slog"

	"github.com/IBM/sarama"
)

type InteractionHandler struct {
	interactionService service.InteractionService
}

func NewInteractionHandler(interactionService service.InteractionService) *InteractionHandler {
	return &InteractionHandler{
		interactionService: interactionService,
	}
}

func (s *InteractionHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("interaction consumer setup")
	return nil
}

func (s *InteractionHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("interaction consumer cleanup")
	return nil
}

func (s *InteractionHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-interaction consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-interaction process batch error", "err", err)
		return err
	}
	return nil
}

func (s *InteractionHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	event, err := ToInteractionEvent(msg)
	if err != nil {
		// 消息体损坏没有重试价值，记录后直接跳过
		log.ErrorContext(ctx, "drop malformed interaction event", "err", err)
		return nil
	}

	err = s.interactionService.Record(ctx, event.UserID, event.PostID, event.Type)
	if err != nil {
		// 业务校验类错误同样不重试，存储类错误交给上层退避
		if errors.Is(err, service.ErrInteractionTypeInvalid) || errors.Is(err, service.ErrPostNotFound) {
			log.WarnContext(ctx, "skip invalid interaction event",
				"userID", event.UserID, "postID", event.PostID, "type", event.Type, "err", err)
			return nil
		}
		return err
	}

	log.InfoContext(ctx, "interaction recorded",
		"userID", event.UserID, "postID", event.PostID, "type", event.Type)
	return nil
}
