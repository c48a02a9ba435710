package kafka

import (
	"errors"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// InteractionEvent 互动消息体，由上游业务服务投递
type InteractionEvent struct {
	UserID     uint64 `json:"user_id"`
	PostID     uint64 `json:"post_id"`
	Type       string `json:"type"`
	OccurredAt int64  `json:"occurred_at"`
}

// ToInteractionEvent 将kafka消息转换为互动事件结构体
func ToInteractionEvent(msg *sarama.ConsumerMessage) (*InteractionEvent, error) {
	var event InteractionEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return nil, err
	}

	if event.UserID == 0 || event.PostID == 0 {
		return nil, errors.New("interaction event missing ids")
	}

	return &event, nil
}
