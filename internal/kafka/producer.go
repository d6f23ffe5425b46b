package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"flight-service/internal/models"

	"github.com/segmentio/kafka-go"
)

type Producer struct {
	Writer *kafka.Writer

	createdTopic   string
	cancelledTopic string
}

func NewProducer(brokers []string, createdTopic, cancelledTopic string) *Producer {
	if createdTopic == "" {
		createdTopic = TopicOrderCreated
	}
	if cancelledTopic == "" {
		cancelledTopic = TopicOrderCancelled
	}
	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &Producer{
		Writer:         writer,
		createdTopic:   createdTopic,
		cancelledTopic: cancelledTopic,
	}
}

func (p *Producer) publish(topic string, key string, value interface{}) error {
	msgBytes, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(context.Background(),
		kafka.Message{
			Topic: topic,
			Key:   []byte(key),
			Value: msgBytes,
		},
	)
}

// PublishOrderCreated streams the order creation event.
func (p *Producer) PublishOrderCreated(order models.Order) error {
	return p.publish(p.createdTopic, strconv.FormatInt(order.ID, 10), order)
}

// PublishOrderCancelled streams the order cancellation event.
func (p *Producer) PublishOrderCancelled(order models.Order) error {
	return p.publish(p.cancelledTopic, strconv.FormatInt(order.ID, 10), order)
}

func (p *Producer) Close() error {
	return p.Writer.Close()
}
