package nsq

import (
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/troski/troski/internal/pkg/logger"
)

// MessageHandler is a function that processes NSQ messages
type MessageHandler func(message []byte) error

// Consumer handles consuming messages from NSQ topics
type Consumer struct {
	consumer *nsq.Consumer
	topic    string
}

// NewConsumer creates a consumer for a topic/channel. Call Connect to start receiving.
func NewConsumer(topic, channel string, handler MessageHandler) (*Consumer, error) {
	config := nsq.NewConfig()

	consumer, err := nsq.NewConsumer(topic, channel, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ consumer: %w", err)
	}
	consumer.SetLoggerLevel(nsq.LogLevelWarning)
	consumer.AddHandler(wrapHandler(topic, handler))

	return &Consumer{consumer: consumer, topic: topic}, nil
}

// wrapHandler finishes handled messages; a failed message is returned to nsqd for requeue
func wrapHandler(topic string, handler MessageHandler) nsq.HandlerFunc {
	return func(message *nsq.Message) error {
		message.Touch()

		if err := handler(message.Body); err != nil {
			logger.Warn("Error processing message",
				logger.String("topic", topic),
				logger.Int("attempts", int(message.Attempts)),
				logger.Err(err))
			return err
		}

		message.Finish()
		return nil
	}
}

// Connect connects to lookupd when an address is given, otherwise straight to nsqd
func (c *Consumer) Connect(nsqdAddress, lookupdAddress string) error {
	if lookupdAddress != "" {
		if err := c.consumer.ConnectToNSQLookupd(lookupdAddress); err != nil {
			return fmt.Errorf("failed to connect to NSQ lookupd at %s: %w", lookupdAddress, err)
		}
		return nil
	}

	if err := c.consumer.ConnectToNSQD(nsqdAddress); err != nil {
		return fmt.Errorf("failed to connect to NSQ daemon: %w", err)
	}
	return nil
}

// UnmarshalMessage deserializes a JSON message into the provided struct
func UnmarshalMessage(messageBody []byte, v interface{}) error {
	if err := json.Unmarshal(messageBody, v); err != nil {
		return fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return nil
}

// Stop gracefully stops the consumer
func (c *Consumer) Stop() {
	c.consumer.Stop()
	<-c.consumer.StopChan
}
