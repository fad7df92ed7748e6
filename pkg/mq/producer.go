package mq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/rabbitmq/amqp091-go"

	"VidTube.com/config"
)

type Producer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

var producer *Producer

// Init 连接RabbitMQ并声明拓扑 连不上只告警 事件属于通知侧 不阻塞核心链路
func Init() {
	url := fmt.Sprintf("amqp://%s:%s@%s/",
		config.ConfigInfo.RabbitMq.Username,
		config.ConfigInfo.RabbitMq.Password,
		config.ConfigInfo.RabbitMq.Addr)
	p, err := NewProducer(url)
	if err != nil {
		hlog.Warnf("Failed to init mq producer: %v", err)
		return
	}
	producer = p
}

func NewProducer(rabbitmqURL string) (*Producer, error) {
	conn, err := amqp091.Dial(rabbitmqURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	p := &Producer{conn: conn, channel: ch}
	if err := p.setupTopology(); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to setup topology: %w", err)
	}
	return p, nil
}

func (p *Producer) setupTopology() error {
	bindings := []struct {
		exchange string
		queue    string
	}{
		{LikeEventExchange, LikeEventQueue},
		{SubscribeEventExchange, SubscribeEventQueue},
	}
	for _, b := range bindings {
		if err := p.channel.ExchangeDeclare(b.exchange, "direct",
			true,  // durable
			false, // auto-delete
			false, // internal
			false, // no-wait
			nil,
		); err != nil {
			return fmt.Errorf("failed to declare exchange %s: %w", b.exchange, err)
		}
		if _, err := p.channel.QueueDeclare(b.queue,
			true,  // durable
			false, // delete when unused
			false, // exclusive
			false, // no-wait
			nil,
		); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", b.queue, err)
		}
		if err := p.channel.QueueBind(b.queue, "", b.exchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue %s: %w", b.queue, err)
		}
	}
	return nil
}

func (p *Producer) publish(ctx context.Context, exchange string, event interface{}) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.channel.PublishWithContext(ctx, exchange, "", false, false, amqp091.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	})
}

func (p *Producer) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// PublishLikeEvent 发布点赞事件 失败只记日志
func PublishLikeEvent(ctx context.Context, event *LikeEvent) {
	if producer == nil {
		return
	}
	if err := producer.publish(ctx, LikeEventExchange, event); err != nil {
		hlog.CtxWarnf(ctx, "Failed to publish like event: %v", err)
	}
}

// PublishSubscribeEvent 发布订阅事件 失败只记日志
func PublishSubscribeEvent(ctx context.Context, event *SubscribeEvent) {
	if producer == nil {
		return
	}
	if err := producer.publish(ctx, SubscribeEventExchange, event); err != nil {
		hlog.CtxWarnf(ctx, "Failed to publish subscribe event: %v", err)
	}
}
