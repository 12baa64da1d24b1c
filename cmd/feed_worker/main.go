package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/tripmoa/trip-backend/config"
	"github.com/tripmoa/trip-backend/internal/events"
	"github.com/tripmoa/trip-backend/pkg/helpers"
)

// The feed worker consumes post.created events and maintains the recent
// feed lists in Redis so the read side never touches Postgres for them.

const (
	feedRecentKey  = "feed:recent"
	feedCategoryFn = "feed:category:%d"
	feedMaxLen     = 500
)

func main() {
	cfg := config.Load()
	if cfg.RabbitMQURL == "" || cfg.RabbitMQPostQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}

	if _, err := ch.QueueDeclare(cfg.RabbitMQPostQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQPostQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for msg := range msgs {
			var ev events.PostCreated
			if err := json.Unmarshal(msg.Body, &ev); err != nil {
				log.Printf("bad message: %v", err)
				_ = msg.Nack(false, false)
				continue
			}

			entry, err := json.Marshal(map[string]any{
				"post_id":    ev.PostID,
				"member_id":  ev.MemberID,
				"title":      ev.Title,
				"created_at": ev.CreatedAt,
			})
			if err != nil {
				_ = msg.Nack(false, false)
				continue
			}

			c, cancel := context.WithTimeout(ctx, 5*time.Second)
			pipe := rdb.Pipeline()
			pipe.LPush(c, feedRecentKey, entry)
			pipe.LTrim(c, feedRecentKey, 0, feedMaxLen-1)
			for _, catID := range ev.CategoryIDs {
				key := fmt.Sprintf(feedCategoryFn, catID)
				pipe.LPush(c, key, entry)
				pipe.LTrim(c, key, 0, feedMaxLen-1)
			}
			_, err = pipe.Exec(c)
			cancel()
			if err != nil {
				log.Printf("feed update failed for post %d: %v", ev.PostID, err)
				_ = msg.Nack(false, true)
				continue
			}
			_ = msg.Ack(false)
		}
		close(done)
	}()

	log.Printf("feed worker listening on queue=%s", cfg.RabbitMQPostQueue)
	<-stop
	log.Printf("shutting down...")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
