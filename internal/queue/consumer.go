package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StartEventConsumer connects to the broker, declares the durable
// reservation.events queue and consumes it, appending one line per event
// to logs/reservation.log.  It runs a reconnect loop with capped
// exponential backoff and never returns under normal operation; messages
// that cannot be processed are rejected without requeue so a poison
// message cannot spin the consumer.
func StartEventConsumer() error {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(brokerURL())
		if err != nil {
			log.Printf("event-consumer: dial broker failed: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("event-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("event-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(eventQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(eventQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleEvent(d.Body); err != nil {
			log.Printf("event-consumer: handle event failed: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleEvent(body []byte) error {
	var ev ReservationEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "reservation.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("[%s] Reservation %s | reservation_id=%d | user=%q (id=%d) | car=%q (id=%d) | %s -> %s (%d days) | total=%s | status=%s\n",
		ev.OccurredAt, ev.Action, ev.ReservationID, ev.UserName, ev.UserID,
		ev.CarName, ev.CarID, ev.StartDate, ev.EndDate, ev.Days, ev.TotalPrice, ev.Status)

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
