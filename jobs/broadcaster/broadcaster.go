package broadcaster

import (
	"context"
	"log"
	"time"

	"github.com/IBM/sarama"

	"github.com/raidixlab/extentindex/infra/outbox"
)

// maxAttempts bounds how often a single event is offered to the broker
// before it is parked as FAILED.
const maxAttempts = 8

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

func New(
	ob *outbox.Outbox,
	brokers []string,
	topic string,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
	}, nil
}

// ------------------------------------------------
// START LOOP
// ------------------------------------------------

func (b *Broadcaster) Start(ctx context.Context) {
	log.Println("[broadcaster] started")

	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return

			case <-ticker.C:
				b.drainOnce()
			}
		}
	}()
}

// ------------------------------------------------
// DRAIN LOGIC (CRITICAL)
// ------------------------------------------------

func (b *Broadcaster) drainOnce() {
	_ = b.outbox.ScanPending(func(rec *outbox.Record) error {

		if rec.Retries >= maxAttempts {
			log.Printf("[broadcaster] parking seq %d after %d attempts", rec.Seq, rec.Retries)
			_ = b.outbox.MarkFailed(rec.Seq)
			return nil
		}

		// 1️⃣ Mark SENT (idempotent)
		_ = b.outbox.MarkSent(rec.Seq)

		// 2️⃣ Publish to Kafka
		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(rec.Payload),
		}

		_, _, err := b.producer.SendMessage(msg)
		if err != nil {
			return nil // retry later
		}

		// 3️⃣ Mark ACKED
		_ = b.outbox.MarkAcked(rec.Seq)

		return nil
	})
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
