package dal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

type (
	// Delivery records one card sent to one recipient.
	Delivery struct {
		ChatID int64     `json:"chat_id"`
		DeckID string    `json:"deck_id"`
		CardID int       `json:"card_id"`
		SentAt time.Time `json:"sent_at"`
	}

	// BroadcastRun summarizes one scheduled fan-out pass.
	BroadcastRun struct {
		ID         string    `json:"id"`
		StartedAt  time.Time `json:"started_at"`
		FinishedAt time.Time `json:"finished_at"`
		Total      int       `json:"total"`
		Sent       int       `json:"sent"`
		Pruned     int       `json:"pruned"`
		Failed     int       `json:"failed"`
	}
)

func (s *BoltDB) PutDelivery(d Delivery) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		key := deliveryKey(d.ChatID, d.SentAt)
		data, err := json.Marshal(&d)
		if err != nil {
			return fmt.Errorf("marshal delivery for chatID=%d: %w", d.ChatID, err)
		}
		if err := tx.Bucket([]byte(deliveriesBucket)).Put(key, data); err != nil {
			return fmt.Errorf("put delivery for chatID=%d: %w", d.ChatID, err)
		}
		return nil
	})
}

// GetDeliveries returns all recorded deliveries for a chat, oldest first.
func (s *BoltDB) GetDeliveries(chatID int64) ([]Delivery, error) {
	var res []Delivery

	err := s.db.View(func(tx *bbolt.Tx) error {
		prefix := append(i64tob(chatID), ':')
		c := tx.Bucket([]byte(deliveriesBucket)).Cursor()

		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var d Delivery
			if err := json.Unmarshal(v, &d); err != nil {
				return fmt.Errorf("unmarshal delivery: %w", err)
			}
			res = append(res, d)
		}

		return nil
	})

	return res, err
}

func (s *BoltDB) PutRun(run BroadcastRun) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		key := []byte(run.StartedAt.UTC().Format(time.RFC3339Nano))
		data, err := json.Marshal(&run)
		if err != nil {
			return fmt.Errorf("marshal broadcast run %s: %w", run.ID, err)
		}
		if err := tx.Bucket([]byte(runsBucket)).Put(key, data); err != nil {
			return fmt.Errorf("put broadcast run %s: %w", run.ID, err)
		}
		return nil
	})
}

// LastRun returns the most recent broadcast run summary.
func (s *BoltDB) LastRun() (BroadcastRun, bool, error) {
	var res BroadcastRun
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		_, v := tx.Bucket([]byte(runsBucket)).Cursor().Last()
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &res)
	})

	return res, found, err
}

func deliveryKey(chatID int64, sentAt time.Time) []byte {
	key := append(i64tob(chatID), ':')
	return append(key, []byte(sentAt.UTC().Format(time.RFC3339Nano))...)
}
