package amqp

import (
	"encoding/json"
	"time"

	"github.com/CuelloDiego/Cierre-de-caja/internal/core"
)

// ClosingRecordedMessage announces one accepted closing to downstream
// consumers (reporting, notifications). It carries the batch summary,
// not the entries; anyone who needs the detail reads the ledger.
type ClosingRecordedMessage struct {
	CloserName string     `json:"closerName"`
	Shift      core.Shift `json:"shift"`
	Entries    int        `json:"entries"`
	BatchTotal float64    `json:"batchTotal"`
	Timestamp  time.Time  `json:"timestamp"`
}

// NewClosingRecordedMessage summarizes an accepted batch. BatchTotal is
// the signed sum of the entries' amounts.
func NewClosingRecordedMessage(batch []core.LogEntry) *ClosingRecordedMessage {
	msg := &ClosingRecordedMessage{
		Entries:   len(batch),
		Timestamp: time.Now(),
	}
	if len(batch) > 0 {
		msg.CloserName = batch[0].CloserName
		msg.Shift = batch[0].Shift
	}
	for _, e := range batch {
		msg.BatchTotal += e.Amount
	}
	return msg
}

func (m *ClosingRecordedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ClosingRecordedMessageFromJSON(data []byte) (*ClosingRecordedMessage, error) {
	var msg ClosingRecordedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
