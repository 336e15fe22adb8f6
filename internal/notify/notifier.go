package notify

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"chatcore/internal/dbmysql"
	"chatcore/internal/metrics"
)

// Notifier is the fan-out engine. Every committed mutation to participant,
// message or conversation rows goes through here, synchronously from the
// mutation path, so per-channel ordering matches commit order. Emission is
// best-effort: a failed publish is logged and counted, never surfaced to the
// write path. The write is the source of truth and missed events are
// recoverable via full re-fetch.
type Notifier interface {
	// EmitParticipant addresses the row's own user only: if Alice is added to
	// a conversation, only Alice's channel hears about it.
	EmitParticipant(ctx context.Context, op Operation, row, old *dbmysql.Participant)

	// EmitMessage fans out to the recipient set captured at mutation time,
	// sender included (self-delivery keeps the sender's other tabs in sync).
	EmitMessage(ctx context.Context, op Operation, recipients []string, row, old *dbmysql.Message)

	EmitConversation(ctx context.Context, op Operation, recipients []string, row, old *dbmysql.Conversation)
}

type notifier struct {
	pub Publisher
	log *zap.Logger
}

func NewNotifier(pub Publisher, log *zap.Logger) Notifier {
	return &notifier{pub: pub, log: log}
}

func (n *notifier) EmitParticipant(ctx context.Context, op Operation, row, old *dbmysql.Participant) {
	owner := ""
	if row != nil {
		owner = row.UserID
	} else if old != nil {
		owner = old.UserID
	}
	if owner == "" {
		return
	}
	n.emit(ctx, TableParticipants, op, []string{owner}, toRecord(row), toRecord(old))
}

func (n *notifier) EmitMessage(ctx context.Context, op Operation, recipients []string, row, old *dbmysql.Message) {
	n.emit(ctx, TableMessages, op, recipients, toRecord(row), toRecord(old))
}

func (n *notifier) EmitConversation(ctx context.Context, op Operation, recipients []string, row, old *dbmysql.Conversation) {
	n.emit(ctx, TableConversations, op, recipients, toRecord(row), toRecord(old))
}

func (n *notifier) emit(ctx context.Context, table string, op Operation, recipients []string, record, oldRecord interface{}) {
	if len(recipients) == 0 {
		return
	}

	payload, err := json.Marshal(Event{
		Table:     table,
		Operation: op,
		Record:    record,
		OldRecord: oldRecord,
	})
	if err != nil {
		n.log.Error("marshal delivery event", zap.String("table", table), zap.Error(err))
		metrics.PublishFailures.Inc()
		return
	}

	for _, userID := range recipients {
		if err := n.pub.Publish(ctx, UserChannel(userID), payload); err != nil {
			metrics.PublishFailures.Inc()
			n.log.Warn("delivery event dropped",
				zap.String("table", table),
				zap.String("operation", string(op)),
				zap.String("user_id", userID),
				zap.Error(err))
			continue
		}
		metrics.EventsPublished.WithLabelValues(table, string(op)).Inc()
	}
}

// toRecord keeps typed nils out of the JSON payload so absent state encodes as
// null, matching the wire contract.
func toRecord(v interface{}) interface{} {
	switch row := v.(type) {
	case *dbmysql.Participant:
		if row == nil {
			return nil
		}
	case *dbmysql.Message:
		if row == nil {
			return nil
		}
	case *dbmysql.Conversation:
		if row == nil {
			return nil
		}
	}
	return v
}
