package notify

// Operation mirrors the mutation kind that produced an event.
type Operation string

const (
	OpInsert Operation = "INSERT"
	OpUpdate Operation = "UPDATE"
	OpDelete Operation = "DELETE"
)

const (
	TableParticipants  = "participants"
	TableMessages      = "messages"
	TableConversations = "conversations"
)

// Event is the wire contract between the change notifier and subscribed
// sessions. It is ephemeral: created at mutation time, consumed at most once
// per connected session, never replayed. A client that missed events re-fetches
// instead of relying on replay.
type Event struct {
	Table     string      `json:"table"`
	Operation Operation   `json:"operation"`
	Record    interface{} `json:"record"`
	OldRecord interface{} `json:"old_record"`
}

// UserChannel is the private delivery address for one user. Authorization is
// paid once, when a session subscribes, instead of per event per subscriber.
func UserChannel(userID string) string {
	return "user:" + userID
}
