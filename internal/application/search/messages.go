package search

import (
	"github.com/google/uuid"

	"github.com/DrakeCaesar/scheduleI/internal/domain/search"
)

// messageKind tags worker-to-coordinator messages.
type messageKind int

const (
	// messageUpdate carries a strictly improved local best.
	messageUpdate messageKind = iota
	// messageProgress carries a per-worker progress record.
	messageProgress
	// messageDone signals terminal completion, no payload.
	messageDone
)

// workerMessage is the single envelope workers send to the coordinator.
// Epoch correlates the message to its session; the coordinator drops
// messages from any other epoch, so a message from a terminated worker that
// arrives late can never be misattributed to a newer session.
type workerMessage struct {
	epoch     uuid.UUID
	substance string
	kind      messageKind
	best      search.BestResult
	progress  search.WorkerProgress
}

// controlSignal tags coordinator-to-worker control messages. Start is not a
// signal: it is carried by the worker's spawn parameters.
type controlSignal int

const (
	controlPause controlSignal = iota
	controlResume
)
