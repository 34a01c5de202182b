package sweep

// Flow names which loop produced an event.
type Flow int

const (
	FlowCommit Flow = iota
	FlowRemove
	FlowPush
)

func (f Flow) String() string {
	switch f {
	case FlowCommit:
		return "commit"
	case FlowRemove:
		return "remove"
	case FlowPush:
		return "push"
	default:
		return "unknown"
	}
}

type EventKind int

const (
	EventPrestage   EventKind = iota // staging everything to list new files
	EventUnstage                     // unstaging after the listing
	EventNothing                     // nothing to do, run ends
	EventFound                       // Total items discovered
	EventStart                       // item Index of Total begins
	EventPlanned                     // dry run: Message would be committed for Path
	EventCommitted                   // item committed
	EventFailed                      // item failed, Err set
	EventDeleted                     // git rm failed, file deleted from disk instead
	EventSkipped                     // item neither tracked nor on disk
	EventFinished                    // loop over items complete
	EventPushStart
	EventPushDone
	EventPushFailed  // Err set
	EventPushSkipped // push disabled or dry run
	EventWarning     // non-fatal problem outside the item loop, Err set
)

// Event reports progress of a run to an Observer.
type Event struct {
	Kind    EventKind
	Flow    Flow
	Index   int // 1-based
	Total   int
	Path    string
	Message string // commit message, when relevant
	Err     error
}

// Observer receives events in the order they happen.
type Observer func(Event)
