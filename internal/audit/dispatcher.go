package audit

import "log"

// Actions recorded across the app.
const (
	ActionUserRegistered   = "user_registered"
	ActionBookingCreated   = "booking_created"
	ActionBookingConfirmed = "booking_confirmed"
	ActionBookingRejected  = "booking_rejected"
	ActionBookingCompleted = "booking_completed"
	ActionDocumentUploaded = "document_uploaded"
	ActionChefApproved     = "chef_approved"
	ActionChefRejected     = "chef_rejected"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks the request path; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
