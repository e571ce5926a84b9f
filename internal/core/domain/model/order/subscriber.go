package order

// Subscriber receives a synchronous notification for every accepted status
// transition of an order it is attached to. Implementations own their own
// aggregate state and must be safe for concurrent delivery from multiple
// orders transitioning at the same time.
type Subscriber interface {
	// Name identifies the subscriber role; Detach removes by name.
	Name() string

	// Notify is invoked with the order and the recorded transition after it
	// is appended to the history. It runs on the caller's goroutine before
	// ChangeStatus returns. Subscribers classify by change, not by the live
	// record: the order may have moved on by the time delivery happens.
	Notify(o *Order, change StatusChange)
}
