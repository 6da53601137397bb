package orchestrators

// MutationObserver counts successful store mutations, e.g. a Prometheus recorder.
type MutationObserver interface {
	ObserveMutation(kind, op string)
}

// DeleteResult is the outcome of a delete. Removed is false when no record had the id.
type DeleteResult struct {
	Message string `json:"message"`
	Removed bool   `json:"removed"`
}

// deletedMessage is returned for every delete, whether or not a record was removed.
const deletedMessage = "Deleted"

func observe(o MutationObserver, kind, op string) {
	if o != nil {
		o.ObserveMutation(kind, op)
	}
}
