package appointment

type OutcomeKind string

const (
	OutcomeOK       OutcomeKind = "OK"
	OutcomeCreated  OutcomeKind = "CREATED"
	OutcomeError    OutcomeKind = "ERROR"
	OutcomeNotFound OutcomeKind = "NOT_FOUND"
	OutcomeFatal    OutcomeKind = "FATAL"
)

const (
	MsgNotFound    = "The appointment is not found"
	MsgServerError = "Unexpected server error"
)

// Outcome is the result of a service operation. The payload type depends on
// the kind and the operation: validation errors carry []string, not-found and
// fatal outcomes carry a fixed message.
type Outcome struct {
	Kind    OutcomeKind
	Payload any
}

func OK(payload any) Outcome {
	return Outcome{Kind: OutcomeOK, Payload: payload}
}

func Created(id int64) Outcome {
	return Outcome{Kind: OutcomeCreated, Payload: id}
}

func Invalid(errs []string) Outcome {
	return Outcome{Kind: OutcomeError, Payload: errs}
}

func NotFound() Outcome {
	return Outcome{Kind: OutcomeNotFound, Payload: MsgNotFound}
}

func Fatal() Outcome {
	return Outcome{Kind: OutcomeFatal, Payload: MsgServerError}
}
