package services

// ResultKind tags the outcome of a catalog operation.
type ResultKind int

const (
	KindOK ResultKind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func (k ResultKind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

const (
	MsgBadRequest     = "Bad Request"
	MsgNameRequired   = "Name is required"
	MsgProductAdded   = "Product added"
	MsgProductExists  = "Product already added"
	MsgGameUpdated    = "Game updated"
	MsgGameNotFound   = "Game not found"
	MsgGameRemoved    = "Game is removed"
	MsgGameIsNotFound = "Game is not found"
)

// Result is either Ok with a payload or a failure of some kind with a
// message. The payload is only reachable through Data, which reports
// whether the operation succeeded.
type Result[T any] struct {
	Kind    ResultKind
	Message string
	data    T
}

func Ok[T any](data T, message string) Result[T] {
	return Result[T]{Kind: KindOK, Message: message, data: data}
}

func Fail[T any](kind ResultKind, message string) Result[T] {
	return Result[T]{Kind: kind, Message: message}
}

func (r Result[T]) Success() bool {
	return r.Kind == KindOK
}

func (r Result[T]) Data() (T, bool) {
	if r.Kind != KindOK {
		var zero T
		return zero, false
	}
	return r.data, true
}
