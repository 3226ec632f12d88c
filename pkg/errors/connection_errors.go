package errors

var (
	// Domain errors — used in usecase/repository
	ErrSelfConnection      = InvalidArg("cannot send a connection request to yourself")
	ErrDuplicateConnection = AlreadyExists("a connection between these users already exists")
	ErrConnectionNotFound  = NotFound("connection not found")
	ErrNotParticipant      = Forbidden("user is not a participant of this connection")
	ErrNotRequestedTo      = Forbidden("only the requested user can accept or reject")
	ErrInvalidTransition   = FailedPrecondition("connection is not in the expected state")
	ErrNotAccepted         = Forbidden("connection is not accepted")
)

func ErrConnectionStoreFailed(cause error) error {
	return Wrap(CodeUnavailable, "connection store unavailable", cause)
}
