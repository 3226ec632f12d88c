package errors

var (
	ErrMessageNotFound = NotFound("message not found")
	ErrEmptyMessage    = InvalidArg("message content cannot be empty")
	ErrNotAuthor       = Forbidden("only the author can delete a message")
)

func ErrMessageStoreFailed(cause error) error {
	return Wrap(CodeUnavailable, "message store unavailable", cause)
}
