package services

// ValidationError marks a failed precondition on caller-supplied input.
// Handlers map it to a 400 with the message as-is.
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}
