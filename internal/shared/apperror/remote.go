package apperror

import "fmt"

// RemoteError is the raw refusal returned by the remote service: its status
// code and the `error` field of the response body, when one was sent.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote status %d", e.Status)
	}
	return fmt.Sprintf("remote status %d: %s", e.Status, e.Message)
}

// RemoteMessage returns the message the remote service attached to err.
// It is empty for transport failures and for error responses without a body.
func RemoteMessage(err error) string {
	var remote *RemoteError
	if As(err, &remote) {
		return remote.Message
	}
	return ""
}
