package session

import "github.com/google/uuid"

func defaultNewID() string {
	return "msg-" + uuid.NewString()
}
