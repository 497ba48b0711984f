package board

import "time"

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// DefaultNoticeTTL is how long a transient notice stays visible before
// it self-dismisses.
const DefaultNoticeTTL = 3 * time.Second

// Notice is a transient save/delete outcome shown to the user.
type Notice struct {
	Message   string     `json:"message"`
	Kind      NoticeKind `json:"kind"`
	ExpiresAt time.Time  `json:"expires_at"`
}
