package internal

import (
	"fmt"

	"github.com/smolin/riskgate/internal/model"
)

// RequestMeta carries the inbound request context the builder cannot derive
// from the order itself: the caller captures it at the edge and passes it in.
type RequestMeta struct {
	XForwardedFor string
	UserAgent     string
	SessionID     string
	// IsAdmin is set when the action originates in the administrative area,
	// where the request network origin is not the customer's.
	IsAdmin bool
}

// ISessionBuilder enriches an inquiry with device/session fingerprint data.
// It runs only for initial builds; updates reuse the session recorded with
// the first submission.
type ISessionBuilder interface {
	Process(inq *model.Inquiry, order *model.Order, meta RequestMeta)
}

// SessionBuilder derives a stable session id from the checkout session when
// one exists, falling back to an order-scoped id.
type SessionBuilder struct{}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{}
}

func (s *SessionBuilder) Process(inq *model.Inquiry, order *model.Order, meta RequestMeta) {
	sessionID := meta.SessionID
	if sessionID == "" {
		sessionID = fmt.Sprintf("order-%s", order.IncrementID)
	}
	inq.DeviceSessionID = sessionID
	inq.UserAgent = meta.UserAgent
}
