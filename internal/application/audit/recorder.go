package audit

import (
	"context"
	"fmt"

	"github.com/producao/backend/internal/domain/audit"
)

// ErrAuditWriteFailed wraps trail append failures. The business mutation has
// already committed when the trail is written, so callers log this error and
// serve the response anyway.
var ErrAuditWriteFailed = fmt.Errorf("audit write failed")

type requestInfoKey struct{}

// RequestInfo carries the request-scoped attribution recorded with every
// audit entry. The HTTP middleware stores it in the request context.
type RequestInfo struct {
	ActorID   *uint
	IPAddress string
	UserAgent string
}

// WithRequestInfo returns a context carrying audit attribution
func WithRequestInfo(ctx context.Context, info RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// RequestInfoFromContext extracts audit attribution; zero value when absent
func RequestInfoFromContext(ctx context.Context) RequestInfo {
	if info, ok := ctx.Value(requestInfoKey{}).(RequestInfo); ok {
		return info
	}
	return RequestInfo{}
}

// RecorderService appends entries to the audit trail, stamping each one with
// the attribution found in the context. It implements audit.Recorder.
type RecorderService struct {
	repo audit.Repository
}

// NewRecorderService creates a recorder backed by the given repository
func NewRecorderService(repo audit.Repository) *RecorderService {
	return &RecorderService{repo: repo}
}

// Record appends one entry. Attribution fields already set on the entry win
// over context values.
func (s *RecorderService) Record(ctx context.Context, entry *audit.Entry) error {
	info := RequestInfoFromContext(ctx)
	if entry.ActorID == nil {
		entry.ActorID = info.ActorID
	}
	if entry.IPAddress == "" {
		entry.IPAddress = info.IPAddress
	}
	if entry.UserAgent == "" {
		entry.UserAgent = info.UserAgent
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return fmt.Errorf("%w: %v", ErrAuditWriteFailed, err)
	}
	return nil
}
