package service

import (
	"context"

	"bookfast-web/internal/session"

	"github.com/sirupsen/logrus"
)

const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
	AuditActionCancel = "cancel"
)

// AuditService records mutations performed through the web front end. The
// booking api keeps the data itself, so the trail lives in the structured log.
type AuditService interface {
	Record(ctx context.Context, s *session.Session, action string, entityName string, entityID int64, detail any)
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{log: log}
}

func (a *auditService) Record(ctx context.Context, s *session.Session, action string, entityName string, entityID int64, detail any) {
	fields := logrus.Fields{
		"audit":     true,
		"action":    action,
		"entity":    entityName,
		"entity_id": entityID,
	}
	if s != nil {
		fields["session_id"] = s.ID
		fields["user_id"] = s.User.ID
		fields["role"] = s.Role().String()
	}
	if detail != nil {
		fields["detail"] = detail
	}

	a.log.WithContext(ctx).WithFields(fields).Info("Audit")
}
