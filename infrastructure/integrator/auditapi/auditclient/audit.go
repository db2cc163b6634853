package auditclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/visibility-audit-api/infrastructure/integrator/auditapi/auditdomain"
)

// IsValidPathSegment recusa ids que o path.Join resolveria para outro recurso
func IsValidPathSegment(id string) bool {
	return id != "" && id != "." && id != ".." && !strings.ContainsAny(id, `/\?#`)
}

func (c *AuditClient) GetAudit(ctx context.Context, auditID string) (*auditdomain.Audit, error) {
	if !IsValidPathSegment(auditID) {
		return nil, fmt.Errorf("id de auditoria inválido: %q", auditID)
	}

	var audit auditdomain.Audit
	if err := c.get(ctx, "audits/"+auditID, &audit); err != nil {
		return nil, err
	}

	return &audit, nil
}
