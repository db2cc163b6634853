package auditclient

import (
	"context"

	"github.com/vfg2006/visibility-audit-api/infrastructure/integrator/auditapi/auditdomain"
)

func (c *AuditClient) ListFixServices(ctx context.Context) ([]auditdomain.FixService, error) {
	var services []auditdomain.FixService
	if err := c.get(ctx, "catalog/fix-services", &services); err != nil {
		return nil, err
	}

	return services, nil
}

func (c *AuditClient) ListPartners(ctx context.Context) ([]auditdomain.Partner, error) {
	var partners []auditdomain.Partner
	if err := c.get(ctx, "partners", &partners); err != nil {
		return nil, err
	}

	return partners, nil
}
