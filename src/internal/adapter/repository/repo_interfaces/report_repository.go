package repo_interfaces

import (
	"context"

	"github.com/api-sage/xubank-ledger/src/internal/domain"
)

type ReportRepository interface {
	Save(ctx context.Context, report domain.Report) (domain.Report, error)
}
