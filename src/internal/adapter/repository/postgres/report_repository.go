package postgres

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/api-sage/xubank-ledger/src/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/xubank-ledger/src/internal/domain"
	"github.com/api-sage/xubank-ledger/src/internal/logger"
	"golang.org/x/crypto/blake2b"
)

var _ repo_interfaces.ReportRepository = (*ReportRepository)(nil)

// ReportRepository exports aggregate reports. Clients are stored only as a
// keyed blake2b digest of their normalised tax id.
type ReportRepository struct {
	db     *sql.DB
	refKey []byte
}

// NewReportRepository fails when refKey is longer than blake2b allows.
func NewReportRepository(db *sql.DB, refKey string) (*ReportRepository, error) {
	if len(refKey) > blake2b.Size {
		return nil, fmt.Errorf("report reference key must be at most %d bytes", blake2b.Size)
	}
	return &ReportRepository{db: db, refKey: []byte(refKey)}, nil
}

func (r *ReportRepository) Save(ctx context.Context, report domain.Report) (domain.Report, error) {
	logger.Info("report repository save", logger.Fields{
		"reportId":     report.ID,
		"accountCount": report.AccountCount,
	})

	richestRef, richestBalance, err := r.clientColumns(report.Richest)
	if err != nil {
		return domain.Report{}, err
	}
	poorestRef, poorestBalance, err := r.clientColumns(report.Poorest)
	if err != nil {
		return domain.Report{}, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Report{}, fmt.Errorf("begin report transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertReport = `
INSERT INTO ledger_reports (
	id,
	generated_at,
	client_count,
	account_count,
	average_balance,
	richest_client_ref,
	richest_balance,
	poorest_client_ref,
	poorest_balance
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9
)
RETURNING created_at`

	var createdAt time.Time
	if err = tx.QueryRowContext(
		ctx,
		insertReport,
		report.ID,
		report.GeneratedAt,
		report.ClientCount,
		report.AccountCount,
		report.AverageBalance,
		richestRef,
		richestBalance,
		poorestRef,
		poorestBalance,
	).Scan(&createdAt); err != nil {
		logger.Error("report repository save failed", err, logger.Fields{
			"reportId": report.ID,
		})
		err = fmt.Errorf("insert report: %w", err)
		return domain.Report{}, err
	}

	const insertCustody = `
INSERT INTO ledger_report_custody (report_id, account_kind, total)
VALUES ($1, $2, $3)`

	for _, kind := range domain.AccountKinds {
		total, ok := report.Custody[kind]
		if !ok {
			continue
		}
		if _, err = tx.ExecContext(ctx, insertCustody, report.ID, string(kind), total); err != nil {
			err = fmt.Errorf("insert custody for %s: %w", kind, err)
			return domain.Report{}, err
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.Report{}, fmt.Errorf("commit report transaction: %w", err)
	}

	logger.Info("report repository save success", logger.Fields{
		"reportId":  report.ID,
		"createdAt": createdAt.Format(time.RFC3339),
	})

	return report, nil
}

func (r *ReportRepository) clientColumns(balance *domain.ClientBalance) (any, any, error) {
	if balance == nil {
		return nil, nil, nil
	}

	ref, err := clientRef(r.refKey, balance.TaxID)
	if err != nil {
		return nil, nil, err
	}
	return ref, balance.TotalBalance, nil
}

// clientRef is a stable pseudonym for a client: the hex blake2b-256 digest of
// the digits of the tax id, keyed when key is non-empty.
func clientRef(key []byte, taxID string) (string, error) {
	h, err := blake2b.New256(key)
	if err != nil {
		return "", fmt.Errorf("init client reference hash: %w", err)
	}
	h.Write([]byte(domain.NormalizeTaxID(taxID)))
	return hex.EncodeToString(h.Sum(nil)), nil
}
