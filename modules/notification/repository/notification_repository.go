package repository

import (
	"context"

	"team-scheduler/core/database"
	"team-scheduler/core/logger"
	"team-scheduler/core/params"
	"team-scheduler/modules/notification/entity"

	"github.com/google/uuid"
)

type EmailLogRepository struct {
	db database.Database
}

func NewEmailLogRepository(db database.Database) *EmailLogRepository {
	return &EmailLogRepository{db: db}
}

// EmailLogRepositoryInterface defines the repository contract
type EmailLogRepositoryInterface interface {
	Create(ctx context.Context, log *entity.EmailLog) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EmailStatus) error
	GetByRecipient(ctx context.Context, recipientEmail string, params params.QueryParams) (*entity.PaginatedEmailLogEntity, error)
	CountByStatus(ctx context.Context, status entity.EmailStatus) (int, error)
}

func (r *EmailLogRepository) Create(ctx context.Context, log *entity.EmailLog) error {
	query := `
		INSERT INTO email_logs (recipient_email, recipient_name, subject, kind, status, data, created_at, updated_at)
		VALUES (:recipient_email, :recipient_name, :subject, :kind, :status, :data, NOW(), NOW())
		RETURNING id
	`
	rows, err := r.db.NamedQueryContext(ctx, query, log)
	if err != nil {
		logger.Error("EmailLogRepository:Create", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&log.ID)
	}
	return nil
}

func (r *EmailLogRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EmailStatus) error {
	query := `UPDATE email_logs SET status = $2, updated_at = NOW() WHERE id = $1`
	err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		logger.Error("EmailLogRepository:UpdateStatus", err)
		return err
	}
	return nil
}

func (r *EmailLogRepository) GetByRecipient(ctx context.Context, recipientEmail string, params params.QueryParams) (*entity.PaginatedEmailLogEntity, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM email_logs WHERE recipient_email = $1`

	var totalItems int
	err := r.db.GetContext(ctx, &totalItems, "SELECT COUNT(*) "+baseQuery, recipientEmail)
	if err != nil {
		logger.Error("EmailLogRepository:GetByRecipient:Count", err)
		return nil, err
	}

	query := `
		SELECT * ` + baseQuery + `
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	var logs []entity.EmailLog
	err = r.db.SelectContext(ctx, &logs, query, recipientEmail, params.PageSize, offset)
	if err != nil {
		logger.Error("EmailLogRepository:GetByRecipient:Select", err)
		return nil, err
	}

	return &entity.PaginatedEmailLogEntity{
		Items:      logs,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *EmailLogRepository) CountByStatus(ctx context.Context, status entity.EmailStatus) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM email_logs WHERE status = $1`
	err := r.db.GetContext(ctx, &count, query, status)
	if err != nil {
		logger.Error("EmailLogRepository:CountByStatus", err)
		return 0, err
	}
	return count, nil
}
