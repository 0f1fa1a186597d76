package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/mail-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/mail-insights-api/internal/domain"
)

type MessageRepository interface {
	UpsertMessages(ctx context.Context, messages []*domain.CampaignMessage) error
}

type messageRepository struct {
	conn *postgres.Connection
}

func NewMessageRepository(conn *postgres.Connection) MessageRepository {
	return &messageRepository{
		conn: conn,
	}
}

func (r *messageRepository) UpsertMessages(ctx context.Context, messages []*domain.CampaignMessage) error {
	if len(messages) == 0 {
		return nil
	}

	messages = dedupeByKey(messages, func(m *domain.CampaignMessage) string { return m.AccountID + ":" + m.ID })

	query := squirrel.StatementBuilder.
		Insert("campaign_messages").
		Columns("account_id", "id", "campaign_id", "contact_id", "sent_at", "was_opened", "was_clicked", "was_bounced", "raw_payload", "created_at", "updated_at").
		PlaceholderFormat(squirrel.Dollar)

	for _, m := range messages {
		var contactID interface{}
		if m.ContactID != nil {
			contactID = *m.ContactID
		}
		query = query.Values(
			m.AccountID, m.ID, m.CampaignID, contactID, m.SentAt,
			m.WasOpened, m.WasClicked, m.WasBounced, rawJSON(m.RawPayload),
			squirrel.Expr("NOW()"), squirrel.Expr("NOW()"),
		)
	}

	query = query.Suffix(`
		ON CONFLICT (account_id, id) DO UPDATE SET
			campaign_id = EXCLUDED.campaign_id,
			contact_id = EXCLUDED.contact_id,
			sent_at = EXCLUDED.sent_at,
			was_opened = EXCLUDED.was_opened,
			was_clicked = EXCLUDED.was_clicked,
			was_bounced = EXCLUDED.was_bounced,
			raw_payload = EXCLUDED.raw_payload,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("falha ao montar query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, sqlQuery, args...); err != nil {
		return postgres.WrapError(err)
	}

	return nil
}
