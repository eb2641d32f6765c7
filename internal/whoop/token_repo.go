package whoop

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/runintel/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/oauth2"
)

var ErrTokenNotFound = errors.New("whoop token not found")

// TokenRepo persists the single whoop oauth2 token, so restarts do not
// force a new browser authorization.
type TokenRepo struct {
	db *pgxpool.Pool
}

func NewTokenRepo(db *pgxpool.Pool) *TokenRepo {
	return &TokenRepo{
		db: db,
	}
}

func (r *TokenRepo) Get(ctx context.Context) (_ *oauth2.Token, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.whoopToken.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var token oauth2.Token
	err = r.db.QueryRow(
		ctx,
		`SELECT access_token, refresh_token, token_type, expiry
			FROM whoop_token
			ORDER BY updated_at DESC
			LIMIT 1;`,
	).Scan(&token.AccessToken, &token.RefreshToken, &token.TokenType, &token.Expiry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}

	return &token, nil
}

func (r *TokenRepo) Save(ctx context.Context, token *oauth2.Token) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.whoopToken.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	// single user, single row
	_, err = r.db.Exec(
		ctx,
		`INSERT INTO whoop_token
				(id, access_token, refresh_token, token_type, expiry, updated_at)
				VALUES (1, $1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				access_token = EXCLUDED.access_token,
				refresh_token = EXCLUDED.refresh_token,
				token_type = EXCLUDED.token_type,
				expiry = EXCLUDED.expiry,
				updated_at = EXCLUDED.updated_at;`,
		token.AccessToken, token.RefreshToken, token.TokenType, token.Expiry, time.Now(),
	)
	return err
}
