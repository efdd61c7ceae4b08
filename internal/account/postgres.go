package account

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// columns maps record field names to users table columns.
var columns = map[string]string{
	FieldNama:              "nama",
	FieldPhone:             "phone",
	FieldPassword:          "password",
	FieldAvatar:            "avatar",
	FieldMembershipPoints:  "membership_points",
	FieldMembershipBalance: "membership_balance",
	FieldOrders:            "orders",
	FieldWishlist:          "wishlist",
	FieldPaymentMethods:    "payment_methods",
	FieldShippingAddresses: "shipping_addresses",
	FieldNotifications:     "notifications",
}

const selectUsers = `
	SELECT id::text, nama, phone, password, avatar, membership_points, membership_balance,
	       orders, wishlist, payment_methods, shipping_addresses, notifications
	FROM users
`

// PostgresStore is a Store over the local users table.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a PostgreSQL-backed account store.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) *PostgresStore {
	return &PostgresStore{
		pool:   pool,
		logger: logger.With().Str("repository", "account").Logger(),
	}
}

// Query returns users matching every equality in the filter.
func (s *PostgresStore) Query(ctx context.Context, filter Filter) ([]Record, error) {
	query := selectUsers
	args := make([]any, 0, len(filter))

	if len(filter) > 0 {
		conds := make([]string, len(filter))
		for i, c := range filter {
			col, ok := columns[c.Field]
			if !ok {
				return nil, fmt.Errorf("unknown field %q", c.Field)
			}
			args = append(args, c.Value)
			conds[i] = fmt.Sprintf("%s::text = $%d", col, len(args))
		}
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at"

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query users")
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return records, nil
}

// Create inserts a user and returns the stored record.
func (s *PostgresStore) Create(ctx context.Context, fields Fields) (Record, error) {
	cols, args, err := columnValues(fields)
	if err != nil {
		return Record{}, err
	}

	placeholders := make([]string, len(args))
	for i := range args {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
		INSERT INTO users (%s)
		VALUES (%s)
		RETURNING id::text, nama, phone, password, avatar, membership_points, membership_balance,
		          orders, wishlist, payment_methods, shipping_addresses, notifications
	`, strings.Join(cols, ", "), strings.Join(placeholders, ", "))

	r, err := scanRecord(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return Record{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Debug().Str("user_id", r.ID).Msg("user created")
	return r, nil
}

// Update applies a partial update to one user.
func (s *PostgresStore) Update(ctx context.Context, id string, fields Fields) error {
	if len(fields) == 0 {
		return nil
	}

	cols, args, err := columnValues(fields)
	if err != nil {
		return err
	}

	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", col, i+2)
	}

	query := fmt.Sprintf(`UPDATE users SET %s, updated_at = NOW() WHERE id::text = $1`, strings.Join(sets, ", "))

	tag, err := s.pool.Exec(ctx, query, append([]any{id}, args...)...)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return fmt.Errorf("failed to update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", id)
	}

	return nil
}

// columnValues orders the fields by column name so generated SQL is stable.
func columnValues(fields Fields) ([]string, []any, error) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if _, ok := columns[name]; !ok {
			return nil, nil, fmt.Errorf("unknown field %q", name)
		}
		names = append(names, name)
	}
	slices.Sort(names)

	cols := make([]string, len(names))
	args := make([]any, len(names))
	for i, name := range names {
		cols[i] = columns[name]
		args[i] = fields[name]
	}
	return cols, args, nil
}

func scanRecord(row pgx.Row) (Record, error) {
	var (
		id, nama, phone, password, avatar         string
		points, balance                           int64
		orders, wishlist, payments, addresses, nt string
	)

	err := row.Scan(&id, &nama, &phone, &password, &avatar, &points, &balance,
		&orders, &wishlist, &payments, &addresses, &nt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Record{}, fmt.Errorf("user not found: %w", err)
		}
		return Record{}, fmt.Errorf("failed to scan user: %w", err)
	}

	return Record{
		ID: id,
		Fields: Fields{
			FieldNama:              nama,
			FieldPhone:             phone,
			FieldPassword:          password,
			FieldAvatar:            avatar,
			FieldMembershipPoints:  points,
			FieldMembershipBalance: balance,
			FieldOrders:            orders,
			FieldWishlist:          wishlist,
			FieldPaymentMethods:    payments,
			FieldShippingAddresses: addresses,
			FieldNotifications:     nt,
		},
	}, nil
}
