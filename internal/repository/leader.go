package repository

import (
	"context"
	"fmt"

	"github.com/gosnews/gosnews/internal/model"
	"github.com/gosnews/gosnews/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const leaderColumns = `id, created_at, leader_name, leader_position, leader_image, leader_mail,
	leader_phone, region, region_link, region_embed`

type LeaderRepository struct {
	db *pgxpool.Pool
}

func NewLeaderRepository(db *pgxpool.Pool) *LeaderRepository {
	return &LeaderRepository{db: db}
}

// List returns leaders ordered by region, optionally restricted to one
// region (case-insensitive).
func (r *LeaderRepository) List(ctx context.Context, region string) ([]model.Leader, error) {
	c := newConditions()
	if region != "" {
		c.add("LOWER(region) = LOWER(@region)", pgx.NamedArgs{"region": region})
	}

	rows, err := r.db.Query(ctx, `SELECT `+leaderColumns+` FROM leaders`+c.where()+` ORDER BY region, id`, c.args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list leaders query: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Leader])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:leaders: %w", err)
	}
	return items, nil
}

func (r *LeaderRepository) Get(ctx context.Context, id int64) (*model.Leader, error) {
	rows, err := r.db.Query(ctx, `SELECT `+leaderColumns+` FROM leaders WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get leader query for id=%d: %w", id, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Leader])
	if err != nil {
		return nil, sqlerr.InTable("leaders", fmt.Errorf("failed to collect row from table:leaders for id=%d: %w", id, err))
	}
	return &item, nil
}

// Regions lists the distinct non-empty regions.
func (r *LeaderRepository) Regions(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT region FROM leaders WHERE region <> '' ORDER BY region`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute leader regions query: %w", err)
	}

	regions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:leaders: %w", err)
	}
	return regions, nil
}

// Create inserts a leader. regionEmbed is derived by the caller.
func (r *LeaderRepository) Create(ctx context.Context, payload *model.SaveLeaderRequest, regionEmbed string) (*model.Leader, error) {
	stmt := `INSERT INTO leaders (leader_name, leader_position, leader_image, leader_mail, leader_phone, region, region_link, region_embed)
		VALUES (@leader_name, @leader_position, @leader_image, @leader_mail, @leader_phone, @region, @region_link, @region_embed)
		RETURNING ` + leaderColumns

	rows, err := r.db.Query(ctx, stmt, leaderArgs(payload, regionEmbed))
	if err != nil {
		return nil, fmt.Errorf("failed to execute create leader query for name=%s: %w", payload.LeaderName, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Leader])
	if err != nil {
		return nil, sqlerr.InTable("leaders", fmt.Errorf("failed to collect row from table:leaders: %w", err))
	}
	return &item, nil
}

func (r *LeaderRepository) Update(ctx context.Context, payload *model.SaveLeaderRequest, regionEmbed string) (*model.Leader, error) {
	args := leaderArgs(payload, regionEmbed)
	args["id"] = payload.ID

	stmt := `UPDATE leaders SET
			leader_name = @leader_name,
			leader_position = @leader_position,
			leader_image = @leader_image,
			leader_mail = @leader_mail,
			leader_phone = @leader_phone,
			region = @region,
			region_link = @region_link,
			region_embed = @region_embed
		WHERE id = @id
		RETURNING ` + leaderColumns

	rows, err := r.db.Query(ctx, stmt, args)
	if err != nil {
		return nil, fmt.Errorf("failed to execute update leader query for id=%d: %w", payload.ID, err)
	}

	item, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Leader])
	if err != nil {
		return nil, sqlerr.InTable("leaders", fmt.Errorf("failed to collect row from table:leaders for id=%d: %w", payload.ID, err))
	}
	return &item, nil
}

func (r *LeaderRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "leaders", id)
}

func leaderArgs(payload *model.SaveLeaderRequest, regionEmbed string) pgx.NamedArgs {
	return pgx.NamedArgs{
		"leader_name":     payload.LeaderName,
		"leader_position": payload.LeaderPosition,
		"leader_image":    payload.LeaderImage,
		"leader_mail":     payload.LeaderMail,
		"leader_phone":    payload.LeaderPhone,
		"region":          payload.Region,
		"region_link":     payload.RegionLink,
		"region_embed":    regionEmbed,
	}
}
