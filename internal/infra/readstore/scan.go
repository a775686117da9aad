package readstore

import (
	"context"
	"strings"

	"pet-adoption/internal/infra"
	"pet-adoption/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jinzhu/copier"
)

// selectViews scans every row into R and copies matching fields into V.
func selectViews[R any, V any](ctx context.Context, dbtx db.DBTX, msg, sql string, args ...any) ([]*V, error) {
	rows, err := dbtx.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[R])
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}

	views := make([]*V, 0, len(records))
	for i := range records {
		view := new(V)
		if err := copier.Copy(view, &records[i]); err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		views = append(views, view)
	}
	return views, nil
}

// selectView is selectViews for exactly one row; no row is KindNotFound.
func selectView[R any, V any](ctx context.Context, dbtx db.DBTX, notFound, msg, sql string, args ...any) (*V, error) {
	views, err := selectViews[R, V](ctx, dbtx, msg, sql, args...)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, infra.NewRepoErr(infra.KindNotFound, notFound)
	}
	return views[0], nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
