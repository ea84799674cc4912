package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	secureItemsTable = "secure_items"

	columnItemKey   = "item_key"
	columnItemValue = "item_value"
	columnUpdatedAt = "updated_at"

	upsertSecureItemSuffix = "ON CONFLICT(" + columnItemKey + ") DO UPDATE SET " +
		columnItemValue + " = excluded." + columnItemValue + ", " +
		columnUpdatedAt + " = excluded." + columnUpdatedAt
)

// buildGetItemQuery renders SELECT item_value ... WHERE item_key = ?.
func buildGetItemQuery(key string) (string, []any, error) {
	return sq.Select(columnItemValue).
		From(secureItemsTable).
		Where(sq.Eq{columnItemKey: key}).
		PlaceholderFormat(sq.Question).
		ToSql()
}

// buildUpsertItemQuery renders an INSERT that overwrites an existing row with
// the same key.
func buildUpsertItemQuery(key, value string, now time.Time) (string, []any, error) {
	return sq.Insert(secureItemsTable).
		Columns(columnItemKey, columnItemValue, columnUpdatedAt).
		Values(key, value, now.UTC()).
		Suffix(upsertSecureItemSuffix).
		PlaceholderFormat(sq.Question).
		ToSql()
}

func buildDeleteItemQuery(key string) (string, []any, error) {
	return sq.Delete(secureItemsTable).
		Where(sq.Eq{columnItemKey: key}).
		PlaceholderFormat(sq.Question).
		ToSql()
}
