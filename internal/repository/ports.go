package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	SaveToTable(ctx context.Context, records any) error
	GetAll(ctx context.Context, order string, entity any) error
	GetAllBy(ctx context.Context, column string, value any, entity any) error
	DeleteBy(ctx context.Context, column string, value any, model any) error
	DeleteAll(ctx context.Context, model any) error
}
