package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"
	"time"
)

const lockRoomQuery = "SELECT pg_advisory_xact_lock(hashtext($1))"

type Booking interface {
	Insert(ctx context.Context, row model.BookingRow) error
	// Save writes back the columns a transition can change.
	Save(ctx context.Context, row model.BookingRow) error
	// GetByToken and GetByID lock the row when ctx carries a transaction.
	GetByToken(ctx context.Context, token string) (model.BookingRow, error)
	GetByID(ctx context.Context, id string) (model.BookingRow, error)
	// ListBlocking returns the room's non-cancelled bookings meeting [start, end). Nil bounds are open.
	ListBlocking(ctx context.Context, roomID string, start, end *time.Time) ([]model.BookingRow, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingRow, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	// LockRoom serializes reservation writes for a room until the transaction ends.
	LockRoom(ctx context.Context, roomID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BookingRow]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BookingRow](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func filterBy(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

// translate maps constraint violations to the failures the service-level checks raise.
func translate(err error) error {
	if gRepo.IsPqError(err, constant.PqErrorCodeExclusionViolation) {
		return model.ErrRoomUnavailable
	}

	if gRepo.IsPqError(err, constant.PqErrorCodeFkViolation) {
		return roomModel.ErrRoomNotFound
	}

	return err
}

func (r *repositoryImpl) Insert(ctx context.Context, row model.BookingRow) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Insert")
	defer scope.End()

	return translate(r.Repository.Insert(ctx, row))
}

func (r *repositoryImpl) Save(ctx context.Context, row model.BookingRow) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Save")
	defer scope.End()

	err := r.Update(ctx, map[string]any{
		model.FieldCheckIn:       timezone.FormatDate(row.CheckIn),
		model.FieldCheckOut:      timezone.FormatDate(row.CheckOut),
		model.FieldTotalAmount:   row.TotalAmount,
		model.FieldStatus:        row.Status,
		constant.FieldModifiedAt: row.ModifiedAt,
		constant.FieldModifiedBy: row.ModifiedBy,
	}, filterBy(model.FieldID, row.ID))

	return translate(err)
}

func (r *repositoryImpl) GetByToken(ctx context.Context, token string) (model.BookingRow, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByToken")
	defer scope.End()

	return r.getOne(ctx, filterBy(model.FieldToken, token))
}

func (r *repositoryImpl) GetByID(ctx context.Context, id string) (model.BookingRow, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetByID")
	defer scope.End()

	return r.getOne(ctx, filterBy(model.FieldID, id))
}

func (r *repositoryImpl) getOne(ctx context.Context, filter gDto.FilterGroup) (model.BookingRow, error) {
	if _, ok := postgres.TxFromContext(ctx); ok {
		return r.GetForUpdate(ctx, filter)
	}

	return r.Get(ctx, filter)
}

func (r *repositoryImpl) ListBlocking(ctx context.Context, roomID string, start, end *time.Time) ([]model.BookingRow, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ListBlocking")
	defer scope.End()

	filters := []any{
		gDto.Filter{Field: model.FieldRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{Field: model.FieldStatus, Value: string(model.StatusCancelled), Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
	}

	if start != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "window_start",
			Field:    model.FieldCheckOut,
			Value:    timezone.FormatDate(*start),
			Operator: gDto.FilterOperatorGreater,
			Table:    model.TableName,
		})
	}

	if end != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "window_end",
			Field:    model.FieldCheckIn,
			Value:    timezone.FormatDate(*end),
			Operator: gDto.FilterOperatorLess,
			Table:    model.TableName,
		})
	}

	params := gDto.QueryParams{SortBy: model.TableName + "." + model.FieldCheckIn, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, gDto.FilterGroup{Filters: filters})
}

func (r *repositoryImpl) LockRoom(ctx context.Context, roomID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.LockRoom")
	defer scope.End()

	_, err := r.Exec(ctx, lockRoomQuery, roomID)

	return err
}
