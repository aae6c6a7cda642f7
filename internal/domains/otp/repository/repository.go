package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/otp/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
	"time"
)

type Verification interface {
	Insert(ctx context.Context, model model.Verification) error
	// GetActive locks the newest record that is neither used nor invalidated.
	// Expiry is left to the caller so an expired code reports as expired.
	GetActive(ctx context.Context, bookingID, email string) (model.Verification, error)
	RecordAttempt(ctx context.Context, id string, attempts int, actor string, at time.Time) error
	MarkUsed(ctx context.Context, id string, actor string, at time.Time) error
	// InvalidateActive retires every live record of the booking. An empty email matches any address.
	InvalidateActive(ctx context.Context, bookingID, email, actor string, at time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Verification]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Verification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Verification](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// activeFilter names its flag arguments apart from the columns so an update of those flags
// does not overwrite the filter values.
func activeFilter(bookingID, email string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldBookingID, Value: bookingID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{ArgName: "active_used", Field: model.FieldUsed, Value: false, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{ArgName: "active_invalidated", Field: model.FieldInvalidated, Value: false, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	if email != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldEmail, Value: email, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Filters: filters}
}

func byID(id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func (r *repositoryImpl) GetActive(ctx context.Context, bookingID, email string) (model.Verification, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".otp.GetActive")
	defer scope.End()

	return r.GetLatest(ctx, activeFilter(bookingID, email), model.FieldCreatedAt, true)
}

func (r *repositoryImpl) RecordAttempt(ctx context.Context, id string, attempts int, actor string, at time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".otp.RecordAttempt")
	defer scope.End()

	return r.Update(ctx, map[string]any{
		model.FieldAttempts:      attempts,
		constant.FieldModifiedAt: at,
		constant.FieldModifiedBy: actor,
	}, byID(id))
}

func (r *repositoryImpl) MarkUsed(ctx context.Context, id string, actor string, at time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".otp.MarkUsed")
	defer scope.End()

	return r.Update(ctx, map[string]any{
		model.FieldUsed:          true,
		constant.FieldModifiedAt: at,
		constant.FieldModifiedBy: actor,
	}, byID(id))
}

func (r *repositoryImpl) InvalidateActive(ctx context.Context, bookingID, email, actor string, at time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".otp.InvalidateActive")
	defer scope.End()

	return r.Update(ctx, map[string]any{
		model.FieldInvalidated:   true,
		constant.FieldModifiedAt: at,
		constant.FieldModifiedBy: actor,
	}, activeFilter(bookingID, email))
}

func (r *repositoryImpl) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".otp.DeleteExpired")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s < $1", r.Table(), model.FieldExpiresAt)

	return r.Exec(ctx, query, before)
}
