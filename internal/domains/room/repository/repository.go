package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, room model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	InsertBulk(ctx context.Context, rooms []model.Room) error
}

type Image interface {
	Insert(ctx context.Context, image model.Image) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Image, error)
	ListByRoom(ctx context.Context, roomID string) ([]model.Image, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, room model.Room) error {
	err := r.Repository.Insert(ctx, room)
	if gRepo.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
		return model.ErrNameTaken
	}

	return err
}

func (r *repositoryImpl) Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error {
	err := r.Repository.Update(ctx, req, filter)
	if gRepo.IsPqError(err, constant.PqErrorCodeUniqueViolation) {
		return model.ErrNameTaken
	}

	return err
}

type imageRepositoryImpl struct {
	gRepo.Repository[model.Image]
	otel otel.Otel
}

func NewImage(db *postgres.Connection, otel otel.Otel) Image {
	return &imageRepositoryImpl{
		Repository: gRepo.NewRepository[model.Image](model.ImageEntityName, model.ImageTableName, model.FieldImageID, db, otel),
		otel:       otel,
	}
}

func (r *imageRepositoryImpl) ListByRoom(ctx context.Context, roomID string) ([]model.Image, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room_image.ListByRoom")
	defer scope.End()

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldImageRoomID, Value: roomID, Operator: gDto.FilterOperatorEq, Table: model.ImageTableName},
		},
	}
	params := gDto.QueryParams{SortBy: model.ImageTableName + "." + model.FieldImagePosition, SortDir: gDto.SortDirAsc}

	return r.GetAll(ctx, params, filter)
}
