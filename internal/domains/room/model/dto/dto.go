package dto

import (
	"mime/multipart"
	"strings"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name         string `json:"name"          validate:"required,max=100"`
	Description  string `json:"description"   validate:"omitempty,max=2000"`
	NightlyPrice int64  `json:"nightly_price" validate:"required,gt=0"`
	Capacity     int    `json:"capacity"      validate:"required,min=1,max=20"`
	Status       string `json:"status"        validate:"omitempty,oneof=available booked occupied maintenance inactive"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusAvailable
	if c.Status != constant.Empty {
		status = model.Status(c.Status)
	}

	now := timezone.Now()

	return model.Room{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(c.Name),
		Description:  strings.TrimSpace(c.Description),
		NightlyPrice: c.NightlyPrice,
		Capacity:     c.Capacity,
		Status:       string(status),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

// UpdateRoomRequest changes only the fields that are set.
type UpdateRoomRequest struct {
	Name         string  `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Description  *string `db:"description"   json:"description"   validate:"omitempty,max=2000"`
	NightlyPrice *int64  `db:"nightly_price" json:"nightly_price" validate:"omitempty,gt=0"`
	Capacity     *int    `db:"capacity"      json:"capacity"      validate:"omitempty,min=1,max=20"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available booked occupied maintenance inactive"`
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile multipart.File        `json:"-"`
}

// Extension returns the original file extension including the dot, or "" when there is none.
func (u *UploadImageRequest) Extension() string {
	if u.Image == nil {
		return constant.Empty
	}

	idx := strings.LastIndex(u.Image.Filename, ".")
	if idx < 0 || idx == len(u.Image.Filename)-1 {
		return constant.Empty
	}

	return strings.ToLower(u.Image.Filename[idx:])
}

func (u *UploadImageRequest) ContentType() string {
	if u.Image == nil {
		return constant.Empty
	}

	return u.Image.Header.Get(constant.RequestHeaderContentType)
}

type ImageResponse struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

func (r *ImageResponse) FromModel(image model.Image) {
	r.ID = image.ID
	r.URL = image.URL
	r.Position = image.Position
}

type RoomResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	NightlyPrice int64           `json:"nightly_price"`
	Capacity     int             `json:"capacity"`
	Status       string          `json:"status"`
	Images       []ImageResponse `json:"images"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(room model.Room, images []model.Image) {
	r.ID = room.ID
	r.Name = room.Name
	r.Description = room.Description
	r.NightlyPrice = room.NightlyPrice
	r.Capacity = room.Capacity
	r.Status = room.Status
	r.Metadata.FromModel(room.Metadata)

	r.Images = make([]ImageResponse, len(images))
	for i, image := range images {
		r.Images[i].FromModel(image)
	}
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod, nil)
	}
}

// RoomFilter holds the listing query string filters.
type RoomFilter struct {
	Name        string `json:"name"         validate:"omitempty,max=100"`
	Status      string `json:"status"       validate:"omitempty,oneof=available booked occupied maintenance inactive"`
	MinCapacity int    `json:"min_capacity" validate:"omitempty,min=1"`
}

func (f *RoomFilter) ToFilterGroup() gDto.FilterGroup {
	filters := []any{}

	if f.Name != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldName, Value: f.Name, Operator: gDto.FilterOperatorLike, Table: model.TableName})
	}

	if f.Status != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: f.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if f.MinCapacity > 0 {
		filters = append(filters, gDto.Filter{Field: model.FieldCapacity, Value: f.MinCapacity, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Filters: filters}
}
