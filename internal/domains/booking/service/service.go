package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/availability"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	notificationModel "hotel/internal/domains/notification/model"
	notification "hotel/internal/domains/notification/service"
	otpModel "hotel/internal/domains/otp/model"
	otp "hotel/internal/domains/otp/service"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/clock"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:token"
	cacheGetAllBooking = "booking:gets"
)

// errUnchanged ends a transition successfully without saving the booking.
var errUnchanged = errors.New("booking unchanged")

// Booking runs the reservation use cases. Every write happens inside one unit of work and
// notifications go out only after it commits.
type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.CreateBookingResponse, error)
	Confirm(ctx context.Context, token string, req dto.ConfirmBookingRequest) (dto.BookingResponse, error)
	ResendOtp(ctx context.Context, token string, req dto.GuestRequest) error
	UpdateDates(ctx context.Context, ref Reference, actor Actor, checkIn, checkOut time.Time) (dto.BookingResponse, error)
	Cancel(ctx context.Context, ref Reference, actor Actor) (dto.BookingResponse, error)
	CheckIn(ctx context.Context, ref Reference, actor Actor) (dto.BookingResponse, error)
	CheckOut(ctx context.Context, ref Reference, actor Actor) (dto.BookingResponse, error)
	Complete(ctx context.Context, ref Reference, actor Actor) (dto.BookingResponse, error)
	GetByToken(ctx context.Context, token string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	otp      otp.Otp
	notifier notification.Notifier
	tx       postgres.Transactor
	cfg      *config.Config
	cache    cache.RedisCache
	clock    clock.Clock
	otel     otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	otp otp.Otp,
	notifier notification.Notifier,
	tx postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	clk clock.Clock,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		otp:      otp,
		notifier: notifier,
		tx:       tx,
		cfg:      cfg,
		cache:    cache,
		clock:    clk,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.CreateBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		return res, failure.BadRequest(err)
	}

	contact, err := model.NewContactInfo(req.Phone, req.Address)
	if err != nil {
		return res, err
	}

	var (
		booking *model.Booking
		code    string
	)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.repo.LockRoom(ctx, req.RoomID); err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		room, err := s.reservableRoom(ctx, req.RoomID)
		if err != nil {
			return err
		}

		if !room.Fits(req.Guests) {
			return model.ErrCapacityExceeded
		}

		booking, err = model.NewBooking(s.clock, model.Draft{
			RoomID:          room.ID,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Guests:          req.Guests,
			GuestName:       req.GuestName,
			Email:           req.Email,
			Contact:         contact,
			NightlyPrice:    room.NightlyPrice,
			SpecialRequests: req.SpecialRequests,
			CreatedBy:       req.Email,
		})
		if err != nil {
			return err
		}

		if err := s.ensureAvailable(ctx, booking); err != nil {
			return err
		}

		if err := s.repo.Insert(ctx, booking.ToRow()); err != nil {
			return fmt.Errorf("failed to store booking: %w", err)
		}

		code, err = s.otp.Generate(ctx, booking.ID(), booking.Email())
		if err != nil {
			return fmt.Errorf("failed to issue verification code: %w", err)
		}

		return nil
	})
	if err != nil {
		logIfInternal(err, "failed to create booking")

		return res, err
	}

	s.invalidate(ctx, booking)

	message := messageFor(booking)
	message.Code = code

	res.BookingResponse.FromModel(booking)
	res.VerificationSent = s.notifier.SendVerificationCode(ctx, message)

	return res, nil
}

// Confirm redeems the verification code and confirms the booking in one unit of work. A rejected
// code still commits, so the attempt counter survives the failure.
func (s *serviceImpl) Confirm(ctx context.Context, token string, req dto.ConfirmBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		booking *model.Booking
		result  otpModel.Result
	)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		booking, err = s.load(ctx, ByToken(token))
		if err != nil {
			return err
		}

		if err := authorize(Guest(req.Email), booking); err != nil {
			return err
		}

		if booking.Status() != model.StatusPending {
			return model.ErrConfirmNotPending
		}

		result, err = s.otp.Validate(ctx, booking.ID(), req.Code, req.Email)
		if err != nil {
			return fmt.Errorf("failed to validate verification code: %w", err)
		}

		if result != otpModel.ResultValid {
			return nil
		}

		if err := booking.Confirm(); err != nil {
			return err
		}

		booking.Touch(s.clock, req.Email)

		if err := s.repo.Save(ctx, booking.ToRow()); err != nil {
			return fmt.Errorf("failed to save booking: %w", err)
		}

		if err := s.otp.Invalidate(ctx, booking.ID(), constant.Empty); err != nil {
			return fmt.Errorf("failed to retire verification codes: %w", err)
		}

		return nil
	})
	if err != nil {
		logIfInternal(err, "failed to confirm booking")

		return res, err
	}

	if err = result.Err(); err != nil {
		log.Info().Str("booking_token", token).Str("reason", string(result)).Msg("verification code rejected")

		return res, err
	}

	s.invalidate(ctx, booking)
	s.notifier.SendConfirmation(ctx, messageFor(booking))

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) ResendOtp(ctx context.Context, token string, req dto.GuestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ResendOtp")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		booking *model.Booking
		code    string
	)

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		booking, err = s.load(ctx, ByToken(token))
		if err != nil {
			return err
		}

		if err := authorize(Guest(req.Email), booking); err != nil {
			return err
		}

		if booking.Status() != model.StatusPending {
			return model.ErrOtpRequiresPending
		}

		code, err = s.otp.Generate(ctx, booking.ID(), booking.Email())
		if err != nil {
			return fmt.Errorf("failed to issue verification code: %w", err)
		}

		return nil
	})
	if err != nil {
		logIfInternal(err, "failed to resend verification code")

		return err
	}

	message := messageFor(booking)
	message.Code = code

	if !s.notifier.SendVerificationCode(ctx, message) {
		log.Warn().Str("booking_token", token).Msg("verification code issued but not handed to delivery")
	}

	return nil
}

func (s *serviceImpl) UpdateDates(ctx context.Context, ref Reference, actor Actor, checkIn, checkOut time.Time) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateDates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, ref, actor, func(ctx context.Context, booking *model.Booking) error {
		if booking.Status() != model.StatusPending {
			return model.ErrUpdateNotPending
		}

		if err := s.repo.LockRoom(ctx, booking.RoomID()); err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		room, err := s.room(ctx, booking.RoomID())
		if err != nil {
			return err
		}

		if err := booking.UpdateDates(s.clock, checkIn, checkOut, room.NightlyPrice); err != nil {
			return err
		}

		return s.ensureAvailable(ctx, booking)
	})
	if err != nil {
		return res, err
	}

	s.notifier.SendUpdate(ctx, messageFor(booking))

	res.FromModel(booking)

	return res, nil
}

// Cancel is idempotent. Repeating it on a cancelled booking returns the booking as stored and
// sends no second cancellation message.
func (s *serviceImpl) Cancel(ctx context.Context, ref Reference, actor Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	alreadyCancelled := false

	booking, err := s.transition(ctx, ref, actor, func(ctx context.Context, booking *model.Booking) error {
		if booking.Status() == model.StatusCancelled {
			alreadyCancelled = true

			return errUnchanged
		}

		if err := booking.Cancel(); err != nil {
			return err
		}

		if err := s.otp.Invalidate(ctx, booking.ID(), constant.Empty); err != nil {
			return fmt.Errorf("failed to retire verification codes: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	if !alreadyCancelled {
		s.notifier.SendCancellation(ctx, messageFor(booking))
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, ref Reference, actor Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, ref, actor, func(_ context.Context, booking *model.Booking) error {
		return booking.CheckInGuest()
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, ref Reference, actor Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, ref, actor, func(_ context.Context, booking *model.Booking) error {
		return booking.CheckOutGuest()
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) Complete(ctx context.Context, ref Reference, actor Actor) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, ref, actor, func(_ context.Context, booking *model.Booking) error {
		return booking.Complete(s.clock)
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// transition loads and locks the booking, authorizes the actor, applies change and persists
// the result, all in one unit of work.
func (s *serviceImpl) transition(ctx context.Context, ref Reference, actor Actor, change func(ctx context.Context, booking *model.Booking) error) (*model.Booking, error) {
	var (
		booking   *model.Booking
		unchanged bool
	)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		booking, err = s.load(ctx, ref)
		if err != nil {
			return err
		}

		if err := authorize(actor, booking); err != nil {
			return err
		}

		if err := change(ctx, booking); err != nil {
			if errors.Is(err, errUnchanged) {
				unchanged = true

				return nil
			}

			return err
		}

		booking.Touch(s.clock, actor.Name())

		if err := s.repo.Save(ctx, booking.ToRow()); err != nil {
			return fmt.Errorf("failed to save booking: %w", err)
		}

		return nil
	})
	if err != nil {
		logIfInternal(err, "failed to change booking")

		return nil, err
	}

	if !unchanged {
		s.invalidate(ctx, booking)
	}

	return booking, nil
}

func (s *serviceImpl) GetByToken(ctx context.Context, token string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetByToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, token)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.load(ctx, ByToken(token))
	if err != nil {
		logIfInternal(err, "failed to get booking")

		return res, err
	}

	res.FromModel(booking)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save booking to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if err := s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	rows, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(model.FromRows(rows), total, req.Limit)

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save bookings to cache")
	}

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, ref Reference) (*model.Booking, error) {
	var (
		row model.BookingRow
		err error
	)

	if ref.id != constant.Empty {
		row, err = s.repo.GetByID(ctx, ref.id)
	} else {
		row, err = s.repo.GetByToken(ctx, ref.token)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	if row.ID == constant.Empty {
		return nil, model.ErrBookingNotFound
	}

	return model.FromRow(row), nil
}

func (s *serviceImpl) room(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, roomModel.ErrRoomNotFound
	}

	return room, nil
}

func (s *serviceImpl) reservableRoom(ctx context.Context, roomID string) (roomModel.Room, error) {
	room, err := s.room(ctx, roomID)
	if err != nil {
		return room, err
	}

	if !room.AcceptsReservations() {
		return room, model.ErrRoomNotBookable
	}

	return room, nil
}

// ensureAvailable checks the booking's stay against the room's other live bookings.
// Callers hold the room lock.
func (s *serviceImpl) ensureAvailable(ctx context.Context, booking *model.Booking) error {
	stay := booking.Stay()

	rows, err := s.repo.ListBlocking(ctx, booking.RoomID(), &stay.Start, &stay.End)
	if err != nil {
		return fmt.Errorf("failed to load room bookings: %w", err)
	}

	if !availability.IsAvailable(model.FromRows(rows), stay, booking.ID()) {
		return model.ErrRoomUnavailable
	}

	return nil
}

// invalidate drops cached views of the booking and the reports of its room after a commit.
func (s *serviceImpl) invalidate(ctx context.Context, booking *model.Booking) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, booking.Token())); err != nil {
		log.Error().Err(err).Msg("failed to delete booking cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBooking)
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(constant.CachePrefixReport, booking.RoomID()))
}

func messageFor(booking *model.Booking) notificationModel.Message {
	return notificationModel.Message{
		BookingToken: booking.Token(),
		Email:        booking.Email(),
		GuestName:    booking.GuestName(),
		RoomID:       booking.RoomID(),
		CheckIn:      timezone.FormatDate(booking.CheckIn()),
		CheckOut:     timezone.FormatDate(booking.CheckOut()),
		TotalAmount:  booking.TotalAmount(),
		Status:       string(booking.Status()),
	}
}

// logIfInternal keeps rejected requests out of the error log.
func logIfInternal(err error, msg string) {
	if failure.GetCode(err) == http.StatusInternalServerError {
		log.Error().Err(err).Msg(msg)
	}
}
