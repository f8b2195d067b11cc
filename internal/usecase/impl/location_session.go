package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"spotshare/config"
	deliverycontext "spotshare/internal/delivery/context"
	"spotshare/internal/domain/entity"
	domainerrors "spotshare/internal/domain/errors"
	"spotshare/internal/domain/geo"
	"spotshare/internal/domain/service"
	"spotshare/internal/errors"
	"spotshare/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

// User-facing location messages.
const (
	msgPermissionPermanentlyDenied = "Location permission was permanently denied. Enable it in Settings."
	msgPermissionDenied            = "Location permission is needed to show parking spots near you."
	msgServicesDisabled            = "Location services are turned off. Turn them on to find spots near you."
	msgLocationUnavailable         = "We couldn't get your location. Please try again."
)

const resolveKey = "current"

// locationSession implements the LocationUsecase interface.
type locationSession struct {
	device   service.DeviceLocationProvider
	timeout  time.Duration
	accuracy entity.Accuracy
	logger   *slog.Logger

	group singleflight.Group

	mu    sync.RWMutex
	state entity.LocationState
}

// LocationSessionParams holds dependencies for LocationSession, injected by Fx.
type LocationSessionParams struct {
	fx.In

	Device service.DeviceLocationProvider
	Config *config.Config
	Logger *slog.Logger
}

// NewLocationSession is the constructor for locationSession.
func NewLocationSession(params LocationSessionParams) usecase.LocationUsecase {
	timeout := config.DefaultLocationTimeout
	accuracy := entity.AccuracyBalanced
	if params.Config != nil && params.Config.Location != nil {
		if params.Config.Location.Timeout > 0 {
			timeout = params.Config.Location.Timeout
		}
		accuracy = entity.ParseAccuracy(params.Config.Location.Accuracy)
	}

	return &locationSession{
		device:   params.Device,
		timeout:  timeout,
		accuracy: accuracy,
		logger:   params.Logger,
		state:    entity.LocationState{Status: entity.LocationUnknown},
	}
}

func (s *locationSession) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// RequestCurrentLocation resolves the device position. Concurrent callers
// share one resolution; a caller whose ctx ends gets the state at that moment
// while the shared resolution keeps running for the others.
func (s *locationSession) RequestCurrentLocation(ctx context.Context) entity.LocationState {
	resolveCtx := context.WithoutCancel(ctx)
	ch := s.group.DoChan(resolveKey, func() (any, error) {
		return s.resolve(resolveCtx), nil
	})

	select {
	case res := <-ch:
		state, _ := res.Val.(entity.LocationState)

		return state
	case <-ctx.Done():
		return s.State()
	}
}

func (s *locationSession) resolve(ctx context.Context) entity.LocationState {
	s.setState(entity.LocationState{Status: entity.LocationResolving})

	perm, err := s.device.PermissionStatus(ctx)
	if err != nil {
		s.log(ctx).Warn("Failed to read location permission", slog.Any("error", err))

		return s.setState(failedState(msgLocationUnavailable))
	}

	if !perm.Granted && perm.CanAskAgain {
		perm, err = s.device.RequestPermission(ctx)
		if err != nil {
			s.log(ctx).Warn("Failed to request location permission", slog.Any("error", err))

			return s.setState(failedState(msgLocationUnavailable))
		}
	}

	if !perm.Granted {
		msg := msgPermissionDenied
		if !perm.CanAskAgain {
			msg = msgPermissionPermanentlyDenied
		}

		return s.setState(entity.LocationState{
			Status:      entity.LocationDenied,
			Message:     msg,
			CanAskAgain: perm.CanAskAgain,
		})
	}

	point, readErr := s.readPosition(ctx)
	if readErr != nil {
		s.log(ctx).Warn("Live position read failed, trying last known position", slog.Any("error", readErr))

		cached, err := s.device.LastKnownPosition(ctx)
		if err != nil {
			s.log(ctx).Warn("Failed to read last known position", slog.Any("error", err))
		}
		if cached == nil {
			if errors.Is(readErr, service.ErrLocationServicesDisabled) {
				return s.setState(failedState(msgServicesDisabled))
			}

			return s.setState(failedState(msgLocationUnavailable))
		}
		point = cached
	}

	resolved := *point
	placemark, err := s.device.ReverseGeocode(ctx, resolved)
	if err != nil {
		s.log(ctx).Warn("Reverse geocoding failed", slog.Any("error", err))
	} else {
		resolved = resolved.WithPlacemark(placemark)
	}

	return s.setState(entity.LocationState{Status: entity.LocationKnown, Point: &resolved})
}

func (s *locationSession) readPosition(ctx context.Context) (*entity.GeoPoint, error) {
	readCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	point, err := s.device.CurrentPosition(readCtx, s.accuracy)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, errors.New("device returned no position")
	}

	return point, nil
}

// State returns the latest location state.
func (s *locationSession) State() entity.LocationState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyLocationState(s.state)
}

// DistanceTo returns the distance from the known location.
func (s *locationSession) DistanceTo(point entity.GeoPoint) (float64, bool) {
	state := s.State()
	if !state.IsKnown() {
		return 0, false
	}

	return geo.DistanceKm(*state.Point, point), true
}

// Geocode resolves a free-text address.
func (s *locationSession) Geocode(ctx context.Context, address string) (*entity.GeoPoint, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address is required")
	}

	point, err := s.device.Geocode(ctx, address)
	if err != nil {
		s.log(ctx).Warn("Geocoding failed", slog.String("address", address), slog.Any("error", err))

		return nil, domainerrors.ErrGeocodingFailed.WithDetails(err.Error())
	}
	if point == nil {
		return nil, domainerrors.ErrGeocodingFailed
	}

	return point, nil
}

func (s *locationSession) setState(state entity.LocationState) entity.LocationState {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	return copyLocationState(state)
}

func failedState(msg string) entity.LocationState {
	return entity.LocationState{Status: entity.LocationFailed, Message: msg}
}

func copyLocationState(state entity.LocationState) entity.LocationState {
	if state.Point != nil {
		p := *state.Point
		state.Point = &p
	}

	return state
}
