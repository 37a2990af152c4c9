package handler

import (
	"errors"

	"github.com/ogurasousui/kintai-points/internal/core/roster"
	"github.com/ogurasousui/kintai-points/internal/core/settings"
	"github.com/ogurasousui/kintai-points/internal/core/storetag"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, roster.ErrInvalidName),
		errors.Is(err, roster.ErrInvalidNumber),
		errors.Is(err, roster.ErrInvalidCategory),
		errors.Is(err, roster.ErrInvalidID),
		errors.Is(err, storetag.ErrInvalidName),
		errors.Is(err, settings.ErrInvalidTheme):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, roster.ErrNumberAlreadyExists), errors.Is(err, storetag.ErrStoreAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, roster.ErrEmployeeNotFound),
		errors.Is(err, roster.ErrInfractionNotFound),
		errors.Is(err, storetag.ErrStoreNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
