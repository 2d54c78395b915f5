package staff

import (
	"context"
	"errors"
)

type ctxKey int

const staffCtxKey ctxKey = iota

var ErrNoStaffInContext = errors.New("staff: no staff id in context")

func NewContextWithStaff(baseCtx context.Context, staffID string) context.Context {
	return context.WithValue(baseCtx, staffCtxKey, staffID)
}

func FromContext(ctx context.Context) (string, error) {
	staffID, ok := ctx.Value(staffCtxKey).(string)
	if !ok || staffID == "" {
		return "", ErrNoStaffInContext
	}
	return staffID, nil
}
