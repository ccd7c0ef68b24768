package http

import (
	"context"
	"errors"
	"fmt"
	stdhttp "net/http"
	"testing"

	"multisuministros-codes/internal/domain/coderequest"
	"multisuministros-codes/internal/domain/errs"
	"multisuministros-codes/internal/domain/product"
	"multisuministros-codes/internal/domain/user"
)

func TestStatusFor(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{errs.Validation("x"), stdhttp.StatusUnprocessableEntity},
		{coderequest.ErrNotFound, stdhttp.StatusNotFound},
		{product.ErrDuplicateCode, stdhttp.StatusConflict},
		{coderequest.ErrInvalidTransition, stdhttp.StatusConflict},
		{user.ErrVendorLimit, stdhttp.StatusConflict},
		{user.ErrInvalidCredentials, stdhttp.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", errs.ErrForbidden), stdhttp.StatusForbidden},
		{context.Canceled, stdhttp.StatusInternalServerError},
		{errors.New("db down"), stdhttp.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := statusFor(tc.err); got != tc.want {
			t.Fatalf("%v: want %d, got %d", tc.err, tc.want, got)
		}
	}
}
