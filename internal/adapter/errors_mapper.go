// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-remote-service/models"
	"github.com/go-resty/resty/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mapGRPCError converts a gRPC status error into a sentinel of this package.
// The status message is kept in the wrapped error text.
func mapGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) {
		return ErrStreamClosed
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	msg := st.Message()

	switch st.Code() {
	case codes.OK:
		return nil
	case codes.NotFound:
		if strings.HasPrefix(msg, models.ErrUnknownInterface.Error()) {
			return fmt.Errorf("%w: %s", models.ErrUnknownInterface, msg)
		}
		return fmt.Errorf("%w: %s", ErrBindingNotFound, msg)
	case codes.Unavailable:
		if msg == ErrServiceNotCreated.Error() {
			return ErrServiceNotCreated
		}
		return fmt.Errorf("%w: %s", ErrServerUnavailable, msg)
	case codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrWrongInterface, msg)
	case codes.FailedPrecondition:
		return fmt.Errorf("%w: %s", ErrRegistryDisabled, msg)
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
	case codes.Canceled:
		return context.Canceled
	case codes.DeadlineExceeded:
		return context.DeadlineExceeded
	default:
		return fmt.Errorf("rpc %s: %s", st.Code(), msg)
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: http %d: %s", ErrServerUnavailable, resp.StatusCode(), body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
