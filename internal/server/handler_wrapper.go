// Provides middleware for standardizing HTTP handlers.

package server

import (
	"bytes"
	"context"
	"encoding"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"

	"github.com/maruel/cltog/internal/server/dto"
	"github.com/maruel/cltog/internal/server/handlers"
	"github.com/maruel/cltog/internal/server/ratelimit"
	"github.com/maruel/cltog/internal/server/reqctx"
)

// readAndDecodeBody reads the request body with size limit and decodes JSON into input.
// Returns false if an error occurred and was written to the response.
func readAndDecodeBody[In any](ctx context.Context, w http.ResponseWriter, r *http.Request, input *In, cfg *handlers.Config) bool {
	if r.Body == nil {
		return true
	}
	if cfg != nil && cfg.Quotas.MaxRequestBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, cfg.Quotas.MaxRequestBodyBytes)
	}

	body, err := io.ReadAll(r.Body)
	if err2 := r.Body.Close(); err == nil {
		err = err2
	}
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeAPIError(w, dto.PayloadTooLarge(maxBytesErr.Limit))
			return false
		}
		slog.ErrorContext(ctx, "Failed to read request body", "err", err)
		writeAPIError(w, dto.BadRequest("Failed to read request body"))
		return false
	}

	if len(bytes.TrimSpace(body)) > 0 {
		d := json.NewDecoder(bytes.NewReader(body))
		d.DisallowUnknownFields()
		if err := d.Decode(input); err != nil {
			slog.WarnContext(ctx, "Failed to decode request body", "err", err)
			writeAPIError(w, dto.BadRequest("Invalid request body"))
			return false
		}
	}
	return true
}

// writeJSONResponse writes a JSON response or error response.
func writeJSONResponse[Out any](ctx context.Context, w http.ResponseWriter, output *Out, err error) {
	if err != nil {
		apiErr := asAPIError(err)
		// Client mistakes are expected traffic.
		if apiErr.StatusCode() >= http.StatusInternalServerError {
			slog.ErrorContext(ctx, "Handler error", "err", err, "statusCode", apiErr.StatusCode(), "code", apiErr.Code())
		} else {
			slog.DebugContext(ctx, "Handler error", "err", err, "statusCode", apiErr.StatusCode(), "code", apiErr.Code())
		}
		writeAPIError(w, apiErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(output); err != nil {
		slog.ErrorContext(ctx, "Failed to encode response", "err", err)
	}
}

// Wrap wraps a handler function to work as an http.Handler.
// The function must have signature: func(context.Context, *In) (*Out, error)
// where In can be unmarshalled from JSON and Out is a struct.
// Query parameters are extracted by tagging struct fields with `query:"name"`
// and path parameters with `path:"name"`; they override body fields.
// *In must implement dto.Validatable.
//
// Example:
//
//	type ListSubstancesRequest struct {
//	    Lang string `query:"lang"`
//	}
//
//	func (h *Handler) List(ctx context.Context, req *ListSubstancesRequest) (*Response, error)
func Wrap[In any, PtrIn interface {
	*In
	dto.Validatable
}, Out any](fn func(context.Context, PtrIn) (*Out, error), cfg *handlers.Config, limiters *ratelimit.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var ok bool
		if w, ok = ratelimit.Check(w, limiters.Match(r.Method, r.URL.Path), reqctx.ClientIP(ctx), writeRateLimitError); !ok {
			return
		}

		input := new(In)
		if !readAndDecodeBody(ctx, w, r, input, cfg) {
			return
		}

		populatePathParams(r, input)
		populateQueryParams(r, input)

		if err := PtrIn(input).Validate(); err != nil {
			handleValidationError(ctx, w, err)
			return
		}

		output, err := fn(ctx, PtrIn(input))
		writeJSONResponse(ctx, w, output, err)
	})
}

// populatePathParams extracts path parameters from the request and populates
// struct fields tagged with `path:"paramName"`.
func populatePathParams(r *http.Request, input any) {
	populateTagged(input, "path", r.PathValue)
}

// populateQueryParams extracts query parameters from the request and populates
// struct fields tagged with `query:"paramName"`.
func populateQueryParams(r *http.Request, input any) {
	populateTagged(input, "query", r.URL.Query().Get)
}

// populateTagged sets every string, int or encoding.TextUnmarshaler field
// tagged with tag to lookup(name), skipping empty values.
func populateTagged(input any, tag string, lookup func(string) string) {
	val := reflect.ValueOf(input)
	if val.Kind() != reflect.Pointer {
		return
	}
	elem := val.Elem()
	if elem.Kind() != reflect.Struct {
		return
	}
	typ := elem.Type()
	for i := range typ.NumField() {
		name := typ.Field(i).Tag.Get(tag)
		if name == "" {
			continue
		}
		v := lookup(name)
		if v == "" {
			continue
		}
		f := elem.Field(i)
		switch f.Kind() {
		case reflect.String:
			f.SetString(v)
		case reflect.Int:
			if n, err := strconv.Atoi(v); err == nil {
				f.SetInt(int64(n))
			}
		default:
			if f.CanAddr() {
				if u, ok := f.Addr().Interface().(encoding.TextUnmarshaler); ok {
					_ = u.UnmarshalText([]byte(v))
				}
			}
		}
	}
}

// handleValidationError handles a validation error from a request's Validate method.
func handleValidationError(ctx context.Context, w http.ResponseWriter, err error) {
	apiErr := dto.BadRequest(err.Error())
	var ewsErr dto.ErrorWithStatus
	if errors.As(err, &ewsErr) {
		apiErr = dto.NewAPIError(ewsErr.StatusCode(), ewsErr.Code(), ewsErr.Error()).WithDetails(ewsErr.Details())
	}
	slog.DebugContext(ctx, "Validation error", "err", err, "code", apiErr.Code())
	writeAPIError(w, apiErr)
}

// asAPIError returns err as an ErrorWithStatus, mapping unknown errors to 500.
func asAPIError(err error) dto.ErrorWithStatus {
	var ewsErr dto.ErrorWithStatus
	if errors.As(err, &ewsErr) {
		return ewsErr
	}
	return dto.InternalWithError("internal error", err)
}

// writeAPIError writes a detailed error response as JSON with code and details.
func writeAPIError(w http.ResponseWriter, err dto.ErrorWithStatus) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode())

	response := dto.ErrorResponse{
		Error:   dto.ErrorDetails{Code: err.Code(), Message: err.Error()},
		Details: err.Details(),
	}
	if len(response.Details) == 0 {
		response.Details = nil
	}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}

// writeRateLimitError writes a 429 rate limit error response.
func writeRateLimitError(w http.ResponseWriter, result ratelimit.Result) {
	writeAPIError(w, dto.RateLimitExceeded(int(result.RetryAfter.Seconds())))
}
