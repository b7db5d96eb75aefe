package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"
)

const Header = "X-Idempotency-Key"

const maxKeyLength = 255

//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	idempotencyKey, err := extractKey(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	bodyHash := generateBodyHash(req)
	cacheKey := Key{
		Resource: req.Data().Path,
		Key:      idempotencyKey,
	}

	entry, cacheErr := Requests.Get(req.Context(), cacheKey)
	if cacheErr != nil {
		if !errors.Is(cacheErr, cache.Miss) {
			rlog.Error("failed to read idempotency entry", "error", cacheErr, "key", idempotencyKey)
			return middleware.Response{
				Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"},
			}
		}

		if err := markAsProcessing(req.Context(), cacheKey, bodyHash); err != nil {
			return middleware.Response{Err: err}
		}

		response := next(req)
		if response.Err != nil {
			deleteEntry(req.Context(), cacheKey)
		} else {
			markAsCompleted(req.Context(), cacheKey, bodyHash, response)
		}
		return response
	}

	return handleExistingEntry(req, next, entry, bodyHash, idempotencyKey)
}

func extractKey(req middleware.Request) (string, *errs.Error) {
	var idempotencyKey string
	if headers := req.Data().Headers; headers != nil {
		idempotencyKey = strings.TrimSpace(headers.Get(Header))
	}

	if idempotencyKey == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is required"}
	}
	if len(idempotencyKey) > maxKeyLength {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: "X-Idempotency-Key header is too long"}
	}

	return idempotencyKey, nil
}

func generateBodyHash(req middleware.Request) string {
	payload := req.Data().Payload
	if payload == nil {
		return ""
	}

	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body", "error", err)
		return ""
	}
	return hashing(body)
}

func handleExistingEntry(req middleware.Request, next middleware.Next, entry Entry, bodyHash, idempotencyKey string) middleware.Response {
	if err := validateBodyHash(entry, bodyHash); err != nil {
		return middleware.Response{Err: err}
	}

	switch entry.Status {
	case StatusProcessing:
		return handleProcessingEntry(idempotencyKey)
	case StatusCompleted:
		return handleCompletedEntry(req, next, entry, idempotencyKey)
	default:
		rlog.Warn("unknown idempotency status, processing as new request", "key", idempotencyKey, "status", entry.Status)
		return next(req)
	}
}

func validateBodyHash(entry Entry, bodyHash string) *errs.Error {
	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return &errs.Error{Code: errs.InvalidArgument, Message: "idempotency key conflict: request body does not match previous request"}
	}
	return nil
}

func handleProcessingEntry(idempotencyKey string) middleware.Response {
	rlog.Info("concurrent request detected", "key", idempotencyKey)
	return middleware.Response{
		Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"},
	}
}

// handleCompletedEntry replays the cached payload. A payload that no longer
// decodes into the endpoint's response type is re-executed.
func handleCompletedEntry(req middleware.Request, next middleware.Next, entry Entry, idempotencyKey string) middleware.Response {
	if len(entry.Response) == 0 {
		return next(req)
	}

	responseType := req.Data().API.ResponseType
	if responseType == nil {
		return next(req)
	}
	if responseType.Kind() == reflect.Ptr {
		responseType = responseType.Elem()
	}

	payload := reflect.New(responseType).Interface()
	if err := json.Unmarshal(entry.Response, payload); err != nil {
		rlog.Error("failed to decode cached response", "error", err, "key", idempotencyKey)
		return next(req)
	}

	rlog.Info("returning cached response", "key", idempotencyKey)
	return middleware.Response{Payload: payload}
}

func markAsProcessing(ctx context.Context, cacheKey Key, bodyHash string) *errs.Error {
	err := Requests.SetIfNotExists(ctx, cacheKey, Entry{
		Status:          StatusProcessing,
		RequestBodyHash: bodyHash,
		CreatedAt:       time.Now(),
	})
	if errors.Is(err, cache.KeyExists) {
		return &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}
	}
	if err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}
	}
	return nil
}

// deleteEntry lets the client retry a failed request with the same key.
func deleteEntry(ctx context.Context, cacheKey Key) {
	if _, err := Requests.Delete(ctx, cacheKey); err != nil {
		rlog.Error("failed to clear failed request from cache", "error", err)
	}
}

func markAsCompleted(ctx context.Context, cacheKey Key, bodyHash string, response middleware.Response) {
	now := time.Now()
	entry := Entry{
		Status:          StatusCompleted,
		RequestBodyHash: bodyHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if response.Payload != nil {
		payload, err := json.Marshal(response.Payload)
		if err != nil {
			rlog.Error("failed to marshal response payload for caching", "error", err)
			return
		}
		entry.Response = payload
	}

	if err := Requests.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache successful response", "error", err)
		return
	}
	rlog.Debug("request completed and response cached", "key", cacheKey.Key)
}

// hashing returns the hex sha256 of a JSON request body.
func hashing(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
