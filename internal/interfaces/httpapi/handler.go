package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/cup-results/internal/platform/logging"
	"github.com/riskibarqy/cup-results/internal/usecase"
)

const maxDocumentBytes = 5 << 20

type Handler struct {
	matchService     *usecase.MatchService
	standingsService *usecase.StandingsService
	rosterService    *usecase.RosterService
	awardService     *usecase.AwardService
	staffService     *usecase.StaffService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	matchService *usecase.MatchService,
	standingsService *usecase.StandingsService,
	rosterService *usecase.RosterService,
	awardService *usecase.AwardService,
	staffService *usecase.StaffService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService:     matchService,
		standingsService: standingsService,
		rosterService:    rosterService,
		awardService:     awardService,
		staffService:     staffService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON reads a strict JSON body into dst. An empty body is rejected.
func decodeJSON(r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(http.MaxBytesReader(nil, r.Body, maxDocumentBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

// readDocument reads a raw document body such as CSV or roster JSON.
func readDocument(r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxDocumentBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: document exceeds %d bytes", usecase.ErrInvalidInput, tooLarge.Limit)
		}
		return nil, fmt.Errorf("%w: read body: %v", usecase.ErrInvalidInput, err)
	}
	return data, nil
}

// logFailure logs unexpected errors; client errors are left to the request log.
func (h *Handler) logFailure(ctx context.Context, msg string, err error) {
	if mapError(err).HTTPStatus < http.StatusInternalServerError {
		return
	}
	h.logger.ErrorContext(ctx, msg, "error", err)
}
