package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0tsuro/SparkCar/internal/http/dto"
	"github.com/0tsuro/SparkCar/internal/service"
)

const (
	maxContactBodyBytes = 64 << 10

	msgMalformed = "Requête invalide"
	msgSendError = "Erreur lors de l’envoi du message"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBodyBytes)

	body, err := decodeBody(c)
	if err != nil {
		slog.DebugContext(ctx, "invalid contact body", "error", err)
		c.JSON(http.StatusBadRequest, dto.ContactResponse{Error: msgMalformed})
		return
	}

	err = h.contactService.Submit(ctx, body)
	if err == nil {
		c.JSON(http.StatusOK, dto.ContactResponse{OK: true})
		return
	}

	var verrs service.ValidationErrors
	switch {
	case errors.As(err, &verrs) && len(verrs) > 0:
		c.JSON(http.StatusBadRequest, dto.ContactResponse{
			Error:  verrs[0].Summary,
			Errors: verrs.Fields(),
		})
	case errors.Is(err, service.ErrMalformedInput):
		c.JSON(http.StatusBadRequest, dto.ContactResponse{Error: msgMalformed})
	case errors.Is(err, service.ErrMissingCredentials), errors.Is(err, service.ErrDispatchFailed):
		// already logged with the cause by the service
		c.JSON(http.StatusInternalServerError, dto.ContactResponse{Error: msgSendError})
	default:
		slog.ErrorContext(ctx, "unexpected contact submission error", "error", err)
		c.JSON(http.StatusInternalServerError, dto.ContactResponse{Error: msgSendError})
	}
}

// decodeBody reads the whole capped body as exactly one JSON value.
// Trailing data after the value is rejected.
func decodeBody(c *gin.Context) (any, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	return body, nil
}
