package v1

import (
	"bytes"
	"encoding/json"
	"enquiry-relay/internal/delivery/http/response"
	"enquiry-relay/internal/domain"
	"enquiry-relay/pkg/apperror"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const (
	msgNotConfigured = "Email configuration missing on the server. Check the mail provider settings."
	msgSendFailed    = "Unable to send email at this time."
	msgMalformedBody = "Malformed request body."
)

var (
	errNotJSONObject = errors.New("request body must be a JSON object or array")
	errTrailingData  = errors.New("unexpected data after JSON value")
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validates an enquiry and relays it to the studio inbox. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        enquiry  body      domain.Enquiry  true  "Enquiry"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.Enquiry
	if err := bindEnquiry(c, &req); err != nil {
		c.Error(apperror.BadRequest(msgMalformedBody, err))
		return
	}

	err := h.contactUC.SendEnquiry(c.Request.Context(), &req)

	var validationErr *domain.ValidationError
	switch {
	case err == nil:
		response.Success(c, http.StatusOK)
	case errors.As(err, &validationErr):
		c.Error(apperror.Validation(validationErr.Fields))
	case errors.Is(err, domain.ErrMailerNotConfigured):
		c.Error(apperror.ServiceUnavailable(msgNotConfigured, err))
	case errors.Is(err, domain.ErrSendFailed):
		c.Error(apperror.BadGateway(msgSendFailed, err))
	default:
		c.Error(apperror.Internal(err))
	}
}

// bindEnquiry fills req from the request body. JSON must be exactly one object
// or array with nothing after it; other content types use form binding. An
// empty body is treated as an empty enquiry and fails validation.
func bindEnquiry(c *gin.Context, req *domain.Enquiry) error {
	if c.ContentType() != binding.MIMEJSON {
		if err := c.ShouldBind(req); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return err
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil
	}
	if body[0] != '{' && body[0] != '[' {
		return errNotJSONObject
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	if err := dec.Decode(req); err != nil {
		return err
	}
	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}
