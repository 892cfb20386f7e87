package usecase_test

import (
	"context"
	"enquiry-relay/internal/domain"
	"enquiry-relay/internal/usecase"
	"enquiry-relay/pkg/email"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg email.Message) error {
	return m.Called(ctx, msg).Error(0)
}

var settings = usecase.ContactSettings{
	BrandName:   "Inbuilt Atelier",
	Domain:      "mg.example.com",
	Recipients:  []string{"owner@example.com", "studio@example.com"},
	SendTimeout: time.Second,
}

func validEnquiry() *domain.Enquiry {
	return &domain.Enquiry{Name: " Jo ", Email: "jo@example.com", Phone: "", Message: "Hello there, need a quote"}
}

func TestSendEnquiry(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(sender, settings, nil)

	sender.On("Send", mock.Anything, mock.AnythingOfType("email.Message")).Return(nil).Run(func(args mock.Arguments) {
		ctx := args.Get(0).(context.Context)
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)

		msg := args.Get(1).(email.Message)
		assert.Equal(t, "Inbuilt Atelier enquiry from Jo", msg.Subject)
		assert.Equal(t, "Inbuilt Atelier <inbuilt_atelier@mg.example.com>", msg.From)
		assert.Equal(t, []string{"owner@example.com", "studio@example.com"}, msg.To)
		assert.Equal(t, "jo@example.com", msg.ReplyTo)
	})

	require.NoError(t, uc.SendEnquiry(context.Background(), validEnquiry()))
	sender.AssertNumberOfCalls(t, "Send", 1)
}

func TestSendEnquiryNotConfigured(t *testing.T) {
	uc := usecase.NewContactUsecase(nil, settings, nil)

	// Even an invalid payload reports the configuration problem first.
	err := uc.SendEnquiry(context.Background(), &domain.Enquiry{Name: "J"})
	assert.ErrorIs(t, err, domain.ErrMailerNotConfigured)
}

func TestSendEnquiryValidation(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(sender, settings, nil)

	payload := &domain.Enquiry{Name: "J", Email: "bad", Message: "hi"}
	first := uc.SendEnquiry(context.Background(), payload)
	second := uc.SendEnquiry(context.Background(), payload)

	var v1, v2 *domain.ValidationError
	require.ErrorAs(t, first, &v1)
	require.ErrorAs(t, second, &v2)
	assert.Equal(t, v1.Fields, v2.Fields)
	assert.Equal(t, map[string]string{
		"name":    "Please provide your full name.",
		"email":   "Please provide a valid email address.",
		"message": "Please include a short message.",
	}, v1.Fields)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestSendEnquirySendFailure(t *testing.T) {
	sender := new(MockSender)
	uc := usecase.NewContactUsecase(sender, settings, nil)
	providerErr := errors.New("401 Forbidden")
	sender.On("Send", mock.Anything, mock.Anything).Return(providerErr)

	err := uc.SendEnquiry(context.Background(), validEnquiry())
	assert.ErrorIs(t, err, domain.ErrSendFailed)
	assert.ErrorIs(t, err, providerErr)
}

func TestBuildMessage(t *testing.T) {
	e := domain.Enquiry{Name: "Jo <b>", Email: "jo@example.com", Phone: "0400 000 000", Message: "Line one\nLine two & more"}
	msg := usecase.BuildMessage(e, settings)

	assert.Equal(t, "Website Enquiry Form Submission\n---\nName: Jo <b>\nEmail: jo@example.com\nPhone: 0400 000 000\nMessage:\nLine one\nLine two & more", msg.Text)
	assert.Contains(t, msg.HTML, "<p><strong>Name:</strong> Jo &lt;b&gt;</p>")
	assert.Contains(t, msg.HTML, "<p><strong>Phone:</strong> 0400 000 000</p>")
	assert.Contains(t, msg.HTML, "<p>Line one<br>Line two &amp; more</p>")
	assert.NotContains(t, msg.HTML, "<b>")
}

func TestBuildMessageKeepsAngleBracketText(t *testing.T) {
	e := domain.Enquiry{
		Name:    "<Jo>",
		Email:   "jo@example.com",
		Message: "Quote for <kitchen> and a<b please\nthanks",
	}
	msg := usecase.BuildMessage(e, settings)

	assert.Equal(t, "Inbuilt Atelier enquiry from <Jo>", msg.Subject)
	assert.Contains(t, msg.HTML, "<p><strong>Name:</strong> &lt;Jo&gt;</p>")
	assert.Contains(t, msg.HTML, "<p>Quote for &lt;kitchen&gt; and a&lt;b please<br>thanks</p>")
	assert.Contains(t, msg.Text, "Name: <Jo>")
	assert.Contains(t, msg.Text, "Message:\nQuote for <kitchen> and a<b please\nthanks")
}

func TestBuildMessageOmitsBlankPhone(t *testing.T) {
	msg := usecase.BuildMessage(domain.Enquiry{Name: "Jo", Email: "jo@example.com", Message: "Hello there, need a quote"}, settings)
	assert.NotContains(t, msg.Text, "Phone")
	assert.NotContains(t, msg.HTML, "Phone")
}

func TestBuildMessageFromOverride(t *testing.T) {
	s := settings
	s.From = "Studio <hello@example.com>"
	msg := usecase.BuildMessage(domain.Enquiry{Name: "Jo"}, s)
	assert.Equal(t, "Studio <hello@example.com>", msg.From)
}
