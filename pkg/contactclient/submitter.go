package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"enquiry-relay/pkg/logger"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// State of a Submitter.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Status messages shown to the user.
const (
	MsgSuccess       = "Thanks, your enquiry is on its way."
	MsgGenericFailed = "We could not send your message right now. Please try again shortly."
	MsgUnavailable   = "Contact service is unavailable. Is the server running?"
	MsgNoEndpoint    = "No contact form endpoint configured."
)

var (
	// ErrSubmitInProgress is returned when Submit is called while a previous
	// submission is still in flight.
	ErrSubmitInProgress = errors.New("submission already in progress")

	// ErrNoEndpoint means the Submitter was built without an endpoint.
	ErrNoEndpoint = errors.New("no contact form endpoint configured")

	// ErrTransport wraps failures where no usable response was received.
	ErrTransport = errors.New("could not reach contact service")
)

// StatusKind distinguishes success from failure statuses.
type StatusKind int

const (
	StatusSuccess StatusKind = iota
	StatusFailed
)

// Status is the overall outcome shown after a submission.
type Status struct {
	Kind    StatusKind
	Message string
}

// Renderer displays the outcome of a submission. Implementations own all
// presentation; the Submitter only decides what to show.
type Renderer interface {
	ClearStatus()
	ClearFieldErrors()
	ShowFieldError(field, message string)
	ShowStatus(status Status)
	SetSubmitting(submitting bool)
}

// Doer is satisfied by *http.Client.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is a non-2xx response from the contact service.
type StatusError struct {
	Code    int
	Message string
	Fields  map[string]string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("contact service responded %d: %s", e.Code, e.Message)
}

type Option func(*Submitter)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(d Doer) Option {
	return func(s *Submitter) {
		s.http = d
	}
}

// Submitter drives one form through validation and submission.
type Submitter struct {
	endpoint string
	http     Doer
	renderer Renderer

	mu    sync.Mutex
	state State
}

func New(endpoint string, renderer Renderer, opts ...Option) *Submitter {
	s := &Submitter{
		endpoint: endpoint,
		http:     http.DefaultClient,
		renderer: renderer,
		state:    StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Edited moves a finished submission back to idle once the user changes the
// form again.
func (s *Submitter) Edited() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSuccess || s.state == StateError {
		s.state = StateIdle
	}
}

func (s *Submitter) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Submit validates form and, when valid, posts it. It returns nil on success,
// FieldErrors when client validation fails, *StatusError for non-2xx answers
// and an error wrapping ErrTransport when no response arrived.
func (s *Submitter) Submit(ctx context.Context, form *Form) error {
	s.mu.Lock()
	if s.state == StateSubmitting || s.state == StateValidating {
		s.mu.Unlock()
		return ErrSubmitInProgress
	}
	s.state = StateValidating
	s.mu.Unlock()

	s.renderer.ClearStatus()
	s.renderer.ClearFieldErrors()

	if errs := Validate(form); len(errs) > 0 {
		for _, field := range form.Active() {
			if msg, ok := errs[field.Name]; ok {
				s.renderer.ShowFieldError(field.Name, msg)
			}
		}
		s.setState(StateIdle)
		return errs
	}

	if s.endpoint == "" {
		s.renderer.ShowStatus(Status{Kind: StatusFailed, Message: MsgNoEndpoint})
		s.setState(StateIdle)
		return ErrNoEndpoint
	}

	s.setState(StateSubmitting)
	s.renderer.SetSubmitting(true)
	defer s.renderer.SetSubmitting(false)

	err := s.post(ctx, form)
	if err == nil {
		form.Reset()
		s.renderer.ShowStatus(Status{Kind: StatusSuccess, Message: MsgSuccess})
		s.setState(StateSuccess)
		return nil
	}

	logger.Log.Debug("Enquiry submission failed", "endpoint", s.endpoint, "error", err)

	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr) && statusErr.Code == http.StatusUnprocessableEntity && len(statusErr.Fields) > 0:
		for name, msg := range statusErr.Fields {
			if form.Has(name) {
				s.renderer.ShowFieldError(name, msg)
			}
		}
		s.renderer.ShowStatus(Status{Kind: StatusFailed, Message: MsgGenericFailed})
	case errors.As(err, &statusErr):
		s.renderer.ShowStatus(Status{Kind: StatusFailed, Message: statusErr.Message})
	default:
		s.renderer.ShowStatus(Status{Kind: StatusFailed, Message: MsgGenericFailed})
	}
	s.setState(StateError)
	return err
}

type responseBody struct {
	OK     bool              `json:"ok"`
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors"`
}

func (s *Submitter) post(ctx context.Context, form *Form) error {
	payload, err := json.Marshal(form.Values())
	if err != nil {
		return fmt.Errorf("%w: encode form: %w", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	// An unreadable or non-JSON body counts as an empty object.
	var body responseBody
	if raw, err := io.ReadAll(resp.Body); err == nil {
		_ = json.Unmarshal(raw, &body)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	message := body.Error
	if message == "" {
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusMethodNotAllowed {
			message = MsgUnavailable
		} else {
			message = fmt.Sprintf("Request failed with status %d", resp.StatusCode)
		}
	}
	return &StatusError{Code: resp.StatusCode, Message: message, Fields: body.Errors}
}
