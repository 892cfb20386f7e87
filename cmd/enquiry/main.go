// Command enquiry submits a contact enquiry from the terminal, applying the
// same checks as the web form before anything is sent.
package main

import (
	"context"
	"enquiry-relay/pkg/contactclient"
	"enquiry-relay/pkg/logger"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"
)

func main() {
	os.Exit(run())
}

func run() int {
	endpoint := pflag.String("endpoint", envOr("CONTACT_ENDPOINT", "http://localhost:3000/api/contact"), "contact endpoint URL")
	name := pflag.String("name", "", "your full name")
	email := pflag.String("email", "", "your email address")
	phone := pflag.String("phone", "", "phone number (optional)")
	message := pflag.String("message", "", "how can we help?")
	timeout := pflag.Duration("timeout", 30*time.Second, "request timeout")
	verbose := pflag.BoolP("verbose", "v", false, "log request failures")
	pflag.Parse()

	if *verbose {
		logger.Init("debug")
	}

	form := contactclient.NewForm(
		contactclient.Field{Name: "name", Value: *name},
		contactclient.Field{Name: "email", Value: *email},
		contactclient.Field{Name: "phone", Value: *phone},
		contactclient.Field{Name: "message", Value: *message},
	)

	submitter := contactclient.New(*endpoint,
		contactclient.NewWriterRenderer(os.Stdout),
		contactclient.WithHTTPClient(&http.Client{Timeout: *timeout}),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := submitter.Submit(ctx, form); err != nil {
		var fieldErrs contactclient.FieldErrors
		if errors.As(err, &fieldErrs) {
			fmt.Fprintln(os.Stderr, "Please fix the fields above and try again.")
			return 2
		}
		return 1
	}
	return 0
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
