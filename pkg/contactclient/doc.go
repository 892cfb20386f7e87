// Package contactclient is the client half of the enquiry pipeline. It
// validates a form before anything leaves the user's machine, posts it as JSON
// and reports the outcome through a Renderer, so the flow can be driven from a
// terminal, a test or any other front end.
//
// The rules here are deliberately separate from the server's: the server never
// trusts the client and re-validates everything.
package contactclient
