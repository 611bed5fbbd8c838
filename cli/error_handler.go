package cli

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/grovetools/storefront/errors"
)

// ErrorHandler prints user-friendly messages for known error codes.
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a handler writing to stderr.
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message for err and returns it unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}
	w := h.Out
	if w == nil {
		w = os.Stderr
	}
	t := DefaultTheme
	prefix := t.Error.Render("x")

	var sfErr *errors.StorefrontError
	stderrors.As(err, &sfErr)

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(w, "%s Configuration not found. Create a storefront.yml or pass --config.\n", prefix)

	case errors.ErrCodeConfigInvalid:
		fmt.Fprintf(w, "%s %v\n", prefix, err)
		fmt.Fprintf(w, "Check storefront.yml; run 'storefront config' to see the effective values.\n")

	case errors.ErrCodeInvalidQuantity:
		fmt.Fprintf(w, "%s Quantity must be at least 1 (got %v).\n", prefix, sfErr.Details["quantity"])
		fmt.Fprintf(w, "Use 'storefront cart set-qty' with 0 to remove an item.\n")

	case errors.ErrCodeRecordNotFound:
		fmt.Fprintf(w, "%s %s #%v is not in the catalog\n", prefix, sfErr.Details["kind"], sfErr.Details["id"])
		fmt.Fprintf(w, "Pass a catalog snapshot with --catalog or set catalog.path in storefront.yml.\n")

	case errors.ErrCodeStorageRead, errors.ErrCodeStorageWrite:
		fmt.Fprintf(w, "%s Local storage is unavailable: %v\n", prefix, err)

	default:
		fmt.Fprintf(w, "%s Error: %v\n", prefix, err)
	}

	if h.Verbose && sfErr != nil {
		fmt.Fprintf(w, "\nError details:\n%s\n", sfErr.ToJSON())
	}
	return err
}
