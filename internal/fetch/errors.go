package fetch

import "errors"

var (
	// ErrFetch wraps every failure to retrieve or read a page.
	ErrFetch = errors.New("could not retrieve content from the URL")

	// ErrUnsupportedScheme is returned for URLs that are not http or https.
	ErrUnsupportedScheme = errors.New("unsupported URL scheme: expected http or https")

	// ErrUnexpectedStatus is returned when the server answers with a non-2xx status.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")

	// ErrEmptyPage is returned when a page has no visible text.
	ErrEmptyPage = errors.New("page has no visible text")

	// ErrInvalidProxyAddress is returned when the proxy address is not host:port.
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)
