// Copyright 2021 Lol3rrr. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httparse

// StatusCode is one of the response status codes defined by
// RFC 2616 Section 6.1.1, plus 418 from RFC 2324.
type StatusCode int16

const (
	// StatusContinue .
	StatusContinue StatusCode = 100
	// StatusSwitchingProtocols .
	StatusSwitchingProtocols StatusCode = 101
	// StatusOK .
	StatusOK StatusCode = 200
	// StatusCreated .
	StatusCreated StatusCode = 201
	// StatusAccepted .
	StatusAccepted StatusCode = 202
	// StatusNonAuthoritativeInformation .
	StatusNonAuthoritativeInformation StatusCode = 203
	// StatusNoContent .
	StatusNoContent StatusCode = 204
	// StatusResetContent .
	StatusResetContent StatusCode = 205
	// StatusPartialContent .
	StatusPartialContent StatusCode = 206
	// StatusMultipleChoices .
	StatusMultipleChoices StatusCode = 300
	// StatusMovedPermanently .
	StatusMovedPermanently StatusCode = 301
	// StatusFound .
	StatusFound StatusCode = 302
	// StatusSeeOther .
	StatusSeeOther StatusCode = 303
	// StatusNotModified .
	StatusNotModified StatusCode = 304
	// StatusUseProxy .
	StatusUseProxy StatusCode = 305
	// StatusTemporaryRedirect .
	StatusTemporaryRedirect StatusCode = 307
	// StatusBadRequest .
	StatusBadRequest StatusCode = 400
	// StatusUnauthorized .
	StatusUnauthorized StatusCode = 401
	// StatusPaymentRequired .
	StatusPaymentRequired StatusCode = 402
	// StatusForbidden .
	StatusForbidden StatusCode = 403
	// StatusNotFound .
	StatusNotFound StatusCode = 404
	// StatusMethodNotAllowed .
	StatusMethodNotAllowed StatusCode = 405
	// StatusNotAcceptable .
	StatusNotAcceptable StatusCode = 406
	// StatusProxyAuthenticationRequired .
	StatusProxyAuthenticationRequired StatusCode = 407
	// StatusRequestTimeout .
	StatusRequestTimeout StatusCode = 408
	// StatusConflict .
	StatusConflict StatusCode = 409
	// StatusGone .
	StatusGone StatusCode = 410
	// StatusLengthRequired .
	StatusLengthRequired StatusCode = 411
	// StatusPreconditionFailed .
	StatusPreconditionFailed StatusCode = 412
	// StatusRequestEntityTooLarge .
	StatusRequestEntityTooLarge StatusCode = 413
	// StatusRequestURITooLarge .
	StatusRequestURITooLarge StatusCode = 414
	// StatusUnsupportedMediaType .
	StatusUnsupportedMediaType StatusCode = 415
	// StatusRequestedRangeNotSatisfiable .
	StatusRequestedRangeNotSatisfiable StatusCode = 416
	// StatusExpectationFailed .
	StatusExpectationFailed StatusCode = 417
	// StatusImATeapot .
	StatusImATeapot StatusCode = 418
	// StatusInternalServerError .
	StatusInternalServerError StatusCode = 500
	// StatusNotImplemented .
	StatusNotImplemented StatusCode = 501
	// StatusBadGateway .
	StatusBadGateway StatusCode = 502
	// StatusServiceUnavailable .
	StatusServiceUnavailable StatusCode = 503
	// StatusGatewayTimeout .
	StatusGatewayTimeout StatusCode = 504
	// StatusHTTPVersionNotSupported .
	StatusHTTPVersionNotSupported StatusCode = 505
)

// ParseStatusCode matches the leading three digits of the raw token
// against the known status codes. Anything after the third byte, e.g.
// the reason phrase, is ignored.
func ParseStatusCode(raw string) (StatusCode, bool) {
	if len(raw) < 3 {
		return 0, false
	}

	switch raw[:3] {
	case "100":
		return StatusContinue, true
	case "101":
		return StatusSwitchingProtocols, true
	case "200":
		return StatusOK, true
	case "201":
		return StatusCreated, true
	case "202":
		return StatusAccepted, true
	case "203":
		return StatusNonAuthoritativeInformation, true
	case "204":
		return StatusNoContent, true
	case "205":
		return StatusResetContent, true
	case "206":
		return StatusPartialContent, true
	case "300":
		return StatusMultipleChoices, true
	case "301":
		return StatusMovedPermanently, true
	case "302":
		return StatusFound, true
	case "303":
		return StatusSeeOther, true
	case "304":
		return StatusNotModified, true
	case "305":
		return StatusUseProxy, true
	case "307":
		return StatusTemporaryRedirect, true
	case "400":
		return StatusBadRequest, true
	case "401":
		return StatusUnauthorized, true
	case "402":
		return StatusPaymentRequired, true
	case "403":
		return StatusForbidden, true
	case "404":
		return StatusNotFound, true
	case "405":
		return StatusMethodNotAllowed, true
	case "406":
		return StatusNotAcceptable, true
	case "407":
		return StatusProxyAuthenticationRequired, true
	case "408":
		return StatusRequestTimeout, true
	case "409":
		return StatusConflict, true
	case "410":
		return StatusGone, true
	case "411":
		return StatusLengthRequired, true
	case "412":
		return StatusPreconditionFailed, true
	case "413":
		return StatusRequestEntityTooLarge, true
	case "414":
		return StatusRequestURITooLarge, true
	case "415":
		return StatusUnsupportedMediaType, true
	case "416":
		return StatusRequestedRangeNotSatisfiable, true
	case "417":
		return StatusExpectationFailed, true
	case "418":
		return StatusImATeapot, true
	case "500":
		return StatusInternalServerError, true
	case "501":
		return StatusNotImplemented, true
	case "502":
		return StatusBadGateway, true
	case "503":
		return StatusServiceUnavailable, true
	case "504":
		return StatusGatewayTimeout, true
	case "505":
		return StatusHTTPVersionNotSupported, true
	}
	return 0, false
}

// String returns the wire form of the status code including its
// reason phrase, e.g. "200 OK".
func (sc StatusCode) String() string {
	switch sc {
	case StatusContinue:
		return "100 Continue"
	case StatusSwitchingProtocols:
		return "101 Switching Protocols"
	case StatusOK:
		return "200 OK"
	case StatusCreated:
		return "201 Created"
	case StatusAccepted:
		return "202 Accepted"
	case StatusNonAuthoritativeInformation:
		return "203 Non-Authoritative Information"
	case StatusNoContent:
		return "204 No Content"
	case StatusResetContent:
		return "205 Reset Content"
	case StatusPartialContent:
		return "206 Partial Content"
	case StatusMultipleChoices:
		return "300 Multiple Choices"
	case StatusMovedPermanently:
		return "301 Moved Permanently"
	case StatusFound:
		return "302 Found"
	case StatusSeeOther:
		return "303 See Other"
	case StatusNotModified:
		return "304 Not Modified"
	case StatusUseProxy:
		return "305 Use Proxy"
	case StatusTemporaryRedirect:
		return "307 Temporary Redirect"
	case StatusBadRequest:
		return "400 Bad Request"
	case StatusUnauthorized:
		return "401 Unauthorized"
	case StatusPaymentRequired:
		return "402 Payment Required"
	case StatusForbidden:
		return "403 Forbidden"
	case StatusNotFound:
		return "404 Not Found"
	case StatusMethodNotAllowed:
		return "405 Method Not Allowed"
	case StatusNotAcceptable:
		return "406 Not Acceptable"
	case StatusProxyAuthenticationRequired:
		return "407 Proxy Authentication Required"
	case StatusRequestTimeout:
		return "408 Request Time-out"
	case StatusConflict:
		return "409 Conflict"
	case StatusGone:
		return "410 Gone"
	case StatusLengthRequired:
		return "411 Length Required"
	case StatusPreconditionFailed:
		return "412 Precondition Failed"
	case StatusRequestEntityTooLarge:
		return "413 Request Entity Too Large"
	case StatusRequestURITooLarge:
		return "414 Request-URI Too Large"
	case StatusUnsupportedMediaType:
		return "415 Unsupported Media Type"
	case StatusRequestedRangeNotSatisfiable:
		return "416 Requested Range Not Satisfiable"
	case StatusExpectationFailed:
		return "417 Expectation Failed"
	case StatusImATeapot:
		return "418 I'm a Teapot"
	case StatusInternalServerError:
		return "500 Internal Server Error"
	case StatusNotImplemented:
		return "501 Not Implemented"
	case StatusBadGateway:
		return "502 Bad Gateway"
	case StatusServiceUnavailable:
		return "503 Service Unavailable"
	case StatusGatewayTimeout:
		return "504 Gateway Time-out"
	case StatusHTTPVersionNotSupported:
		return "505 HTTP Version Not Supported"
	}
	return ""
}
