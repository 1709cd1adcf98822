package protocol

import (
	"strconv"

	"github.com/favbox/httptypes/internal/bytesconv"
)

// Status 是响应状态码及原因短语。
type Status struct {
	Code         int
	ReasonPhrase string
}

// StatusKind 是状态码的类别。
type StatusKind int

const (
	StatusKindInvalid StatusKind = iota
	StatusKindInformational
	StatusKindSuccessful
	StatusKindRedirection
	StatusKindClientError
	StatusKindServerError
)

var (
	StatusContinue           = NewStatus(100)
	StatusSwitchingProtocols = NewStatus(101)
	StatusEarlyHints         = NewStatus(103)

	StatusOK                   = NewStatus(200)
	StatusCreated              = NewStatus(201)
	StatusAccepted             = NewStatus(202)
	StatusNonAuthoritativeInfo = NewStatus(203)
	StatusNoContent            = NewStatus(204)
	StatusResetContent         = NewStatus(205)
	StatusPartialContent       = NewStatus(206)

	StatusMultipleChoices   = NewStatus(300)
	StatusMovedPermanently  = NewStatus(301)
	StatusFound             = NewStatus(302)
	StatusSeeOther          = NewStatus(303)
	StatusNotModified       = NewStatus(304)
	StatusTemporaryRedirect = NewStatus(307)
	StatusPermanentRedirect = NewStatus(308)

	StatusBadRequest                   = NewStatus(400)
	StatusUnauthorized                 = NewStatus(401)
	StatusForbidden                    = NewStatus(403)
	StatusNotFound                     = NewStatus(404)
	StatusMethodNotAllowed             = NewStatus(405)
	StatusNotAcceptable                = NewStatus(406)
	StatusProxyAuthRequired            = NewStatus(407)
	StatusRequestTimeout               = NewStatus(408)
	StatusConflict                     = NewStatus(409)
	StatusGone                         = NewStatus(410)
	StatusLengthRequired               = NewStatus(411)
	StatusPreconditionFailed           = NewStatus(412)
	StatusRequestEntityTooLarge        = NewStatus(413)
	StatusRequestURITooLong            = NewStatus(414)
	StatusUnsupportedMediaType         = NewStatus(415)
	StatusRequestedRangeNotSatisfiable = NewStatus(416)
	StatusExpectationFailed            = NewStatus(417)
	StatusMisdirectedRequest           = NewStatus(421)
	StatusUnprocessableEntity          = NewStatus(422)
	StatusTooEarly                     = NewStatus(425)
	StatusUpgradeRequired              = NewStatus(426)
	StatusPreconditionRequired         = NewStatus(428)
	StatusTooManyRequests              = NewStatus(429)
	StatusRequestHeaderFieldsTooLarge  = NewStatus(431)
	StatusUnavailableForLegalReasons   = NewStatus(451)

	StatusInternalServerError           = NewStatus(500)
	StatusNotImplemented                = NewStatus(501)
	StatusBadGateway                    = NewStatus(502)
	StatusServiceUnavailable            = NewStatus(503)
	StatusGatewayTimeout                = NewStatus(504)
	StatusHTTPVersionNotSupported       = NewStatus(505)
	StatusNetworkAuthenticationRequired = NewStatus(511)
)

var reasonPhrases = map[int]string{
	100: "Continue",
	101: "Switching Protocols",
	103: "Early Hints",

	200: "OK",
	201: "Created",
	202: "Accepted",
	203: "Non-Authoritative Information",
	204: "No Content",
	205: "Reset Content",
	206: "Partial Content",

	300: "Multiple Choices",
	301: "Moved Permanently",
	302: "Found",
	303: "See Other",
	304: "Not Modified",
	307: "Temporary Redirect",
	308: "Permanent Redirect",

	400: "Bad Request",
	401: "Unauthorized",
	403: "Forbidden",
	404: "Not Found",
	405: "Method Not Allowed",
	406: "Not Acceptable",
	407: "Proxy Authentication Required",
	408: "Request Timeout",
	409: "Conflict",
	410: "Gone",
	411: "Length Required",
	412: "Precondition Failed",
	413: "Content Too Large",
	414: "URI Too Long",
	415: "Unsupported Media Type",
	416: "Range Not Satisfiable",
	417: "Expectation Failed",
	421: "Misdirected Request",
	422: "Unprocessable Content",
	425: "Too Early",
	426: "Upgrade Required",
	428: "Precondition Required",
	429: "Too Many Requests",
	431: "Request Header Fields Too Large",
	451: "Unavailable For Legal Reasons",

	500: "Internal Server Error",
	501: "Not Implemented",
	502: "Bad Gateway",
	503: "Service Unavailable",
	504: "Gateway Timeout",
	505: "HTTP Version Not Supported",
	511: "Network Authentication Required",
}

// NewStatus 以状态码创建状态，并填入默认原因短语。code 须在 0 到 999 之间。
func NewStatus(code int) Status {
	checkStatusCode(code)
	return Status{Code: code, ReasonPhrase: reasonPhrases[code]}
}

// StatusText 返回状态码的默认原因短语，未知时为空串。
func StatusText(code int) string {
	return reasonPhrases[code]
}

func checkStatusCode(code int) {
	if code < 0 || code > 999 {
		panic("BUG：状态码须在 0 到 999 之间，实际为 " + strconv.Itoa(code))
	}
}

// 返回三位数字形式的状态码。
func (s Status) codeBytes() []byte {
	checkStatusCode(s.Code)
	b := make([]byte, 0, 3)
	switch {
	case s.Code < 10:
		b = append(b, '0', '0')
	case s.Code < 100:
		b = append(b, '0')
	}
	return bytesconv.AppendUint(b, s.Code)
}

// Kind 返回状态码的类别。
func (s Status) Kind() StatusKind {
	switch {
	case s.Code >= 100 && s.Code < 200:
		return StatusKindInformational
	case s.Code >= 200 && s.Code < 300:
		return StatusKindSuccessful
	case s.Code >= 300 && s.Code < 400:
		return StatusKindRedirection
	case s.Code >= 400 && s.Code < 500:
		return StatusKindClientError
	case s.Code >= 500 && s.Code < 600:
		return StatusKindServerError
	}
	return StatusKindInvalid
}

// String 返回 "200 OK" 形式。
func (s Status) String() string {
	if s.ReasonPhrase == "" {
		return strconv.Itoa(s.Code)
	}
	return strconv.Itoa(s.Code) + " " + s.ReasonPhrase
}

// 解析三位 ASCII 数字的状态码。
func parseStatusCode(b string) (int, bool) {
	if len(b) != 3 {
		return 0, false
	}
	code, err := bytesconv.ParseUint(b)
	if err != nil {
		return 0, false
	}
	return code, true
}
