package consts

// 日期与条件请求类
const (
	HeaderDate              = "Date"
	HeaderETag              = "ETag"
	HeaderExpires           = "Expires"
	HeaderIfMatch           = "If-Match"
	HeaderIfModifiedSince   = "If-Modified-Since"
	HeaderIfNoneMatch       = "If-None-Match"
	HeaderIfUnmodifiedSince = "If-Unmodified-Since"
	HeaderLastModified      = "Last-Modified"
	HeaderRetryAfter        = "Retry-After"

	HeaderLocation = "Location" // 重定向
)

// 缓存类
const (
	HeaderAge          = "Age"
	HeaderCacheControl = "Cache-Control"
	HeaderPragma       = "Pragma"
	HeaderVary         = "Vary"
)

// 传输编码类
const (
	HeaderTE               = "TE"
	HeaderTrailer          = "Trailer"
	HeaderTransferEncoding = "Transfer-Encoding"
)

// 控制类
const (
	HeaderCookie      = "Cookie"
	HeaderExpect      = "Expect"
	HeaderMaxForwards = "Max-Forwards"
	HeaderSetCookie   = "Set-Cookie"
	HeaderPriority    = "Priority"
	HeaderEarlyData   = "Early-Data"
)

// 连接管理类
const (
	HeaderConnection      = "Connection"
	HeaderKeepAlive       = "Keep-Alive"
	HeaderProxyConnection = "Proxy-Connection"
	HeaderUpgrade         = "Upgrade"
	HeaderAltSvc          = "Alt-Svc"
	HeaderVia             = "Via"
)

// 鉴权类
const (
	HeaderAuthenticationInfo      = "Authentication-Info"
	HeaderAuthorization           = "Authorization"
	HeaderProxyAuthenticate       = "Proxy-Authenticate"
	HeaderProxyAuthenticationInfo = "Proxy-Authentication-Info"
	HeaderProxyAuthorization      = "Proxy-Authorization"
	HeaderProxyStatus             = "Proxy-Status"
	HeaderWWWAuthenticate         = "WWW-Authenticate"
)

// 区间请求类
const (
	HeaderAcceptRanges = "Accept-Ranges"
	HeaderContentRange = "Content-Range"
	HeaderIfRange      = "If-Range"
	HeaderRange        = "Range"
)

// 响应上下文类
const (
	HeaderAllow  = "Allow"
	HeaderServer = "Server"
)

// 请求上下文
const (
	HeaderFrom            = "From"
	HeaderHost            = "Host"
	HeaderOrigin          = "Origin"
	HeaderReferer         = "Referer"
	HeaderReferrerPolicy  = "Referrer-Policy"
	HeaderUserAgent       = "User-Agent"
	HeaderXForwardedFor   = "X-Forwarded-For"
	HeaderXForwardedHost  = "X-Forwarded-Host"
	HeaderXForwardedProto = "X-Forwarded-Proto"
	HeaderXRequestedWith  = "X-Requested-With"
	HeaderForwarded       = "Forwarded"
	HeaderSecPurpose      = "Sec-Purpose"
	HeaderPurpose         = "Purpose"
)

// 消息体信息
const (
	HeaderContentDisposition = "Content-Disposition"
	HeaderContentEncoding    = "Content-Encoding"
	HeaderContentLanguage    = "Content-Language"
	HeaderContentLength      = "Content-Length"
	HeaderContentLocation    = "Content-Location"
	HeaderContentType        = "Content-Type"
	HeaderContentDigest      = "Content-Digest"
	HeaderReprDigest         = "Repr-Digest"
)

// 内容协商类
const (
	HeaderAccept         = "Accept"
	HeaderAcceptCharset  = "Accept-Charset"
	HeaderAcceptEncoding = "Accept-Encoding"
	HeaderAcceptLanguage = "Accept-Language"
)

// 跨域资源共享类
const (
	HeaderAccessControlAllowCredentials = "Access-Control-Allow-Credentials"
	HeaderAccessControlAllowHeaders     = "Access-Control-Allow-Headers"
	HeaderAccessControlAllowMethods     = "Access-Control-Allow-Methods"
	HeaderAccessControlAllowOrigin      = "Access-Control-Allow-Origin"
	HeaderAccessControlExposeHeaders    = "Access-Control-Expose-Headers"
	HeaderAccessControlMaxAge           = "Access-Control-Max-Age"
	HeaderAccessControlRequestHeaders   = "Access-Control-Request-Headers"
	HeaderAccessControlRequestMethod    = "Access-Control-Request-Method"
)

// 安全类
const (
	HeaderContentSecurityPolicy           = "Content-Security-Policy"
	HeaderContentSecurityPolicyReportOnly = "Content-Security-Policy-Report-Only"
	HeaderCrossOriginEmbedderPolicy       = "Cross-Origin-Embedder-Policy"
	HeaderCrossOriginOpenerPolicy         = "Cross-Origin-Opener-Policy"
	HeaderCrossOriginResourcePolicy       = "Cross-Origin-Resource-Policy"
	HeaderStrictTransportSecurity         = "Strict-Transport-Security"
	HeaderXContentTypeOptions             = "X-Content-Type-Options"
	HeaderXFrameOptions                   = "X-Frame-Options"
	HeaderXXSSProtection                  = "X-XSS-Protection"
)

// WebSocket 类
const (
	HeaderSecWebSocketAccept     = "Sec-WebSocket-Accept"
	HeaderSecWebSocketExtensions = "Sec-WebSocket-Extensions"
	HeaderSecWebSocketKey        = "Sec-WebSocket-Key"
	HeaderSecWebSocketProtocol   = "Sec-WebSocket-Protocol"
	HeaderSecWebSocketVersion    = "Sec-WebSocket-Version"
)

// 协议类
const (
	HTTP11 = "HTTP/1.1"
	HTTP10 = "HTTP/1.0"
	HTTP20 = "HTTP/2.0"
	HTTP30 = "HTTP/3.0"
)
