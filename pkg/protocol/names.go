package protocol

import (
	"github.com/favbox/httptypes/internal/bytestr"
	"github.com/favbox/httptypes/pkg/protocol/consts"
)

// 伪标头名称
var (
	NameMethod    = pseudoName(bytestr.PseudoMethod)
	NameScheme    = pseudoName(bytestr.PseudoScheme)
	NameAuthority = pseudoName(bytestr.PseudoAuthority)
	NamePath      = pseudoName(bytestr.PseudoPath)
	NameProtocol  = pseudoName(bytestr.PseudoProtocol)
	NameStatus    = pseudoName(bytestr.PseudoStatus)
)

// 常用字段名称，初始化后不可变，可安全地在协程间共享。
var (
	NameDate                            = MustName(consts.HeaderDate)
	NameETag                            = MustName(consts.HeaderETag)
	NameExpires                         = MustName(consts.HeaderExpires)
	NameIfMatch                         = MustName(consts.HeaderIfMatch)
	NameIfModifiedSince                 = MustName(consts.HeaderIfModifiedSince)
	NameIfNoneMatch                     = MustName(consts.HeaderIfNoneMatch)
	NameIfUnmodifiedSince               = MustName(consts.HeaderIfUnmodifiedSince)
	NameLastModified                    = MustName(consts.HeaderLastModified)
	NameRetryAfter                      = MustName(consts.HeaderRetryAfter)
	NameLocation                        = MustName(consts.HeaderLocation)
	NameAge                             = MustName(consts.HeaderAge)
	NameCacheControl                    = MustName(consts.HeaderCacheControl)
	NamePragma                          = MustName(consts.HeaderPragma)
	NameVary                            = MustName(consts.HeaderVary)
	NameTE                              = MustName(consts.HeaderTE)
	NameTrailer                         = MustName(consts.HeaderTrailer)
	NameTransferEncoding                = MustName(consts.HeaderTransferEncoding)
	NameCookie                          = MustName(consts.HeaderCookie)
	NameExpect                          = MustName(consts.HeaderExpect)
	NameMaxForwards                     = MustName(consts.HeaderMaxForwards)
	NameSetCookie                       = MustName(consts.HeaderSetCookie)
	NamePriority                        = MustName(consts.HeaderPriority)
	NameEarlyData                       = MustName(consts.HeaderEarlyData)
	NameConnection                      = MustName(consts.HeaderConnection)
	NameKeepAlive                       = MustName(consts.HeaderKeepAlive)
	NameProxyConnection                 = MustName(consts.HeaderProxyConnection)
	NameUpgrade                         = MustName(consts.HeaderUpgrade)
	NameAltSvc                          = MustName(consts.HeaderAltSvc)
	NameVia                             = MustName(consts.HeaderVia)
	NameAuthenticationInfo              = MustName(consts.HeaderAuthenticationInfo)
	NameAuthorization                   = MustName(consts.HeaderAuthorization)
	NameProxyAuthenticate               = MustName(consts.HeaderProxyAuthenticate)
	NameProxyAuthenticationInfo         = MustName(consts.HeaderProxyAuthenticationInfo)
	NameProxyAuthorization              = MustName(consts.HeaderProxyAuthorization)
	NameProxyStatus                     = MustName(consts.HeaderProxyStatus)
	NameWWWAuthenticate                 = MustName(consts.HeaderWWWAuthenticate)
	NameAcceptRanges                    = MustName(consts.HeaderAcceptRanges)
	NameContentRange                    = MustName(consts.HeaderContentRange)
	NameIfRange                         = MustName(consts.HeaderIfRange)
	NameRange                           = MustName(consts.HeaderRange)
	NameAllow                           = MustName(consts.HeaderAllow)
	NameServer                          = MustName(consts.HeaderServer)
	NameFrom                            = MustName(consts.HeaderFrom)
	NameHost                            = MustName(consts.HeaderHost)
	NameOrigin                          = MustName(consts.HeaderOrigin)
	NameReferer                         = MustName(consts.HeaderReferer)
	NameReferrerPolicy                  = MustName(consts.HeaderReferrerPolicy)
	NameUserAgent                       = MustName(consts.HeaderUserAgent)
	NameXForwardedFor                   = MustName(consts.HeaderXForwardedFor)
	NameXForwardedHost                  = MustName(consts.HeaderXForwardedHost)
	NameXForwardedProto                 = MustName(consts.HeaderXForwardedProto)
	NameXRequestedWith                  = MustName(consts.HeaderXRequestedWith)
	NameForwarded                       = MustName(consts.HeaderForwarded)
	NameSecPurpose                      = MustName(consts.HeaderSecPurpose)
	NamePurpose                         = MustName(consts.HeaderPurpose)
	NameContentDisposition              = MustName(consts.HeaderContentDisposition)
	NameContentEncoding                 = MustName(consts.HeaderContentEncoding)
	NameContentLanguage                 = MustName(consts.HeaderContentLanguage)
	NameContentLength                   = MustName(consts.HeaderContentLength)
	NameContentLocation                 = MustName(consts.HeaderContentLocation)
	NameContentType                     = MustName(consts.HeaderContentType)
	NameContentDigest                   = MustName(consts.HeaderContentDigest)
	NameReprDigest                      = MustName(consts.HeaderReprDigest)
	NameAccept                          = MustName(consts.HeaderAccept)
	NameAcceptCharset                   = MustName(consts.HeaderAcceptCharset)
	NameAcceptEncoding                  = MustName(consts.HeaderAcceptEncoding)
	NameAcceptLanguage                  = MustName(consts.HeaderAcceptLanguage)
	NameAccessControlAllowCredentials   = MustName(consts.HeaderAccessControlAllowCredentials)
	NameAccessControlAllowHeaders       = MustName(consts.HeaderAccessControlAllowHeaders)
	NameAccessControlAllowMethods       = MustName(consts.HeaderAccessControlAllowMethods)
	NameAccessControlAllowOrigin        = MustName(consts.HeaderAccessControlAllowOrigin)
	NameAccessControlExposeHeaders      = MustName(consts.HeaderAccessControlExposeHeaders)
	NameAccessControlMaxAge             = MustName(consts.HeaderAccessControlMaxAge)
	NameAccessControlRequestHeaders     = MustName(consts.HeaderAccessControlRequestHeaders)
	NameAccessControlRequestMethod      = MustName(consts.HeaderAccessControlRequestMethod)
	NameContentSecurityPolicy           = MustName(consts.HeaderContentSecurityPolicy)
	NameContentSecurityPolicyReportOnly = MustName(consts.HeaderContentSecurityPolicyReportOnly)
	NameCrossOriginEmbedderPolicy       = MustName(consts.HeaderCrossOriginEmbedderPolicy)
	NameCrossOriginOpenerPolicy         = MustName(consts.HeaderCrossOriginOpenerPolicy)
	NameCrossOriginResourcePolicy       = MustName(consts.HeaderCrossOriginResourcePolicy)
	NameStrictTransportSecurity         = MustName(consts.HeaderStrictTransportSecurity)
	NameXContentTypeOptions             = MustName(consts.HeaderXContentTypeOptions)
	NameXFrameOptions                   = MustName(consts.HeaderXFrameOptions)
	NameXXSSProtection                  = MustName(consts.HeaderXXSSProtection)
	NameSecWebSocketAccept              = MustName(consts.HeaderSecWebSocketAccept)
	NameSecWebSocketExtensions          = MustName(consts.HeaderSecWebSocketExtensions)
	NameSecWebSocketKey                 = MustName(consts.HeaderSecWebSocketKey)
	NameSecWebSocketProtocol            = MustName(consts.HeaderSecWebSocketProtocol)
	NameSecWebSocketVersion             = MustName(consts.HeaderSecWebSocketVersion)
)

var knownNames = func() map[string]Name {
	m := make(map[string]Name, 95)
	for _, n := range []Name{
		NameMethod, NameScheme, NameAuthority, NamePath, NameProtocol, NameStatus,
		NameDate,
		NameETag,
		NameExpires,
		NameIfMatch,
		NameIfModifiedSince,
		NameIfNoneMatch,
		NameIfUnmodifiedSince,
		NameLastModified,
		NameRetryAfter,
		NameLocation,
		NameAge,
		NameCacheControl,
		NamePragma,
		NameVary,
		NameTE,
		NameTrailer,
		NameTransferEncoding,
		NameCookie,
		NameExpect,
		NameMaxForwards,
		NameSetCookie,
		NamePriority,
		NameEarlyData,
		NameConnection,
		NameKeepAlive,
		NameProxyConnection,
		NameUpgrade,
		NameAltSvc,
		NameVia,
		NameAuthenticationInfo,
		NameAuthorization,
		NameProxyAuthenticate,
		NameProxyAuthenticationInfo,
		NameProxyAuthorization,
		NameProxyStatus,
		NameWWWAuthenticate,
		NameAcceptRanges,
		NameContentRange,
		NameIfRange,
		NameRange,
		NameAllow,
		NameServer,
		NameFrom,
		NameHost,
		NameOrigin,
		NameReferer,
		NameReferrerPolicy,
		NameUserAgent,
		NameXForwardedFor,
		NameXForwardedHost,
		NameXForwardedProto,
		NameXRequestedWith,
		NameForwarded,
		NameSecPurpose,
		NamePurpose,
		NameContentDisposition,
		NameContentEncoding,
		NameContentLanguage,
		NameContentLength,
		NameContentLocation,
		NameContentType,
		NameContentDigest,
		NameReprDigest,
		NameAccept,
		NameAcceptCharset,
		NameAcceptEncoding,
		NameAcceptLanguage,
		NameAccessControlAllowCredentials,
		NameAccessControlAllowHeaders,
		NameAccessControlAllowMethods,
		NameAccessControlAllowOrigin,
		NameAccessControlExposeHeaders,
		NameAccessControlMaxAge,
		NameAccessControlRequestHeaders,
		NameAccessControlRequestMethod,
		NameContentSecurityPolicy,
		NameContentSecurityPolicyReportOnly,
		NameCrossOriginEmbedderPolicy,
		NameCrossOriginOpenerPolicy,
		NameCrossOriginResourcePolicy,
		NameStrictTransportSecurity,
		NameXContentTypeOptions,
		NameXFrameOptions,
		NameXXSSProtection,
		NameSecWebSocketAccept,
		NameSecWebSocketExtensions,
		NameSecWebSocketKey,
		NameSecWebSocketProtocol,
		NameSecWebSocketVersion,
	} {
		m[n.canonical] = n
	}
	return m
}()

// LookupName 按名称（不分大小写）查找常用字段名称，返回其注册的展示形式。
func LookupName(name string) (Name, bool) {
	n, ok := knownNames[lower(name)]
	return n, ok
}
