package adaptor

import (
	"net/http"
	"strconv"
	"strings"

	errs "github.com/favbox/httptypes/pkg/common/errors"
	"github.com/favbox/httptypes/pkg/protocol"
	"github.com/favbox/httptypes/pkg/protocol/consts"
)

// ToHTTPResponse 转换为 net/http 的响应，不带响应体。
func ToHTTPResponse(r *protocol.Response) *http.Response {
	status := r.Status()
	return &http.Response{
		Status:        status.String(),
		StatusCode:    status.Code,
		Proto:         consts.HTTP11,
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        ToHTTPHeader(&r.Header),
		Body:          http.NoBody,
		ContentLength: -1,
	}
}

// FromHTTPResponse 由 net/http 的响应构造响应。
//
// 原因短语取自 Status 中状态码之后的部分，缺失时使用默认短语。
func FromHTTPResponse(resp *http.Response) (*protocol.Response, error) {
	if resp.StatusCode < 0 || resp.StatusCode > 999 {
		return nil, errs.New(ErrInvalidStatusCode, errs.ErrorTypePublic, resp.StatusCode)
	}
	reason := strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode))
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = protocol.StatusText(resp.StatusCode)
	}

	r := protocol.NewResponse(protocol.Status{Code: resp.StatusCode, ReasonPhrase: reason})
	appendHTTPHeader(&r.Header, resp.Header)
	return r, nil
}
