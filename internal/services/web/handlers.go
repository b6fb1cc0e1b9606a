package web

import (
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/roman/internal/platform/i18n/catalog"
	"github.com/louisbranch/roman/internal/platform/requestctx"
	"github.com/louisbranch/roman/internal/services/converter/numeral"
	"github.com/louisbranch/roman/internal/services/web/greeting"
	weberrors "github.com/louisbranch/roman/internal/services/web/platform/errors"
	"github.com/louisbranch/roman/internal/services/web/platform/httpx"
)

const (
	notFoundKey    = "web.error.not_found"
	rateLimitedKey = "web.error.rate_limited"
)

type handlers struct {
	converter Converter
	greeter   greeting.Greeter
	bundle    *catalog.Bundle
}

type healthResponse struct {
	Status string `json:"status"`
}

type toNumberResponse struct {
	Roman  string `json:"roman"`
	Number int    `json:"number"`
}

type toRomanResponse struct {
	Number int    `json:"number"`
	Roman  string `json:"roman"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (h handlers) health(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "UP"})
}

func (h handlers) hello(w http.ResponseWriter, r *http.Request) {
	locale := requestLocale(r)
	_ = httpx.WriteText(w, http.StatusOK, h.greeter.Greeting(locale, r.PathValue("name")))
}

func (h handlers) toNumber(w http.ResponseWriter, r *http.Request) {
	roman := r.PathValue("roman")
	n, err := h.converter.ToNumber(httpx.RequestContext(r), roman)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, toNumberResponse{Roman: roman, Number: n})
}

func (h handlers) toRoman(w http.ResponseWriter, r *http.Request) {
	n, err := numeral.ParseNumber(r.PathValue("number"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	roman, err := h.converter.ToRoman(httpx.RequestContext(r), n)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, toRomanResponse{Number: n, Roman: roman})
}

func (h handlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, weberrors.EK(weberrors.KindNotFound, notFoundKey, "route not found"))
}

func (h handlers) rateLimited(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, weberrors.EK(weberrors.KindRateLimited, rateLimitedKey, "rate limit exceeded"))
}

func (h handlers) message(r *http.Request, key string) string {
	if text, ok := h.bundle.Message(requestLocale(r), key); ok {
		return text
	}
	return key
}

// writeError renders failures as {"error","code"}. Converter failures use the
// remote localized message when one came back; web failures use their
// catalog key. Only server-side failures are logged.
func (h handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := weberrors.HTTPStatus(err)
	if domainErr, message, ok := weberrors.Domain(err); ok {
		if strings.TrimSpace(message) == "" {
			message = domainErr.LocalizedMessage(requestLocale(r))
		}
		_ = httpx.WriteJSON(w, status, errorResponse{Error: message, Code: string(domainErr.Code)})
		return
	}
	if status >= http.StatusInternalServerError {
		log.Printf("web request failed path=%s request_id=%s err=%v", r.URL.Path, requestctx.RequestIDFromContext(r.Context()), err)
	}
	message := http.StatusText(status)
	if key := weberrors.LocalizationKey(err); key != "" {
		message = h.message(r, key)
	}
	_ = httpx.WriteJSON(w, status, errorResponse{Error: message})
}

func requestLocale(r *http.Request) string {
	if locale := requestctx.LocaleFromContext(httpx.RequestContext(r)); locale != "" {
		return locale
	}
	return catalog.BaseLocale
}
