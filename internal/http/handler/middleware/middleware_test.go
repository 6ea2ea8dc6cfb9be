package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"soko/internal/http/handler/middleware"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		seen     string
		next     http.Handler
		recorder *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		seen = ""
		recorder = httptest.NewRecorder()
		next = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = r.Context().Value(middleware.RequestIDKey).(string)
			w.WriteHeader(http.StatusTeapot)
		})
	})

	Describe("RequestID", func() {
		It("should generate an id when the caller sends none", func() {
			req := httptest.NewRequest(http.MethodGet, "/soko/listings", nil)
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(recorder, req)

			Expect(seen).NotTo(BeEmpty())
			Expect(recorder.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
		})

		It("should keep the caller's id", func() {
			req := httptest.NewRequest(http.MethodGet, "/soko/listings", nil)
			req.Header.Set(middleware.RequestIDHeader, "req-1")
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(recorder, req)

			Expect(seen).To(Equal("req-1"))
			Expect(recorder.Header().Get(middleware.RequestIDHeader)).To(Equal("req-1"))
		})
	})

	Describe("Logging", func() {
		It("should log the status written by the handler", func() {
			core, logs := observer.New(zap.InfoLevel)
			logger := zap.New(core).Sugar()

			h := middleware.NewRequestIDMiddleware().RequestID(
				middleware.NewLoggingMiddleware(logger).Logging(next))

			req := httptest.NewRequest(http.MethodPost, "/soko/listings/refresh", nil)
			req.Header.Set(middleware.RequestIDHeader, "req-2")
			h.ServeHTTP(recorder, req)

			Expect(recorder.Code).To(Equal(http.StatusTeapot))
			entries := logs.FilterMessage("request served").All()
			Expect(entries).To(HaveLen(1))

			fields := entries[0].ContextMap()
			Expect(fields["status"]).To(BeEquivalentTo(http.StatusTeapot))
			Expect(fields["path"]).To(Equal("/soko/listings/refresh"))
			Expect(fields["request_id"]).To(Equal("req-2"))
		})
	})
})
