package test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/smolin/riskgate/internal"
	"github.com/smolin/riskgate/internal/model"
)

const testAPIKey = "test-api-key"

var _ = Describe("ScoringClient", func() {
	newClient := func(url string) *internal.ScoringClient {
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())
		return internal.NewScoringClient(logger.Sugar(), url, testAPIKey)
	}

	verdictBody := func(decision, transactionID string) string {
		return fmt.Sprintf(`{"order":{"transactionId":%q,"riskInquiry":{"decision":%q}}}`,
			transactionID, decision)
	}

	It("submits to the orders endpoint with a signed bearer token", func() {
		var gotPath, gotAuth, gotContentType string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotContentType = r.Header.Get("Content-Type")
			fmt.Fprint(w, verdictBody("APPROVE", "txn-9"))
		}))
		defer server.Close()

		verdict, err := newClient(server.URL).Submit(context.Background(), &model.Inquiry{MerchantOrderID: "100000001"})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(verdict.Decision).Should(Equal(internal.DecisionApprove))
		Expect(verdict.TransactionID).Should(Equal("txn-9"))

		Expect(gotPath).Should(Equal("/commerce/v2/orders"))
		Expect(gotContentType).Should(Equal("application/json"))
		Expect(gotAuth).Should(HavePrefix("Bearer "))

		token, err := jwt.Parse(strings.TrimPrefix(gotAuth, "Bearer "),
			func(t *jwt.Token) (interface{}, error) { return []byte(testAPIKey), nil })
		Expect(err).ShouldNot(HaveOccurred())
		Expect(token.Valid).Should(BeTrue())
		claims := token.Claims.(jwt.MapClaims)
		Expect(claims["iss"]).Should(Equal("riskgate"))
	})

	It("submits updates to the update endpoint", func() {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			fmt.Fprint(w, verdictBody("APPROVE", "txn-9"))
		}))
		defer server.Close()

		_, err := newClient(server.URL).SubmitUpdate(context.Background(), &model.Inquiry{})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(gotPath).Should(Equal("/commerce/v2/orders/update"))
	})

	It("treats a missing decision as pending", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, verdictBody("", "txn-9"))
		}))
		defer server.Close()

		verdict, err := newClient(server.URL).Submit(context.Background(), &model.Inquiry{})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(verdict.Decision).Should(Equal(internal.DecisionPending))
		Expect(verdict.Declined()).Should(BeFalse())
	})

	It("rejects an unknown decision", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, verdictBody("MAYBE", "txn-9"))
		}))
		defer server.Close()

		_, err := newClient(server.URL).Submit(context.Background(), &model.Inquiry{})
		Expect(errors.Is(err, internal.ErrScoringBadResponse)).Should(BeTrue())
	})

	It("reports the service unavailable on throttling and server errors", func() {
		for _, code := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway} {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			}))

			_, err := newClient(server.URL).Submit(context.Background(), &model.Inquiry{})
			Expect(errors.Is(err, internal.ErrScoringUnavailable)).Should(BeTrue())
			server.Close()
		}
	})

	It("rejects other error statuses", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}))
		defer server.Close()

		_, err := newClient(server.URL).Submit(context.Background(), &model.Inquiry{})
		Expect(errors.Is(err, internal.ErrScoringBadResponse)).Should(BeTrue())
	})
})
