package test

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/smolin/riskgate/internal"
	mock_internal "github.com/smolin/riskgate/internal/mock"
	"github.com/smolin/riskgate/internal/model"
)

var _ = Describe("Service", func() {
	var (
		ctrl      *gomock.Controller
		rep       *mock_internal.MockIRepository
		scoring   *mock_internal.MockIScoring
		messenger *mock_internal.MockIMessenger
		flags     *internal.MemoryFlags
		service   *internal.Service
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		rep = mock_internal.NewMockIRepository(ctrl)
		scoring = mock_internal.NewMockIScoring(ctrl)
		messenger = mock_internal.NewMockIMessenger(ctrl)
		flags = internal.NewMemoryFlags()

		cfg := &internal.Config{
			ReportingCurrency: "USD",
			DeclineAction:     internal.ActionCancel,
		}
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())
		sugar := logger.Sugar()

		builder := internal.NewInquiryBuilder(
			internal.NewConverter(rep, "USD"),
			internal.NewPaymentRegistry(),
			rep,
			internal.NewSessionBuilder(),
			flags,
			cfg,
			sugar,
		)
		decline := internal.NewDeclineEngine(rep, messenger, cfg, sugar)
		service = internal.NewService(rep, builder, scoring, decline, sugar)
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	Describe("InquiryRequest", func() {
		It("records the assigned transaction id on approval", func() {
			ctx := context.Background()
			order := testOrder()

			scoring.EXPECT().Submit(ctx, gomock.Any()).
				Return(internal.Verdict{Decision: internal.DecisionApprove, TransactionID: "txn-9"}, nil)
			rep.EXPECT().SaveOrder(ctx, order).Return(nil).Times(1)

			Expect(service.InquiryRequest(ctx, order, internal.RequestMeta{}, true)).Should(Succeed())
			Expect(order.RiskTransactionID).Should(Equal("txn-9"))
			Expect(order.State).Should(Equal(model.StateProcessing))
		})

		It("runs the disposition and blocks placement on a decline", func() {
			ctx := context.Background()
			order := testOrder()

			scoring.EXPECT().Submit(ctx, gomock.Any()).
				Return(internal.Verdict{Decision: internal.DecisionDecline, TransactionID: "txn-10"}, nil)
			// transaction id save, then the cancelled order save
			rep.EXPECT().SaveOrder(ctx, order).Return(nil).Times(2)

			err := service.InquiryRequest(ctx, order, internal.RequestMeta{}, true)
			Expect(errors.Is(err, internal.ErrOrderDeclined)).Should(BeTrue())
			Expect(order.State).Should(Equal(model.StateCanceled))
		})

		It("applies the disposition without an error when not blocking", func() {
			ctx := context.Background()
			order := testOrder()

			scoring.EXPECT().Submit(ctx, gomock.Any()).
				Return(internal.Verdict{Decision: internal.DecisionDecline}, nil)
			rep.EXPECT().SaveOrder(ctx, order).Return(nil).Times(1)

			Expect(service.InquiryRequest(ctx, order, internal.RequestMeta{}, false)).Should(Succeed())
			Expect(order.State).Should(Equal(model.StateCanceled))
		})

		It("propagates a scoring outage", func() {
			ctx := context.Background()
			order := testOrder()

			scoring.EXPECT().Submit(ctx, gomock.Any()).
				Return(internal.Verdict{}, internal.ErrScoringUnavailable)

			err := service.InquiryRequest(ctx, order, internal.RequestMeta{}, true)
			Expect(errors.Is(err, internal.ErrScoringUnavailable)).Should(BeTrue())
		})
	})

	Describe("UpdateRequest", func() {
		It("submits the reduced document with the stored transaction id", func() {
			ctx := context.Background()
			order := testOrder()
			order.RiskTransactionID = "txn-9"

			scoring.EXPECT().SubmitUpdate(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, inq *model.Inquiry) (internal.Verdict, error) {
					Expect(inq.Transactions).Should(HaveLen(1))
					Expect(inq.Transactions[0].TransactionID).Should(Equal("txn-9"))
					Expect(inq.Items).Should(BeEmpty())
					return internal.Verdict{Decision: internal.DecisionApprove}, nil
				})

			Expect(service.UpdateRequest(ctx, order, false)).Should(Succeed())
		})

		It("reports a refused transaction on a real-time decline", func() {
			ctx := context.Background()
			order := testOrder()
			order.RiskTransactionID = "txn-9"

			scoring.EXPECT().SubmitUpdate(ctx, gomock.Any()).
				DoAndReturn(func(_ context.Context, inq *model.Inquiry) (internal.Verdict, error) {
					Expect(inq.Transactions[0].TransactionStatus).Should(Equal("REFUSED"))
					return internal.Verdict{Decision: internal.DecisionApprove}, nil
				})

			Expect(service.UpdateRequest(ctx, order, true)).Should(Succeed())
		})
	})

	Describe("MarkProcessed", func() {
		It("sets the processed mark and persists it", func() {
			ctx := context.Background()
			order := testOrder()

			rep.EXPECT().SaveOrder(ctx, order).Return(nil)

			Expect(service.MarkProcessed(ctx, order)).Should(Succeed())
			Expect(order.RiskProcessed).Should(BeTrue())
		})
	})
})

var _ = Describe("Workflow", func() {
	var (
		ctrl      *gomock.Controller
		service   *mock_internal.MockIService
		publisher *mock_internal.MockIPublisher
		flags     *internal.MemoryFlags
		logger    *zap.SugaredLogger
	)

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		service = mock_internal.NewMockIService(ctrl)
		publisher = mock_internal.NewMockIPublisher(ctrl)
		flags = internal.NewMemoryFlags()

		l, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())
		logger = l.Sugar()
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	It("rejects an unknown mode", func() {
		cfg := &internal.Config{WorkflowMode: "sideways"}
		_, err := internal.NewWorkflow(cfg, service, flags, publisher, logger)
		Expect(errors.Is(err, internal.ErrUnknownWorkflowMode)).Should(BeTrue())
	})

	Context("pre-authorization mode", func() {
		newPreAuth := func(notify bool) *internal.Workflow {
			cfg := &internal.Config{WorkflowMode: internal.WorkflowPreAuth, NotifyProcessorDecline: notify}
			w, err := internal.NewWorkflow(cfg, service, flags, publisher, logger)
			Expect(err).ShouldNot(HaveOccurred())
			return w
		}

		It("blocks placement on the initial inquiry", func() {
			ctx := context.Background()
			order := testOrder()
			w := newPreAuth(true)

			service.EXPECT().InquiryRequest(ctx, order, internal.RequestMeta{}, true).Return(nil)

			Expect(w.OnBeforePlacement(ctx, order, internal.RequestMeta{})).Should(Succeed())
		})

		It("marks the failure and enqueues an update on placement failure", func() {
			ctx := context.Background()
			order := testOrder()
			w := newPreAuth(true)

			publisher.EXPECT().Publish(internal.TopicOrderUpdate, []byte(order.IncrementID)).Return(nil)

			Expect(w.OnPlacementFailure(ctx, order, internal.RequestMeta{})).Should(Succeed())

			taken, err := flags.TakeAndClear(ctx, internal.KeyPostAuthFailure+order.IncrementID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(taken).Should(BeTrue())
		})

		It("does nothing on failure when decline reporting is off", func() {
			ctx := context.Background()
			order := testOrder()
			w := newPreAuth(false)

			Expect(w.OnPlacementFailure(ctx, order, internal.RequestMeta{})).Should(Succeed())

			taken, err := flags.TakeAndClear(ctx, internal.KeyPostAuthFailure+order.IncrementID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(taken).Should(BeFalse())
		})

		It("enqueues an update and marks the order processed on success", func() {
			ctx := context.Background()
			order := testOrder()
			w := newPreAuth(true)

			gomock.InOrder(
				publisher.EXPECT().Publish(internal.TopicOrderUpdate, []byte(order.IncrementID)).Return(nil),
				service.EXPECT().MarkProcessed(ctx, order).Return(nil),
			)

			Expect(w.OnPlacementSuccess(ctx, order, internal.RequestMeta{})).Should(Succeed())
		})
	})

	Context("post-authorization mode", func() {
		newPostAuth := func(notify bool) *internal.Workflow {
			cfg := &internal.Config{WorkflowMode: internal.WorkflowPostAuth, NotifyProcessorDecline: notify}
			w, err := internal.NewWorkflow(cfg, service, flags, publisher, logger)
			Expect(err).ShouldNot(HaveOccurred())
			return w
		}

		It("does nothing before placement", func() {
			ctx := context.Background()
			order := testOrder()
			w := newPostAuth(true)

			Expect(w.OnBeforePlacement(ctx, order, internal.RequestMeta{})).Should(Succeed())
		})

		It("marks the failure and submits synchronously on placement failure", func() {
			ctx := context.Background()
			order := testOrder()
			w := newPostAuth(true)

			service.EXPECT().InquiryRequest(ctx, order, internal.RequestMeta{}, false).Return(nil)

			Expect(w.OnPlacementFailure(ctx, order, internal.RequestMeta{})).Should(Succeed())

			taken, err := flags.TakeAndClear(ctx, internal.KeyPostAuthFailure+order.IncrementID)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(taken).Should(BeTrue())
		})

		It("submits and marks the order processed on success", func() {
			ctx := context.Background()
			order := testOrder()
			w := newPostAuth(true)

			gomock.InOrder(
				service.EXPECT().InquiryRequest(ctx, order, internal.RequestMeta{}, false).Return(nil),
				service.EXPECT().MarkProcessed(ctx, order).Return(nil),
			)

			Expect(w.OnPlacementSuccess(ctx, order, internal.RequestMeta{})).Should(Succeed())
		})
	})
})
