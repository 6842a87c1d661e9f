package test

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/smolin/riskgate/internal"
	mock_internal "github.com/smolin/riskgate/internal/mock"
	"github.com/smolin/riskgate/internal/model"
)

var _ = Describe("InquiryBuilder", func() {
	var (
		ctrl    *gomock.Controller
		rep     *mock_internal.MockIRepository
		flags   *internal.MemoryFlags
		cfg     *internal.Config
		builder *internal.InquiryBuilder
	)

	newBuilder := func(currency string) *internal.InquiryBuilder {
		cfg = &internal.Config{ReportingCurrency: currency}
		converter := internal.NewConverter(rep, currency)
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		return internal.NewInquiryBuilder(
			converter,
			internal.NewPaymentRegistry(),
			rep,
			internal.NewSessionBuilder(),
			flags,
			cfg,
			logger.Sugar(),
		)
	}

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
		rep = mock_internal.NewMockIRepository(ctrl)
		flags = internal.NewMemoryFlags()
		builder = newBuilder("USD")
	})
	AfterEach(func() {
		ctrl.Finish()
	})

	Context("amounts", func() {
		It("reports minor units without conversion when currencies match", func() {
			ctx := context.Background()
			order := testOrder()

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())

			Expect(inq.Transactions).Should(HaveLen(1))
			Expect(inq.Transactions[0].OrderTotal).Should(Equal("10000"))
			Expect(inq.Transactions[0].Subtotal).Should(Equal("10000"))
			Expect(inq.Transactions[0].Tax.TaxAmount).Should(Equal("800"))
			Expect(inq.Transactions[0].Tax.IsTaxable).Should(BeTrue())

			Expect(inq.Items[0].Price).Should(Equal("2500"))
			Expect(inq.Items[0].Quantity).Should(Equal(int64(2)))
		})

		It("converts through the rate lookup when currencies differ", func() {
			ctx := context.Background()
			order := testOrder()
			order.BaseCurrencyCode = "EUR"

			rep.EXPECT().GetRate(ctx, "EUR", "USD").Return(decimal.NewFromFloat(1.25), nil).AnyTimes()

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.Transactions[0].OrderTotal).Should(Equal("12500"))
			Expect(inq.Items[0].Price).Should(Equal("3125"))
		})

		It("aborts the build on a missing rate", func() {
			ctx := context.Background()
			order := testOrder()
			order.BaseCurrencyCode = "EUR"

			rep.EXPECT().GetRate(ctx, "EUR", "USD").Return(decimal.Decimal{}, internal.ErrNoSuchCurrencyRate)

			_, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).Should(HaveOccurred())
			Expect(errors.Is(err, internal.ErrNoSuchCurrencyRate)).Should(BeTrue())
		})
	})

	Context("cart", func() {
		It("excludes child items of bundles", func() {
			ctx := context.Background()
			order := testOrder()
			order.Items = append(order.Items, model.LineItem{
				ID: 13, SKU: "sku-child", ParentItemID: 11,
				BasePrice: decimal.NewFromInt(10), QtyOrdered: decimal.NewFromInt(1),
			})

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.Items).Should(HaveLen(2))
		})

		It("falls back to sku for name and to name for description", func() {
			ctx := context.Background()
			order := testOrder()
			order.Items = []model.LineItem{
				{ID: 11, SKU: "sku-1", BasePrice: decimal.NewFromInt(25), QtyOrdered: decimal.NewFromInt(1)},
			}

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.Items[0].Name).Should(Equal("sku-1"))
			Expect(inq.Items[0].Description).Should(Equal("sku-1"))
		})
	})

	Context("discounts", func() {
		It("derives amount and percentage per applied rule", func() {
			ctx := context.Background()
			order := testOrder()
			order.BaseSubtotal = decimal.NewFromInt(50)
			order.AppliedRuleIDs = "7"
			order.Items = []model.LineItem{
				{ID: 11, SKU: "sku-1", Name: "Widget", BasePrice: decimal.NewFromInt(50),
					QtyOrdered: decimal.NewFromInt(1), BaseDiscount: decimal.NewFromInt(5), AppliedRuleIDs: "7"},
			}

			rep.EXPECT().GetRuleByID(ctx, int64(7)).Return(model.PromotionRule{ID: 7, Name: "SUMMER"}, nil)

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())

			Expect(inq.Promotions).Should(HaveLen(1))
			Expect(inq.Promotions[0].Discount.Amount).Should(Equal("500"))
			Expect(inq.Promotions[0].Discount.Percentage).Should(BeNumerically("~", 0.1, 1e-9))
			Expect(inq.Promotions[0].Status).Should(Equal("accepted"))
			Expect(inq.CustomFields[internal.FieldCouponCode]).Should(Equal("SUMMER"))
		})

		It("silently skips rules that no longer exist", func() {
			ctx := context.Background()
			order := testOrder()
			order.AppliedRuleIDs = "7,8"

			rep.EXPECT().GetRuleByID(ctx, int64(7)).Return(model.PromotionRule{}, internal.ErrRuleNotFound)
			rep.EXPECT().GetRuleByID(ctx, int64(8)).Return(model.PromotionRule{ID: 8, Name: "FALL"}, nil)

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.Promotions).Should(HaveLen(1))
			Expect(inq.Promotions[0].ID).Should(Equal("8"))
		})
	})

	Context("client ip", func() {
		It("prefers the order forwarded-for header and takes the first entry", func() {
			ctx := context.Background()
			order := testOrder()
			order.XForwardedFor = "203.0.113.9, 10.1.1.1"

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.UserIP).Should(Equal("203.0.113.9"))
		})

		It("replaces the ip for admin-area actions", func() {
			ctx := context.Background()
			order := testOrder()

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{IsAdmin: true})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.UserIP).Should(Equal(internal.LocalIP))
		})

		It("falls back to the local sentinel when no ip resolves", func() {
			ctx := context.Background()
			order := testOrder()
			order.RemoteIP = ""

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.UserIP).Should(Equal(internal.LocalIP))
		})
	})

	Context("account", func() {
		It("uses the email as id for registered customers", func() {
			ctx := context.Background()
			order := testOrder()

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.Account.ID).Should(Equal(order.CustomerEmail))
			Expect(inq.Account.Type).Should(Equal("1"))
			Expect(inq.Account.AccountIsActive).Should(BeTrue())
		})

		It("leaves the id empty for guests", func() {
			ctx := context.Background()
			order := testOrder()
			order.CustomerID = 0

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.Account.ID).Should(Equal(""))
		})
	})

	Context("updates", func() {
		It("skips session capture and carries the transaction id", func() {
			ctx := context.Background()
			order := testOrder()

			inq, err := builder.BuildUpdate(ctx, order, internal.RequestMeta{}, "rt-42", false)
			Expect(err).ShouldNot(HaveOccurred())

			Expect(inq.DeviceSessionID).Should(Equal(""))
			Expect(inq.Items).Should(BeEmpty())
			Expect(inq.Fulfillment).Should(BeEmpty())
			Expect(inq.Transactions[0].TransactionID).Should(Equal("rt-42"))
			Expect(inq.Transactions[0].TransactionStatus).Should(Equal("CAPTURED"))
			Expect(inq.Transactions[0].AuthorizationStatus.AuthResult).Should(Equal("APPROVED"))
		})

		It("reports refused on a real-time decline", func() {
			ctx := context.Background()
			order := testOrder()

			inq, err := builder.BuildUpdate(ctx, order, internal.RequestMeta{}, "rt-42", true)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.Transactions[0].TransactionStatus).Should(Equal("REFUSED"))
			Expect(inq.Transactions[0].AuthorizationStatus.AuthResult).Should(Equal("DECLINED"))
		})

		It("consumes the one-shot post-auth failure marker", func() {
			ctx := context.Background()
			order := testOrder()

			err := flags.Set(ctx, internal.KeyPostAuthFailure+order.IncrementID)
			Expect(err).ShouldNot(HaveOccurred())

			inq, err := builder.BuildUpdate(ctx, order, internal.RequestMeta{}, "rt-42", false)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.Transactions[0].TransactionStatus).Should(Equal("REFUSED"))

			inq, err = builder.BuildUpdate(ctx, order, internal.RequestMeta{}, "rt-42", false)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.Transactions[0].TransactionStatus).Should(Equal("CAPTURED"))
		})
	})

	Context("fulfillment", func() {
		It("builds the recipient only when a shipping address exists", func() {
			ctx := context.Background()
			order := testOrder()
			order.ShippingCarrier = "ups"
			order.ShippingMethod = "ground"
			order.ShippingAddress = &model.Address{FirstName: "Ship", LastName: "Customer", CountryID: "DE"}
			order.BaseShippingAmount = decimal.NewFromFloat(9.99)

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())

			Expect(inq.Fulfillment).Should(HaveLen(1))
			Expect(inq.Fulfillment[0].Type).Should(Equal("SHIPPED"))
			Expect(inq.Fulfillment[0].Shipping.Amount).Should(Equal("999"))
			Expect(inq.Fulfillment[0].Shipping.Provider).Should(Equal("ups"))
			Expect(inq.Fulfillment[0].Shipping.Method).Should(Equal("STANDARD"))
			Expect(inq.Fulfillment[0].Recipient.Person).ShouldNot(BeNil())
			Expect(inq.Fulfillment[0].Recipient.Person.Address.AddressType).Should(Equal("SHIPPING"))
			Expect(inq.Transactions[0].Tax.TaxableCountryCode).Should(Equal("DE"))
		})

		It("leaves the recipient person empty for virtual orders", func() {
			ctx := context.Background()
			order := testOrder()

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.Fulfillment[0].Recipient.Person).Should(BeNil())
			Expect(inq.Fulfillment[0].Shipping.Method).Should(Equal(""))
			Expect(inq.Transactions[0].Tax.TaxableCountryCode).Should(Equal("US"))
		})
	})

	Context("payments", func() {
		It("resolves mapped method codes", func() {
			ctx := context.Background()
			order := testOrder()

			inq, err := builder.BuildInitial(ctx, order, internal.RequestMeta{})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(inq.Transactions[0].Payment.Type).Should(Equal("CREDIT_CARD"))
			Expect(inq.Transactions[0].Payment.Last4).Should(Equal("1111"))
		})

		It("falls back to the no-payment descriptor for unmapped codes", func() {
			registry := internal.NewPaymentRegistry()
			d := registry.Resolve("some_custom_gateway")
			Expect(d.NoPayment).Should(BeTrue())
			Expect(d.Type).Should(Equal("NONE"))
			Expect(d.AvsStreet).Should(Equal("X"))
			Expect(d.AvsZip).Should(Equal("X"))
		})
	})
})
