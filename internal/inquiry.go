package internal

import (
	"context"
	"errors"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smolin/riskgate/internal/model"
)

const (
	FieldCarrier     = "CARRIER"
	FieldMethod      = "METHOD"
	FieldCouponCode  = "COUPON_CODE"
	FieldAccountName = "ACCOUNT_NAME"
	FieldPlatform    = "PLATFORM"
	FieldExt         = "EXT"
)

// Version is the module version reported in the EXT custom field.
const Version = "1.0.0"

// LocalIP replaces the client ip for admin-initiated actions, so they are
// never scored as the customer's network origin.
const LocalIP = "10.0.0.1"

const channelFallback = "STOREFRONT"

const timeLayout = "2006-01-02T15:04:05Z"

// IRules loads promotion rules referenced by an order's applied-rule ids.
type IRules interface {
	GetRuleByID(ctx context.Context, id int64) (model.PromotionRule, error)
}

// InquiryBuilder assembles the outbound scoring document from order state.
// It never mutates the order and writes nothing anywhere else.
type InquiryBuilder struct {
	converter *Converter
	payments  IPaymentResolver
	rules     IRules
	session   ISessionBuilder
	flags     IFlagStore
	cfg       *Config
	logger    *zap.SugaredLogger
}

func NewInquiryBuilder(
	converter *Converter,
	payments IPaymentResolver,
	rules IRules,
	session ISessionBuilder,
	flags IFlagStore,
	cfg *Config,
	logger *zap.SugaredLogger,
) *InquiryBuilder {
	return &InquiryBuilder{
		converter: converter,
		payments:  payments,
		rules:     rules,
		session:   session,
		flags:     flags,
		cfg:       cfg,
		logger:    logger,
	}
}

// BuildInitial produces the full inquiry for a first submission. Derivation
// order matters: custom fields read the already-computed promotion list.
func (b *InquiryBuilder) BuildInitial(ctx context.Context, order *model.Order, meta RequestMeta) (*model.Inquiry, error) {
	inq := &model.Inquiry{}

	b.processGeneralInfo(inq, order, meta, false)
	b.processAccount(inq, order)
	if err := b.processCart(ctx, inq, order); err != nil {
		return nil, err
	}
	if err := b.processFulfillment(ctx, inq, order); err != nil {
		return nil, err
	}
	if err := b.processTransactions(ctx, inq, order, "", false); err != nil {
		return nil, err
	}
	if err := b.processDiscounts(ctx, inq, order); err != nil {
		return nil, err
	}
	b.processCustomFields(inq, order)

	return inq, nil
}

// BuildUpdate produces the reduced document for a follow-up submission. It
// skips session capture and carries the transaction id assigned by the
// scoring service on the initial inquiry.
func (b *InquiryBuilder) BuildUpdate(
	ctx context.Context,
	order *model.Order,
	meta RequestMeta,
	transactionID string,
	realTimeDecline bool,
) (*model.Inquiry, error) {
	inq := &model.Inquiry{}

	b.processGeneralInfo(inq, order, meta, true)
	b.processAccount(inq, order)
	if err := b.processTransactions(ctx, inq, order, transactionID, realTimeDecline); err != nil {
		return nil, err
	}

	return inq, nil
}

func (b *InquiryBuilder) processGeneralInfo(inq *model.Inquiry, order *model.Order, meta RequestMeta, update bool) {
	inq.MerchantOrderID = order.IncrementID
	inq.Channel = channel(order)
	if !update {
		b.session.Process(inq, order, meta)
	}
	inq.CreationDateTime = time.Now().UTC().Format(timeLayout)
	inq.UserIP = b.clientIP(order, meta)
}

func (b *InquiryBuilder) processAccount(inq *model.Inquiry, order *model.Order) {
	id := ""
	if order.CustomerID != 0 {
		id = order.CustomerEmail
	}
	inq.Account = &model.InquiryAccount{
		ID:               id,
		Type:             strconv.FormatInt(order.CustomerGroupID, 10),
		CreationDateTime: time.Now().UTC().Format(timeLayout),
		Username:         order.CustomerEmail,
		AccountIsActive:  true,
	}
}

func (b *InquiryBuilder) processCart(ctx context.Context, inq *model.Inquiry, order *model.Order) error {
	items := order.TopLevelItems()
	cart := make([]model.InquiryItem, 0, len(items))
	for _, item := range items {
		price, err := b.converter.ConvertAndRound(ctx, item.BasePrice, order.BaseCurrencyCode)
		if err != nil {
			return err
		}

		name := item.Name
		if name == "" {
			name = item.SKU
		}
		description := item.Description
		if description == "" {
			description = name
		}

		cart = append(cart, model.InquiryItem{
			ID:          strconv.FormatInt(item.ID, 10),
			Price:       strconv.FormatInt(price, 10),
			Description: description,
			Name:        name,
			Quantity:    RoundQty(item.QtyOrdered),
			SKU:         item.SKU,
		})
	}
	inq.Items = cart
	return nil
}

func (b *InquiryBuilder) processFulfillment(ctx context.Context, inq *model.Inquiry, order *model.Order) error {
	amount, err := b.converter.ConvertAndRound(ctx, order.BaseShippingAmount, order.BaseCurrencyCode)
	if err != nil {
		return err
	}

	method := ""
	if order.ShippingMethod != "" {
		method = "STANDARD"
	}

	recipient := model.Recipient{SameAsBilling: false}
	if order.ShippingAddress != nil {
		recipient.Person = person(*order.ShippingAddress, "SHIPPING")
	}

	inq.Fulfillment = []model.Fulfillment{{
		Type: "SHIPPED",
		Shipping: model.ShippingInfo{
			Amount:   strconv.FormatInt(amount, 10),
			Provider: order.ShippingCarrier,
			Method:   method,
		},
		Recipient: recipient,
		Store:     b.cfg.StoreInformation(order.StoreID),
	}}
	return nil
}

func (b *InquiryBuilder) processTransactions(
	ctx context.Context,
	inq *model.Inquiry,
	order *model.Order,
	transactionID string,
	realTimeDecline bool,
) error {
	descriptor := b.payments.Resolve(order.Payment.Method)
	b.logger.Infof("payment code %q resolved to type %s", order.Payment.Method, descriptor.Type)

	subtotal, err := b.converter.ConvertAndRound(ctx, order.BaseSubtotal, order.BaseCurrencyCode)
	if err != nil {
		return err
	}
	total, err := b.converter.ConvertAndRound(ctx, order.BaseGrandTotal, order.BaseCurrencyCode)
	if err != nil {
		return err
	}
	tax, err := b.converter.ConvertAndRound(ctx, order.BaseTaxAmount, order.BaseCurrencyCode)
	if err != nil {
		return err
	}

	taxCountry := order.BillingAddress.CountryID
	if order.ShippingAddress != nil {
		taxCountry = order.ShippingAddress.CountryID
	}

	taken, err := b.flags.TakeAndClear(ctx, KeyPostAuthFailure+order.IncrementID)
	if err != nil {
		// a broken marker store must not abort the build
		b.logger.Errorf("post-auth failure flag lookup: %s", err.Error())
	}
	if taken {
		realTimeDecline = true
	}

	t := model.Transaction{
		MerchantTransactionID: order.Payment.LastTransID,
		Processor:             order.Payment.Title,
		ProcessorMerchantID:   "",
		Payment: model.PaymentInfo{
			Type:         descriptor.Type,
			PaymentToken: "",
			Bin:          "",
			Last4:        order.Payment.CcLast4,
		},
		Subtotal:   strconv.FormatInt(subtotal, 10),
		Currency:   b.converter.Currency(),
		OrderTotal: strconv.FormatInt(total, 10),
		Tax: model.Tax{
			IsTaxable:          !order.BaseTaxAmount.IsZero(),
			TaxableCountryCode: taxCountry,
			TaxAmount:          strconv.FormatInt(tax, 10),
		},
		BilledPerson:        *person(order.BillingAddress, "BILLING"),
		TransactionStatus:   transactionStatus(order, realTimeDecline),
		AuthorizationStatus: model.AuthStatus{AuthResult: authResult(order, realTimeDecline)},
		TransactionID:       transactionID,
	}

	inq.Transactions = []model.Transaction{t}
	return nil
}

func (b *InquiryBuilder) processDiscounts(ctx context.Context, inq *model.Inquiry, order *model.Order) error {
	promotions := make([]model.Promotion, 0)

	for _, ruleID := range order.AppliedRules() {
		rule, err := b.rules.GetRuleByID(ctx, ruleID)
		if errors.Is(err, ErrRuleNotFound) {
			continue
		}
		if err != nil {
			return err
		}

		amount, err := b.discountAmount(ctx, order, rule.ID)
		if err != nil {
			return err
		}

		promotions = append(promotions, model.Promotion{
			ID:           strconv.FormatInt(rule.ID, 10),
			Description:  rule.Name,
			Status:       "accepted",
			StatusReason: "Promotion applied successfully.",
			Discount: model.Discount{
				Percentage: discountPercentage(amount, order.BaseSubtotal),
				Amount:     strconv.FormatInt(amount, 10),
			},
		})
	}

	inq.Promotions = promotions
	return nil
}

func (b *InquiryBuilder) processCustomFields(inq *model.Inquiry, order *model.Order) {
	fields := map[string]string{}

	if len(inq.Promotions) > 0 {
		descriptions := make([]string, 0, len(inq.Promotions))
		for _, p := range inq.Promotions {
			descriptions = append(descriptions, p.Description)
		}
		fields[FieldCouponCode] = strings.Join(descriptions, ",")
	}

	fields[FieldCarrier] = order.ShippingCarrier
	fields[FieldMethod] = order.ShippingMethod
	fields[FieldExt] = Version
	fields[FieldAccountName] = channel(order)
	fields[FieldPlatform] = "Go " + runtime.Version()

	inq.CustomFields = fields
}

// discountAmount sums per-item discounts attributed to the rule, in minor
// units of the reporting currency.
func (b *InquiryBuilder) discountAmount(ctx context.Context, order *model.Order, ruleID int64) (int64, error) {
	total := decimal.Zero
	for _, item := range order.Items {
		if item.HasAppliedRule(ruleID) {
			total = total.Add(item.BaseDiscount)
		}
	}
	return b.converter.ConvertAndRound(ctx, total, order.BaseCurrencyCode)
}

func discountPercentage(amountMinor int64, subtotal decimal.Decimal) float64 {
	if !subtotal.IsPositive() {
		return 0
	}
	amount := decimal.NewFromInt(amountMinor).Div(decimal.NewFromInt(100))
	pct, _ := amount.Div(subtotal).Float64()
	return pct
}

func (b *InquiryBuilder) clientIP(order *model.Order, meta RequestMeta) string {
	ip := order.XForwardedFor
	if ip == "" {
		ip = meta.XForwardedFor
	}
	if ip == "" {
		ip = order.RemoteIP
	}
	if idx := strings.Index(ip, ","); idx != -1 {
		ip = strings.TrimSpace(ip[:idx])
	}
	if ip == "" || meta.IsAdmin {
		return LocalIP
	}
	return ip
}

func person(a model.Address, addressType string) *model.Person {
	return &model.Person{
		Name: model.PersonName{
			First: a.FirstName,
			Last:  a.LastName,
		},
		EmailAddress: a.Email,
		PhoneNumber:  a.Telephone,
		Address: model.PersonAddress{
			AddressType: addressType,
			Line1:       a.Street1,
			Line2:       a.Street2,
			City:        a.City,
			Region:      a.Region,
			CountryCode: a.CountryID,
			PostalCode:  a.Postcode,
		},
	}
}

func channel(order *model.Order) string {
	if order.BaseURL == "" {
		return channelFallback
	}
	return order.BaseURL
}

func transactionStatus(order *model.Order, realTimeDecline bool) string {
	if realTimeDecline {
		return "REFUSED"
	}
	if order.Payment.Method != "" {
		return "CAPTURED"
	}
	return "PENDING"
}

func authResult(order *model.Order, realTimeDecline bool) string {
	if realTimeDecline {
		return "DECLINED"
	}
	if order.Payment.Method != "" {
		return "APPROVED"
	}
	return "UNKNOWN"
}
