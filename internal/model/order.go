package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StateNew            = "new"
	StatePendingPayment = "pending_payment"
	StateProcessing     = "processing"
	StatePaymentReview  = "payment_review"
	StateComplete       = "complete"
	StateClosed         = "closed"
	StateCanceled       = "canceled"
	StateHolded         = "holded"
)

// StatusRiskDecline marks orders held after a declined risk verdict.
const StatusRiskDecline = "riskgate_decline"

type Order struct {
	ID          int64  `json:"ID"`
	IncrementID string `json:"incrementID"`
	StoreID     int64  `json:"storeID"`
	BaseURL     string `json:"baseURL"`
	State       string `json:"state"`
	Status      string `json:"status"`

	HoldBeforeState  string `json:"holdBeforeState"`
	HoldBeforeStatus string `json:"holdBeforeStatus"`

	BaseCurrencyCode  string `json:"baseCurrencyCode"`
	OrderCurrencyCode string `json:"orderCurrencyCode"`

	BaseSubtotal       decimal.Decimal `json:"baseSubtotal"`
	BaseGrandTotal     decimal.Decimal `json:"baseGrandTotal"`
	BaseTaxAmount      decimal.Decimal `json:"baseTaxAmount"`
	BaseShippingAmount decimal.Decimal `json:"baseShippingAmount"`
	BaseTotalPaid      decimal.Decimal `json:"baseTotalPaid"`

	CustomerID      int64  `json:"customerID"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerGroupID int64  `json:"customerGroupID"`

	RemoteIP      string `json:"remoteIP"`
	XForwardedFor string `json:"xForwardedFor"`

	ShippingCarrier string `json:"shippingCarrier"`
	ShippingMethod  string `json:"shippingMethod"`

	AppliedRuleIDs string `json:"appliedRuleIDs"`

	RiskTransactionID string `json:"riskTransactionID"`
	RiskProcessed     bool   `json:"riskProcessed"`

	Items           []LineItem      `json:"items"`
	BillingAddress  Address         `json:"billingAddress"`
	ShippingAddress *Address        `json:"shippingAddress"`
	Payment         Payment         `json:"payment"`
	Invoices        []Invoice       `json:"invoices"`
	History         []StatusHistory `json:"history"`

	CreatedAt time.Time `json:"createdAt"`
}

type LineItem struct {
	ID             int64           `json:"ID"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Description    string          `json:"description"`
	BasePrice      decimal.Decimal `json:"basePrice"`
	BaseDiscount   decimal.Decimal `json:"baseDiscount"`
	QtyOrdered     decimal.Decimal `json:"qtyOrdered"`
	ParentItemID   int64           `json:"parentItemID"`
	AppliedRuleIDs string          `json:"appliedRuleIDs"`
}

type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
	Street1   string `json:"street1"`
	Street2   string `json:"street2"`
	City      string `json:"city"`
	Region    string `json:"region"`
	CountryID string `json:"countryID"`
	Postcode  string `json:"postcode"`
}

type Payment struct {
	Method      string `json:"method"`
	Title       string `json:"title"`
	CcLast4     string `json:"ccLast4"`
	LastTransID string `json:"lastTransID"`
}

type PromotionRule struct {
	ID   int64  `json:"ID"`
	Name string `json:"name"`
}

type Invoice struct {
	ID          int64  `json:"ID"`
	IncrementID string `json:"incrementID"`
}

type CreditMemo struct {
	InvoiceID          int64  `json:"invoiceID"`
	OrderID            int64  `json:"orderID"`
	Comment            string `json:"comment"`
	CustomerNote       string `json:"customerNote"`
	CustomerNoteNotify bool   `json:"customerNoteNotify"`
}

type StatusHistory struct {
	ID             int64     `json:"ID"`
	Status         string    `json:"status"`
	Comment        string    `json:"comment"`
	NotifyCustomer bool      `json:"notifyCustomer"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (o *Order) HasInvoices() bool {
	return len(o.Invoices) > 0
}

// CanCancel reports whether the order may still be cancelled.
// Invoiced or terminal orders can only be refunded or held.
func (o *Order) CanCancel() bool {
	switch o.State {
	case StateComplete, StateClosed, StateCanceled, StateHolded:
		return false
	}
	return !o.HasInvoices()
}

func (o *Order) CanCreditmemo() bool {
	if o.State == StateCanceled || o.State == StateClosed {
		return false
	}
	return o.BaseTotalPaid.IsPositive()
}

// AddStatusHistory appends a history entry; an empty status keeps the current one.
func (o *Order) AddStatusHistory(status, comment string, notify bool) {
	if status == "" {
		status = o.Status
	} else {
		o.Status = status
	}
	o.History = append(o.History, StatusHistory{
		Status:         status,
		Comment:        comment,
		NotifyCustomer: notify,
		CreatedAt:      time.Now().UTC(),
	})
}

// TopLevelItems returns items without a parent link. Children of bundle or
// configurable items are priced through their parent and are not reported.
func (o *Order) TopLevelItems() []LineItem {
	items := make([]LineItem, 0, len(o.Items))
	for _, i := range o.Items {
		if i.ParentItemID != 0 {
			continue
		}
		items = append(items, i)
	}
	return items
}

// AppliedRules parses the comma-joined rule id list on the order.
func (o *Order) AppliedRules() []int64 {
	if o.AppliedRuleIDs == "" {
		return nil
	}
	parts := strings.Split(o.AppliedRuleIDs, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// HasAppliedRule reports whether the line item lists the given rule id.
func (i LineItem) HasAppliedRule(ruleID int64) bool {
	for _, p := range strings.Split(i.AppliedRuleIDs, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		if id == ruleID {
			return true
		}
	}
	return false
}
