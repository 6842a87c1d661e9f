package internal

// PaymentDescriptor is the scoring-service view of a payment method. The
// NoPayment descriptor carries fixed address-verification sentinels so that
// unscoreable methods never look like failed AVS checks.
type PaymentDescriptor struct {
	Type      string
	AvsStreet string
	AvsZip    string
	NoPayment bool
}

type IPaymentResolver interface {
	Resolve(methodCode string) PaymentDescriptor
}

type PaymentRegistry struct {
	table    map[string]PaymentDescriptor
	fallback PaymentDescriptor
}

const avsUnknown = "X"

// NewPaymentRegistry builds the sealed method-code lookup table. Unmapped
// codes resolve to the NoPayment variant.
func NewPaymentRegistry() *PaymentRegistry {
	card := PaymentDescriptor{Type: "CREDIT_CARD"}
	return &PaymentRegistry{
		table: map[string]PaymentDescriptor{
			"checkmo":                 {Type: "CHECK"},
			"banktransfer":            {Type: "WIRE_TRANSFER"},
			"cashondelivery":          {Type: "CASH_ON_DELIVERY"},
			"purchaseorder":           {Type: "PURCHASE_ORDER"},
			"paypal_express":          {Type: "PAYPAL"},
			"paypal_standard":         {Type: "PAYPAL"},
			"braintree":               card,
			"braintree_paypal":        {Type: "PAYPAL"},
			"braintree_applepay":      {Type: "APPLE_PAY"},
			"braintree_googlepay":     {Type: "GOOGLE_PAY"},
			"authorizenet_directpost": card,
			"cybersource":             card,
			"payflowpro":              card,
			"stripe_payments":         card,
			"free":                    {Type: "NONE", AvsStreet: avsUnknown, AvsZip: avsUnknown, NoPayment: true},
		},
		fallback: PaymentDescriptor{
			Type:      "NONE",
			AvsStreet: avsUnknown,
			AvsZip:    avsUnknown,
			NoPayment: true,
		},
	}
}

func (r *PaymentRegistry) Resolve(methodCode string) PaymentDescriptor {
	if d, ok := r.table[methodCode]; ok {
		return d
	}
	return r.fallback
}
