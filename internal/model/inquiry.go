package model

// Inquiry is the outbound risk-scoring document. Monetary fields are strings
// holding minor units of the configured reporting currency, as the scoring
// API expects.
type Inquiry struct {
	MerchantOrderID  string            `json:"merchantOrderId"`
	Channel          string            `json:"channel"`
	CreationDateTime string            `json:"creationDateTime"`
	UserIP           string            `json:"userIp"`
	DeviceSessionID  string            `json:"deviceSessionId,omitempty"`
	UserAgent        string            `json:"userAgent,omitempty"`
	Account          *InquiryAccount   `json:"account,omitempty"`
	Items            []InquiryItem     `json:"items,omitempty"`
	Fulfillment      []Fulfillment     `json:"fulfillment,omitempty"`
	Transactions     []Transaction     `json:"transactions,omitempty"`
	Promotions       []Promotion       `json:"promotions"`
	CustomFields     map[string]string `json:"customFields,omitempty"`
}

type InquiryAccount struct {
	ID               string `json:"id"`
	Type             string `json:"type"`
	CreationDateTime string `json:"creationDateTime"`
	Username         string `json:"username"`
	AccountIsActive  bool   `json:"accountIsActive"`
}

type InquiryItem struct {
	ID          string `json:"id"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Name        string `json:"name"`
	Quantity    int64  `json:"quantity"`
	SKU         string `json:"sku"`
}

type Fulfillment struct {
	Type      string       `json:"type"`
	Shipping  ShippingInfo `json:"shipping"`
	Recipient Recipient    `json:"recipient"`
	Store     InquiryStore `json:"store"`
}

type ShippingInfo struct {
	Amount   string `json:"amount"`
	Provider string `json:"provider"`
	Method   string `json:"method"`
}

type Recipient struct {
	SameAsBilling bool    `json:"sameAsBilling"`
	Person        *Person `json:"person,omitempty"`
}

type Person struct {
	Name         PersonName    `json:"name"`
	EmailAddress string        `json:"emailAddress"`
	PhoneNumber  string        `json:"phoneNumber"`
	Address      PersonAddress `json:"address"`
}

type PersonName struct {
	First string `json:"first"`
	Last  string `json:"last"`
}

type PersonAddress struct {
	AddressType string `json:"addressType"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2"`
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryCode string `json:"countryCode"`
	PostalCode  string `json:"postalCode"`
}

type InquiryStore struct {
	ID      string `json:"id"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Country string `json:"country,omitempty"`
}

type Transaction struct {
	MerchantTransactionID string      `json:"merchantTransactionId"`
	Processor             string      `json:"processor"`
	ProcessorMerchantID   string      `json:"processorMerchantId"`
	Payment               PaymentInfo `json:"payment"`
	Subtotal              string      `json:"subtotal"`
	Currency              string      `json:"currency"`
	OrderTotal            string      `json:"orderTotal"`
	Tax                   Tax         `json:"tax"`
	BilledPerson          Person      `json:"billedPerson"`
	TransactionStatus     string      `json:"transactionStatus"`
	AuthorizationStatus   AuthStatus  `json:"authorizationStatus"`
	TransactionID         string      `json:"transactionId,omitempty"`
}

type PaymentInfo struct {
	Type         string `json:"type"`
	PaymentToken string `json:"paymentToken"`
	Bin          string `json:"bin"`
	Last4        string `json:"last4"`
}

type Tax struct {
	IsTaxable          bool   `json:"isTaxable"`
	TaxableCountryCode string `json:"taxableCountryCode"`
	TaxAmount          string `json:"taxAmount"`
}

type AuthStatus struct {
	AuthResult string `json:"authResult"`
}

type Promotion struct {
	ID           string   `json:"id"`
	Description  string   `json:"description"`
	Status       string   `json:"status"`
	StatusReason string   `json:"statusReason"`
	Discount     Discount `json:"discount"`
}

type Discount struct {
	Percentage float64 `json:"percentage"`
	Amount     string  `json:"amount"`
}
