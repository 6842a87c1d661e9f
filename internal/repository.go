package internal

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smolin/riskgate/internal/model"
)

const (
	orderFields = "id, increment_id, store_id, base_url, state, status, hold_before_state, hold_before_status, " +
		"base_currency, order_currency, base_subtotal, base_grand_total, base_tax, base_shipping, base_total_paid, " +
		"customer_id, customer_email, customer_group_id, remote_ip, x_forwarded_for, " +
		"shipping_carrier, shipping_method, applied_rule_ids, risk_transaction_id, risk_processed, created_at"
	itemFields    = "id, sku, name, description, base_price, base_discount, qty_ordered, parent_item_id, applied_rule_ids"
	addressFields = "address_type, first_name, last_name, email, telephone, street1, street2, city, region, country_id, postcode"
)

type IRepository interface {
	GetOrderByID(ctx context.Context, id int64) (*model.Order, error)
	GetOrderByIncrementID(ctx context.Context, incrementID string) (*model.Order, error)
	SaveOrder(ctx context.Context, order *model.Order) error
	LoadCreditMemoDraft(ctx context.Context, orderID, invoiceID int64) (*model.CreditMemo, error)
	CreateCreditMemo(ctx context.Context, memo *model.CreditMemo) (int64, error)
	NotifyCreditMemo(ctx context.Context, memoID int64) error
	GetRuleByID(ctx context.Context, id int64) (model.PromotionRule, error)
	GetRate(ctx context.Context, from, to string) (decimal.Decimal, error)
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	if err = conn.Ping(); err != nil {
		return nil, err
	}

	if err = Migrate(conn); err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) GetOrderByID(ctx context.Context, id int64) (*model.Order, error) {
	return r.getOrder(ctx, "SELECT "+orderFields+" FROM orders WHERE id = $1", id)
}

func (r Repository) GetOrderByIncrementID(ctx context.Context, incrementID string) (*model.Order, error) {
	return r.getOrder(ctx, "SELECT "+orderFields+" FROM orders WHERE increment_id = $1", incrementID)
}

func (r Repository) getOrder(ctx context.Context, query string, arg interface{}) (*model.Order, error) {
	o := model.Order{}

	row := r.Conn.QueryRowContext(ctx, query, arg)
	err := row.Scan(
		&o.ID, &o.IncrementID, &o.StoreID, &o.BaseURL, &o.State, &o.Status,
		&o.HoldBeforeState, &o.HoldBeforeStatus,
		&o.BaseCurrencyCode, &o.OrderCurrencyCode,
		&o.BaseSubtotal, &o.BaseGrandTotal, &o.BaseTaxAmount, &o.BaseShippingAmount, &o.BaseTotalPaid,
		&o.CustomerID, &o.CustomerEmail, &o.CustomerGroupID, &o.RemoteIP, &o.XForwardedFor,
		&o.ShippingCarrier, &o.ShippingMethod, &o.AppliedRuleIDs, &o.RiskTransactionID, &o.RiskProcessed, &o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err = r.loadItems(ctx, &o); err != nil {
		return nil, err
	}
	if err = r.loadAddresses(ctx, &o); err != nil {
		return nil, err
	}
	if err = r.loadInvoices(ctx, &o); err != nil {
		return nil, err
	}
	if err = r.loadPayment(ctx, &o); err != nil {
		return nil, err
	}

	return &o, nil
}

func (r Repository) loadItems(ctx context.Context, o *model.Order) error {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+itemFields+" FROM order_items WHERE order_id = $1 ORDER BY id", o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		i := model.LineItem{}
		err = rows.Scan(&i.ID, &i.SKU, &i.Name, &i.Description, &i.BasePrice, &i.BaseDiscount,
			&i.QtyOrdered, &i.ParentItemID, &i.AppliedRuleIDs)
		if err != nil {
			return err
		}
		o.Items = append(o.Items, i)
	}
	return rows.Err()
}

func (r Repository) loadAddresses(ctx context.Context, o *model.Order) error {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+addressFields+" FROM order_addresses WHERE order_id = $1", o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var addressType string
		a := model.Address{}
		err = rows.Scan(&addressType, &a.FirstName, &a.LastName, &a.Email, &a.Telephone,
			&a.Street1, &a.Street2, &a.City, &a.Region, &a.CountryID, &a.Postcode)
		if err != nil {
			return err
		}
		if addressType == "shipping" {
			shipping := a
			o.ShippingAddress = &shipping
		} else {
			o.BillingAddress = a
		}
	}
	return rows.Err()
}

func (r Repository) loadInvoices(ctx context.Context, o *model.Order) error {
	rows, err := r.Conn.QueryContext(ctx, "SELECT id, increment_id FROM invoices WHERE order_id = $1 ORDER BY id", o.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		i := model.Invoice{}
		if err = rows.Scan(&i.ID, &i.IncrementID); err != nil {
			return err
		}
		o.Invoices = append(o.Invoices, i)
	}
	return rows.Err()
}

func (r Repository) loadPayment(ctx context.Context, o *model.Order) error {
	row := r.Conn.QueryRowContext(ctx,
		"SELECT method, title, cc_last4, last_trans_id FROM order_payments WHERE order_id = $1", o.ID)

	err := row.Scan(&o.Payment.Method, &o.Payment.Title, &o.Payment.CcLast4, &o.Payment.LastTransID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

// SaveOrder persists the mutable order fields and any history entries added
// since the order was loaded.
func (r Repository) SaveOrder(ctx context.Context, order *model.Order) error {
	_, err := r.Conn.ExecContext(ctx,
		`UPDATE orders SET state = $1, status = $2, hold_before_state = $3, hold_before_status = $4,
			risk_transaction_id = $5, risk_processed = $6 WHERE id = $7`,
		order.State, order.Status, order.HoldBeforeState, order.HoldBeforeStatus,
		order.RiskTransactionID, order.RiskProcessed, order.ID)
	if err != nil {
		return err
	}

	for i := range order.History {
		h := &order.History[i]
		if h.ID != 0 {
			continue
		}
		row := r.Conn.QueryRowContext(ctx,
			`INSERT INTO order_status_history (order_id, status, comment, notify_customer, created_at)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			order.ID, h.Status, h.Comment, h.NotifyCustomer, h.CreatedAt)
		if err = row.Scan(&h.ID); err != nil {
			return err
		}
	}
	return nil
}

// LoadCreditMemoDraft builds an unsaved credit memo for the invoice.
func (r Repository) LoadCreditMemoDraft(ctx context.Context, orderID, invoiceID int64) (*model.CreditMemo, error) {
	var exists bool
	row := r.Conn.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM invoices WHERE id = $1 AND order_id = $2)", invoiceID, orderID)
	if err := row.Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrCreditMemoCreation
	}

	var refunded bool
	row = r.Conn.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM credit_memos WHERE invoice_id = $1)", invoiceID)
	if err := row.Scan(&refunded); err != nil {
		return nil, err
	}
	if refunded {
		return nil, ErrCreditMemoCreation
	}

	return &model.CreditMemo{OrderID: orderID, InvoiceID: invoiceID}, nil
}

// CreateCreditMemo executes the refund for the draft and returns the memo id.
func (r Repository) CreateCreditMemo(ctx context.Context, memo *model.CreditMemo) (int64, error) {
	var id int64
	row := r.Conn.QueryRowContext(ctx,
		`INSERT INTO credit_memos (order_id, invoice_id, comment, customer_note, customer_note_notify)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		memo.OrderID, memo.InvoiceID, memo.Comment, memo.CustomerNote, memo.CustomerNoteNotify)

	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r Repository) NotifyCreditMemo(ctx context.Context, memoID int64) error {
	_, err := r.Conn.ExecContext(ctx, "UPDATE credit_memos SET notified = true WHERE id = $1", memoID)
	return err
}

func (r Repository) GetRuleByID(ctx context.Context, id int64) (model.PromotionRule, error) {
	rule := model.PromotionRule{}

	row := r.Conn.QueryRowContext(ctx, "SELECT id, name FROM promotion_rules WHERE id = $1", id)
	err := row.Scan(&rule.ID, &rule.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return rule, ErrRuleNotFound
	}
	if err != nil {
		return rule, err
	}

	return rule, nil
}

func (r Repository) GetRate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	var rate decimal.Decimal

	row := r.Conn.QueryRowContext(ctx,
		"SELECT rate FROM currency_rates WHERE currency_from = $1 AND currency_to = $2", from, to)
	err := row.Scan(&rate)
	if errors.Is(err, sql.ErrNoRows) {
		return rate, ErrNoSuchCurrencyRate
	}
	if err != nil {
		return rate, err
	}

	return rate, nil
}
