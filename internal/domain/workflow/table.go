package workflow

import "catering_portal/internal/domain/entities"

// FromAny is the wildcard source status. It is only meaningful on
// admin-initiated cancellation rules; every other transition must name its
// source state explicitly.
const FromAny = "*"

// Rule declares one legal directed transition. Rules are one-way: if a
// status can be re-entered (e.g. pending_review back to draft) both
// directions appear as separate entries.
type Rule struct {
	From        string
	To          string
	Roles       []entities.ActorRole
	Notify      bool
	Description string
}

// AllowsRole reports whether the rule permits the given actor role.
func (r Rule) AllowsRole(role entities.ActorRole) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Table holds the transition rule sets per entity kind. It is the only
// source of truth for transition legality; no other component may encode
// allowed transitions.
type Table struct {
	rules map[entities.EntityKind][]Rule
}

// NewTable builds an immutable rule table. The rule slices are copied so
// later mutation of the inputs cannot change legality.
func NewTable(quoteRules, invoiceRules []Rule) *Table {
	return &Table{
		rules: map[entities.EntityKind][]Rule{
			entities.EntityKindQuote:   append([]Rule(nil), quoteRules...),
			entities.EntityKindInvoice: append([]Rule(nil), invoiceRules...),
		},
	}
}

// Rules returns the ordered rule list for a kind.
func (t *Table) Rules(kind entities.EntityKind) []Rule {
	return t.rules[kind]
}

var (
	admin    = []entities.ActorRole{entities.ActorRoleAdmin}
	customer = []entities.ActorRole{entities.ActorRoleCustomer}
	system   = []entities.ActorRole{entities.ActorRoleSystem}

	adminOrSystem    = []entities.ActorRole{entities.ActorRoleAdmin, entities.ActorRoleSystem}
	customerOrSystem = []entities.ActorRole{entities.ActorRoleCustomer, entities.ActorRoleSystem}
)

// DefaultQuoteRules is the production rule set for quote requests.
var DefaultQuoteRules = []Rule{
	{From: "pending", To: "under_review", Roles: admin, Description: "Your request is being reviewed"},
	{From: "under_review", To: "quoted", Roles: admin, Notify: true, Description: "Your quote is ready"},
	{From: "quoted", To: "estimated", Roles: admin, Notify: true, Description: "Your estimate has been prepared"},
	{From: "estimated", To: "approved", Roles: customer, Notify: true, Description: "Estimate approved"},
	{From: "approved", To: "awaiting_payment", Roles: adminOrSystem, Notify: true, Description: "Awaiting your payment"},
	{From: "awaiting_payment", To: "paid", Roles: system, Notify: true, Description: "Payment received"},
	{From: "approved", To: "paid", Roles: system, Notify: true, Description: "Payment received"},
	{From: "paid", To: "confirmed", Roles: adminOrSystem, Notify: true, Description: "Your event is confirmed"},
	{From: "confirmed", To: "in_progress", Roles: admin, Description: "Event preparation underway"},
	{From: "in_progress", To: "completed", Roles: admin, Notify: true, Description: "Your event is complete"},
	{From: FromAny, To: "cancelled", Roles: admin, Notify: true, Description: "Your request has been cancelled"},
}

// DefaultInvoiceRules is the production rule set for estimate/invoice
// documents.
var DefaultInvoiceRules = []Rule{
	{From: "draft", To: "pending_review", Roles: admin, Description: "Document submitted for review"},
	{From: "pending_review", To: "draft", Roles: admin, Description: "Document returned to draft"},
	{From: "pending_review", To: "sent", Roles: admin, Notify: true, Description: "Your estimate has been sent"},
	{From: "sent", To: "viewed", Roles: customerOrSystem, Description: "Estimate viewed"},
	{From: "sent", To: "approved", Roles: customer, Notify: true, Description: "Estimate approved"},
	{From: "viewed", To: "approved", Roles: customer, Notify: true, Description: "Estimate approved"},
	{From: "approved", To: "payment_pending", Roles: adminOrSystem, Notify: true, Description: "Payment is now due"},
	{From: "payment_pending", To: "partially_paid", Roles: system, Notify: true, Description: "Partial payment received"},
	{From: "payment_pending", To: "paid", Roles: system, Notify: true, Description: "Payment received in full"},
	{From: "partially_paid", To: "paid", Roles: system, Notify: true, Description: "Payment received in full"},
	{From: "sent", To: "overdue", Roles: system, Notify: true, Description: "Your invoice is overdue"},
	{From: "viewed", To: "overdue", Roles: system, Notify: true, Description: "Your invoice is overdue"},
	{From: "payment_pending", To: "overdue", Roles: system, Notify: true, Description: "Your invoice is overdue"},
	{From: "partially_paid", To: "overdue", Roles: system, Notify: true, Description: "Your invoice is overdue"},
	{From: "overdue", To: "partially_paid", Roles: system, Notify: true, Description: "Partial payment received"},
	{From: "overdue", To: "paid", Roles: system, Notify: true, Description: "Payment received in full"},
	{From: FromAny, To: "cancelled", Roles: admin, Notify: true, Description: "This document has been cancelled"},
}

// DefaultTable returns the production rule table.
func DefaultTable() *Table {
	return NewTable(DefaultQuoteRules, DefaultInvoiceRules)
}
